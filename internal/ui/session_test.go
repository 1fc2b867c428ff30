package ui

import (
	"os"
	"testing"

	"github.com/ytget/ytbuddy/internal/model"
)

func sampleFormats() []model.FormatOption {
	return []model.FormatOption{
		{ID: "22", Quality: "720p", Ext: "mp4", Kind: model.KindVideoAudio},
		{ID: "140", Quality: "128kbps", Ext: "m4a", Kind: model.KindAudioOnly},
		{ID: "18", Quality: "360p", Ext: "mp4", Kind: model.KindVideoAudio},
	}
}

func TestSession_Apply(t *testing.T) {
	s := newSession()
	if s.fetched() {
		t.Error("new session should not report a fetch")
	}

	info := &model.VideoInfo{Title: "Sample"}
	s.apply("https://youtube.com/watch?v=abc", info, sampleFormats())

	if !s.fetched() {
		t.Error("session should report a fetch after apply")
	}
	if len(s.videoFormats) != 2 || len(s.audioFormats) != 1 {
		t.Errorf("unexpected partition: %d video, %d audio", len(s.videoFormats), len(s.audioFormats))
	}
	if _, ok := s.selectedOption(); ok {
		t.Error("selection should be cleared by apply")
	}

	// A second apply replaces records wholesale
	s.selected = 0
	s.apply("https://youtube.com/watch?v=other", &model.VideoInfo{Title: "Other"}, nil)
	if s.info.Title != "Other" {
		t.Errorf("expected replaced info, got %s", s.info.Title)
	}
	if len(s.videoFormats) != 0 || len(s.audioFormats) != 0 {
		t.Error("expected empty buckets after apply with no formats")
	}
	if _, ok := s.selectedOption(); ok {
		t.Error("stale selection must not survive a new fetch")
	}
}

func TestSession_BucketSelection(t *testing.T) {
	s := newSession()
	s.apply("https://youtube.com/watch?v=abc", &model.VideoInfo{}, sampleFormats())

	s.selected = 1
	opt, ok := s.selectedOption()
	if !ok || opt.ID != "18" {
		t.Errorf("expected option 18, got %+v ok=%v", opt, ok)
	}

	// Switching buckets clears the selection
	s.setBucket(model.KindAudioOnly)
	if _, ok := s.selectedOption(); ok {
		t.Error("selection should be cleared by bucket switch")
	}

	s.selected = 0
	opt, ok = s.selectedOption()
	if !ok || opt.ID != "140" {
		t.Errorf("expected option 140, got %+v ok=%v", opt, ok)
	}

	// Re-setting the same bucket keeps the selection
	s.setBucket(model.KindAudioOnly)
	if _, ok := s.selectedOption(); !ok {
		t.Error("selection should survive setting the same bucket")
	}

	// Out-of-range selection is rejected
	s.selected = 5
	if _, ok := s.selectedOption(); ok {
		t.Error("out-of-range selection should not resolve")
	}
}

func TestSession_ScratchLifecycle(t *testing.T) {
	s := newSession()

	first, err := s.replaceScratch(false)
	if err != nil {
		t.Fatalf("replaceScratch() error: %v", err)
	}
	firstDir := first.Dir()

	// Replacing disposes of the previous scratch directory
	second, err := s.replaceScratch(false)
	if err != nil {
		t.Fatalf("replaceScratch() error: %v", err)
	}
	defer second.Remove()

	if _, err := os.Stat(firstDir); !os.IsNotExist(err) {
		t.Error("previous scratch directory should be removed")
	}
	if _, err := os.Stat(second.Dir()); err != nil {
		t.Errorf("new scratch directory missing: %v", err)
	}

	// With keep set, the directory survives
	keptDir := second.Dir()
	s.dropScratch(true)
	if _, err := os.Stat(keptDir); err != nil {
		t.Errorf("kept scratch directory should survive: %v", err)
	}
	os.RemoveAll(keptDir)

	if s.scratch != nil {
		t.Error("scratch reference should be cleared")
	}
}
