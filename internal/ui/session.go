package ui

import (
	"github.com/ytget/ytbuddy/internal/fetch"
	"github.com/ytget/ytbuddy/internal/model"
	"github.com/ytget/ytbuddy/internal/platform"
)

// session holds the per-window transient records: the fetched URL, its
// metadata, the partitioned format buckets, and the scratch directory of the
// last download. A fresh fetch replaces everything wholesale. The download
// action stays disabled unless the URL in the entry still matches the URL
// these records were fetched for.
type session struct {
	url          string
	info         *model.VideoInfo
	videoFormats []model.FormatOption
	audioFormats []model.FormatOption
	bucket       model.FormatKind
	selected     int // index into the active bucket, -1 = none
	scratch      *platform.Scratch
	result       *model.DownloadResult
}

func newSession() *session {
	return &session{bucket: model.KindVideoAudio, selected: -1}
}

// apply replaces the session records with a fresh fetch result.
func (s *session) apply(url string, info *model.VideoInfo, formats []model.FormatOption) {
	s.url = url
	s.info = info
	s.videoFormats, s.audioFormats = fetch.Partition(formats)
	s.selected = -1
	s.result = nil
}

// fetched reports whether the session holds a usable fetch result.
func (s *session) fetched() bool {
	return s.info != nil
}

// setBucket switches the active bucket and clears the selection.
func (s *session) setBucket(bucket model.FormatKind) {
	if bucket != s.bucket {
		s.bucket = bucket
		s.selected = -1
	}
}

// activeFormats returns the options of the active bucket in extractor order.
func (s *session) activeFormats() []model.FormatOption {
	if s.bucket == model.KindAudioOnly {
		return s.audioFormats
	}
	return s.videoFormats
}

// selectedOption returns the chosen option of the active bucket, if any.
func (s *session) selectedOption() (model.FormatOption, bool) {
	formats := s.activeFormats()
	if s.selected < 0 || s.selected >= len(formats) {
		return model.FormatOption{}, false
	}
	return formats[s.selected], true
}

// replaceScratch disposes of the previous staging directory (unless keep is
// set) and installs a fresh one for the next download action.
func (s *session) replaceScratch(keep bool) (*platform.Scratch, error) {
	s.dropScratch(keep)
	scratch, err := platform.NewScratch()
	if err != nil {
		return nil, err
	}
	s.scratch = scratch
	return scratch, nil
}

// dropScratch removes the staging directory unless the user keeps staged
// files around.
func (s *session) dropScratch(keep bool) {
	if s.scratch != nil && !keep {
		_ = s.scratch.Remove()
	}
	s.scratch = nil
	s.result = nil
}
