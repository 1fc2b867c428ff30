package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytbuddy/internal/extract"
	"github.com/ytget/ytbuddy/internal/fetch"
	"github.com/ytget/ytbuddy/internal/model"
	"github.com/ytget/ytbuddy/internal/platform"
)

// fakeExtractor writes canned files into the destination directory, or fails.
type fakeExtractor struct {
	result   *extract.Result
	files    map[string]string // name -> content written by Fetch
	fetchErr error
}

func (f *fakeExtractor) Info(ctx context.Context, videoURL string) (*extract.Result, error) {
	return f.result, nil
}

func (f *fakeExtractor) Fetch(ctx context.Context, videoURL, formatID, destDir string) error {
	if f.fetchErr != nil {
		return f.fetchErr
	}
	for name, content := range f.files {
		if err := os.WriteFile(filepath.Join(destDir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// waitForFinished blocks until the callback reports a finished task.
func waitForFinished(t *testing.T, done <-chan *model.DownloadTask) *model.DownloadTask {
	t.Helper()
	select {
	case task := <-done:
		return task
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for download to finish")
		return nil
	}
}

func newScratch(t *testing.T) *platform.Scratch {
	t.Helper()
	scratch, err := platform.NewScratch()
	require.NoError(t, err)
	t.Cleanup(func() { scratch.Remove() })
	return scratch
}

func startAndWait(t *testing.T, svc *Service, url string, format model.FormatOption, scratch *platform.Scratch) *model.DownloadTask {
	t.Helper()
	done := make(chan *model.DownloadTask, 1)
	svc.SetUpdateCallback(func(task *model.DownloadTask) {
		if task.Status.IsFinished() {
			done <- task
		}
	})

	task, err := svc.Start(url, format, scratch)
	require.NoError(t, err)
	require.Equal(t, scratch.Dir(), task.ScratchDir)

	return waitForFinished(t, done)
}

func TestStart_Success(t *testing.T) {
	svc := NewService(&fakeExtractor{files: map[string]string{"Sample.mp4": "0123456789"}})
	scratch := newScratch(t)

	task := startAndWait(t, svc, "https://youtube.com/watch?v=abc", model.FormatOption{ID: "22"}, scratch)

	assert.Equal(t, model.TaskStatusCompleted, task.Status)
	require.NotNil(t, task.Result)
	assert.True(t, task.Result.OK)
	assert.Equal(t, SuccessMessage, task.Result.Message)
	require.Len(t, task.Result.Files, 1)
	assert.Equal(t, "Sample.mp4", task.Result.Files[0].Name)
	assert.Equal(t, int64(10), task.Result.Files[0].Size)
}

func TestStart_SidecarFilesAreSurfaced(t *testing.T) {
	svc := NewService(&fakeExtractor{files: map[string]string{
		"Sample.mp4":     "0123456789",
		"Sample.mp4.nfo": "meta",
	}})
	scratch := newScratch(t)

	task := startAndWait(t, svc, "https://youtube.com/watch?v=abc", model.FormatOption{ID: "22"}, scratch)

	require.NotNil(t, task.Result)
	assert.True(t, task.Result.OK)
	assert.Len(t, task.Result.Files, 2)
}

func TestStart_FailurePropagatesMessageVerbatim(t *testing.T) {
	svc := NewService(&fakeExtractor{fetchErr: errors.New("video unavailable")})
	scratch := newScratch(t)

	task := startAndWait(t, svc, "https://youtube.com/watch?v=gone", model.FormatOption{ID: "22"}, scratch)

	assert.Equal(t, model.TaskStatusError, task.Status)
	require.NotNil(t, task.Result)
	assert.False(t, task.Result.OK)
	assert.Equal(t, "video unavailable", task.Result.Message)
	assert.Empty(t, task.Result.Files)
}

func TestStart_RejectsSecondActiveTask(t *testing.T) {
	block := make(chan struct{})
	svc := NewService(&blockingExtractor{release: block})
	scratch := newScratch(t)

	_, err := svc.Start("https://youtube.com/watch?v=one", model.FormatOption{ID: "22"}, scratch)
	require.NoError(t, err)

	_, err = svc.Start("https://youtube.com/watch?v=two", model.FormatOption{ID: "22"}, scratch)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "already in progress"))

	close(block)
}

func TestCurrent(t *testing.T) {
	svc := NewService(&fakeExtractor{})

	_, ok := svc.Current()
	assert.False(t, ok)

	scratch := newScratch(t)
	task := startAndWait(t, svc, "https://youtube.com/watch?v=abc", model.FormatOption{ID: "22"}, scratch)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, task.ID, current.ID)
}

func TestCurrent_SnapshotIsDecoupledFromRunningTask(t *testing.T) {
	block := make(chan struct{})
	svc := NewService(&blockingExtractor{release: block})
	scratch := newScratch(t)

	done := make(chan *model.DownloadTask, 1)
	svc.SetUpdateCallback(func(task *model.DownloadTask) {
		if task.Status.IsFinished() {
			done <- task
		}
	})

	_, err := svc.Start("https://youtube.com/watch?v=abc", model.FormatOption{ID: "22"}, scratch)
	require.NoError(t, err)

	snapshot, ok := svc.Current()
	require.True(t, ok)
	assert.True(t, snapshot.Status.IsActive())

	close(block)
	waitForFinished(t, done)

	// The snapshot keeps the state it was taken in.
	assert.True(t, snapshot.Status.IsActive())

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, model.TaskStatusCompleted, current.Status)
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	assert.NotEqual(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, "task-"))
	assert.Len(t, id1, len("task-")+36)
}

// blockingExtractor holds Fetch open until released.
type blockingExtractor struct {
	release chan struct{}
}

func (b *blockingExtractor) Info(ctx context.Context, videoURL string) (*extract.Result, error) {
	return &extract.Result{}, nil
}

func (b *blockingExtractor) Fetch(ctx context.Context, videoURL, formatID, destDir string) error {
	<-b.release
	return nil
}

// TestFetchPickDownloadFlow walks the whole flow against a stubbed extractor:
// fetch metadata, partition buckets, pick the only muxed rendition, download,
// and verify exactly one file lands in the scratch directory.
func TestFetchPickDownloadFlow(t *testing.T) {
	extractor := &fakeExtractor{
		result: &extract.Result{
			Title:    "Sample",
			Duration: 125,
			Formats: []model.FormatOption{
				{ID: "22", Quality: "720p", Ext: "mp4", FileSize: 5000000, Kind: model.KindVideoAudio},
				{ID: "140", Quality: "128kbps", Ext: "m4a", FileSize: 2000000, Kind: model.KindAudioOnly},
			},
		},
		files: map[string]string{"Sample.mp4": "0123456789"},
	}

	info, formats, err := fetch.NewService(extractor).Fetch(context.Background(), "https://youtube.com/watch?v=abc")
	require.NoError(t, err)
	assert.Equal(t, "Sample", info.Title)
	assert.Equal(t, "02:05", model.FormatDuration(info.Duration))

	videoAudio, audioOnly := fetch.Partition(formats)
	require.Len(t, videoAudio, 1)
	require.Len(t, audioOnly, 1)
	assert.Equal(t, "720p (mp4) - 4.8 MB", videoAudio[0].Label())

	scratch := newScratch(t)
	svc := NewService(extractor)
	task := startAndWait(t, svc, "https://youtube.com/watch?v=abc", videoAudio[0], scratch)

	require.NotNil(t, task.Result)
	assert.True(t, task.Result.OK)
	assert.Equal(t, SuccessMessage, task.Result.Message)
	require.Len(t, task.Result.Files, 1)
	assert.Equal(t, "Sample.mp4", task.Result.Files[0].Name)
	assert.Equal(t, int64(10), task.Result.Files[0].Size)

	data, err := scratch.ReadFile(task.Result.Files[0].Name)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))
}
