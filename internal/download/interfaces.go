package download

import (
	"github.com/ytget/ytbuddy/internal/model"
	"github.com/ytget/ytbuddy/internal/platform"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))

	// Start begins downloading one rendition into the given scratch
	// directory. Only one task may be active at a time.
	Start(url string, format model.FormatOption, scratch *platform.Scratch) (*model.DownloadTask, error)

	// Current returns a snapshot of the most recent task, if any.
	Current() (model.DownloadTask, bool)
}
