package extract

import (
	"context"
	"fmt"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytbuddy/internal/model"
)

// ThumbnailURLTemplate builds a thumbnail location from a video ID.
const ThumbnailURLTemplate = "https://i.ytimg.com/vi/%s/hqdefault.jpg"

// Extractor is the extraction capability this app is built around.
type Extractor interface {
	// Info fetches metadata and the rendition list for a URL. No bytes are
	// downloaded.
	Info(ctx context.Context, videoURL string) (*Result, error)

	// Fetch downloads exactly one rendition, identified by its opaque format
	// ID, into destDir. Playlist expansion never happens: a single URL
	// resolves to a single video.
	Fetch(ctx context.Context, videoURL, formatID, destDir string) error
}

// Result is the raw extractor output before normalization. String fields may
// be empty and numeric fields zero when the library does not report them.
type Result struct {
	Title      string
	Duration   int
	Uploader   string
	ViewCount  int64
	UploadDate string
	Thumbnail  string
	Formats    []model.FormatOption
}

// YTDLP implements Extractor on top of github.com/ytget/ytdlp/v2.
type YTDLP struct{}

// NewYTDLP creates a ytdlp-backed extractor.
func NewYTDLP() *YTDLP {
	return &YTDLP{}
}

// Info resolves the video without downloading and maps the library's format
// list into classified options. Renditions the library reports are kept in
// its native order.
func (e *YTDLP) Info(ctx context.Context, videoURL string) (*Result, error) {
	d := ytdlp.New()

	_, info, err := d.ResolveURL(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Title:    info.Title,
		Duration: info.Duration,
		Uploader: info.Author,
	}
	if info.ID != "" {
		res.Thumbnail = fmt.Sprintf(ThumbnailURLTemplate, info.ID)
	}

	res.Formats = make([]model.FormatOption, 0, len(info.Formats))
	for _, f := range info.Formats {
		res.Formats = append(res.Formats, OptionFromFormat(f))
	}

	return res, nil
}

// Fetch downloads the chosen rendition into destDir. The library derives the
// filename from the video title and the rendition's container.
func (e *YTDLP) Fetch(ctx context.Context, videoURL, formatID, destDir string) error {
	d := ytdlp.New().
		WithFormat("itag="+formatID, "").
		WithOutputPath(destDir)

	if _, err := d.Download(ctx, videoURL); err != nil {
		return err
	}
	return nil
}
