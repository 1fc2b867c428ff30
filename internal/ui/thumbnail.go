package ui

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"github.com/hashicorp/go-retryablehttp"
)

// Thumbnail fetch limits. Thumbnails are small; anything larger is refused
// rather than buffered.
const (
	ThumbnailRetryMax    = 2
	ThumbnailHTTPTimeout = 15 * time.Second
	ThumbnailMaxBytes    = 4 << 20
)

// ThumbnailLoader fetches thumbnail images over HTTP with retries.
type ThumbnailLoader struct {
	client *retryablehttp.Client
}

// NewThumbnailLoader creates a loader with conservative retry settings.
func NewThumbnailLoader() *ThumbnailLoader {
	client := retryablehttp.NewClient()
	client.RetryMax = ThumbnailRetryMax
	client.HTTPClient.Timeout = ThumbnailHTTPTimeout
	client.Logger = nil
	return &ThumbnailLoader{client: client}
}

// Load fetches the image at rawURL and wraps it as a Fyne resource.
func (l *ThumbnailLoader) Load(rawURL string) (fyne.Resource, error) {
	resp, err := l.client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetching thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail request returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, ThumbnailMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("reading thumbnail: %w", err)
	}

	return fyne.NewStaticResource("thumbnail", data), nil
}
