// Package fetch normalizes extractor output into the session records the UI
// renders. Renditions carrying a video track but no audio track are not
// surfaced in either bucket; the extractor classifies them and this service
// drops them, which mirrors the tool's long-standing behavior.
package fetch

import (
	"context"
	"fmt"

	"github.com/ytget/ytbuddy/internal/extract"
	"github.com/ytget/ytbuddy/internal/model"
)

// Defaults applied when the extractor reports nothing.
const (
	UnknownTitle    = "Unknown Title"
	UnknownUploader = "Unknown"
)

// Service fetches and normalizes video metadata.
type Service struct {
	extractor extract.Extractor
}

// NewService creates a new metadata fetch service.
func NewService(extractor extract.Extractor) *Service {
	return &Service{extractor: extractor}
}

// Fetch retrieves metadata for a URL without downloading any bytes. Any
// extractor failure is flattened into a single error and both results are
// nil; callers never see a partial VideoInfo.
func (s *Service) Fetch(ctx context.Context, videoURL string) (*model.VideoInfo, []model.FormatOption, error) {
	res, err := s.extractor.Info(ctx, videoURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching video info: %w", err)
	}

	info := &model.VideoInfo{
		Title:      res.Title,
		Duration:   res.Duration,
		Uploader:   res.Uploader,
		ViewCount:  res.ViewCount,
		UploadDate: res.UploadDate,
		Thumbnail:  res.Thumbnail,
	}
	if info.Title == "" {
		info.Title = UnknownTitle
	}
	if info.Uploader == "" {
		info.Uploader = UnknownUploader
	}

	formats := make([]model.FormatOption, 0, len(res.Formats))
	for _, f := range res.Formats {
		switch f.Kind {
		case model.KindVideoAudio, model.KindAudioOnly:
			formats = append(formats, f)
		}
	}

	return info, formats, nil
}

// Partition splits options into the two presentation buckets, preserving the
// extractor's ordering within each.
func Partition(formats []model.FormatOption) (videoAudio, audioOnly []model.FormatOption) {
	for _, f := range formats {
		switch f.Kind {
		case model.KindVideoAudio:
			videoAudio = append(videoAudio, f)
		case model.KindAudioOnly:
			audioOnly = append(audioOnly, f)
		}
	}
	return videoAudio, audioOnly
}
