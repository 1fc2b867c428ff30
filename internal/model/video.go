package model

import "fmt"

// FormatKind classifies a rendition by its track composition.
type FormatKind string

const (
	// KindVideoAudio is a muxed rendition with both video and audio tracks.
	KindVideoAudio FormatKind = "video+audio"

	// KindAudioOnly is a rendition carrying an audio track only.
	KindAudioOnly FormatKind = "audio-only"

	// KindVideoOnly is a rendition with a video track and no audio track.
	// Such renditions are not surfaced in either download bucket.
	KindVideoOnly FormatKind = "video-only"
)

// VideoInfo is an immutable snapshot of video metadata, created once per
// successful fetch and replaced wholesale by the next one.
type VideoInfo struct {
	Title      string
	Duration   int // seconds, 0 = unknown
	Uploader   string
	ViewCount  int64
	UploadDate string // opaque string as reported by the extractor
	Thumbnail  string // URL, may be empty
}

// FormatOption is one downloadable rendition. ID is an opaque token
// meaningful only to the extraction library.
type FormatOption struct {
	ID       string
	Quality  string
	Ext      string
	FileSize int64 // bytes, 0 = unknown
	Kind     FormatKind
}

// Label renders the option the way the format picker shows it.
func (f FormatOption) Label() string {
	return fmt.Sprintf("%s (%s) - %s", f.Quality, f.Ext, FormatFileSize(f.FileSize))
}

// FileEntry describes one file produced in the scratch directory.
type FileEntry struct {
	Name string
	Path string
	Size int64
}

// DownloadResult reports the outcome of a download action. On success Files
// lists everything found in the scratch directory, sidecars included.
type DownloadResult struct {
	OK      bool
	Message string
	Files   []FileEntry
}
