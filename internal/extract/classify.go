package extract

import (
	"strconv"
	"strings"

	"github.com/ytget/ytdlp/types"

	"github.com/ytget/ytbuddy/internal/model"
)

// Default container extensions when the MIME type gives no subtype.
const (
	DefaultVideoExt = "mp4"
	DefaultAudioExt = "mp3"
)

// Quality label suffixes and fallback.
const (
	VideoQualitySuffix = "p"
	AudioQualitySuffix = "kbps"
	UnknownQuality     = "Unknown"
)

// OptionFromFormat maps one library format into a classified FormatOption.
func OptionFromFormat(f types.Format) model.FormatOption {
	kind := ClassifyMime(f.MimeType)

	opt := model.FormatOption{
		ID:       strconv.Itoa(f.Itag),
		Ext:      extFromMime(f.MimeType, kind),
		FileSize: f.Size,
		Kind:     kind,
	}

	if kind == model.KindAudioOnly {
		opt.Quality = audioQualityLabel(f)
	} else {
		opt.Quality = videoQualityLabel(f)
	}
	return opt
}

// ClassifyMime buckets a rendition by its MIME type. A video MIME listing
// two codecs carries both tracks; a single codec means video only.
func ClassifyMime(mimeType string) model.FormatKind {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mt, "audio/"):
		return model.KindAudioOnly
	case strings.HasPrefix(mt, "video/") && len(parseCodecs(mt)) >= 2:
		return model.KindVideoAudio
	default:
		return model.KindVideoOnly
	}
}

// parseCodecs extracts the codec list from a MIME type like
// `video/mp4; codecs="avc1.42001E, mp4a.40.2"`.
func parseCodecs(mimeType string) []string {
	start := strings.Index(mimeType, `codecs="`)
	if start == -1 {
		return nil
	}
	rest := mimeType[start+len(`codecs="`):]
	end := strings.IndexByte(rest, '"')
	if end == -1 {
		return nil
	}

	var codecs []string
	for _, c := range strings.Split(rest[:end], ",") {
		if c = strings.TrimSpace(c); c != "" {
			codecs = append(codecs, c)
		}
	}
	return codecs
}

// extFromMime returns the MIME subtype as container extension, falling back
// to a kind-specific default.
func extFromMime(mimeType string, kind model.FormatKind) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if slash := strings.IndexByte(mt, '/'); slash != -1 {
		sub := mt[slash+1:]
		if semi := strings.IndexByte(sub, ';'); semi != -1 {
			sub = sub[:semi]
		}
		if sub = strings.TrimSpace(sub); sub != "" {
			return sub
		}
	}
	if kind == model.KindAudioOnly {
		return DefaultAudioExt
	}
	return DefaultVideoExt
}

// videoQualityLabel prefers the library's descriptive note and falls back to
// a numeric pixel height, suffixed "p" when purely numeric.
func videoQualityLabel(f types.Format) string {
	q := strings.TrimSpace(f.Quality)
	if q == "" {
		return UnknownQuality
	}
	if isDigits(q) {
		return q + VideoQualitySuffix
	}
	return q
}

// audioQualityLabel prefers the descriptive note, then the average bitrate,
// suffixed "kbps" when numeric.
func audioQualityLabel(f types.Format) string {
	q := strings.TrimSpace(f.Quality)
	if q != "" {
		if isDigits(q) {
			return q + AudioQualitySuffix
		}
		return q
	}
	if f.Bitrate > 0 {
		return strconv.Itoa(f.Bitrate/1000) + AudioQualitySuffix
	}
	return UnknownQuality
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
