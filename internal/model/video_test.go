package model

import "testing"

func TestFormatOption_Label(t *testing.T) {
	tests := []struct {
		name     string
		option   FormatOption
		expected string
	}{
		{
			name:     "video with known size",
			option:   FormatOption{Quality: "720p", Ext: "mp4", FileSize: 5000000, Kind: KindVideoAudio},
			expected: "720p (mp4) - 4.8 MB",
		},
		{
			name:     "audio with known size",
			option:   FormatOption{Quality: "128kbps", Ext: "m4a", FileSize: 2048, Kind: KindAudioOnly},
			expected: "128kbps (m4a) - 2.0 KB",
		},
		{
			name:     "unknown size",
			option:   FormatOption{Quality: "360p", Ext: "mp4", FileSize: 0, Kind: KindVideoAudio},
			expected: "360p (mp4) - Unknown size",
		},
	}

	for _, test := range tests {
		result := test.option.Label()
		if result != test.expected {
			t.Errorf("%s: Label() = %q, expected %q", test.name, result, test.expected)
		}
	}
}
