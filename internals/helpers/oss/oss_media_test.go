package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaSlotByExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"profil-desa.MP4", "media/video"},
		{"rekaman.mkv", "media/video"},
		{"pengumuman.mp3", "media/audio"},
		{"wawancara.WAV", "media/audio"},
		{"lampiran.pdf", "media"},
		{"tanpa-ekstensi", "media"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mediaSlot(tc.filename), tc.filename)
	}
}
