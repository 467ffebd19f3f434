package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileTypeVideo   = 1
	FileTypeAudio   = 2
	FileTypeImage   = 6
	FileTypeUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp4", ".webm", ".mov", ".mkv":
		return FileTypeVideo
	case ".mp3", ".wav", ".ogg", ".m4a":
		return FileTypeAudio
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return FileTypeImage
	default:
		return FileTypeUnknown
	}
}
