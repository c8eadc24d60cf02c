package resolver

import (
	"path"
	"slices"
	"strings"

	"github.com/moyoez/portfolio-resolver/types"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// ClassifyExtension maps a filename to a media type using only its extension.
// Unknown or missing extensions map to application/octet-stream.
func ClassifyExtension(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".pdf":
		return types.MediaTypePDF
	case ".doc":
		return types.MediaTypeMSWord
	case ".docx":
		return types.MediaTypeWordOpenXML
	case ".jpg", ".jpeg":
		return types.MediaTypeJPEG
	case ".png":
		return types.MediaTypePNG
	case ".gif":
		return types.MediaTypeGIF
	default:
		return types.MediaTypeBinary
	}
}

// DisplayName drops the final extension and turns underscores into spaces.
func DisplayName(filename string) string {
	name := filename
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 && !strings.ContainsRune(name[i+1:], '/') {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", " ")
}

func IsImage(filename string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(path.Ext(filename)))
}

func IsPDF(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

func hasAllowedExtension(name string, allowed []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range allowed {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
