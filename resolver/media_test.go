package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moyoez/portfolio-resolver/types"
)

func TestClassifyExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"upper pdf", "Report.PDF", types.MediaTypePDF},
		{"lower pdf", "report.pdf", types.MediaTypePDF},
		{"doc", "letter.doc", types.MediaTypeMSWord},
		{"docx", "Letter.DocX", types.MediaTypeWordOpenXML},
		{"jpeg", "photo.JPEG", types.MediaTypeJPEG},
		{"jpg", "photo.jpg", types.MediaTypeJPEG},
		{"png", "badge.png", types.MediaTypePNG},
		{"gif", "anim.GIF", types.MediaTypeGIF},
		{"no extension", "notes", types.MediaTypeBinary},
		{"bare extension word", "pdf", types.MediaTypeBinary},
		{"trailing dot", "file.", types.MediaTypeBinary},
		{"unknown", "archive.tar.gz", types.MediaTypeBinary},
		{"empty", "", types.MediaTypeBinary},
		{"only last extension counts", "scan.pdf.txt", types.MediaTypeBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyExtension(tt.filename))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"My_Certificate.pdf", "My Certificate"},
		{"file.tar.gz", "file.tar"},
		{"notes", "notes"},
		{"a_b_c", "a b c"},
		{"file.", "file."},
		{".hidden", ""},
		{"dir.v2/readme", "dir.v2/readme"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.filename))
		})
	}
}

func TestIsImageAndIsPDF(t *testing.T) {
	assert.True(t, IsImage("a.PNG"))
	assert.True(t, IsImage("a.jpeg"))
	assert.False(t, IsImage("a.pdf"))
	assert.False(t, IsImage("png"))

	assert.True(t, IsPDF("cv.Pdf"))
	assert.False(t, IsPDF("cv.docx"))
}
