package types

// FileDescriptor is one remote file in a form a panel can render.
type FileDescriptor struct {
	Name        string `json:"name"`
	ViewURL     string `json:"viewUrl"`
	MediaType   string `json:"mediaType"`
	DownloadURL string `json:"downloadUrl"`
}

// Entry is a single item of a GitHub contents API response.
// Directories come back with an empty DownloadURL.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	SHA         string `json:"sha,omitempty"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
}

// UnavailableURL marks a descriptor URL that points nowhere.
const UnavailableURL = "#"

// PlaceholderResume is returned in place of a resume that could not be resolved.
func PlaceholderResume() FileDescriptor {
	return FileDescriptor{
		Name:        "Resume.pdf",
		ViewURL:     UnavailableURL,
		MediaType:   MediaTypePDF,
		DownloadURL: UnavailableURL,
	}
}

// IsPlaceholder reports whether neither URL of d is usable.
func (d FileDescriptor) IsPlaceholder() bool {
	return d.ViewURL == UnavailableURL && d.DownloadURL == UnavailableURL
}
