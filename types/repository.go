package types

const (
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultRawBaseURL = "https://raw.githubusercontent.com"
	DefaultBranch     = "main"
)

// Repository identifies the remote repository holding the portfolio files.
type Repository struct {
	Owner      string `yaml:"owner"`
	Name       string `yaml:"name"`
	Branch     string `yaml:"branch"`
	APIBaseURL string `yaml:"apiBaseUrl"`
	RawBaseURL string `yaml:"rawBaseUrl"`
}

// WithDefaults fills unset URLs and branch.
func (r Repository) WithDefaults() Repository {
	if r.Branch == "" {
		r.Branch = DefaultBranch
	}
	if r.APIBaseURL == "" {
		r.APIBaseURL = DefaultAPIBaseURL
	}
	if r.RawBaseURL == "" {
		r.RawBaseURL = DefaultRawBaseURL
	}
	return r
}
