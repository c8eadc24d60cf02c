package tool

import (
	"fmt"
	"net/url"

	"github.com/moyoez/portfolio-resolver/types"
)

// BuildRepositoryURL builds {api}/repos/{owner}/{repo}.
func BuildRepositoryURL(repo types.Repository) (string, error) {
	if repo.Owner == "" || repo.Name == "" {
		return "", fmt.Errorf("repository owner and name are required")
	}
	u, err := url.JoinPath(repo.APIBaseURL, "repos", repo.Owner, repo.Name)
	if err != nil {
		return "", fmt.Errorf("failed to build repository URL: %w", err)
	}
	return u, nil
}

// BuildContentsURL builds {api}/repos/{owner}/{repo}/contents/{path}.
func BuildContentsURL(repo types.Repository, path string) (string, error) {
	base, err := BuildRepositoryURL(repo)
	if err != nil {
		return "", err
	}
	u, err := url.JoinPath(base, "contents", path)
	if err != nil {
		return "", fmt.Errorf("failed to build contents URL for %q: %w", path, err)
	}
	return u, nil
}

// BuildRawURL builds the raw content URL {raw}/{owner}/{repo}/{branch}/{dir}/{name}.
func BuildRawURL(repo types.Repository, dir, name string) (string, error) {
	if repo.Owner == "" || repo.Name == "" {
		return "", fmt.Errorf("repository owner and name are required")
	}
	u, err := url.JoinPath(repo.RawBaseURL, repo.Owner, repo.Name, repo.Branch, dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to build raw URL for %q: %w", name, err)
	}
	return u, nil
}

// HostOf returns the host part of rawURL without the port.
func HostOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}
	return u.Hostname(), nil
}
