package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"golang.org/x/time/rate"

	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

const (
	AcceptHeader     = "application/vnd.github.v3+json"
	DefaultUserAgent = "Portfolio-App"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 16 << 20
)

// Client reads a repository through the GitHub contents API.
type Client interface {
	ListDirectory(ctx context.Context, dir string) ([]types.Entry, error)
	GetEntry(ctx context.Context, path string) (*types.Entry, error)
	FetchRaw(ctx context.Context, rawURL string) ([]byte, error)
	Repository(ctx context.Context) (map[string]any, error)
}

// StatusError is returned when the remote answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github request %s failed: %s", e.URL, e.Status)
}

type Options struct {
	HTTPClient *http.Client
	UserAgent  string
	// RequestsPerSecond limits outbound requests. Zero means unlimited.
	RequestsPerSecond float64
}

// ContentsClient is the HTTP implementation of Client. No credentials are
// ever attached to its requests.
type ContentsClient struct {
	repo      types.Repository
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
}

var _ Client = (*ContentsClient)(nil)

func NewContentsClient(repo types.Repository, opts Options) *ContentsClient {
	c := &ContentsClient{
		repo:      repo.WithDefaults(),
		http:      opts.HTTPClient,
		userAgent: opts.UserAgent,
		limiter:   rate.NewLimiter(rate.Inf, 0),
	}
	if c.http == nil {
		c.http = tool.NewHTTPClient(0)
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return c
}

// ListDirectory returns the entries of dir in the order the API lists them.
func (c *ContentsClient) ListDirectory(ctx context.Context, dir string) ([]types.Entry, error) {
	u, err := tool.BuildContentsURL(c.repo, dir)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, u, true)
	if err != nil {
		return nil, err
	}
	var entries []types.Entry
	if err := sonic.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse listing of %q: %w", dir, err)
	}
	return entries, nil
}

// GetEntry returns the metadata of a single file.
func (c *ContentsClient) GetEntry(ctx context.Context, path string) (*types.Entry, error) {
	u, err := tool.BuildContentsURL(c.repo, path)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, u, true)
	if err != nil {
		return nil, err
	}
	var entry types.Entry
	if err := sonic.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse entry %q: %w", path, err)
	}
	return &entry, nil
}

// FetchRaw downloads the body behind a download or raw URL.
func (c *ContentsClient) FetchRaw(ctx context.Context, rawURL string) ([]byte, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("raw URL is empty")
	}
	return c.get(ctx, rawURL, false)
}

// Repository returns the repository metadata object.
func (c *ContentsClient) Repository(ctx context.Context) (map[string]any, error) {
	u, err := tool.BuildRepositoryURL(c.repo)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, u, true)
	if err != nil {
		return nil, err
	}
	var info map[string]any
	if err := sonic.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse repository info: %w", err)
	}
	return info, nil
}

func (c *ContentsClient) get(ctx context.Context, u string, api bool) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if api {
		req.Header.Set("Accept", AcceptHeader)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: u}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", u, err)
	}
	return body, nil
}
