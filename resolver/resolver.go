package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/log"

	"github.com/moyoez/portfolio-resolver/remote"
	"github.com/moyoez/portfolio-resolver/share"
	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotDirectory    = errors.New("category is not backed by a directory")
	ErrNoDownloadURL   = errors.New("entry has no download url")
)

// Resolver turns document categories into file descriptors. It keeps no state
// between calls apart from the optional listing cache.
type Resolver struct {
	repo   types.Repository
	client remote.Client
	cache  *share.ListingCache
	logger *log.Logger
}

type Option func(*Resolver)

// WithCache enables listing caching. A nil cache keeps it disabled.
func WithCache(cache *share.ListingCache) Option {
	return func(r *Resolver) {
		r.cache = cache
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func New(repo types.Repository, client remote.Client, opts ...Option) *Resolver {
	r := &Resolver{
		repo:   repo.WithDefaults(),
		client: client,
		logger: tool.DefaultLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Repository() types.Repository {
	return r.repo
}

// ResolveSingle returns the first matching file of a directory category in
// listing order. When nothing matches, or the lookup fails, Value is the
// category's fallback: the placeholder for resumes, nil otherwise.
func (r *Resolver) ResolveSingle(ctx context.Context, category types.Category) types.Result[*types.FileDescriptor] {
	spec, err := directorySpec(category)
	if err != nil {
		r.logger.Errorf("Error resolving %s: %v", category, err)
		return types.Failed[*types.FileDescriptor](nil, err)
	}
	matches, err := r.matches(ctx, spec, 1)
	if err != nil {
		r.logger.Errorf("Error loading %s from GitHub: %v", category, err)
		return types.Failed(fallback(spec), err)
	}
	if len(matches) == 0 {
		r.logger.Debugf("No %s file found in %s", category, spec.Dir)
		return types.Empty(fallback(spec))
	}
	return types.Found(&matches[0])
}

// ResolveMany returns every matching file of a directory category, keeping
// listing order. Value is never nil.
func (r *Resolver) ResolveMany(ctx context.Context, category types.Category) types.Result[[]types.FileDescriptor] {
	spec, err := directorySpec(category)
	if err != nil {
		r.logger.Errorf("Error resolving %s: %v", category, err)
		return types.Failed([]types.FileDescriptor{}, err)
	}
	matches, err := r.matches(ctx, spec, -1)
	if err != nil {
		r.logger.Errorf("Error loading %s from GitHub: %v", category, err)
		return types.Failed([]types.FileDescriptor{}, err)
	}
	if len(matches) == 0 {
		return types.Empty([]types.FileDescriptor{})
	}
	return types.Found(matches)
}

// ResolveProfile fetches profile.json metadata, then its raw content, and
// parses it as JSON.
func (r *Resolver) ResolveProfile(ctx context.Context) types.Result[any] {
	entry, err := r.client.GetEntry(ctx, types.ProfileFile)
	if err != nil {
		r.logger.Errorf("Error loading profile from GitHub: %v", err)
		return types.Failed[any](nil, err)
	}
	if entry.DownloadURL == "" {
		err = fmt.Errorf("%s: %w", types.ProfileFile, ErrNoDownloadURL)
		r.logger.Errorf("Error loading profile from GitHub: %v", err)
		return types.Failed[any](nil, err)
	}
	body, err := r.client.FetchRaw(ctx, entry.DownloadURL)
	if err != nil {
		r.logger.Errorf("Error loading profile from GitHub: %v", err)
		return types.Failed[any](nil, err)
	}
	var profile any
	if err := sonic.Unmarshal(body, &profile); err != nil {
		err = fmt.Errorf("failed to parse %s: %w", types.ProfileFile, err)
		r.logger.Errorf("Error loading profile from GitHub: %v", err)
		return types.Failed[any](nil, err)
	}
	if profile == nil {
		return types.Empty[any](nil)
	}
	return types.Found(profile)
}

// RepositoryInfo returns the repository metadata object.
func (r *Resolver) RepositoryInfo(ctx context.Context) types.Result[map[string]any] {
	info, err := r.client.Repository(ctx)
	if err != nil {
		r.logger.Errorf("Error loading repository info: %v", err)
		return types.Failed[map[string]any](nil, err)
	}
	return types.Found(info)
}

// matches lists spec.Dir and converts up to limit matching entries; limit < 0
// means all of them.
func (r *Resolver) matches(ctx context.Context, spec types.CategorySpec, limit int) ([]types.FileDescriptor, error) {
	entries, err := r.listing(ctx, spec.Dir)
	if err != nil {
		return nil, err
	}
	out := make([]types.FileDescriptor, 0)
	for _, e := range entries {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if !hasAllowedExtension(e.Name, spec.Extensions) {
			continue
		}
		d, err := r.describe(spec.Dir, e)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *Resolver) listing(ctx context.Context, dir string) ([]types.Entry, error) {
	if entries, ok := r.cache.Get(dir); ok {
		return entries, nil
	}
	entries, err := r.client.ListDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}
	r.cache.Set(dir, entries)
	return entries, nil
}

func (r *Resolver) describe(dir string, e types.Entry) (types.FileDescriptor, error) {
	viewURL, err := tool.BuildRawURL(r.repo, dir, e.Name)
	if err != nil {
		return types.FileDescriptor{}, err
	}
	return types.FileDescriptor{
		Name:        e.Name,
		ViewURL:     viewURL,
		MediaType:   ClassifyExtension(e.Name),
		DownloadURL: e.DownloadURL,
	}, nil
}

func directorySpec(category types.Category) (types.CategorySpec, error) {
	spec, ok := types.LookupCategory(category)
	if !ok {
		return types.CategorySpec{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if !spec.IsDirectory() {
		return types.CategorySpec{}, fmt.Errorf("%w: %q", ErrNotDirectory, category)
	}
	return spec, nil
}

func fallback(spec types.CategorySpec) *types.FileDescriptor {
	if spec.Fallback == nil {
		return nil
	}
	return spec.Fallback()
}
