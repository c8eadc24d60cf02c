package types

import "context"

// ResolverInterface is what the API needs from a resolver.
type ResolverInterface interface {
	ResolveSingle(ctx context.Context, category Category) Result[*FileDescriptor]
	ResolveMany(ctx context.Context, category Category) Result[[]FileDescriptor]
	ResolveProfile(ctx context.Context) Result[any]
	RepositoryInfo(ctx context.Context) Result[map[string]any]
}
