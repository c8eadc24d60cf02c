package types

import "fmt"

// Status tells a caller how a resolution ended.
type Status uint8

const (
	StatusFound Status = iota
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result carries the value of a resolution together with how it was obtained.
// Value always holds something renderable: on empty or failed outcomes it is
// the category's degraded value.
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

func Found[T any](v T) Result[T] {
	return Result[T]{Value: v, Status: StatusFound}
}

func Empty[T any](v T) Result[T] {
	return Result[T]{Value: v, Status: StatusEmpty}
}

func Failed[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Status: StatusFailed, Err: err}
}

func (r Result[T]) OK() bool {
	return r.Status == StatusFound
}
