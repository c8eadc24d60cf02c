package models

import (
	"net/http"

	"github.com/moyoez/portfolio-resolver/resolver"
	"github.com/moyoez/portfolio-resolver/types"
)

// FileView is a descriptor plus the presentation hints panels need.
type FileView struct {
	types.FileDescriptor
	DisplayName string `json:"displayName"`
	IsImage     bool   `json:"isImage"`
	IsPDF       bool   `json:"isPdf"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

func NewFileView(d types.FileDescriptor) FileView {
	return FileView{
		FileDescriptor: d,
		DisplayName:    resolver.DisplayName(d.Name),
		IsImage:        resolver.IsImage(d.Name),
		IsPDF:          resolver.IsPDF(d.Name),
		Placeholder:    d.IsPlaceholder(),
	}
}

func NewFileViews(ds []types.FileDescriptor) []FileView {
	views := make([]FileView, len(ds))
	for i, d := range ds {
		views[i] = NewFileView(d)
	}
	return views
}

// Envelope is the body of every resolution endpoint.
type Envelope struct {
	Status types.Status `json:"status"`
	Data   any          `json:"data"`
	Error  string       `json:"error,omitempty"`
}

// NewEnvelope wraps data with the outcome of r. Failed outcomes still carry
// their degraded data.
func NewEnvelope[T any](r types.Result[T], data any) (int, Envelope) {
	env := Envelope{Status: r.Status, Data: data}
	if r.Err != nil {
		env.Error = r.Err.Error()
	}
	return HTTPStatus(r.Status), env
}

func HTTPStatus(s types.Status) int {
	if s == types.StatusFailed {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FastReturnError(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
