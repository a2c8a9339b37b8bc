// internal/client/search-controller/models.go
package searchcontroller

import (
	"context"

	"bookcafe-search/internal/models"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseResults Phase = "results"
)

// State is a snapshot of what the controller last pushed to the surface.
type State struct {
	Phase  Phase
	Seq    uint64
	Query  *models.Query
	Error  *models.SearchError
	Result *models.SearchResult
	View   *models.ResultView
}

// Surface is the rendering target. Calls arrive one at a time, in order.
type Surface interface {
	SetLoading(loading bool)
	SetError(message string, suggestion *models.Suggestion)
	ClearError()
	SetResults(view *models.ResultView)
	ClearResults()
}

// Transport delivers one query and returns the raw response body.
// It reports only delivery failures; the body is interpreted by the controller.
type Transport interface {
	Search(ctx context.Context, query models.Query) ([]byte, error)
}

type Renderer interface {
	Render(result *models.SearchResult) *models.ResultView
}

// envelope is decoded first to tell the error shape from the success shape.
type envelope struct {
	Error      string             `json:"error"`
	Suggestion *models.Suggestion `json:"suggestion"`
}

// settlement is the interpreted outcome of one request.
type settlement struct {
	result *models.SearchResult
	err    *models.SearchError
	label  string
}

const (
	outcomeResults         = "results"
	outcomeServerError     = "server_error"
	outcomeTransportError  = "transport_error"
	outcomeValidationError = "validation_error"
)
