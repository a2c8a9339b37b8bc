// internal/client/search-controller/controller.go
package searchcontroller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	resultrenderer "bookcafe-search/internal/client/result-renderer"
	apperrors "bookcafe-search/internal/common/errors"
	"bookcafe-search/internal/common/metrics"
	"bookcafe-search/internal/common/validation"
	"bookcafe-search/internal/models"
)

const (
	ComponentName = "search-controller"
)

var (
	ErrTransportFailed = errors.New("TRANSPORT_FAILED")
	ErrPayloadInvalid  = errors.New("PAYLOAD_INVALID")
)

var responseValidator = validation.MustValidator(validation.SearchResponseSchema)

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Controller owns the idle/loading/error/results lifecycle of one search view.
// Submissions and response application are serialized by mu; each request carries
// a sequence number and only the latest one may touch the surface.
type Controller struct {
	config     *Config
	transport  Transport
	surface    Surface
	renderer   Renderer
	errHandler *apperrors.ErrorHandler
	logger     Logger

	mu    sync.Mutex
	seq   uint64
	state State

	inflight sync.WaitGroup
}

func NewController(config *Config, transport Transport, surface Surface, log Logger) *Controller {
	if config == nil {
		config = LoadConfig()
	}
	return &Controller{
		config:    config,
		transport: transport,
		surface:   surface,
		renderer: resultrenderer.NewRenderer(&resultrenderer.Config{
			ShowDataSourceBadge: config.ShowDataSourceBadge,
		}),
		errHandler: apperrors.NewErrorHandler(log),
		logger:     log,
		state:      State{Phase: PhaseIdle},
	}
}

// Submit starts a search for rawKeyword. The returned channel is closed once the
// attempt has settled, either applied to the surface or discarded as stale.
func (c *Controller) Submit(ctx context.Context, rawKeyword string) <-chan struct{} {
	done := make(chan struct{})

	c.mu.Lock()
	c.seq++
	seq := c.seq

	query, ok := models.NewQuery(rawKeyword)
	if !ok {
		verr := apperrors.NewEmptyKeywordError()
		c.state = State{
			Phase: PhaseError,
			Seq:   seq,
			Error: &models.SearchError{Message: verr.Message},
		}
		c.surface.SetLoading(false)
		c.surface.ClearResults()
		c.surface.SetError(verr.Message, nil)
		c.mu.Unlock()

		metrics.SearchSubmissions.WithLabelValues(outcomeValidationError).Inc()
		c.logger.Debug("empty keyword rejected", map[string]interface{}{"seq": seq})
		close(done)
		return done
	}

	c.state = State{Phase: PhaseLoading, Seq: seq, Query: &query}
	c.surface.ClearError()
	c.surface.ClearResults()
	c.surface.SetLoading(true)
	c.inflight.Add(1)
	c.mu.Unlock()

	c.logger.Info("search submitted", map[string]interface{}{
		"seq":     seq,
		"keyword": query.Keyword,
	})

	go func() {
		defer c.inflight.Done()
		defer close(done)

		start := time.Now()
		body, err := c.transport.Search(ctx, query)
		metrics.SearchRequestDuration.Observe(time.Since(start).Seconds())

		c.apply(seq, query, c.interpret(seq, body, err))
	}()

	return done
}

// State returns a snapshot of the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until every issued request has settled.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) interpret(seq uint64, body []byte, err error) settlement {
	if err != nil {
		return c.fail(seq, fmt.Errorf("%w: %w", ErrTransportFailed, err), nil)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return c.fail(seq, fmt.Errorf("%w: decode body: %w", ErrPayloadInvalid, err), nil)
	}

	if env.Error != "" {
		return settlement{
			err:   &models.SearchError{Message: env.Error, Suggestion: env.Suggestion},
			label: outcomeServerError,
		}
	}

	check, err := responseValidator.ValidateBytes(body)
	if err != nil {
		return c.fail(seq, fmt.Errorf("%w: %w", ErrPayloadInvalid, err), nil)
	}
	if !check.Valid {
		return c.fail(seq, fmt.Errorf("%w: %s", ErrPayloadInvalid, strings.Join(check.GetErrorMessages(), "; ")),
			map[string]interface{}{
				"violations": len(check.Errors),
				"badStores":  check.HasErrors("stores"),
				"badCount":   check.HasErrors("total_count"),
			})
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return c.fail(seq, fmt.Errorf("%w: decode result: %w", ErrPayloadInvalid, err), nil)
	}

	return settlement{result: resp.ToResult(), label: outcomeResults}
}

// fail logs the cause and collapses it to the generic connection message.
func (c *Controller) fail(seq uint64, cause error, detail map[string]interface{}) settlement {
	var stdErr *apperrors.StandardError
	if errors.Is(cause, ErrPayloadInvalid) {
		stdErr = apperrors.NewPayloadInvalidError(cause.Error())
	} else {
		stdErr = apperrors.NewTransportFailedError(cause)
	}
	fields := map[string]interface{}{
		"component": ComponentName,
		"seq":       seq,
	}
	for k, v := range detail {
		fields[k] = v
	}
	c.errHandler.Handle(stdErr, fields)

	return settlement{
		err:   &models.SearchError{Message: stdErr.Message},
		label: outcomeTransportError,
	}
}

func (c *Controller) apply(seq uint64, query models.Query, s settlement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		metrics.SearchStaleResponses.Inc()
		c.logger.Debug("discarding stale response", map[string]interface{}{
			"seq":    seq,
			"latest": c.seq,
		})
		return
	}

	c.surface.SetLoading(false)

	if s.err != nil {
		c.state = State{Phase: PhaseError, Seq: seq, Query: &query, Error: s.err}
		c.surface.SetError(s.err.Message, s.err.Suggestion)
	} else {
		view := c.renderer.Render(s.result)
		c.state = State{Phase: PhaseResults, Seq: seq, Query: &query, Result: s.result, View: view}
		c.surface.SetResults(view)
	}

	metrics.SearchSubmissions.WithLabelValues(s.label).Inc()
}
