// internal/server/search-handler/handler.go
package searchhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apperrors "bookcafe-search/internal/common/errors"
	"bookcafe-search/internal/common/metrics"
	"bookcafe-search/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Handler serves POST /search and GET /stores/detail.
// Domain outcomes, errors included, are answered with 200 and an error body;
// only malformed requests get a 4xx.
type Handler struct {
	config     *Config
	source     Source
	cache      DetailCache
	validate   *validator.Validate
	errHandler *apperrors.ErrorHandler
	logger     Logger
}

// NewHandler builds a handler. cache may be nil, in which case details are never cached.
func NewHandler(config *Config, source Source, cache DetailCache, log Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	return &Handler{
		config:     config,
		source:     source,
		cache:      cache,
		validate:   validator.New(),
		errHandler: apperrors.NewErrorHandler(log),
		logger:     log,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/search", h.Search)
	r.GET("/stores/detail", h.StoreDetail)
}

// Search handles POST /search.
func (h *Handler) Search(c *gin.Context) {
	dataSource := h.source.DataSource().Wire()

	req := SearchRequest{Page: 1}
	if err := c.ShouldBind(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(c, err)
		return
	}

	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		metrics.EndpointSearches.WithLabelValues(dataSource, "empty_keyword").Inc()
		c.JSON(http.StatusOK, models.ErrorResponse{Error: apperrors.MsgEmptyKeyword})
		return
	}

	result, err := h.source.Search(c.Request.Context(), keyword, req.Page)
	if err != nil {
		stdErr := h.report(err, keyword)
		metrics.EndpointSearches.WithLabelValues(dataSource, strings.ToLower(string(stdErr.Code))).Inc()
		c.JSON(http.StatusOK, models.ErrorResponse{
			Error:      stdErr.Message,
			Suggestion: DefaultSuggestion(),
		})
		return
	}

	result.AIAnalysis = h.config.AIAnalysis
	metrics.EndpointSearches.WithLabelValues(dataSource, "results").Inc()
	h.logger.Info("search served", map[string]interface{}{
		"keyword":    keyword,
		"page":       req.Page,
		"totalCount": result.TotalCount,
		"stores":     len(result.Stores),
		"dataSource": dataSource,
	})
	c.JSON(http.StatusOK, models.NewSearchResponse(result))
}

// StoreDetail handles GET /stores/detail?title=, looking the store up by title and caching the first hit.
func (h *Handler) StoreDetail(c *gin.Context) {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: apperrors.MsgEmptyKeyword})
		return
	}

	ctx := c.Request.Context()
	key := h.config.DetailKeyPrefix + title

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, key)
		switch {
		case err == nil:
			var store models.StoreInfo
			if jsonErr := json.Unmarshal([]byte(cached), &store); jsonErr == nil {
				metrics.DetailCacheLookups.WithLabelValues("hit").Inc()
				c.JSON(http.StatusOK, store)
				return
			}
			h.logger.Warn("evicting corrupt cached detail", map[string]interface{}{"key": key})
			if delErr := h.cache.Del(ctx, key); delErr != nil {
				h.logger.Warn("detail cache evict failed", map[string]interface{}{"key": key, "error": delErr})
			}
		case errors.Is(err, redis.Nil):
		default:
			h.logger.Warn("detail cache read failed", map[string]interface{}{"key": key, "error": err})
		}
		metrics.DetailCacheLookups.WithLabelValues("miss").Inc()
	}

	result, err := h.source.Search(ctx, title, 1)
	if err != nil {
		stdErr := h.report(err, title)
		status := http.StatusNotFound
		if stdErr.Code != apperrors.ErrCodeNoResults {
			status = http.StatusBadGateway
		}
		c.JSON(status, models.ErrorResponse{Error: stdErr.Message})
		return
	}
	if len(result.Stores) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: apperrors.MsgNoResults})
		return
	}

	store := result.Stores[0]
	if h.cache != nil {
		if payload, err := json.Marshal(store); err == nil {
			if err := h.cache.Set(ctx, key, payload, h.config.DetailCacheTTL); err != nil {
				h.logger.Warn("detail cache write failed", map[string]interface{}{"key": key, "error": err})
			}
		}
	}
	c.JSON(http.StatusOK, store)
}

// report normalizes a source error. "No results" is an expected answer and is not logged as an error.
func (h *Handler) report(err error, keyword string) *apperrors.StandardError {
	stdErr := apperrors.Normalize(err)
	if stdErr.Code == apperrors.ErrCodeNoResults {
		h.logger.Info("no results", map[string]interface{}{"keyword": keyword})
		return stdErr
	}
	return h.errHandler.Handle(stdErr, map[string]interface{}{"keyword": keyword})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	stdErr := apperrors.NewInvalidRequestError(err.Error())
	h.logger.Debug("rejected search request", map[string]interface{}{"details": stdErr.Details})
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: stdErr.Message})
}
