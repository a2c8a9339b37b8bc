// internal/server/bookstore-api/live.go
package bookstoreapi

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "bookcafe-search/internal/common/errors"
	apphttp "bookcafe-search/internal/common/http"
	"bookcafe-search/internal/common/observability"
	"bookcafe-search/internal/models"

	"golang.org/x/time/rate"
)

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// LiveSource queries the KCISA bookstore-with-cafe open API.
// Failures are returned as *errors.StandardError carrying the user-facing message.
type LiveSource struct {
	config  *Config
	client  *apphttp.Client
	limiter *rate.Limiter
	obs     *observability.Observability
	logger  Logger
}

func NewLiveSource(config *Config, obs *observability.Observability, log Logger) *LiveSource {
	limit := rate.Inf
	if config.RPS > 0 {
		limit = rate.Limit(config.RPS)
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}

	return &LiveSource{
		config:  config,
		client:  apphttp.NewClient(config.Timeout),
		limiter: rate.NewLimiter(limit, burst),
		obs:     obs,
		logger:  log,
	}
}

func (s *LiveSource) DataSource() models.DataSource {
	return models.DataSourceLive
}

func (s *LiveSource) Search(ctx context.Context, keyword string, page int) (*models.SearchResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NewUpstreamUnavailableError(fmt.Errorf("rate limiter: %w", err))
	}

	start := time.Now()
	raw, err := s.fetch(ctx, keyword, page)
	if err != nil {
		s.obs.RecordCall(ctx, "unavailable", time.Since(start))
		s.logger.Warn("bookstore api unreachable", map[string]interface{}{
			"keyword": keyword,
			"error":   err,
		})
		return nil, apperrors.NewUpstreamUnavailableError(err)
	}

	result, err := parseResponse(raw, keyword)
	if err != nil {
		s.obs.RecordCall(ctx, "error", time.Since(start))
		return nil, err
	}

	s.obs.RecordCall(ctx, "ok", time.Since(start))
	s.logger.Debug("bookstore api answered", map[string]interface{}{
		"keyword":    keyword,
		"totalCount": result.TotalCount,
		"stores":     len(result.Stores),
	})
	return result, nil
}

func (s *LiveSource) fetch(ctx context.Context, keyword string, page int) ([]byte, error) {
	params := url.Values{}
	params.Set("serviceKey", s.config.APIKey)
	params.Set("numOfRows", strconv.Itoa(s.config.NumOfRows))
	params.Set("pageNo", strconv.Itoa(page))
	if keyword != "" {
		params.Set("keyword", keyword)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// parseResponse turns an open API XML document into a result or a StandardError.
func parseResponse(raw []byte, keyword string) (*models.SearchResult, error) {
	var doc apiResponse
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.NewProcessingFailedError(fmt.Errorf("decode xml: %w", err))
	}
	if doc.XMLName.Local != "response" {
		return nil, apperrors.NewUpstreamFormatError(fmt.Sprintf("root element <%s>", doc.XMLName.Local))
	}

	if doc.Header.ResultCode != resultCodeOK {
		return nil, apperrors.NewUpstreamAPIError(doc.Header.ResultCode, doc.Header.ResultMsg)
	}

	if doc.Body == nil {
		return nil, apperrors.NewNoResultsError(keyword)
	}

	totalCount := 0
	if tc := strings.TrimSpace(doc.Body.TotalCount); tc != "" {
		n, err := strconv.Atoi(tc)
		if err != nil {
			return nil, apperrors.NewProcessingFailedError(fmt.Errorf("invalid totalCount %q", tc))
		}
		totalCount = n
	}
	if totalCount == 0 || doc.Body.Items == nil || len(doc.Body.Items.Item) == 0 {
		return nil, apperrors.NewNoResultsError(keyword)
	}

	stores := make([]models.StoreInfo, 0, len(doc.Body.Items.Item))
	for _, item := range doc.Body.Items.Item {
		stores = append(stores, item.toStoreInfo())
	}

	return &models.SearchResult{
		TotalCount: totalCount,
		DataSource: models.DataSourceLive,
		Stores:     stores,
	}, nil
}
