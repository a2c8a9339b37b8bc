// internal/client/search-controller/transport.go
package searchcontroller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apphttp "bookcafe-search/internal/common/http"
	"bookcafe-search/internal/models"

	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	searchPath      = "/search"
	maxBodyBytes    = 4 << 20
)

var ErrResponseTooLarge = errors.New("RESPONSE_TOO_LARGE")

// HTTPTransport posts the query as a form to {endpoint}/search.
// HTTP status is not interpreted; whatever body comes back is returned.
type HTTPTransport struct {
	endpoint string
	client   *apphttp.Client
}

func NewHTTPTransport(config *Config) *HTTPTransport {
	return &HTTPTransport{
		endpoint: strings.TrimRight(config.Endpoint, "/"),
		client:   apphttp.NewClient(config.Timeout),
	}
}

func (t *HTTPTransport) Search(ctx context.Context, query models.Query) ([]byte, error) {
	form := url.Values{}
	form.Set("keyword", query.Keyword)
	form.Set("page", strconv.Itoa(query.Page))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+searchPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrResponseTooLarge, maxBodyBytes)
	}
	return body, nil
}
