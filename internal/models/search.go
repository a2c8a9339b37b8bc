// internal/models/search.go
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// DataSource tells whether a result set came from the live open API or the sample fixture.
type DataSource string

const (
	DataSourceLive   DataSource = "LIVE"
	DataSourceSample DataSource = "SAMPLE"
)

// Wire values of the data_source field.
const (
	WireDataSourceLive   = "real_api"
	WireDataSourceSample = "sample"
)

// DataSourceFromWire maps the data_source field. Anything other than "real_api" is a sample.
func DataSourceFromWire(s string) DataSource {
	if s == WireDataSourceLive {
		return DataSourceLive
	}
	return DataSourceSample
}

func (d DataSource) Wire() string {
	if d == DataSourceLive {
		return WireDataSourceLive
	}
	return WireDataSourceSample
}

// Query is created once per submission and never mutated.
type Query struct {
	Keyword string `json:"keyword" form:"keyword"`
	Page    int    `json:"page" form:"page"`
}

// NewQuery trims the keyword and pins the page to 1. ok is false for a blank keyword.
func NewQuery(raw string) (q Query, ok bool) {
	kw := strings.TrimSpace(raw)
	if kw == "" {
		return Query{}, false
	}
	return Query{Keyword: kw, Page: 1}, true
}

type StoreInfo struct {
	Title          string `json:"title"`
	Address        string `json:"address,omitempty"`
	Contact        string `json:"contact,omitempty"`
	Description    string `json:"description,omitempty"`
	SubDescription string `json:"sub_description,omitempty"`
	Coordinates    string `json:"coordinates,omitempty"`
}

// SearchResult is a validated success payload. AIAnalysis is empty when absent.
type SearchResult struct {
	TotalCount int
	DataSource DataSource
	Stores     []StoreInfo
	AIAnalysis string
}

type Suggestion struct {
	Message  string   `json:"message"`
	Examples []string `json:"examples"`
}

type SearchError struct {
	Message    string
	Suggestion *Suggestion
}

// SearchResponse is the success body of POST /search.
type SearchResponse struct {
	Stores     []StoreInfo `json:"stores"`
	TotalCount int         `json:"total_count"`
	DataSource string      `json:"data_source"`
	AIAnalysis string      `json:"ai_analysis,omitempty"`
}

// ErrorResponse is the error body of POST /search and GET /stores/detail.
type ErrorResponse struct {
	Error      string      `json:"error"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

// UnmarshalJSON accepts total_count written as an integral float such as 2.0.
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	type plain SearchResponse
	aux := struct {
		*plain
		TotalCount json.Number `json:"total_count"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.TotalCount = 0
	if aux.TotalCount == "" {
		return nil
	}
	if n, err := aux.TotalCount.Int64(); err == nil {
		r.TotalCount = int(n)
		return nil
	}
	f, err := aux.TotalCount.Float64()
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("total_count %q is not an integer", aux.TotalCount.String())
	}
	r.TotalCount = int(f)
	return nil
}

func (r *SearchResponse) ToResult() *SearchResult {
	stores := r.Stores
	if stores == nil {
		stores = []StoreInfo{}
	}
	return &SearchResult{
		TotalCount: r.TotalCount,
		DataSource: DataSourceFromWire(r.DataSource),
		Stores:     stores,
		AIAnalysis: r.AIAnalysis,
	}
}

func NewSearchResponse(result *SearchResult) *SearchResponse {
	stores := result.Stores
	if stores == nil {
		stores = []StoreInfo{}
	}
	return &SearchResponse{
		Stores:     stores,
		TotalCount: result.TotalCount,
		DataSource: result.DataSource.Wire(),
		AIAnalysis: result.AIAnalysis,
	}
}
