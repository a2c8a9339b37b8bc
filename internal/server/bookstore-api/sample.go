// internal/server/bookstore-api/sample.go
package bookstoreapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "bookcafe-search/internal/common/errors"
	"bookcafe-search/internal/models"
)

//go:embed fixtures/bookstores.json
var sampleFixture []byte

// SampleSource serves an embedded fixture. Used when no API key is configured.
type SampleSource struct {
	stores    []models.StoreInfo
	numOfRows int
}

func NewSampleSource(numOfRows int) (*SampleSource, error) {
	var stores []models.StoreInfo
	if err := json.Unmarshal(sampleFixture, &stores); err != nil {
		return nil, fmt.Errorf("load sample fixture: %w", err)
	}
	return NewSampleSourceWith(stores, numOfRows), nil
}

func NewSampleSourceWith(stores []models.StoreInfo, numOfRows int) *SampleSource {
	if numOfRows <= 0 {
		numOfRows = DefaultNumOfRows
	}
	return &SampleSource{stores: stores, numOfRows: numOfRows}
}

func (s *SampleSource) DataSource() models.DataSource {
	return models.DataSourceSample
}

// Search matches keyword against title and address, case-insensitively.
func (s *SampleSource) Search(ctx context.Context, keyword string, page int) (*models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewProcessingFailedError(err)
	}

	needle := strings.ToLower(strings.TrimSpace(keyword))
	var matched []models.StoreInfo
	for _, store := range s.stores {
		if needle == "" ||
			strings.Contains(strings.ToLower(store.Title), needle) ||
			strings.Contains(strings.ToLower(store.Address), needle) {
			matched = append(matched, store)
		}
	}
	if len(matched) == 0 {
		return nil, apperrors.NewNoResultsError(keyword)
	}

	if page < 1 {
		page = 1
	}
	start := (page - 1) * s.numOfRows
	if start >= len(matched) {
		return nil, apperrors.NewNoResultsError(keyword)
	}
	end := start + s.numOfRows
	if end > len(matched) {
		end = len(matched)
	}

	return &models.SearchResult{
		TotalCount: len(matched),
		DataSource: models.DataSourceSample,
		Stores:     append([]models.StoreInfo(nil), matched[start:end]...),
	}, nil
}
