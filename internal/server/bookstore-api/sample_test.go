package bookstoreapi

import (
	"context"
	"testing"

	"bookcafe-search/internal/common/config"
	apperrors "bookcafe-search/internal/common/errors"
	"bookcafe-search/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configFixture() config.BookstoreAPIConfig {
	return config.BookstoreAPIConfig{
		BaseURL:   "http://localhost/api",
		APIKey:    "k",
		NumOfRows: 25,
		Timeout:   1500,
		RPS:       2,
		Burst:     3,
	}
}

func TestSampleSource_EmbeddedFixtureLoads(t *testing.T) {
	source, err := NewSampleSource(10)
	require.NoError(t, err)

	result, err := source.Search(context.Background(), "부산", 1)

	require.NoError(t, err)
	assert.Equal(t, models.DataSourceSample, result.DataSource)
	assert.Equal(t, 2, result.TotalCount)
	for _, store := range result.Stores {
		assert.Contains(t, store.Address, "부산")
	}
}

func TestSampleSource_MatchesTitleCaseInsensitive(t *testing.T) {
	source := NewSampleSourceWith([]models.StoreInfo{
		{Title: "Book Cafe Seoul", Address: "서울"},
		{Title: "책방", Address: "대구"},
	}, 10)

	result, err := source.Search(context.Background(), "book cafe", 1)

	require.NoError(t, err)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, "Book Cafe Seoul", result.Stores[0].Title)
}

func TestSampleSource_NoMatch(t *testing.T) {
	source, err := NewSampleSource(10)
	require.NoError(t, err)

	_, err = source.Search(context.Background(), "화성", 1)

	stdErr, ok := err.(*apperrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNoResults, stdErr.Code)
	assert.Equal(t, "검색 결과가 없습니다.", stdErr.Message)
}

func TestSampleSource_Paging(t *testing.T) {
	stores := []models.StoreInfo{{Title: "a1"}, {Title: "a2"}, {Title: "a3"}}
	source := NewSampleSourceWith(stores, 2)

	first, err := source.Search(context.Background(), "a", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalCount)
	assert.Len(t, first.Stores, 2)

	second, err := source.Search(context.Background(), "a", 2)
	require.NoError(t, err)
	require.Len(t, second.Stores, 1)
	assert.Equal(t, "a3", second.Stores[0].Title)

	_, err = source.Search(context.Background(), "a", 3)
	assert.Error(t, err)
}

func TestSampleSource_CancelledContext(t *testing.T) {
	source := NewSampleSourceWith([]models.StoreInfo{{Title: "a"}}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Search(ctx, "a", 1)

	assert.Error(t, err)
}
