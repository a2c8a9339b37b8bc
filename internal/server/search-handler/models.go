// internal/server/search-handler/models.go
package searchhandler

import (
	"context"
	"time"

	"bookcafe-search/internal/models"
)

// SearchRequest accepts both form and JSON bodies.
type SearchRequest struct {
	Keyword string `form:"keyword" json:"keyword"`
	Page    int    `form:"page,default=1" json:"page" validate:"min=1"`
}

// Source is a bookstore backend: the live open API or the sample fixture.
type Source interface {
	Search(ctx context.Context, keyword string, page int) (*models.SearchResult, error)
	DataSource() models.DataSource
}

// DetailCache is the subset of the Redis client used for store details.
// Get must return redis.Nil on a miss.
type DetailCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// DefaultSuggestion is attached to every source-side search failure.
func DefaultSuggestion() *models.Suggestion {
	return &models.Suggestion{
		Message: "더 간단한 키워드로 다시 시도해보세요.",
		Examples: []string{
			"'구로' (O), '구로구' (X)",
			"'강남' (O), '강남구' (X)",
			"'서울', '부산'과 같은 도시명",
		},
	}
}
