// internal/client/result-renderer/renderer.go
package resultrenderer

import (
	"net/url"
	"strings"

	"bookcafe-search/internal/models"
)

// Renderer projects a SearchResult into a ResultView. It holds no per-search state.
type Renderer struct {
	config *Config
}

func NewRenderer(config *Config) *Renderer {
	if config == nil {
		config = LoadConfig()
	}
	if config.MapSearchBaseURL == "" {
		config.MapSearchBaseURL = DefaultMapSearchBaseURL
	}
	return &Renderer{config: config}
}

func (r *Renderer) Render(result *models.SearchResult) *models.ResultView {
	view := &models.ResultView{
		TotalCount: result.TotalCount,
		Cards:      make([]models.Card, 0, len(result.Stores)),
		Analysis:   result.AIAnalysis,
	}
	if view.Analysis == "" {
		view.Analysis = AnalysisPlaceholder
	}

	if r.config.ShowDataSourceBadge {
		view.Badge = badgeFor(result.DataSource)
	}

	slugs := newSlugger()
	for _, store := range result.Stores {
		view.Cards = append(view.Cards, r.card(store, slugs))
	}
	return view
}

func (r *Renderer) card(store models.StoreInfo, slugs *slugger) models.Card {
	card := models.Card{
		Title:       store.Title,
		Address:     store.Address,
		Contact:     store.Contact,
		Description: store.Description,
	}

	if store.Address != "" {
		card.MapAction = &models.MapAction{
			URL:        r.MapURL(store.Address),
			Label:      MapActionLabel,
			NewContext: true,
		}
	}

	if store.SubDescription != "" {
		card.Detail = &models.Detail{
			ID:   slugs.next(store.Title),
			Text: store.SubDescription,
		}
	}
	return card
}

func (r *Renderer) MapURL(address string) string {
	return r.config.MapSearchBaseURL + EncodeURIComponent(address)
}

func badgeFor(source models.DataSource) *models.Badge {
	if source == models.DataSourceLive {
		return &models.Badge{Source: source, Label: LiveBadgeLabel, Tone: models.BadgeToneSuccess}
	}
	return &models.Badge{Source: models.DataSourceSample, Label: SampleBadgeLabel, Tone: models.BadgeToneWarning}
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s the way browsers do for a single URI component.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
