// internal/client/terminal-surface/surface.go
package terminalsurface

import (
	"fmt"
	"io"
	"sync"

	"bookcafe-search/internal/models"

	"github.com/fatih/color"
)

const (
	loadingText      = "검색 중..."
	countFormat      = "검색 결과: %d개"
	suggestionTitle  = "💡 %s"
	analysisTitle    = "🤖 AI 분석"
	addressLabel     = "📍 주소: "
	contactLabel     = "📞 연락처: "
	descriptionLabel = "ℹ️ 설명: "
	detailLabel      = "🔍 상세정보: "
)

type Config struct {
	NoColor bool
}

// Surface prints view state changes to a terminal. A terminal cannot take back what it
// printed, so Clear* only update the visibility flags that later calls rely on.
type Surface struct {
	out io.Writer
	mu  sync.Mutex

	loading       bool
	errorVisible  bool
	resultVisible bool

	headerStyle  *color.Color
	successStyle *color.Color
	warningStyle *color.Color
	errorStyle   *color.Color
	linkStyle    *color.Color
	mutedStyle   *color.Color
}

func New(out io.Writer, config *Config) *Surface {
	s := &Surface{
		out:          out,
		headerStyle:  color.New(color.FgCyan, color.Bold),
		successStyle: color.New(color.FgGreen, color.Bold),
		warningStyle: color.New(color.FgYellow, color.Bold),
		errorStyle:   color.New(color.FgRed, color.Bold),
		linkStyle:    color.New(color.FgBlue, color.Underline),
		mutedStyle:   color.New(color.Faint),
	}
	if config != nil && config.NoColor {
		for _, c := range []*color.Color{s.headerStyle, s.successStyle, s.warningStyle, s.errorStyle, s.linkStyle, s.mutedStyle} {
			c.DisableColor()
		}
	}
	return s
}

func (s *Surface) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loading && !s.loading {
		s.mutedStyle.Fprintln(s.out, loadingText)
	}
	s.loading = loading
}

func (s *Surface) SetError(message string, suggestion *models.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorVisible = true

	s.errorStyle.Fprintln(s.out, message)
	if suggestion == nil {
		return
	}
	if suggestion.Message != "" {
		fmt.Fprintf(s.out, suggestionTitle+"\n", suggestion.Message)
	}
	for _, example := range suggestion.Examples {
		fmt.Fprintf(s.out, "  - %s\n", example)
	}
}

func (s *Surface) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorVisible = false
}

func (s *Surface) SetResults(view *models.ResultView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resultVisible = true

	if view.Badge != nil {
		style := s.warningStyle
		if view.Badge.Tone == models.BadgeToneSuccess {
			style = s.successStyle
		}
		style.Fprintf(s.out, "[%s]\n", view.Badge.Label)
	}

	s.headerStyle.Fprintf(s.out, countFormat+"\n", view.TotalCount)
	s.headerStyle.Fprintln(s.out, analysisTitle)
	fmt.Fprintln(s.out, view.Analysis)

	for i, card := range view.Cards {
		fmt.Fprintln(s.out)
		s.headerStyle.Fprintf(s.out, "%d. %s\n", i+1, card.Title)
		if card.Address != "" {
			fmt.Fprintf(s.out, "   %s%s\n", addressLabel, card.Address)
		}
		if card.MapAction != nil {
			fmt.Fprintf(s.out, "   %s: ", card.MapAction.Label)
			s.linkStyle.Fprintln(s.out, card.MapAction.URL)
		}
		if card.Contact != "" {
			fmt.Fprintf(s.out, "   %s%s\n", contactLabel, card.Contact)
		}
		if card.Description != "" {
			fmt.Fprintf(s.out, "   %s%s\n", descriptionLabel, card.Description)
		}
		if card.Detail != nil {
			s.mutedStyle.Fprintf(s.out, "   [%s] %s%s\n", card.Detail.ID, detailLabel, card.Detail.Text)
		}
	}
}

func (s *Surface) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resultVisible = false
}

// Visible reports which of the three views is currently shown.
func (s *Surface) Visible() (loading, errorShown, results bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.errorVisible, s.resultVisible
}
