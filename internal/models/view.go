// internal/models/view.go
package models

type BadgeTone string

const (
	BadgeToneSuccess BadgeTone = "success"
	BadgeToneWarning BadgeTone = "warning"
)

type Badge struct {
	Source DataSource `json:"source"`
	Label  string     `json:"label"`
	Tone   BadgeTone  `json:"tone"`
}

// MapAction is an external map lookup for a store address.
type MapAction struct {
	URL        string `json:"url"`
	Label      string `json:"label"`
	NewContext bool   `json:"newContext"`
}

// Detail is a collapsible section keyed by ID.
type Detail struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Card is one rendered store. Empty strings mean the line is omitted.
type Card struct {
	Title       string     `json:"title"`
	Address     string     `json:"address,omitempty"`
	MapAction   *MapAction `json:"mapAction,omitempty"`
	Contact     string     `json:"contact,omitempty"`
	Description string     `json:"description,omitempty"`
	Detail      *Detail    `json:"detail,omitempty"`
}

type ResultView struct {
	TotalCount int    `json:"totalCount"`
	Badge      *Badge `json:"badge,omitempty"`
	Cards      []Card `json:"cards"`
	Analysis   string `json:"analysis"`
}
