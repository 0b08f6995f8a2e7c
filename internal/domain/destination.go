package domain

import "strings"

// Destination is a bookable location that belongs to exactly one continent.
type Destination struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Highlights  string  `json:"highlights"`
	ContinentID int     `json:"continent_id"`
	Featured    bool    `json:"featured"`
}

// HighlightList splits the stored comma-separated highlights.
func (d Destination) HighlightList() []string {
	parts := strings.Split(d.Highlights, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
