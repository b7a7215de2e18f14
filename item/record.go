package item

import "github.com/hupe1980/lootsort/core"

// Record is the flat per-entry payload handed to the display layer. The
// optional fields are present only when the matching setting is on.
type Record struct {
	DisplayName     string  `json:"displayName"`
	Count           int     `json:"count"`
	Stolen          bool    `json:"stolen"`
	Weight          float64 `json:"weight"`
	Value           int     `json:"value"`
	IconLabel       string  `json:"iconLabel"`
	Enchanted       *bool   `json:"enchanted,omitempty"`
	MuseumNew       *bool   `json:"dbmNew,omitempty"`
	MuseumFound     *bool   `json:"dbmFound,omitempty"`
	MuseumDisplayed *bool   `json:"dbmDisp,omitempty"`
	Read            *bool   `json:"isRead,omitempty"`
}

// Render builds the display record. Gated attributes are only derived when
// their setting asks for them.
func (e *Entry) Render(s core.Settings) Record {
	r := Record{
		DisplayName: e.DisplayName(),
		Count:       e.count,
		Stolen:      e.IsStolen(),
		Weight:      e.Weight(),
		Value:       e.Value(),
		IconLabel:   e.IconLabel(),
	}

	if s.ShowEnchanted {
		r.Enchanted = boolPtr(e.IsEnchanted())
	}
	if s.ShowMuseumNew {
		r.MuseumNew = boolPtr(e.IsMuseumNew())
	}
	if s.ShowMuseumFound {
		r.MuseumFound = boolPtr(e.IsMuseumFound())
	}
	if s.ShowMuseumDisplayed {
		r.MuseumDisplayed = boolPtr(e.IsMuseumDisplayed())
	}
	if s.ShowBookRead {
		r.Read = boolPtr(e.IsRead())
	}
	return r
}

func boolPtr(b bool) *bool { return &b }
