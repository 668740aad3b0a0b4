package domain

import "time"

// DocumentSpec describes one plan document to render. It is the explicit
// per-session configuration handed to the layout engine.
type DocumentSpec struct {
	Kind        DocumentKind
	AgeGroup    string
	Period      time.Time // month (monthly), fiscal-year start (annual) or week start (weekly)
	Orientation Orientation
	PeriodCount int

	// RowLabels are the body-band item names, in display order.
	RowLabels []string

	// SummaryLabels override the profile's summary block labels when non-empty.
	SummaryLabels []string
}

// Clone returns a deep copy so callers can adjust labels without aliasing.
func (s DocumentSpec) Clone() DocumentSpec {
	c := s
	c.RowLabels = append([]string(nil), s.RowLabels...)
	c.SummaryLabels = append([]string(nil), s.SummaryLabels...)
	return c
}
