package domain

import (
	"fmt"
	"strings"
)

type DocumentKind string

const (
	KindAnnual  DocumentKind = "annual"
	KindMonthly DocumentKind = "monthly"
	KindWeekly  DocumentKind = "weekly"
)

// DocumentKinds is the canonical ordering of supported document kinds.
var DocumentKinds = []DocumentKind{KindAnnual, KindMonthly, KindWeekly}

var kindLabels = map[DocumentKind]string{
	KindAnnual:  "年間指導計画",
	KindMonthly: "月間指導計画",
	KindWeekly:  "週案",
}

// Label returns the Japanese document name used in titles and file names.
func (k DocumentKind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k DocumentKind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// ParseDocumentKind accepts either the English id or the Japanese label.
func ParseDocumentKind(s string) (DocumentKind, error) {
	s = strings.TrimSpace(s)
	for k, label := range kindLabels {
		if strings.EqualFold(s, string(k)) || s == label {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown document kind %q (want annual|monthly|weekly)", s)
}

type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
)

func (o Orientation) Label() string {
	switch o {
	case Landscape:
		return "横"
	case Portrait:
		return "縦"
	}
	return string(o)
}

func (o Orientation) Valid() bool {
	return o == Landscape || o == Portrait
}

// ParseOrientation accepts "landscape"/"portrait" or 横/縦.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "landscape", "横":
		return Landscape, nil
	case "portrait", "縦":
		return Portrait, nil
	}
	return "", fmt.Errorf("unknown orientation %q (want landscape|portrait)", s)
}
