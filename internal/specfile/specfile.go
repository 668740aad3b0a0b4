// Package specfile reads and writes document specs as TOML.
package specfile

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
)

// Document is the serialized shape of a document spec, shared by TOML spec
// files and JSON request bodies.
type Document struct {
	Kind          string   `toml:"kind" json:"kind"`
	AgeGroup      string   `toml:"age_group" json:"age_group"`
	Period        string   `toml:"period,omitempty" json:"period,omitempty"`
	Orientation   string   `toml:"orientation,omitempty" json:"orientation,omitempty"`
	PeriodCount   int      `toml:"period_count,omitempty" json:"period_count,omitempty"`
	RowLabels     []string `toml:"row_labels,omitempty" json:"row_labels,omitempty"`
	SummaryLabels []string `toml:"summary_labels,omitempty" json:"summary_labels,omitempty"`
}

// Load reads a spec file from disk.
func Load(path string) (domain.DocumentSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.DocumentSpec{}, err
	}
	defer f.Close()

	spec, err := Decode(f)
	if err != nil {
		return domain.DocumentSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Decode parses a TOML spec. Unknown keys are rejected.
func Decode(r io.Reader) (domain.DocumentSpec, error) {
	var raw Document
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return domain.DocumentSpec{}, fmt.Errorf("parsing spec: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return domain.DocumentSpec{}, fmt.Errorf("parsing spec: unknown keys: %s", strings.Join(keys, ", "))
	}
	return raw.Spec()
}

// Spec resolves d into a validated DocumentSpec. Missing period_count and
// row_labels fall back to the defaults of the document kind.
func (d Document) Spec() (domain.DocumentSpec, error) {
	kind, err := domain.ParseDocumentKind(d.Kind)
	if err != nil {
		return domain.DocumentSpec{}, err
	}
	period, err := ParsePeriod(kind, d.Period)
	if err != nil {
		return domain.DocumentSpec{}, err
	}
	spec, err := layout.DefaultSpec(kind, strings.TrimSpace(d.AgeGroup), period)
	if err != nil {
		return domain.DocumentSpec{}, err
	}
	// Summary labels stay empty unless given so the profile owns them.
	spec.SummaryLabels = d.SummaryLabels

	if d.Orientation != "" {
		o, err := domain.ParseOrientation(d.Orientation)
		if err != nil {
			return domain.DocumentSpec{}, err
		}
		spec.Orientation = o
	}
	if d.PeriodCount != 0 {
		spec.PeriodCount = d.PeriodCount
	}
	if len(d.RowLabels) > 0 {
		spec.RowLabels = d.RowLabels
	}

	if err := layout.Validate(spec); err != nil {
		return domain.DocumentSpec{}, err
	}
	return spec, nil
}

// FromSpec is the inverse of Document.Spec.
func FromSpec(spec domain.DocumentSpec) Document {
	return Document{
		Kind:          string(spec.Kind),
		AgeGroup:      spec.AgeGroup,
		Period:        FormatPeriod(spec.Kind, spec.Period),
		Orientation:   string(spec.Orientation),
		PeriodCount:   spec.PeriodCount,
		RowLabels:     spec.RowLabels,
		SummaryLabels: spec.SummaryLabels,
	}
}

// Encode writes spec as TOML.
func Encode(w io.Writer, spec domain.DocumentSpec) error {
	raw := FromSpec(spec)
	if err := toml.NewEncoder(w).Encode(raw); err != nil {
		return fmt.Errorf("encoding spec: %w", err)
	}
	return nil
}

// Default returns the profile defaults for kind, summary labels included.
func Default(kind domain.DocumentKind, ageGroup string, period time.Time) (domain.DocumentSpec, error) {
	return layout.DefaultSpec(kind, ageGroup, period)
}

// ParsePeriod accepts YYYY-MM-DD, YYYY-MM or YYYY. A bare year is the
// fiscal year starting in April. An empty string is the zero time.
func ParsePeriod(kind domain.DocumentKind, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layoutStr := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layoutStr, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse("2006", s); err == nil {
		return t.AddDate(0, int(time.April)-1, 0), nil
	}
	return time.Time{}, fmt.Errorf("invalid period %q for %s document: want YYYY-MM-DD, YYYY-MM or YYYY", s, kind)
}

// FormatPeriod is the inverse of ParsePeriod for the precision each kind uses.
func FormatPeriod(kind domain.DocumentKind, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	switch kind {
	case domain.KindWeekly:
		return layout.WeekStart(t).Format("2006-01-02")
	case domain.KindAnnual:
		if t.Month() < time.April {
			return fmt.Sprintf("%d", t.Year()-1)
		}
		return t.Format("2006")
	default:
		return t.Format("2006-01")
	}
}
