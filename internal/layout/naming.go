package layout

import (
	"strings"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// FileName returns "{period}_{ageGroup}_{kind}({orientation}).xlsx", e.g.
// "2025年04月_1歳児_月間指導計画(横).xlsx".
func FileName(spec domain.DocumentSpec) string {
	stamp := "undated"
	if p, ok := ProfileFor(spec.Kind); ok && !spec.Period.IsZero() {
		stamp = p.fileStamp(spec.Period)
	}
	parts := []string{
		sanitizeName(stamp),
		sanitizeName(spec.AgeGroup),
		sanitizeName(spec.Kind.Label()) + "(" + sanitizeName(spec.Orientation.Label()) + ")",
	}
	return strings.Join(parts, "_") + ".xlsx"
}

var nameReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "\x00", "")

func sanitizeName(s string) string {
	return nameReplacer.Replace(strings.TrimSpace(s))
}
