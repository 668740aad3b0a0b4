package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentKind(t *testing.T) {
	cases := map[string]DocumentKind{
		"monthly":  KindMonthly,
		"Monthly":  KindMonthly,
		" Weekly ": KindWeekly,
		"年間指導計画":   KindAnnual,
		"週案":       KindWeekly,
	}
	for in, want := range cases {
		got, err := ParseDocumentKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDocumentKind("daily")
	assert.Error(t, err)
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("横")
	require.NoError(t, err)
	assert.Equal(t, Landscape, o)

	o, err = ParseOrientation("PORTRAIT")
	require.NoError(t, err)
	assert.Equal(t, Portrait, o)

	assert.Equal(t, "縦", Portrait.Label())

	for _, bad := range []string{"square", "diagonal"} {
		_, err = ParseOrientation(bad)
		assert.Error(t, err, bad)
	}
}

func TestDocumentKind_Label(t *testing.T) {
	assert.Equal(t, "月間指導計画", KindMonthly.Label())
	assert.Equal(t, "other", DocumentKind("other").Label())
	assert.False(t, DocumentKind("other").Valid())
}
