package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/alexanderramin/hoikuplan/internal/testutil"
	"github.com/alexanderramin/hoikuplan/internal/xlsx"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExportService_Export(t *testing.T) {
	forms, _ := newFormService(t, 0)
	svc := NewExportService(forms)
	spec := testutil.NewTestSpec()

	out, err := svc.Export(context.Background(), spec, domain.FieldValues{"ねらい_period1": "outdoor play"})
	require.NoError(t, err)

	assert.Equal(t, "2025年04月_1歳児_月間指導計画(横).xlsx", out.FileName)
	require.NotNil(t, out.Plan)
	require.NotEmpty(t, out.Data)

	body := out.Plan.BodyRows()
	require.Len(t, body, 3)
	assert.Equal(t, "outdoor play", body[0][1].Text)

	f := openWorkbook(t, out.Data)
	cell, err := excelize.CoordinatesToCellName(body[0][1].Col, body[0][1].Row)
	require.NoError(t, err)
	got, err := f.GetCellValue(xlsx.SheetName, cell)
	require.NoError(t, err)
	assert.Equal(t, "outdoor play", got)
}

func TestExportService_Export_ConfigurationError(t *testing.T) {
	forms, _ := newFormService(t, 0)
	svc := NewExportService(forms)

	out, err := svc.Export(context.Background(), testutil.NewTestSpec(testutil.WithPeriodCount(7)), nil)
	assert.Nil(t, out)
	assert.True(t, layout.IsConfigurationError(err))
}

func TestExportService_ExportLatest(t *testing.T) {
	forms, _ := newFormService(t, 0)
	svc := NewExportService(forms)
	ctx := context.Background()
	spec := testutil.NewTestSpec()

	_, err := forms.Save(ctx, "u1", domain.KindMonthly, domain.FieldValues{"環境構成_period2": "old"})
	require.NoError(t, err)
	_, err = forms.Save(ctx, "u1", domain.KindMonthly, domain.FieldValues{"環境構成_period2": "new"})
	require.NoError(t, err)

	out, err := svc.ExportLatest(ctx, "u1", spec)
	require.NoError(t, err)
	assert.Equal(t, "new", out.Plan.BodyRows()[2][2].Text)
}

func TestExportService_ExportLatest_NoSnapshotRendersEmptyForm(t *testing.T) {
	forms, _ := newFormService(t, 0)
	svc := NewExportService(forms)

	out, err := svc.ExportLatest(context.Background(), "nobody", testutil.NewTestSpec())
	require.NoError(t, err)
	for _, row := range out.Plan.BodyRows() {
		for _, c := range row[1:] {
			assert.Empty(t, c.Text)
		}
	}
}

func TestExportService_ExportLatest_InvalidUser(t *testing.T) {
	forms, _ := newFormService(t, 0)
	svc := NewExportService(forms)

	_, err := svc.ExportLatest(context.Background(), "", testutil.NewTestSpec())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
