package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/alexanderramin/hoikuplan/internal/repository"
	"github.com/alexanderramin/hoikuplan/internal/xlsx"
)

type exportService struct {
	forms    FormService
	observer UseCaseObserver
}

func NewExportService(forms FormService, observers ...UseCaseObserver) ExportService {
	return &exportService{forms: forms, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, spec domain.DocumentSpec, values domain.FieldValues) (out *Export, err error) {
	fields := map[string]any{"kind": string(spec.Kind), "age_group": spec.AgeGroup}
	defer observe(ctx, s.observer, "export", time.Now().UTC(), &err, fields)

	plan, err := layout.Render(spec, values)
	if err != nil {
		return nil, err
	}
	data, err := xlsx.Serialize(plan)
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	out = &Export{FileName: layout.FileName(spec), Data: data, Plan: plan}
	fields["file"] = out.FileName
	fields["bytes"] = len(data)
	if unused, uerr := layout.UnusedKeys(spec, values); uerr == nil && len(unused) > 0 {
		fields["unused_keys"] = len(unused)
	}
	return out, nil
}

func (s *exportService) ExportLatest(ctx context.Context, userID string, spec domain.DocumentSpec) (*Export, error) {
	values, err := s.forms.Load(ctx, userID, spec.Kind)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		values = domain.FieldValues{}
	case err != nil:
		return nil, err
	}
	return s.Export(ctx, spec, values)
}
