package adl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/careassess/careassess/internal/platform/assess"
)

type Service struct {
	repo   Repository
	mapper *Mapper
}

func NewService(repo Repository, mapper *Mapper) *Service {
	return &Service{repo: repo, mapper: mapper}
}

func (s *Service) CreateAssessment(ctx context.Context, clientID uuid.UUID, record assess.Record) (*Assessment, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client_id is required")
	}
	if record == nil {
		record = assess.Record{}
	}
	a := &Assessment{ClientID: clientID, Context: record}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

// GetForm loads an assessment and maps its context record to the ADL form.
func (s *Service) GetForm(ctx context.Context, id uuid.UUID) (*MapResult, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assessment not found: %w", err)
	}
	result := s.mapper.MapContextToForm(a.Context)
	return &result, nil
}

// SubmitForm maps an edited ADL form back to a context record and replaces
// the stored context.
func (s *Service) SubmitForm(ctx context.Context, id uuid.UUID, form *Form) (*Assessment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assessment not found: %w", err)
	}
	a.Context = s.mapper.MapFormToContext(form)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Export(ctx context.Context, id uuid.UUID) (string, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("assessment not found: %w", err)
	}
	exported := assess.ExportJSON(a.Context)
	if exported == "" {
		return "", fmt.Errorf("export assessment %s: context not serializable", id)
	}
	return exported, nil
}

func (s *Service) Import(ctx context.Context, clientID uuid.UUID, data string) (*Assessment, error) {
	record := assess.ImportJSON(data)
	if record == nil {
		return nil, fmt.Errorf("invalid assessment JSON")
	}
	return s.CreateAssessment(ctx, clientID, record)
}

func (s *Service) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAssessments(ctx context.Context, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListAssessmentsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.ListByClient(ctx, clientID, limit, offset)
}
