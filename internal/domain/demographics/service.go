package demographics

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

func (s *Service) CreateRecord(ctx context.Context, clientID uuid.UUID, record assess.Record) (*Profile, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client_id is required")
	}
	if record == nil {
		record = assess.Record{}
	}
	p := &Profile{ClientID: clientID, Context: record}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// GetForm loads a record and maps its context to the demographics form.
func (s *Service) GetForm(ctx context.Context, id uuid.UUID) (*MapResult, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("record not found: %w", err)
	}
	result := s.mapper.MapContextToForm(p.Context)
	return &result, nil
}

// SubmitForm maps an edited form back to a context record and replaces
// the stored context.
func (s *Service) SubmitForm(ctx context.Context, id uuid.UUID, form *Form) (*Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("record not found: %w", err)
	}
	p.Context = s.mapper.MapFormToContext(form)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Export(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("record not found: %w", err)
	}
	exported := assess.ExportJSON(p.Context)
	if exported == "" {
		return "", fmt.Errorf("export record %s: context not serializable", id)
	}
	return exported, nil
}

func (s *Service) Import(ctx context.Context, clientID uuid.UUID, data string) (*Profile, error) {
	record := assess.ImportJSON(data)
	if record == nil {
		return nil, fmt.Errorf("invalid record JSON")
	}
	return s.CreateRecord(ctx, clientID, record)
}

func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListRecords(ctx context.Context, limit, offset int) ([]*Profile, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListRecordsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*Profile, int, error) {
	return s.repo.ListByClient(ctx, clientID, limit, offset)
}
