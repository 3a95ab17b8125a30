package adl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careassess/careassess/internal/platform/assess"
)

// -- Mock Repository --

type mockRepo struct {
	assessments map[uuid.UUID]*Assessment
}

func newMockRepo() *mockRepo {
	return &mockRepo{assessments: make(map[uuid.UUID]*Assessment)}
}

func (m *mockRepo) Create(_ context.Context, a *Assessment) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	m.assessments[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Assessment, error) {
	a, ok := m.assessments[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}

func (m *mockRepo) Update(_ context.Context, a *Assessment) error {
	if _, ok := m.assessments[a.ID]; !ok {
		return fmt.Errorf("not found")
	}
	a.UpdatedAt = time.Now()
	m.assessments[a.ID] = a
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.assessments, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Assessment, int, error) {
	var result []*Assessment
	for _, a := range m.assessments {
		result = append(result, a)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByClient(_ context.Context, clientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var result []*Assessment
	for _, a := range m.assessments {
		if a.ClientID == clientID {
			result = append(result, a)
		}
	}
	return result, len(result), nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, newTestMapper()), repo
}

// -- Tests --

func TestCreateAssessment_RequiresClientID(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CreateAssessment(context.Background(), uuid.Nil, assess.Record{}); err == nil {
		t.Fatal("expected error for missing client_id")
	}
}

func TestGetForm_MapsStoredContext(t *testing.T) {
	svc, _ := newTestService()
	a, err := svc.CreateAssessment(context.Background(), uuid.New(), assess.Record{
		"adl": map[string]interface{}{"bathing": "Modified Independent - uses shower chair"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.GetForm(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasData {
		t.Error("expected has_data=true")
	}
	if result.Form.Bathing.IndependenceLevel != LevelModifiedIndependent {
		t.Errorf("bathing level = %q", result.Form.Bathing.IndependenceLevel)
	}
}

func TestSubmitForm_ReplacesContext(t *testing.T) {
	svc, repo := newTestService()
	a, err := svc.CreateAssessment(context.Background(), uuid.New(), assess.Record{
		"adl": map[string]interface{}{"bathing": "unable"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	form := DefaultForm()
	form.Bathing.IndependenceLevel = LevelSupervision
	if _, err := svc.SubmitForm(context.Background(), a.ID, form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.assessments[a.ID]
	level := stored.Context.Section("activitiesOfDailyLiving").Section("bathing").String("independenceLevel")
	if level != LevelSupervision {
		t.Errorf("stored level = %q", level)
	}
}

func TestImport_MalformedJSON(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Import(context.Background(), uuid.New(), "not json"); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
