package demographics

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
	records map[uuid.UUID]*Profile
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*Profile)}
}

func (m *mockRepo) Create(_ context.Context, p *Profile) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.records[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Profile, error) {
	p, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, p *Profile) error {
	if _, ok := m.records[p.ID]; !ok {
		return fmt.Errorf("not found")
	}
	p.UpdatedAt = time.Now()
	m.records[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Profile, int, error) {
	var result []*Profile
	for _, p := range m.records {
		result = append(result, p)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByClient(_ context.Context, clientID uuid.UUID, limit, offset int) ([]*Profile, int, error) {
	var result []*Profile
	for _, p := range m.records {
		if p.ClientID == clientID {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, newTestMapper()), repo
}

// -- Tests --

func TestCreateRecord_RequiresClientID(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CreateRecord(context.Background(), uuid.Nil, assess.Record{}); err == nil {
		t.Fatal("expected error for missing client_id")
	}
}

func TestGetForm_MapsStoredContext(t *testing.T) {
	svc, _ := newTestService()
	p, err := svc.CreateRecord(context.Background(), uuid.New(), assess.Record{
		"identity": map[string]interface{}{"name": "Ruth Okafor"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.GetForm(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasData {
		t.Error("expected has_data=true")
	}
	if result.Form.Name.Last != "Okafor" {
		t.Errorf("name = %+v", result.Form.Name)
	}
}

func TestSubmitForm_ReplacesContext(t *testing.T) {
	svc, repo := newTestService()
	p, err := svc.CreateRecord(context.Background(), uuid.New(), assess.Record{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	form := DefaultForm()
	form.Name = Name{First: "Ruth", Last: "Okafor"}
	if _, err := svc.SubmitForm(context.Background(), p.ID, form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.records[p.ID]
	if stored.Context.Section("identity").Section("name").String("last") != "Okafor" {
		t.Errorf("stored context = %v", stored.Context)
	}
}

func TestImport_MalformedJSON(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Import(context.Background(), uuid.New(), "[1, 2]"); err == nil {
		t.Fatal("expected error for non-object JSON")
	}
}
