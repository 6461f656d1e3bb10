package manage

import (
	"context"
	"errors"
	"testing"

	"github.com/beisbol/dugout/internal/backend"
)

// fakeTeams backs a teams manager with in-memory rows and call counters.
type fakeTeams struct {
	rows    []backend.Team
	nextID  int
	lists   int
	creates int
	removes int
}

func (f *fakeTeams) config() Config[backend.Team, int] {
	return Config[backend.Team, int]{
		List: func(ctx context.Context) ([]backend.Team, error) {
			f.lists++
			out := make([]backend.Team, len(f.rows))
			copy(out, f.rows)
			return out, nil
		},
		Create: func(ctx context.Context, draft backend.Team) (backend.Team, error) {
			f.creates++
			f.nextID++
			draft.ID = f.nextID
			f.rows = append(f.rows, draft)
			return draft, nil
		},
		Update: func(ctx context.Context, team backend.Team) (backend.Team, error) {
			for i, row := range f.rows {
				if row.ID == team.ID {
					f.rows[i] = team
				}
			}
			return team, nil
		},
		Remove: func(ctx context.Context, id int) error {
			f.removes++
			kept := f.rows[:0]
			for _, row := range f.rows {
				if row.ID != id {
					kept = append(kept, row)
				}
			}
			f.rows = kept
			return nil
		},
		Validate: func(t backend.Team) FieldErrors {
			fe := FieldErrors{}
			if t.Name == "" {
				fe.Add("name", "name is required")
			}
			if t.DTID == 0 {
				fe.Add("dtId", "technical director is required")
			}
			return fe
		},
		SearchText: func(t backend.Team) []string { return []string{t.Name, t.Initials} },
		Key:        func(t backend.Team) int { return t.ID },
	}
}

func TestSubmitCreateBlocksOnMissingFields(t *testing.T) {
	fake := &fakeTeams{}
	m := NewManager(fake.config())

	m.SetDraft(backend.Team{Initials: "ATL"})
	fe, err := m.SubmitCreate(context.Background())
	if err != nil {
		t.Fatalf("SubmitCreate: %v", err)
	}
	if len(fe["name"]) == 0 || len(fe["dtId"]) == 0 {
		t.Fatalf("field errors = %v, want name and dtId", fe)
	}
	if fake.creates != 0 || fake.lists != 0 {
		t.Errorf("network calls made despite field errors: creates=%d lists=%d", fake.creates, fake.lists)
	}

	// The rejected draft stays on the form for correction.
	if m.Draft().Initials != "ATL" {
		t.Errorf("draft cleared after rejected submit: %+v", m.Draft())
	}
}

func TestSubmitCreateRefetchesList(t *testing.T) {
	fake := &fakeTeams{}
	m := NewManager(fake.config())

	m.SetDraft(backend.Team{Name: "Atlanta", Initials: "ATL", DTID: 4})
	fe, err := m.SubmitCreate(context.Background())
	if err != nil {
		t.Fatalf("SubmitCreate: %v", err)
	}
	if len(fe) != 0 {
		t.Fatalf("unexpected field errors: %v", fe)
	}

	if fake.creates != 1 || fake.lists != 1 {
		t.Errorf("creates=%d lists=%d, want 1 and 1", fake.creates, fake.lists)
	}
	if len(m.Items()) != 1 || m.Items()[0].Name != "Atlanta" {
		t.Errorf("Items = %+v", m.Items())
	}
	if m.Draft().Name != "" {
		t.Errorf("draft not reset after create: %+v", m.Draft())
	}
}

func TestSubmitUpdateRequiresEditing(t *testing.T) {
	fake := &fakeTeams{}
	m := NewManager(fake.config())

	if _, err := m.SubmitUpdate(context.Background()); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("err = %v, want ErrNotEditing", err)
	}
}

func TestEditFlow(t *testing.T) {
	fake := &fakeTeams{rows: []backend.Team{{ID: 1, Name: "Atlanta", Initials: "ATL", DTID: 4}}, nextID: 1}
	m := NewManager(fake.config())
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	m.StartEdit(m.Items()[0])
	m.Editing().Name = "Atlanta Braves"

	fe, err := m.SubmitUpdate(context.Background())
	if err != nil || len(fe) != 0 {
		t.Fatalf("SubmitUpdate: fe=%v err=%v", fe, err)
	}
	if m.Editing() != nil {
		t.Error("editing draft not cleared after update")
	}
	if m.Items()[0].Name != "Atlanta Braves" {
		t.Errorf("Items = %+v", m.Items())
	}
}

func TestCancelEditDiscardsChanges(t *testing.T) {
	fake := &fakeTeams{rows: []backend.Team{{ID: 1, Name: "Atlanta", DTID: 4}}, nextID: 1}
	m := NewManager(fake.config())
	m.Refresh(context.Background())

	m.StartEdit(m.Items()[0])
	m.Editing().Name = "changed"
	m.CancelEdit()

	if m.Editing() != nil {
		t.Error("editing draft survived cancel")
	}
	if m.Items()[0].Name != "Atlanta" {
		t.Errorf("list row mutated by edit draft: %+v", m.Items()[0])
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	fake := &fakeTeams{rows: []backend.Team{{ID: 1, Name: "Atlanta", DTID: 4}, {ID: 2, Name: "Wizards", DTID: 5}}, nextID: 2}
	m := NewManager(fake.config())
	m.Refresh(context.Background())

	m.RequestDelete(1)
	if fake.removes != 0 {
		t.Fatal("RequestDelete issued a network call")
	}
	if target := m.DeleteTarget(); target == nil || *target != 1 {
		t.Fatalf("DeleteTarget = %v", target)
	}

	if err := m.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if fake.removes != 1 {
		t.Errorf("removes = %d, want 1", fake.removes)
	}
	if len(m.Items()) != 1 || m.Items()[0].ID != 2 {
		t.Errorf("Items = %+v", m.Items())
	}
	if m.DeleteTarget() != nil {
		t.Error("delete target survived confirmation")
	}
}

func TestCancelDeleteMakesNoCall(t *testing.T) {
	fake := &fakeTeams{rows: []backend.Team{{ID: 1, Name: "Atlanta", DTID: 4}}, nextID: 1}
	m := NewManager(fake.config())
	m.Refresh(context.Background())

	m.RequestDelete(1)
	m.CancelDelete()

	if err := m.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if fake.removes != 0 {
		t.Errorf("removes = %d, want 0", fake.removes)
	}
	if len(m.Items()) != 1 {
		t.Errorf("Items = %+v", m.Items())
	}
}

func TestFilteredMatchesCaseInsensitively(t *testing.T) {
	fake := &fakeTeams{rows: []backend.Team{
		{ID: 1, Name: "Atlanta", Initials: "ATL"},
		{ID: 2, Name: "Wizards", Initials: "WIZ"},
		{ID: 3, Name: "Islanders", Initials: "ISL"},
	}}
	m := NewManager(fake.config())
	m.Refresh(context.Background())

	tests := []struct {
		term string
		want []int
	}{
		{"", []int{1, 2, 3}},
		{"la", []int{1, 3}},
		{"WIZ", []int{2}},
		{"xyz", nil},
	}

	for _, tt := range tests {
		m.SetSearch(tt.term)
		got := m.Filtered()
		ids := make([]int, 0, len(got))
		for _, team := range got {
			ids = append(ids, team.ID)
		}
		if len(ids) != len(tt.want) {
			t.Errorf("Filtered(%q) = %v, want ids %v", tt.term, ids, tt.want)
			continue
		}
		for i := range ids {
			if ids[i] != tt.want[i] {
				t.Errorf("Filtered(%q) = %v, want ids %v", tt.term, ids, tt.want)
				break
			}
		}
	}
}

func TestSeasonLifecycle(t *testing.T) {
	var rows []backend.Season
	cfg := Config[backend.Season, int]{
		List: func(ctx context.Context) ([]backend.Season, error) {
			out := make([]backend.Season, len(rows))
			copy(out, rows)
			return out, nil
		},
		Create: func(ctx context.Context, draft backend.Season) (backend.Season, error) {
			rows = append(rows, draft)
			return draft, nil
		},
		Remove: func(ctx context.Context, id int) error {
			kept := rows[:0]
			for _, row := range rows {
				if row.ID != id {
					kept = append(kept, row)
				}
			}
			rows = kept
			return nil
		},
		Validate: func(s backend.Season) FieldErrors {
			fe := FieldErrors{}
			if s.ID <= 0 {
				fe.Add("id", "season year is required")
			}
			return fe
		},
		Key: func(s backend.Season) int { return s.ID },
	}

	m := NewManager(cfg)
	m.SetDraft(backend.Season{ID: 2025})
	if fe, err := m.SubmitCreate(context.Background()); err != nil || len(fe) > 0 {
		t.Fatalf("SubmitCreate: fe=%v err=%v", fe, err)
	}

	found := false
	for _, s := range m.Items() {
		if s.ID == 2025 {
			found = true
		}
	}
	if !found {
		t.Fatalf("season 2025 missing after create: %+v", m.Items())
	}

	m.RequestDelete(2025)
	if err := m.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	for _, s := range m.Items() {
		if s.ID == 2025 {
			t.Fatalf("season 2025 still listed after delete: %+v", m.Items())
		}
	}
}

// Join rows (star players, team direction) have no update operation.
func TestSubmitUpdateUnsupported(t *testing.T) {
	cfg := Config[backend.TeamDirection, backend.TeamDirectionKey]{
		List: func(ctx context.Context) ([]backend.TeamDirection, error) { return nil, nil },
		Create: func(ctx context.Context, d backend.TeamDirection) (backend.TeamDirection, error) {
			return d, nil
		},
		Remove: func(ctx context.Context, k backend.TeamDirectionKey) error { return nil },
	}
	m := NewManager(cfg)
	m.StartEdit(backend.TeamDirection{})

	if _, err := m.SubmitUpdate(context.Background()); !errors.Is(err, ErrNoUpdate) {
		t.Fatalf("err = %v, want ErrNoUpdate", err)
	}
}
