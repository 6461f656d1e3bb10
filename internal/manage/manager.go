// Package manage implements the admin management flow shared by every
// entity screen: a fetched list, a new-entity draft, an editing draft, a
// two-step delete confirmation, and a synchronous text search. Mutations
// never reconcile locally; each successful write triggers a full list
// re-fetch so the view always reflects server state.
package manage

import (
	"context"
	"errors"
	"strings"
)

// ErrNotEditing is returned by SubmitUpdate when no row is being edited.
var ErrNotEditing = errors.New("no entity is being edited")

// ErrNoUpdate is returned by SubmitUpdate for join entities whose rows are
// created and deleted whole.
var ErrNoUpdate = errors.New("entity does not support updates")

// FieldErrors maps a form field to its validation messages. A non-empty
// result from a submit means the network call was never made; callers render
// the messages inline next to the fields.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Config wires a Manager to one entity's resource client and rules.
type Config[E any, K comparable] struct {
	List   func(ctx context.Context) ([]E, error)
	Create func(ctx context.Context, draft E) (E, error)
	Update func(ctx context.Context, entity E) (E, error)
	Remove func(ctx context.Context, key K) error

	// Validate returns the client-side required-field errors for a draft.
	// Anything beyond non-empty/non-zero checks belongs to the backend.
	Validate func(E) FieldErrors

	// Normalize recomputes derived fields (e.g. a game's winning side from
	// its run counts) immediately before any write.
	Normalize func(*E)

	// SearchText returns the display fields the text filter matches against.
	SearchText func(E) []string

	Key func(E) K
}

// Manager owns the ephemeral view state for one entity screen. A manager is
// exclusively owned by the request or test that created it; it is not safe
// for concurrent use and does not need to be.
type Manager[E any, K comparable] struct {
	cfg Config[E, K]

	items        []E
	draft        E
	editing      *E
	deleteTarget *K
	search       string
}

func NewManager[E any, K comparable](cfg Config[E, K]) *Manager[E, K] {
	return &Manager[E, K]{cfg: cfg}
}

// Refresh replaces the current list with a full re-fetch.
func (m *Manager[E, K]) Refresh(ctx context.Context) error {
	items, err := m.cfg.List(ctx)
	if err != nil {
		return err
	}
	m.items = items
	return nil
}

// Items returns the last fetched list.
func (m *Manager[E, K]) Items() []E {
	return m.items
}

// SetDraft replaces the new-entity draft.
func (m *Manager[E, K]) SetDraft(draft E) {
	m.draft = draft
}

// Draft returns the current new-entity draft.
func (m *Manager[E, K]) Draft() E {
	return m.draft
}

// SubmitCreate validates the draft, creates it, and re-fetches the list.
// Field errors short-circuit before any network call.
func (m *Manager[E, K]) SubmitCreate(ctx context.Context) (FieldErrors, error) {
	if m.cfg.Validate != nil {
		if fe := m.cfg.Validate(m.draft); len(fe) > 0 {
			return fe, nil
		}
	}
	if m.cfg.Normalize != nil {
		m.cfg.Normalize(&m.draft)
	}

	if _, err := m.cfg.Create(ctx, m.draft); err != nil {
		return nil, err
	}

	var zero E
	m.draft = zero
	return nil, m.Refresh(ctx)
}

// StartEdit opens an editing draft for the given row.
func (m *Manager[E, K]) StartEdit(entity E) {
	e := entity
	m.editing = &e
}

// Editing returns the row under edit, or nil.
func (m *Manager[E, K]) Editing() *E {
	return m.editing
}

// CancelEdit discards the editing draft.
func (m *Manager[E, K]) CancelEdit() {
	m.editing = nil
}

// SubmitUpdate validates the editing draft, PUTs it, and re-fetches.
func (m *Manager[E, K]) SubmitUpdate(ctx context.Context) (FieldErrors, error) {
	if m.editing == nil {
		return nil, ErrNotEditing
	}
	if m.cfg.Update == nil {
		return nil, ErrNoUpdate
	}
	if m.cfg.Validate != nil {
		if fe := m.cfg.Validate(*m.editing); len(fe) > 0 {
			return fe, nil
		}
	}
	if m.cfg.Normalize != nil {
		m.cfg.Normalize(m.editing)
	}

	if _, err := m.cfg.Update(ctx, *m.editing); err != nil {
		return nil, err
	}

	m.editing = nil
	return nil, m.Refresh(ctx)
}

// RequestDelete holds the target identity until the user confirms.
func (m *Manager[E, K]) RequestDelete(key K) {
	k := key
	m.deleteTarget = &k
}

// DeleteTarget returns the identity awaiting confirmation, or nil.
func (m *Manager[E, K]) DeleteTarget() *K {
	return m.deleteTarget
}

// CancelDelete discards the pending target without a call.
func (m *Manager[E, K]) CancelDelete() {
	m.deleteTarget = nil
}

// ConfirmDelete deletes the pending target and re-fetches. With no pending
// target it is a no-op.
func (m *Manager[E, K]) ConfirmDelete(ctx context.Context) error {
	if m.deleteTarget == nil {
		return nil
	}

	if err := m.cfg.Remove(ctx, *m.deleteTarget); err != nil {
		return err
	}

	m.deleteTarget = nil
	return m.Refresh(ctx)
}

// SetSearch sets the text filter applied by Filtered.
func (m *Manager[E, K]) SetSearch(term string) {
	m.search = term
}

// Filtered returns the rows whose designated display fields contain the
// search term, case-insensitively. An empty term returns everything.
func (m *Manager[E, K]) Filtered() []E {
	if m.search == "" || m.cfg.SearchText == nil {
		return m.items
	}

	needle := strings.ToLower(m.search)
	var out []E
	for _, item := range m.items {
		for _, field := range m.cfg.SearchText(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
