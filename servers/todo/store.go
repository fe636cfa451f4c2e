package todo

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Item is a single entry in the todo list.
//
// The ID is minted by the store at creation time and never changes. CreatedAt is
// set once; UpdatedAt is refreshed on every successful mutation, so
// UpdatedAt >= CreatedAt always holds. Description is optional and serializes as
// null when absent.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NotFoundError reports that no live item matches the requested ID.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("todo item with id %s not found", e.ID)
}

// Store holds the authoritative todo collection and executes all mutations on it.
//
// A single mutex guards the whole collection: every operation, reads included,
// runs in its own exclusive critical section, so each call is atomic with respect
// to the others and observes a consistent snapshot. Items are kept in insertion
// order, and all operations return copies, never references into the collection.
//
// One Store is constructed per process and shared by pointer across all request
// handlers; the zero value is not usable, use NewStore.
type Store struct {
	mu    sync.Mutex
	items []Item

	now func() time.Time
}

// NewStore creates an empty todo store.
func NewStore() *Store {
	return &Store{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// List returns a snapshot of all items in insertion order. It always succeeds;
// an empty store yields an empty slice.
func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, cloneItem(item))
	}
	return items
}

// Create appends a new item with a freshly minted ID and returns it. The item
// starts uncompleted with CreatedAt == UpdatedAt. The title is stored as given;
// the store does not enforce non-emptiness or uniqueness.
func (s *Store) Create(title string, description *string) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	item := Item{
		ID:          uuid.NewString(),
		Title:       title,
		Description: cloneDescription(description),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.items = append(s.items, item)

	return cloneItem(item)
}

// Update applies a partial update to the item with the given ID and returns the
// updated item. Each non-nil field overwrites the stored value; nil fields are
// left unchanged. A present description always replaces the stored one; there is
// no way to clear it back to absent. UpdatedAt is refreshed on success.
// Returns NotFoundError if the ID matches no live item.
func (s *Store) Update(id string, title *string, description *string, completed *bool) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return Item{}, NotFoundError{ID: id}
	}

	item := &s.items[idx]
	if title != nil {
		item.Title = *title
	}
	if description != nil {
		item.Description = cloneDescription(description)
	}
	if completed != nil {
		item.Completed = *completed
	}
	item.UpdatedAt = s.now()

	return cloneItem(*item), nil
}

// Delete permanently removes the item with the given ID, preserving the order of
// the remaining items. Returns NotFoundError if the ID matches no live item,
// including an ID that was already deleted.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return NotFoundError{ID: id}
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// Get returns a copy of the item with the given ID.
// Returns NotFoundError if the ID matches no live item.
func (s *Store) Get(id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return Item{}, NotFoundError{ID: id}
	}

	return cloneItem(s.items[idx]), nil
}

// Complete marks the item with the given ID as completed and refreshes its
// UpdatedAt. Returns NotFoundError if the ID matches no live item.
func (s *Store) Complete(id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return Item{}, NotFoundError{ID: id}
	}

	item := &s.items[idx]
	item.Completed = true
	item.UpdatedAt = s.now()

	return cloneItem(*item), nil
}

// indexLocked returns the position of the item whose ID exactly equals id, or -1.
// The caller must hold the mutex.
func (s *Store) indexLocked(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// cloneItem copies an item including its description pointee, so callers never
// share memory with the stored collection.
func cloneItem(item Item) Item {
	item.Description = cloneDescription(item.Description)
	return item
}

func cloneDescription(description *string) *string {
	if description == nil {
		return nil
	}
	d := *description
	return &d
}
