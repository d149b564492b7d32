package store

import (
	"context"
	"fmt"
	"iter"

	apperrors "github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/apperrors"
)

// Record is implemented by every persisted entity type, usually by
// embedding domain.RecordMeta.
type Record interface {
	RecordID() int64
	SetRecordID(int64)
	IsActive() bool
	SetActive(bool)
}

// Persister is the persistence collaborator behind a Store. Save replaces
// the whole backing collection; Load returns it in insertion order.
type Persister[T Record] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}

// Store is an ordered collection of records with store-assigned ids and
// soft-delete semantics. Records are only ever appended or deactivated,
// never removed, so historical references stay resolvable. A Store is not
// safe for concurrent use; the application is single-threaded.
type Store[T Record] struct {
	name      string
	baseID    int64
	limit     int
	records   []T
	persister Persister[T]
}

// New creates a Store. Ids are assigned as baseID + insertion ordinal.
// limit is a soft capacity cap; zero means unlimited. persister may be nil
// for a memory-only store.
func New[T Record](name string, baseID int64, limit int, persister Persister[T]) *Store[T] {
	return &Store[T]{
		name:      name,
		baseID:    baseID,
		limit:     limit,
		persister: persister,
	}
}

// Append assigns the next id to rec and adds it to the collection.
func (s *Store[T]) Append(rec T) (int64, error) {
	if s.limit > 0 && len(s.records) >= s.limit {
		return 0, fmt.Errorf("%s store is full (%d records): %w", s.name, s.limit, apperrors.ErrStoreFull)
	}
	id := s.baseID + int64(len(s.records))
	rec.SetRecordID(id)
	s.records = append(s.records, rec)
	return id, nil
}

// Get returns the record with the given id. Lookup is a linear scan; the
// data sets here are small enough that an index would not pay for itself.
func (s *Store[T]) Get(id int64) (T, error) {
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %d: %w", s.name, id, apperrors.ErrNotFound)
}

// All returns a restartable sequence over the records in insertion order.
// The sequence is a live view, not a snapshot.
func (s *Store[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, rec := range s.records {
			if !yield(rec) {
				return
			}
		}
	}
}

func (s *Store[T]) Len() int {
	return len(s.records)
}

// Persist writes the whole collection through the persistence collaborator.
// In-memory state is left untouched on failure; the caller decides how to
// report the divergence.
func (s *Store[T]) Persist(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(ctx, s.records); err != nil {
		return fmt.Errorf("persist %s store: %w", s.name, err)
	}
	return nil
}

// Restore replaces the collection with the persisted one. Missing backing
// storage yields an empty store, not an error.
func (s *Store[T]) Restore(ctx context.Context) error {
	if s.persister == nil {
		s.records = nil
		return nil
	}
	records, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore %s store: %w", s.name, err)
	}
	s.records = records
	return nil
}
