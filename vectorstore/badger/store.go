package badger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentsearch/core"
	"github.com/poiesic/talentsearch/vectorstore"
)

// Store implements vectorstore.Store for BadgerDB.
//
// Each applicant is stored as a single record carrying its three facet
// vectors. Facet queries are predicate-filtered full scans scoring by dot
// product; vectors are normalized at write time so the dot product equals
// cosine similarity. This is adequate for the modeled scale of a few
// thousand records.
type Store struct {
	backend *Backend
	dim     int
	logger  *slog.Logger
}

var _ vectorstore.Store = (*Store)(nil)

// NewStore creates a badger-backed applicant store with the given facet
// vector dimensionality.
//
// Returns vectorstore.Store interface to enforce abstraction.
func NewStore(backend *Backend, dim int) (vectorstore.Store, error) {
	return newStore(backend, dim)
}

// newStore is an internal constructor that returns the concrete type.
func newStore(backend *Backend, dim int) (*Store, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", vectorstore.ErrInvalidDimension, dim)
	}
	return &Store{
		backend: backend,
		dim:     dim,
		logger:  slog.Default().With("component", "badger-store"),
	}, nil
}

// Dim returns the fixed facet vector dimensionality of this store.
func (s *Store) Dim() int {
	return s.dim
}

// Close is a no-op; the shared backend is closed by its owner.
func (s *Store) Close() error {
	return nil
}

// Upsert adds or replaces applicant records.
// Records failing dimension validation are rejected, never zero-padded.
func (s *Store) Upsert(ctx context.Context, applicants ...*core.Applicant) error {
	for _, app := range applicants {
		if err := core.ValidateApplicant(app, s.dim); err != nil {
			return err
		}
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, app := range applicants {
			stored := *app
			for _, facet := range core.Facets() {
				stored.SetVector(facet, NormalizeVector(app.Vector(facet)))
			}

			key := makeApplicantKey(stored.Id)
			value := vectorstore.MarshalApplicant(&stored)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Get retrieves a single applicant by ID.
func (s *Store) Get(ctx context.Context, id core.ID) (*core.Applicant, error) {
	var app *core.Applicant
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeApplicantKey(id))
		if err == badger.ErrKeyNotFound {
			return vectorstore.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			app, err = vectorstore.UnmarshalApplicant(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Count returns the number of stored applicant records.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(applicantPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Search finds the applicants whose facet vector is most similar to the
// query vector, restricted to records matching pred and scoring at least floor.
func (s *Store) Search(ctx context.Context, facet core.Facet, vector []float32, pred *vectorstore.Predicate, limit int, floor float32) ([]vectorstore.FacetMatch, error) {
	if err := core.ValidateFacet(facet); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit %d", vectorstore.ErrInvalidQuery, limit)
	}

	query := NormalizeVector(vector)

	var results []vectorstore.FacetMatch
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(applicantPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			if !bytes.HasPrefix(item.Key(), []byte(applicantPrefix)) {
				continue
			}

			var app *core.Applicant
			err := item.Value(func(val []byte) error {
				var err error
				app, err = vectorstore.UnmarshalApplicant(val)
				return err
			})
			if err != nil {
				return err
			}
			if app == nil {
				continue
			}

			if !pred.Matches(app) {
				continue
			}

			facetVector := app.Vector(facet)
			if len(facetVector) == 0 {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			similarity := dotProduct(query, facetVector)

			// Filter by threshold
			if similarity >= floor {
				results = append(results, vectorstore.FacetMatch{
					Applicant: app,
					Score:     similarity,
				})
			}
		}

		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending; ties break on id to keep scan order
	// variations out of the result
	slices.SortFunc(results, func(a, b vectorstore.FacetMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Applicant.Id < b.Applicant.Id {
			return -1
		}
		if a.Applicant.Id > b.Applicant.Id {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}
