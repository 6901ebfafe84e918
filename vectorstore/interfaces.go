package vectorstore

import (
	"context"

	"github.com/poiesic/talentsearch/core"
)

// FacetMatch is one nearest-neighbor hit from a facet query.
type FacetMatch struct {
	Applicant *core.Applicant
	// Score is the cosine similarity between the query vector and the
	// applicant's facet vector.
	Score float32
}

// Store provides storage and similarity search over applicant records.
// Implementations must be thread-safe and support concurrent access.
type Store interface {
	// Upsert adds or replaces applicant records.
	// Records are validated against the store's vector dimension; a record
	// with any facet vector of the wrong length is rejected with an error
	// wrapping core.ErrVectorDimension. Facet vectors are normalized to unit
	// length at write time so queries can score by dot product.
	Upsert(ctx context.Context, applicants ...*core.Applicant) error

	// Search finds the applicants whose facet vector is most similar to the
	// query vector. Only records matching pred are considered (a nil pred
	// matches everything). Records scoring below floor are rejected as noise.
	// Returns up to limit matches ordered by similarity, highest first.
	Search(ctx context.Context, facet core.Facet, vector []float32, pred *Predicate, limit int, floor float32) ([]FacetMatch, error)

	// Get retrieves a single applicant by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id core.ID) (*core.Applicant, error)

	// Count returns the number of stored applicant records.
	Count(ctx context.Context) (int, error)

	// Dim returns the fixed facet vector dimensionality of this store.
	Dim() int

	// Close closes the storage backend and releases resources.
	Close() error
}
