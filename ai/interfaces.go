package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Implementations truncate input exceeding the service character budget
	// before sending. Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// QueryBackend is a natural-language-understanding service that turns a
// parsing prompt into JSON-shaped text. Decoding is deterministic
// (temperature 0) so identical prompts yield identical completions.
// Implementations must be thread-safe for concurrent use.
type QueryBackend interface {
	// Name identifies the backend for provenance metadata on parse results.
	Name() string

	// Complete sends the prompt and returns the raw completion text.
	// The text is expected to be a JSON object, possibly wrapped in markdown
	// code fences; callers are responsible for extraction and decoding.
	Complete(ctx context.Context, prompt string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and QueryBackend instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// QueryBackends returns the query parsing backends in fallback order:
	// the first backend is tried first, each subsequent backend is tried
	// only after the previous one failed.
	QueryBackends() []QueryBackend

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
