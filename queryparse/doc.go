// Package queryparse turns natural language recruiter queries into structured
// search parameters using an LLM backend chain. The first backend that
// produces a well-formed response wins; when every backend fails the parser
// degrades to a filterless semantic search instead of returning an error.
package queryparse
