// Package explain generates human-readable explanations for why a ranked
// candidate matched a recruiter query. Explanations are computed purely
// from the candidate and the parsed query, so explaining a result never
// changes it.
package explain
