package mock

import "context"

// emptyFiltersJSON is the default canned completion: a structurally valid
// parse with no filters extracted.
const emptyFiltersJSON = `{
  "search_intent": "",
  "filters": {
    "min_experience": null,
    "max_experience": null,
    "location": null,
    "education_level": null,
    "required_skills": null,
    "seniority_keywords": null,
    "desired_job_titles": null,
    "target_companies": null,
    "application_date": null
  }
}`

// MockQueryBackend is a test double for ai.QueryBackend.
// It allows custom behavior injection via function fields.
type MockQueryBackend struct {
	// BackendName is returned by Name. Defaults to "mock".
	BackendName string

	// CompleteFunc is called by Complete if set.
	// If nil, returns a canned empty-filters JSON object.
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
}

// NewMockQueryBackend creates a mock parsing backend with default canned behavior.
// Note: Returns concrete type to allow behavior injection in tests.
func NewMockQueryBackend() *MockQueryBackend {
	return &MockQueryBackend{BackendName: "mock"}
}

// Name returns the configured backend name.
func (m *MockQueryBackend) Name() string {
	if m.BackendName == "" {
		return "mock"
	}
	return m.BackendName
}

// Complete returns the injected completion, or a canned empty-filters response.
func (m *MockQueryBackend) Complete(ctx context.Context, prompt string) (string, error) {
	m.callCount++

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}

	return emptyFiltersJSON, nil
}

// CallCount returns the number of times Complete was called.
func (m *MockQueryBackend) CallCount() int {
	return m.callCount
}

// Reset clears the call count.
func (m *MockQueryBackend) Reset() {
	m.callCount = 0
}
