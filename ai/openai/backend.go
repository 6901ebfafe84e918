package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/talentsearch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// systemPrompt frames every parsing completion. The full field taxonomy and
// worked examples travel in the user prompt built by the queryparse package.
const systemPrompt = "You are a recruiter search query parser. Extract structured " +
	"information from natural language queries and return only valid JSON."

// QueryBackend implements ai.QueryBackend using OpenAI-compatible chat APIs.
// Completions run at temperature 0 with JSON mode so identical prompts yield
// identical output.
type QueryBackend struct {
	client llms.Model
	name   string
	logger *slog.Logger
}

var _ ai.QueryBackend = (*QueryBackend)(nil)

// newQueryBackend is an internal constructor that returns the concrete type.
// Used by Provider to manage the instances.
func newQueryBackend(host, model string) (*QueryBackend, error) {
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(host),
		openai.WithToken("none"),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}

	return &QueryBackend{
		client: client,
		name:   model,
		logger: slog.Default().With("component", "openai-backend", "model", model),
	}, nil
}

// NewQueryBackend creates a parsing backend for the given host and model.
//
// Returns ai.QueryBackend interface to enforce abstraction.
func NewQueryBackend(host, model string) (ai.QueryBackend, error) {
	return newQueryBackend(host, model)
}

// Name identifies the backend by its model identifier.
func (b *QueryBackend) Name() string {
	return b.name
}

// Complete sends the parsing prompt and returns the raw completion text.
func (b *QueryBackend) Complete(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := b.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		b.logger.Error("failed to generate completion", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		b.logger.Warn("no choices returned from model")
		return "", ErrEmptyCompletion
	}

	return response.Choices[0].Content, nil
}
