package talentsearch

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/poiesic/talentsearch/ai"
	"github.com/poiesic/talentsearch/ai/mock"
	"github.com/poiesic/talentsearch/queryparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFailingSystem(config *ai.Config) (*System, *mock.MockQueryBackend) {
	backend := mock.NewMockQueryBackend()
	backend.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("backend unavailable")
	}

	system := &System{
		provider: mock.NewMockProviderWith(mock.NewMockEmbedder(), backend),
		config:   config,
		logger:   slog.Default(),
	}
	return system, backend
}

func TestSystemNewParserCarriesRetryBudget(t *testing.T) {
	system, backend := newFailingSystem(ai.NewConfig(
		ai.WithMaxRetries(1),
		ai.WithRetryBaseDelay(time.Millisecond),
	))

	parser, err := system.NewParser()
	require.NoError(t, err)

	start := time.Now()
	parsed := parser.Parse(context.Background(), "golang engineers in Manila")
	elapsed := time.Since(start)

	assert.True(t, parsed.Degraded)
	assert.Equal(t, 1, backend.CallCount(), "a single-attempt budget must not retry")
	assert.Less(t, elapsed, 2*time.Second, "configured budget must cut the default backoff")
}

func TestSystemNewParserExplicitOptionsWin(t *testing.T) {
	system, backend := newFailingSystem(ai.NewConfig(
		ai.WithMaxRetries(1),
		ai.WithRetryBaseDelay(time.Millisecond),
	))

	parser, err := system.NewParser(queryparse.WithRetries(2))
	require.NoError(t, err)

	parsed := parser.Parse(context.Background(), "golang engineers in Manila")

	assert.True(t, parsed.Degraded)
	assert.Equal(t, 2, backend.CallCount())
}
