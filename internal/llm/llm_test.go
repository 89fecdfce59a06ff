package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfigNoProvider(t *testing.T) {
	for _, provider := range []string{"", "none"} {
		model, err := FromConfig(context.Background(), provider, "key", "key")
		require.NoError(t, err)
		assert.Nil(t, model)
	}
}

func TestFromConfigMissingKeyDisablesModel(t *testing.T) {
	model, err := FromConfig(context.Background(), "gemini", "", "ignored")
	require.NoError(t, err)
	assert.Nil(t, model)

	model, err = FromConfig(context.Background(), "openai", "ignored", "")
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestFromConfigOpenAI(t *testing.T) {
	model, err := FromConfig(context.Background(), "openai", "", "sk-test")
	require.NoError(t, err)
	require.NotNil(t, model)
	assert.Contains(t, model.Name(), "openai")
}

func TestFromConfigUnknownProvider(t *testing.T) {
	_, err := FromConfig(context.Background(), "claude", "", "")
	assert.Error(t, err)
}

func TestFakeConsumesScriptInOrder(t *testing.T) {
	f := &Fake{Responses: []string{"first", "second"}}

	out, err := f.Generate(context.Background(), "p1", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", out)

	out, err = f.Generate(context.Background(), "p2", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", out)

	_, err = f.Generate(context.Background(), "p3", nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, []string{"p1", "p2", "p3"}, f.Calls)
}

func TestFakeEmptyScriptEntry(t *testing.T) {
	f := &Fake{Responses: []string{""}}
	_, err := f.Generate(context.Background(), "p", nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestShouldRetry(t *testing.T) {
	assert.False(t, shouldRetry(nil))
	assert.False(t, shouldRetry(errors.New("invalid api key")))
	assert.False(t, shouldRetry(ErrEmptyResponse))
	assert.True(t, shouldRetry(errors.New("429: rate limit exceeded")))
	assert.True(t, shouldRetry(errors.New("502 Bad Gateway")))
	assert.True(t, shouldRetry(errors.New("read tcp: connection reset by peer")))
	assert.True(t, shouldRetry(&openai.APIError{HTTPStatusCode: 503}))
	assert.False(t, shouldRetry(&openai.APIError{HTTPStatusCode: 400}))
}

func TestWithRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), "test", 3, func() (string, error) {
		calls++
		return "", errors.New("invalid api key")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetrySingleAttemptByDefault(t *testing.T) {
	// Zero attempts means one call, even for a transient error.
	calls := 0
	_, err := withRetry(context.Background(), "test", 0, func() (string, error) {
		calls++
		return "", errors.New("429: rate limit exceeded")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryRetriesTransientWhenOptedIn(t *testing.T) {
	backoff := retryBackoff
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = backoff })

	calls := 0
	out, err := withRetry(context.Background(), "test", 2, func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("503 Service Unavailable")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 2, calls)
}
