package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkgerrors "github.com/tarinyoom/llm-stack/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestConfigError(t *testing.T) {
	t.Run("with variable", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Variable: "OLLAMA_BASE_URL",
			Message:  "required environment variable not set",
		}
		assert.Equal(t, "configuration error in OLLAMA_BASE_URL: required environment variable not set", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMissingConfig))
	})

	t.Run("without variable", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Message: "no configuration provided",
		}
		assert.Equal(t, "configuration error: no configuration provided", err.Error())
	})

	t.Run("constructor", func(t *testing.T) {
		base := errors.New("invalid duration")
		err := pkgerrors.NewConfigError("STARTUP_TIMEOUT", "invalid duration: 'abc'", base)
		assert.Contains(t, err.Error(), "STARTUP_TIMEOUT")
		assert.Contains(t, err.Error(), "invalid duration")
		assert.Equal(t, base, err.Unwrap())
	})

	t.Run("category helper", func(t *testing.T) {
		err := pkgerrors.NewConfigError("REQUIRED_MODELS", "not set", nil)
		assert.True(t, pkgerrors.IsConfig(err))
		assert.False(t, pkgerrors.IsRetryable(err))
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Endpoint:   "http://localhost:11434/api/tags",
			StatusCode: 503,
			Message:    "service unavailable",
		}
		assert.Contains(t, err.Error(), "http://localhost:11434/api/tags")
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "service unavailable")
		assert.True(t, errors.Is(err, pkgerrors.ErrAPIUnavailable))
	})

	t.Run("transport failure without status", func(t *testing.T) {
		base := errors.New("connection refused")
		err := &pkgerrors.APIError{
			Endpoint: "http://localhost:11434/api/tags",
			Message:  "connection refused",
			Err:      base,
		}
		assert.NotContains(t, err.Error(), "status")
		assert.Equal(t, base, err.Unwrap())
		assert.True(t, errors.Is(err, pkgerrors.ErrAPIUnavailable))
	})

	t.Run("client error is not unavailable", func(t *testing.T) {
		err := pkgerrors.NewAPIError("http://localhost:11434/api/pull", 404, "model not found")
		assert.False(t, errors.Is(err, pkgerrors.ErrAPIUnavailable))
	})

	t.Run("always retryable", func(t *testing.T) {
		assert.True(t, pkgerrors.IsRetryable(pkgerrors.NewAPIError("http://x/api/tags", 500, "boom")))
		assert.True(t, pkgerrors.IsRetryable(pkgerrors.NewAPIError("http://x/api/pull", 404, "missing")))
	})
}

func TestVerificationError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.VerificationError{Model: "llama3.2"}
		assert.Equal(t, "model llama3.2 missing from inventory after pull", err.Error())
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewVerificationError("qwen2.5:7b")
		assert.Contains(t, err.Error(), "qwen2.5:7b")
		assert.True(t, pkgerrors.IsRetryable(err))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with endpoint", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:   "json",
			Endpoint: "http://localhost:11434/api/tags",
			Message:  "unexpected token",
		}
		assert.Contains(t, err.Error(), "json parse error")
		assert.Contains(t, err.Error(), "http://localhost:11434/api/tags")
		assert.Contains(t, err.Error(), "unexpected token")
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			Message: "unexpected end of input",
		}
		assert.Equal(t, "json parse error: unexpected end of input", err.Error())
	})

	t.Run("constructor and unwrap", func(t *testing.T) {
		base := errors.New("EOF")
		err := pkgerrors.NewParseError("json", "http://x/api/tags", "unexpected end", base)
		assert.Equal(t, base, err.Unwrap())
		assert.True(t, pkgerrors.IsRetryable(err))
	})
}

func TestReadinessError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		base := errors.New("connection refused")
		err := &pkgerrors.ReadinessError{
			Elapsed:  "2m0s",
			Attempts: 27,
			Err:      base,
		}
		assert.Contains(t, err.Error(), "2m0s")
		assert.Contains(t, err.Error(), "27 attempts")
		assert.Contains(t, err.Error(), "connection refused")
		assert.True(t, errors.Is(err, pkgerrors.ErrNotReady))
		assert.Equal(t, base, err.Unwrap())
	})

	t.Run("constructor and helper", func(t *testing.T) {
		err := pkgerrors.NewReadinessError("30s", 9, errors.New("i/o timeout"))
		assert.True(t, pkgerrors.IsNotReady(err))
		assert.False(t, pkgerrors.IsConfig(err))
	})
}

func TestEmptyRequiredSet(t *testing.T) {
	err := pkgerrors.ErrEmptyRequiredSet
	assert.True(t, pkgerrors.IsEmptySet(err))
	assert.False(t, pkgerrors.IsConfig(err))
	assert.False(t, pkgerrors.IsRetryable(err))

	t.Run("wrapped", func(t *testing.T) {
		wrapped := errors.Join(errors.New("reconcile failed"), pkgerrors.ErrEmptyRequiredSet)
		assert.True(t, pkgerrors.IsEmptySet(wrapped))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsTimeout", func(t *testing.T) {
		assert.True(t, pkgerrors.IsTimeout(pkgerrors.ErrTimeout))
		assert.False(t, pkgerrors.IsTimeout(errors.New("timeout")))
	})

	t.Run("IsRetryable on timeout sentinel", func(t *testing.T) {
		assert.True(t, pkgerrors.IsRetryable(pkgerrors.ErrTimeout))
	})

	t.Run("IsRetryable rejects plain errors", func(t *testing.T) {
		assert.False(t, pkgerrors.IsRetryable(errors.New("something else")))
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapAPI", func(t *testing.T) {
		err := pkgerrors.WrapAPI("http://localhost:11434/api/pull", 500, errors.New("internal error"))
		require.NotNil(t, err)
		apiErr, ok := err.(*pkgerrors.APIError)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:11434/api/pull", apiErr.Endpoint)
		assert.Equal(t, 500, apiErr.StatusCode)

		// nil error returns nil
		assert.Nil(t, pkgerrors.WrapAPI("http://x/api/tags", 200, nil))
	})

	t.Run("WrapParse", func(t *testing.T) {
		err := pkgerrors.WrapParse("json", "http://x/api/tags", errors.New("invalid character"))
		require.NotNil(t, err)
		parseErr, ok := err.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, "http://x/api/tags", parseErr.Endpoint)

		assert.Nil(t, pkgerrors.WrapParse("json", "http://x/api/tags", nil))
	})
}

func TestErrorChaining(t *testing.T) {
	t.Run("multiple wrapping", func(t *testing.T) {
		base := errors.New("connection refused")
		apiErr := pkgerrors.WrapAPI("http://localhost:11434/api/tags", 0, base)
		readyErr := pkgerrors.NewReadinessError("2m0s", 27, apiErr)

		assert.Equal(t, apiErr, readyErr.Unwrap())

		// errors.As should find the transport error through the chain
		var target *pkgerrors.APIError
		assert.True(t, errors.As(readyErr, &target))
		assert.Equal(t, "http://localhost:11434/api/tags", target.Endpoint)

		// the chain reads as both not-ready and unavailable
		assert.True(t, errors.Is(readyErr, pkgerrors.ErrNotReady))
		assert.True(t, errors.Is(readyErr, pkgerrors.ErrAPIUnavailable))
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrEmptyRequiredSet", pkgerrors.ErrEmptyRequiredSet},
		{"ErrNotReady", pkgerrors.ErrNotReady},
		{"ErrMissingConfig", pkgerrors.ErrMissingConfig},
		{"ErrAPIUnavailable", pkgerrors.ErrAPIUnavailable},
		{"ErrTimeout", pkgerrors.ErrTimeout},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
