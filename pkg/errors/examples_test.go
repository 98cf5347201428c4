package errors_test

import (
	"fmt"

	"github.com/tarinyoom/llm-stack/pkg/errors"
)

// Example demonstrates basic error creation and category checking.
func Example() {
	// Create a configuration error
	err := &errors.ConfigError{
		Variable: "OLLAMA_BASE_URL",
		Message:  "required environment variable not set",
	}

	// Check error category
	if errors.IsConfig(err) {
		fmt.Println("Fatal configuration problem")
	}

	// Output: Fatal configuration problem
}

// Example_aPIError demonstrates remote API error handling.
func Example_aPIError() {
	// Simulate a failed tags request
	err := &errors.APIError{
		Endpoint:   "http://localhost:11434/api/tags",
		StatusCode: 503,
		Message:    "service unavailable",
	}

	// Retryable errors abort only the current cycle
	if errors.IsRetryable(err) {
		fmt.Println("Transient - retry next cycle")
	}

	// Output: Transient - retry next cycle
}

// Example_verificationError shows the post-pull verification failure.
func Example_verificationError() {
	// A pull reported success but the model never appeared
	err := errors.NewVerificationError("llama3.2")

	fmt.Println(err.Error())

	// Output: model llama3.2 missing from inventory after pull
}

// Example_errorWrapping demonstrates error wrapping patterns.
func Example_errorWrapping() {
	// Original transport error
	originalErr := fmt.Errorf("connection refused")

	// Wrap with endpoint context
	apiErr := errors.WrapAPI("http://localhost:11434/api/tags", 0, originalErr)

	// Wrap with the startup deadline context
	readyErr := errors.NewReadinessError("2m0s", 27, apiErr)

	// The chain reads as a readiness failure
	if errors.IsNotReady(readyErr) {
		fmt.Println("API never became ready")
	}

	// Output: API never became ready
}

// Example_exitCategories maps error categories to process behavior.
func Example_exitCategories() {
	classify := func(err error) string {
		switch {
		case errors.IsConfig(err):
			return "fatal, exit 2"
		case errors.IsEmptySet(err):
			return "nothing to reconcile"
		case errors.IsRetryable(err):
			return "retry next cycle"
		default:
			return "fail the run"
		}
	}

	fmt.Println(classify(errors.NewConfigError("LOOP_INTERVAL", "invalid duration: 'soon'", nil)))
	fmt.Println(classify(errors.ErrEmptyRequiredSet))
	fmt.Println(classify(errors.NewAPIError("http://localhost:11434/api/pull", 500, "boom")))

	// Output:
	// fatal, exit 2
	// nothing to reconcile
	// retry next cycle
}
