package app

import (
	"github.com/tarinyoom/llm-stack/cmd/application"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
