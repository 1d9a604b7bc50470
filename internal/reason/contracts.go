package reason

import "context"

// Completer is the request/response contract to a text-completion service.
// Implementations pin temperature to zero so classification stays
// reproducible across runs.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
