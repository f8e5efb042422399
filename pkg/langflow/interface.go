package langflow

import "context"

// ILangflow defines the interface for the Langflow flow-execution client.
// Implementations are safe for concurrent use.
type ILangflow interface {
	// RunFlow executes the configured flow once and returns the final
	// AI-generated message text.
	RunFlow(ctx context.Context, input RunInput) (RunOutput, error)
}

// New creates a new Langflow client with the given configuration.
func New(cfg Config) (ILangflow, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return NewClient(cfg), nil
}
