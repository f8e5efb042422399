package langflow

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config holds connection settings for a Langflow deployment.
type Config struct {
	BaseURL    string
	LangflowID string
	FlowID     string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func (c Config) validate() error {
	if c.BaseURL == "" {
		return errors.New("langflow: base URL is required")
	}
	if c.LangflowID == "" {
		return errors.New("langflow: langflow ID is required")
	}
	if c.FlowID == "" {
		return errors.New("langflow: flow ID is required")
	}
	return nil
}

// RunInput is a single flow-execution request. Tweaks are per-component
// configuration overrides passed through to the flow unchanged.
type RunInput struct {
	InputValue string
	InputType  string
	OutputType string
	Tweaks     map[string]map[string]any
}

// RunOutput is the final message text produced by the flow.
type RunOutput struct {
	Message string
}

// Sentinel errors for failure classification. Callers check these with
// errors.Is / errors.As in a fixed priority order: timeout first, then
// transport, then server-reported.
var (
	ErrTimeout     = errors.New("langflow: request timed out")
	ErrUnreachable = errors.New("langflow: engine unreachable")
)

// APIError is a failure the engine itself reported, either as a non-2xx
// status or as a success=false body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("langflow: API error %d", e.Status)
	}
	return fmt.Sprintf("langflow: API error %d: %s", e.Status, e.Detail)
}

// --- wire types ---

type runRequest struct {
	InputValue string                    `json:"input_value"`
	InputType  string                    `json:"input_type"`
	OutputType string                    `json:"output_type"`
	Tweaks     map[string]map[string]any `json:"tweaks"`
}

// runResponse accepts both the raw Langflow run payload and the flattened
// {success, message|error} proxy shape.
type runResponse struct {
	Success *bool       `json:"success,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Detail  string      `json:"detail,omitempty"`
	Outputs []runOutput `json:"outputs,omitempty"`
}

type runOutput struct {
	Outputs []componentOutput `json:"outputs"`
}

type componentOutput struct {
	Outputs struct {
		Message struct {
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"message"`
	} `json:"outputs"`
}
