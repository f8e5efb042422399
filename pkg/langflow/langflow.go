package langflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// Client is the Langflow flow-execution HTTP API client.
type Client struct {
	baseURL    string
	langflowID string
	flowID     string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Langflow client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		langflowID: cfg.LangflowID,
		flowID:     cfg.FlowID,
		token:      cfg.Token,
		httpClient: httpClient,
	}
}

// SetAPIURL overrides the base URL. Used by tests to point at a local server.
func (c *Client) SetAPIURL(url string) {
	c.baseURL = url
}

// RunFlow executes the flow once, synchronously (stream=false), and drills
// down to the final message text.
func (c *Client) RunFlow(ctx context.Context, input RunInput) (RunOutput, error) {
	if input.InputType == "" {
		input.InputType = InputTypeChat
	}
	if input.OutputType == "" {
		input.OutputType = OutputTypeChat
	}

	url := fmt.Sprintf("%s/lf/%s/api/v1/run/%s?stream=false", c.baseURL, c.langflowID, c.flowID)

	body, err := json.Marshal(runRequest{
		InputValue: input.InputValue,
		InputType:  input.InputType,
		OutputType: input.OutputType,
		Tweaks:     input.Tweaks,
	})
	if err != nil {
		return RunOutput{}, fmt.Errorf("langflow: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return RunOutput{}, fmt.Errorf("langflow: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return RunOutput{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return RunOutput{}, apiErrorFromBody(resp)
	}

	var result runResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return RunOutput{}, fmt.Errorf("langflow: failed to decode response: %w", err)
	}

	return extractMessage(result)
}

// classifyTransportError maps a transport-level failure onto the sentinel
// errors. Timeouts win over generic connectivity failures.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// apiErrorFromBody builds an APIError from a non-2xx response, using the
// server-supplied detail when the body carries one.
func apiErrorFromBody(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var parsed runResponse
	if jsonErr := json.Unmarshal(raw, &parsed); jsonErr == nil {
		switch {
		case parsed.Error != "":
			apiErr.Detail = parsed.Error
		case parsed.Detail != "":
			apiErr.Detail = parsed.Detail
		}
	}
	return apiErr
}

// extractMessage drills into the run payload for the final message text.
func extractMessage(result runResponse) (RunOutput, error) {
	// Proxy shape: {success, message|error}.
	if result.Success != nil {
		if !*result.Success {
			return RunOutput{}, &APIError{Status: http.StatusOK, Detail: result.Error}
		}
		return RunOutput{Message: result.Message}, nil
	}

	// Raw Langflow shape: outputs[0].outputs[0].outputs.message.message.text.
	if len(result.Outputs) > 0 && len(result.Outputs[0].Outputs) > 0 {
		text := result.Outputs[0].Outputs[0].Outputs.Message.Message.Text
		if text != "" {
			return RunOutput{Message: text}, nil
		}
	}

	if result.Message != "" {
		return RunOutput{Message: result.Message}, nil
	}

	return RunOutput{}, &APIError{Status: http.StatusOK, Detail: "empty flow output"}
}
