package langflow_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"supermind/pkg/langflow"
)

func newTestClient(t *testing.T, ts *httptest.Server, timeout time.Duration) *langflow.Client {
	t.Helper()
	client := langflow.NewClient(langflow.Config{
		BaseURL:    ts.URL,
		LangflowID: "lf-1",
		FlowID:     "flow-1",
		Token:      "test-token",
		Timeout:    timeout,
	})
	return client
}

func TestRunFlow(t *testing.T) {
	t.Run("Raw Langflow Payload", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/lf/lf-1/api/v1/run/flow-1", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method: %s", r.Method)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("unexpected auth header: %q", got)
			}
			if got := r.URL.Query().Get("stream"); got != "false" {
				t.Errorf("expected stream=false, got %q", got)
			}

			var req map[string]any
			json.NewDecoder(r.Body).Decode(&req)
			if req["input_value"] != "weekly report" {
				t.Errorf("unexpected input_value: %v", req["input_value"])
			}
			if req["input_type"] != "chat" || req["output_type"] != "chat" {
				t.Errorf("chat mode not defaulted: %v", req)
			}

			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"outputs": []map[string]any{
					{"outputs": []map[string]any{
						{"outputs": map[string]any{
							"message": map[string]any{
								"message": map[string]any{"text": "Here is your report."},
							},
						}},
					}},
				},
			})
		})
		ts := httptest.NewServer(mux)
		defer ts.Close()

		out, err := newTestClient(t, ts, 0).RunFlow(context.Background(), langflow.RunInput{InputValue: "weekly report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "Here is your report." {
			t.Errorf("unexpected message: %q", out.Message)
		}
	})

	t.Run("Proxy Success Payload", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Proxy answer"})
		}))
		defer ts.Close()

		out, err := newTestClient(t, ts, 0).RunFlow(context.Background(), langflow.RunInput{InputValue: "q"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "Proxy answer" {
			t.Errorf("unexpected message: %q", out.Message)
		}
	})

	t.Run("Proxy Failure Becomes APIError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "quota exceeded"})
		}))
		defer ts.Close()

		_, err := newTestClient(t, ts, 0).RunFlow(context.Background(), langflow.RunInput{InputValue: "q"})
		var apiErr *langflow.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Detail != "quota exceeded" {
			t.Errorf("unexpected detail: %q", apiErr.Detail)
		}
	})

	t.Run("Server Error Becomes APIError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"detail": "flow crashed"})
		}))
		defer ts.Close()

		_, err := newTestClient(t, ts, 0).RunFlow(context.Background(), langflow.RunInput{InputValue: "q"})
		var apiErr *langflow.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Status != http.StatusInternalServerError {
			t.Errorf("unexpected status: %d", apiErr.Status)
		}
		if apiErr.Detail != "flow crashed" {
			t.Errorf("unexpected detail: %q", apiErr.Detail)
		}
	})

	t.Run("Empty Output Becomes APIError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"outputs": []any{}})
		}))
		defer ts.Close()

		_, err := newTestClient(t, ts, 0).RunFlow(context.Background(), langflow.RunInput{InputValue: "q"})
		var apiErr *langflow.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
	})

	t.Run("Slow Server Becomes ErrTimeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer ts.Close()

		_, err := newTestClient(t, ts, 50*time.Millisecond).RunFlow(context.Background(), langflow.RunInput{InputValue: "q"})
		if !errors.Is(err, langflow.ErrTimeout) {
			t.Errorf("expected ErrTimeout, got %v", err)
		}
	})

	t.Run("Context Deadline Becomes ErrTimeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := newTestClient(t, ts, 0).RunFlow(ctx, langflow.RunInput{InputValue: "q"})
		if !errors.Is(err, langflow.ErrTimeout) {
			t.Errorf("expected ErrTimeout, got %v", err)
		}
	})

	t.Run("Dead Server Becomes ErrUnreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()

		_, err := newTestClient(t, ts, 0).RunFlow(context.Background(), langflow.RunInput{InputValue: "q"})
		if !errors.Is(err, langflow.ErrUnreachable) {
			t.Errorf("expected ErrUnreachable, got %v", err)
		}
	})
}
