package langflow

import "time"

const (
	// InputTypeChat / OutputTypeChat pin the flow to conversational mode.
	InputTypeChat  = "chat"
	OutputTypeChat = "chat"

	// DefaultTimeout bounds a single flow-execution call. There is no retry;
	// a slow flow surfaces as ErrTimeout to the caller.
	DefaultTimeout = 60 * time.Second
)
