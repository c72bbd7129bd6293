package fiber

// EventBatchRequest is the event-surface payload. Records stay raw maps so
// the validator can distinguish missing, mistyped and malformed fields.
type EventBatchRequest struct {
	Events []map[string]any `json:"events"`
}

// ActionBatchRequest is the action-surface payload.
type ActionBatchRequest struct {
	Actions []map[string]any `json:"actions"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message,omitempty"`
}
