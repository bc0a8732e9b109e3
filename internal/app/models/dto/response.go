package dto

// APIResponse is the single success envelope used by every endpoint:
// {success, message?, data?}. The legacy bare-row shape served by some of
// the portal's earlier endpoints is intentionally not carried forward.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewAPIResponse creates a success envelope around a payload.
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewMessageResponse creates a success envelope carrying only a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}
