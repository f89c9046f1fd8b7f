package demo

// body accepted by the echo endpoint
type EchoRequest struct {
	Message string `json:"message" binding:"required"`
	Status  int    `json:"status"`
}

type EchoResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// classification of a status code
type CodeResponse struct {
	Code          int    `json:"code"`
	Class         string `json:"class"`
	IsErrorCode   bool   `json:"is_error_code"`
	ResolvesTo    int    `json:"resolves_to"`
	SuccessStatus int    `json:"success_status"`
}
