package dto

// DeleteResponse acknowledges a successful deletion.
type DeleteResponse struct {
	Status string `json:"status"`
}

// NewDeleteResponse returns the standard deletion acknowledgment.
func NewDeleteResponse() DeleteResponse {
	return DeleteResponse{Status: "deleted"}
}

// ErrorBody carries the message and status of a failed request.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the JSON body returned for every error.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
