package dto

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListParams are the shared cursor-pagination query parameters.
type ListParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}
