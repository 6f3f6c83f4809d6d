package model

// ValidationErrorItem describes one rejected request field
type ValidationErrorItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is returned with 422 when a body fails binding
type ValidationErrorResponse struct {
	Detail []ValidationErrorItem `json:"detail"`
}
