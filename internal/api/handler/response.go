package handler

// maxSearchQueryLen caps the query parameter on search routes.
const maxSearchQueryLen = 255

// envelope is the success payload shape shared across the API. Message, Status
// and Data are each optional; handlers fill in whichever their route contract
// requires.
type envelope struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
