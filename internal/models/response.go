package models

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
	SearchInfo *SearchInfo `json:"searchInfo,omitempty"`
	Error      string      `json:"error,omitempty"`
}
