package models

import "time"

const (
	ContactStatusNew        = "new"
	ContactStatusProcessing = "processing"
	ContactStatusResolved   = "resolved"
)

type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Phone     *string   `json:"phone"`
	Status    string    `json:"status"` // new, processing, resolved
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Body    string `json:"body"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

type ContactListOptions struct {
	Page   int
	Limit  int
	Status string
	Search string
}

type ContactPagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalContacts int  `json:"totalContacts"`
	Limit         int  `json:"limit"`
	HasNext       bool `json:"hasNext"`
	HasPrev       bool `json:"hasPrev"`
}

type ContactList struct {
	Contacts   []Contact         `json:"contacts"`
	Pagination ContactPagination `json:"pagination"`
}

// ContactStats counts contacts per status in a single pass.
type ContactStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Processing int `json:"processing"`
	Resolved   int `json:"resolved"`
}

// ContactCreated is the trimmed-down payload returned after a successful
// submission; the full record stays internal.
type ContactCreated struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}
