package models

import "time"

const (
	RecruitStatusNew        = "new"
	RecruitStatusProcessing = "processing"
	RecruitStatusConfirmed  = "confirmed"
	RecruitStatusRejected   = "rejected"
)

type Recruit struct {
	ID             int       `json:"id"`
	ParentName     string    `json:"parentName"`
	ParentPhone    string    `json:"parentPhone"`
	ParentEmail    *string   `json:"parentEmail"`
	ChildName      string    `json:"childName"`
	ChildBirthdate string    `json:"childBirthdate"`
	Program        *string   `json:"program"`
	Schedule       *string   `json:"schedule"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status"` // new, processing, confirmed, rejected
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateRecruitRequest struct {
	ParentName     string `json:"parentName"`
	ParentPhone    string `json:"parentPhone"`
	ParentEmail    string `json:"parentEmail"`
	ChildName      string `json:"childName"`
	ChildBirthdate string `json:"childBirthdate"`
	Program        string `json:"program"`
	Schedule       string `json:"schedule"`
	Notes          string `json:"notes"`
}

type RecruitListOptions struct {
	Page    int
	Limit   int
	Status  string
	Program string
	Search  string
}

type RecruitPagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

type RecruitList struct {
	Recruits   []Recruit         `json:"recruits"`
	Pagination RecruitPagination `json:"pagination"`
}
