package dto

import (
	"time"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// CreateMemberRequest carries the fields for adding a member to the roll.
type CreateMemberRequest struct {
	FirstName      string     `json:"firstName" binding:"required"`
	LastName       string     `json:"lastName" binding:"required"`
	Email          string     `json:"email" binding:"omitempty,email"`
	Phone          string     `json:"phone"`
	Location       string     `json:"location"`
	Groups         []string   `json:"groups"`
	Status         string     `json:"status"`
	MembershipType string     `json:"membershipType"`
	JoinDate       *time.Time `json:"joinDate"`
}

// UpdateMemberRequest carries a partial member update. Pointer fields
// distinguish omitted from zero values.
type UpdateMemberRequest struct {
	FirstName      *string   `json:"firstName"`
	LastName       *string   `json:"lastName"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	Phone          *string   `json:"phone"`
	Location       *string   `json:"location"`
	Groups         *[]string `json:"groups"`
	Status         *string   `json:"status"`
	MembershipType *string   `json:"membershipType"`
}

// ListMembersParams are the query parameters for listing members.
type ListMembersParams struct {
	ListParams
	Status string `form:"status"`
	Group  string `form:"group"`
}

// ListMembersResponse wraps a page of members.
type ListMembersResponse struct {
	Members   []domain.Member `json:"members"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ImportMembersResponse summarizes a CSV import.
type ImportMembersResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
