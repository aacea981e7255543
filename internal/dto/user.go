package dto

import (
	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// CreateUserRequest carries the fields for creating a user account.
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3"`
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required"`
	MemberID *string `json:"memberID"`
}

// UpdateUserRequest carries a partial user update.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role"`
	MemberID *string `json:"memberID"`
}

// ListUsersResponse wraps the scoped users.
type ListUsersResponse struct {
	Users []domain.User `json:"users"`
}
