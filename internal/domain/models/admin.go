package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSuperadmin Role = "Superadmin"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Admin is a panel account. Login, role and approval live in one row.
type Admin struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Email        string         `db:"email" json:"email"`
	PasswordHash []byte         `db:"password_hash" json:"-"`
	Role         Role           `db:"role" json:"role"`
	Status       ApprovalStatus `db:"status_approval" json:"status_approval"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

func (a Admin) IsApprovedSuperadmin() bool {
	return a.Role == RoleSuperadmin && a.Status == StatusApproved
}

type AdminFilter struct {
	Role   Role
	Status ApprovalStatus
	Email  string
}
