package dto

import "cabdin/internal/domain/models"

// UpdateAdminRequest changes approval, role or password of an admin.
// A new password must come with the current one.
type UpdateAdminRequest struct {
	Status      models.ApprovalStatus `json:"status_approval" validate:"omitempty,oneof=Pending Approved Rejected"`
	Role        models.Role           `json:"role" validate:"omitempty,oneof=Admin Superadmin"`
	NewPassword string                `json:"new_password" validate:"omitempty,min=8,max=72"`
	OldPassword string                `json:"old_password"`
}
