package http

import (
	"log/slog"
	"net/http"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/middleware"
	admin "cabdin/internal/services/admin_service"
	"cabdin/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListAdmins godoc
// @Summary Daftar admin
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Admin}
// @Failure 403 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin [get]
func (r *Routers) ListAdmins(c echo.Context) error {
	const op = "http.routers.ListAdmins"

	list, err := r.AdminService.List(c.Request().Context())
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, list)
}

// FilterAdmins godoc
// @Summary Filter admin
// @Tags admin
// @Produce json
// @Param role query string false "Admin atau Superadmin"
// @Param status query string false "Pending, Approved atau Rejected"
// @Param email query string false "Potongan email"
// @Success 200 {object} response.Response{data=[]models.Admin}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/filter [get]
func (r *Routers) FilterAdmins(c echo.Context) error {
	const op = "http.routers.FilterAdmins"

	list, err := r.AdminService.Filter(c.Request().Context(), models.AdminFilter{
		Role:   models.Role(c.QueryParam("role")),
		Status: models.ApprovalStatus(c.QueryParam("status")),
		Email:  c.QueryParam("email"),
	})
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, list)
}

// GetAdmin godoc
// @Summary Detail admin
// @Tags admin
// @Produce json
// @Param id path string true "UUID admin"
// @Success 200 {object} response.Response{data=models.Admin}
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/{id} [get]
func (r *Routers) GetAdmin(c echo.Context) error {
	const op = "http.routers.GetAdmin"

	log := r.log.With(slog.String("op", op))

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	a, err := r.AdminService.Get(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, a)
}

// UpdateAdmin godoc
// @Summary Ubah admin
// @Description Mengubah status persetujuan, role atau password. Ganti password wajib menyertakan old_password.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "UUID admin"
// @Param request body dto.UpdateAdminRequest true "Perubahan"
// @Success 200 {object} response.Response{data=models.Admin}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/{id} [put]
func (r *Routers) UpdateAdmin(c echo.Context) error {
	const op = "http.routers.UpdateAdmin"

	log := r.log.With(slog.String("op", op))

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.UpdateAdminRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	a, err := r.AdminService.Update(c.Request().Context(), id, admin.UpdateInput{
		Status:      req.Status,
		Role:        req.Role,
		NewPassword: req.NewPassword,
		OldPassword: req.OldPassword,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("admin updated", slog.String("id", id.String()))

	return ok(c, http.StatusOK, a)
}

// DeleteAdmin godoc
// @Summary Hapus admin
// @Tags admin
// @Produce json
// @Param id path string true "UUID admin"
// @Success 200 {object} response.Response{data=models.Admin}
// @Failure 400 {object} response.ErrorResponse "Tidak dapat menghapus diri sendiri"
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/{id} [delete]
func (r *Routers) DeleteAdmin(c echo.Context) error {
	const op = "http.routers.DeleteAdmin"

	log := r.log.With(slog.String("op", op))

	id, err := paramUUID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	actor, found := middleware.UserID(c)
	if !found {
		return r.fail(c, log, apperr.Unauthorized("autentikasi diperlukan"))
	}

	removed, err := r.AdminService.Delete(c.Request().Context(), actor, id)
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("admin deleted", slog.String("id", id.String()), slog.String("by", actor.String()))

	return ok(c, http.StatusOK, removed)
}

func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("parameter %s harus berupa UUID", name)
	}
	return id, nil
}
