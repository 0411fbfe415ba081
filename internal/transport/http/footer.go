package http

import (
	"log/slog"
	"net/http"

	footer "cabdin/internal/services/footer_service"
	"cabdin/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// ListFooter godoc
// @Summary Kontak footer
// @Tags footer
// @Produce json
// @Param id query int false "ID footer"
// @Success 200 {object} response.Response{data=[]models.Footer}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/footer [get]
func (r *Routers) ListFooter(c echo.Context) error {
	const op = "http.routers.ListFooter"

	log := r.log.With(slog.String("op", op))

	id, err := queryID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	if id != nil {
		f, err := r.FooterService.Get(c.Request().Context(), *id)
		if err != nil {
			return r.fail(c, log, err)
		}
		return ok(c, http.StatusOK, f)
	}

	list, err := r.FooterService.List(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, list)
}

// UpdateFooter godoc
// @Summary Ubah kontak footer
// @Description Field kosong tidak diubah
// @Tags footer
// @Accept json
// @Produce json
// @Param id path int true "ID footer"
// @Param request body dto.FooterRequest true "Perubahan"
// @Success 200 {object} response.Response{data=models.Footer}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/footer/{id} [put]
func (r *Routers) UpdateFooter(c echo.Context) error {
	const op = "http.routers.UpdateFooter"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.FooterRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	f, err := r.FooterService.Update(c.Request().Context(), id, footer.UpdateInput{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, f)
}
