package http

import (
	"log/slog"
	"net/http"

	prakata "cabdin/internal/services/prakata_service"
	"cabdin/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// ListPrakata godoc
// @Summary Daftar prakata
// @Tags prakata
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Prakata}
// @Router /api/v1/prakata [get]
func (r *Routers) ListPrakata(c echo.Context) error {
	const op = "http.routers.ListPrakata"

	list, err := r.PrakataService.List(c.Request().Context())
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, list)
}

// CreatePrakata godoc
// @Summary Tambah prakata
// @Tags prakata
// @Accept json
// @Produce json
// @Param request body dto.PrakataRequest true "Data prakata"
// @Success 201 {object} response.Response{data=models.Prakata}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/prakata [post]
func (r *Routers) CreatePrakata(c echo.Context) error {
	const op = "http.routers.CreatePrakata"

	log := r.log.With(slog.String("op", op))

	var req dto.PrakataRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	p, err := r.PrakataService.Create(c.Request().Context(), prakataInput(req))
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusCreated, p)
}

// UpdatePrakata godoc
// @Summary Ubah prakata
// @Description Semua field diganti
// @Tags prakata
// @Accept json
// @Produce json
// @Param id path int true "ID prakata"
// @Param request body dto.PrakataRequest true "Data prakata"
// @Success 200 {object} response.Response{data=models.Prakata}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/prakata/{id} [put]
func (r *Routers) UpdatePrakata(c echo.Context) error {
	const op = "http.routers.UpdatePrakata"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.PrakataRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	p, err := r.PrakataService.Update(c.Request().Context(), id, prakataInput(req))
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, p)
}

// DeletePrakata godoc
// @Summary Hapus prakata
// @Tags prakata
// @Produce json
// @Param id path int true "ID prakata"
// @Success 200 {object} response.Response{data=models.Prakata}
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/prakata/{id} [delete]
func (r *Routers) DeletePrakata(c echo.Context) error {
	const op = "http.routers.DeletePrakata"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	p, err := r.PrakataService.Delete(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, p)
}

func prakataInput(req dto.PrakataRequest) prakata.Input {
	return prakata.Input{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		Closing:  req.Closing,
	}
}
