package http

import (
	"log/slog"
	"net/http"

	struktur "cabdin/internal/services/struktur_service"
	"cabdin/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// ListStruktur godoc
// @Summary Struktur organisasi
// @Tags struktur-organisasi
// @Produce json
// @Param id query int false "ID struktur"
// @Success 200 {object} response.Response{data=[]models.OrgStructure}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/struktur-organisasi [get]
func (r *Routers) ListStruktur(c echo.Context) error {
	const op = "http.routers.ListStruktur"

	log := r.log.With(slog.String("op", op))

	id, err := queryID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	list, err := r.StrukturService.List(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, list)
}

// CreateStruktur godoc
// @Summary Tambah struktur organisasi
// @Description Kedua gambar berupa data URI base64
// @Tags struktur-organisasi
// @Accept json
// @Produce json
// @Param request body dto.StrukturRequest true "Gambar struktur dan dokumentasi"
// @Success 201 {object} response.Response{data=models.OrgStructure}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/struktur-organisasi [post]
func (r *Routers) CreateStruktur(c echo.Context) error {
	const op = "http.routers.CreateStruktur"

	log := r.log.With(slog.String("op", op))

	var req dto.StrukturRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	s, err := r.StrukturService.Create(c.Request().Context(), struktur.Input{
		StructureImage:     req.StructureImage,
		DocumentationImage: req.DocumentationImage,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusCreated, s)
}

// UpdateStruktur godoc
// @Summary Ubah struktur organisasi
// @Description Hanya gambar yang dikirim yang diganti
// @Tags struktur-organisasi
// @Accept json
// @Produce json
// @Param id path int true "ID struktur"
// @Param request body dto.StrukturUpdateRequest true "Gambar pengganti"
// @Success 200 {object} response.Response{data=models.OrgStructure}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/struktur-organisasi/{id} [put]
func (r *Routers) UpdateStruktur(c echo.Context) error {
	const op = "http.routers.UpdateStruktur"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.StrukturUpdateRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	s, err := r.StrukturService.Update(c.Request().Context(), id, struktur.Input{
		StructureImage:     req.StructureImage,
		DocumentationImage: req.DocumentationImage,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, s)
}

// DeleteStruktur godoc
// @Summary Hapus struktur organisasi
// @Tags struktur-organisasi
// @Produce json
// @Param id path int true "ID struktur"
// @Success 200 {object} response.Response{data=models.OrgStructure}
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/struktur-organisasi/{id} [delete]
func (r *Routers) DeleteStruktur(c echo.Context) error {
	const op = "http.routers.DeleteStruktur"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	s, err := r.StrukturService.Delete(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, s)
}
