package http

import (
	"log/slog"
	"net/http"

	"cabdin/internal/domain/models"
	layanan "cabdin/internal/services/layanan_service"
	"cabdin/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// ListLayanan godoc
// @Summary Dokumen layanan
// @Description date_from dan date_to hanya berlaku jika keduanya diisi
// @Tags layanan
// @Produce json
// @Param id query int false "ID dokumen"
// @Param kind query string false "Jenis layanan"
// @Param jenis_file query string false "MIME type berkas"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Success 200 {object} response.Response{data=[]models.ServiceDocument}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/layanan [get]
func (r *Routers) ListLayanan(c echo.Context) error {
	const op = "http.routers.ListLayanan"

	log := r.log.With(slog.String("op", op))

	id, err := queryID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	list, err := r.LayananService.List(c.Request().Context(), layanan.ListInput{
		ID:       id,
		Kind:     models.ServiceKind(c.QueryParam("kind")),
		FileType: c.QueryParam("jenis_file"),
		DateFrom: c.QueryParam("date_from"),
		DateTo:   c.QueryParam("date_to"),
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, list)
}

// GetLayanan godoc
// @Summary Detail dokumen layanan
// @Tags layanan
// @Produce json
// @Param id path int true "ID dokumen"
// @Success 200 {object} response.Response{data=models.ServiceDocument}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/layanan/{id} [get]
func (r *Routers) GetLayanan(c echo.Context) error {
	const op = "http.routers.GetLayanan"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	doc, err := r.LayananService.Get(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, doc)
}

// CreateLayanan godoc
// @Summary Unggah dokumen layanan
// @Description Berkas dikirim sebagai data URI base64
// @Tags layanan
// @Accept json
// @Produce json
// @Param request body dto.LayananRequest true "Dokumen"
// @Success 201 {object} response.Response{data=models.ServiceDocument}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/layanan [post]
func (r *Routers) CreateLayanan(c echo.Context) error {
	const op = "http.routers.CreateLayanan"

	log := r.log.With(slog.String("op", op))

	var req dto.LayananRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	doc, err := r.LayananService.Create(c.Request().Context(), layanan.CreateInput{
		Title:    req.Title,
		Kind:     req.Kind,
		FileName: req.FileName,
		File:     req.File,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("service document created", slog.Int64("id", doc.ID))

	return ok(c, http.StatusCreated, doc)
}

// UpdateLayanan godoc
// @Summary Ubah dokumen layanan
// @Tags layanan
// @Accept json
// @Produce json
// @Param id path int true "ID dokumen"
// @Param request body dto.LayananUpdateRequest true "Perubahan"
// @Success 200 {object} response.Response{data=models.ServiceDocument}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/layanan/{id} [put]
func (r *Routers) UpdateLayanan(c echo.Context) error {
	const op = "http.routers.UpdateLayanan"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.LayananUpdateRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	doc, err := r.LayananService.Update(c.Request().Context(), id, layanan.UpdateInput{
		Title:    req.Title,
		Kind:     req.Kind,
		FileName: req.FileName,
		File:     req.File,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, doc)
}

// DeleteLayanan godoc
// @Summary Hapus dokumen layanan
// @Tags layanan
// @Produce json
// @Param id path int true "ID dokumen"
// @Success 200 {object} response.Response{data=models.ServiceDocument}
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/layanan/{id} [delete]
func (r *Routers) DeleteLayanan(c echo.Context) error {
	const op = "http.routers.DeleteLayanan"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	doc, err := r.LayananService.Delete(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("service document deleted", slog.Int64("id", id))

	return ok(c, http.StatusOK, doc)
}
