package http

import (
	"log/slog"
	"net/http"
	"strings"

	content "cabdin/internal/services/content_service"
	"cabdin/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// ContentRoutes serves one content module. The same handlers back berita,
// inovasi, cerita praktik baik and seputar cabdin.
type ContentRoutes struct {
	log *slog.Logger
	r   *Routers
	svc ContentService
}

func (r *Routers) Content(m ContentModule) *ContentRoutes {
	return &ContentRoutes{
		log: r.log.With(slog.String("module", strings.TrimPrefix(m.Path, "/"))),
		r:   r,
		svc: m.Service,
	}
}

// List godoc
// @Summary Daftar konten
// @Description Tanpa id mengembalikan semua data, terbaru lebih dulu
// @Tags konten
// @Produce json
// @Param module path string true "berita, inovasi, cerita-praktik-baik atau seputar-cabdin"
// @Param id query int false "ID konten"
// @Success 200 {object} response.Response{data=[]models.ContentJoined}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/{module} [get]
func (h *ContentRoutes) List(c echo.Context) error {
	const op = "http.content.List"

	log := h.log.With(slog.String("op", op))

	id, err := queryID(c, "id")
	if err != nil {
		return h.r.fail(c, log, err)
	}

	if id != nil {
		rec, err := h.svc.Get(c.Request().Context(), *id)
		if err != nil {
			return h.r.fail(c, log, err)
		}
		return ok(c, http.StatusOK, rec)
	}

	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return h.r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, list)
}

// Get godoc
// @Summary Detail konten
// @Tags konten
// @Produce json
// @Param module path string true "Modul konten"
// @Param id path int true "ID konten"
// @Success 200 {object} response.Response{data=models.ContentJoined}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/{module}/{id} [get]
func (h *ContentRoutes) Get(c echo.Context) error {
	const op = "http.content.Get"

	log := h.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return h.r.fail(c, log, err)
	}

	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, rec)
}

// Filter godoc
// @Summary Cari konten
// @Tags konten
// @Produce json
// @Param module path string true "Modul konten"
// @Param judul query string false "Potongan judul"
// @Param penulis query string false "Potongan nama penulis"
// @Param tanggal query string false "YYYY, YYYY-MM atau YYYY-MM-DD"
// @Success 200 {object} response.Response{data=[]models.ContentJoined}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/{module}/filter [get]
func (h *ContentRoutes) Filter(c echo.Context) error {
	const op = "http.content.Filter"

	list, err := h.svc.Filter(c.Request().Context(), content.FilterInput{
		Title:  c.QueryParam("judul"),
		Author: c.QueryParam("penulis"),
		Date:   c.QueryParam("tanggal"),
	})
	if err != nil {
		return h.r.fail(c, h.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, list)
}

// Create godoc
// @Summary Tambah konten
// @Description Gambar berupa data URI base64 atau URL http(s). Hanya gambar pertama yang disimpan.
// @Tags konten
// @Accept json
// @Produce json
// @Param module path string true "Modul konten"
// @Param request body dto.ContentRequest true "Data konten"
// @Success 201 {object} response.Response{data=models.ContentJoined}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/{module} [post]
func (h *ContentRoutes) Create(c echo.Context) error {
	const op = "http.content.Create"

	log := h.log.With(slog.String("op", op))

	var req dto.ContentRequest
	if err := bind(c, &req); err != nil {
		return h.r.fail(c, log, err)
	}

	publishedAt, err := parseTime(req.PublishedAt)
	if err != nil {
		return h.r.fail(c, log, err)
	}

	rec, err := h.svc.Create(c.Request().Context(), content.CreateInput{
		Title:       req.Title,
		Author:      req.Author,
		Body:        req.Body,
		PublishedAt: publishedAt,
		Image:       firstImage(req.Images),
	})
	if err != nil {
		return h.r.fail(c, log, err)
	}

	log.Info("content created", slog.Int64("id", rec.ID))

	return ok(c, http.StatusCreated, rec)
}

// Update godoc
// @Summary Ubah konten
// @Description Field kosong tidak diubah. Data URI mengganti gambar lama.
// @Tags konten
// @Accept json
// @Produce json
// @Param module path string true "Modul konten"
// @Param id path int true "ID konten"
// @Param request body dto.ContentUpdateRequest true "Perubahan"
// @Success 200 {object} response.Response{data=models.ContentJoined}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/{module}/{id} [put]
func (h *ContentRoutes) Update(c echo.Context) error {
	const op = "http.content.Update"

	log := h.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return h.r.fail(c, log, err)
	}

	var req dto.ContentUpdateRequest
	if err := bind(c, &req); err != nil {
		return h.r.fail(c, log, err)
	}

	publishedAt, err := parseTime(req.PublishedAt)
	if err != nil {
		return h.r.fail(c, log, err)
	}

	rec, err := h.svc.Update(c.Request().Context(), id, content.UpdateInput{
		Title:       req.Title,
		Author:      req.Author,
		Body:        req.Body,
		PublishedAt: publishedAt,
		Image:       firstImage(req.Images),
	})
	if err != nil {
		return h.r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, rec)
}

// Delete godoc
// @Summary Hapus konten
// @Description Menghapus konten beserta gambar dan berkasnya
// @Tags konten
// @Produce json
// @Param module path string true "Modul konten"
// @Param id path int true "ID konten"
// @Success 200 {object} response.Response{data=models.ContentJoined}
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/{module}/{id} [delete]
func (h *ContentRoutes) Delete(c echo.Context) error {
	const op = "http.content.Delete"

	log := h.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return h.r.fail(c, log, err)
	}

	rec, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return h.r.fail(c, log, err)
	}

	log.Info("content deleted", slog.Int64("id", id))

	return ok(c, http.StatusOK, rec)
}

func firstImage(images []dto.ImageRequest) *content.ImageInput {
	if len(images) == 0 {
		return nil
	}
	return &content.ImageInput{
		URL:     images[0].URL,
		Caption: images[0].Caption,
	}
}
