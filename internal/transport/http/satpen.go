package http

import (
	"log/slog"
	"net/http"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	satpen "cabdin/internal/services/satpen_service"
	"cabdin/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// Satuan pendidikan

// ListSchools godoc
// @Summary Daftar satuan pendidikan
// @Tags satpen
// @Produce json
// @Param nama query string false "Potongan nama sekolah"
// @Param jenis query string false "Nama jenis sekolah"
// @Success 200 {object} response.Response{data=[]models.SchoolView}
// @Router /api/v1/satpen [get]
func (r *Routers) ListSchools(c echo.Context) error {
	const op = "http.routers.ListSchools"

	list, err := r.SatpenService.ListSchools(c.Request().Context(), models.SchoolFilter{
		Name: c.QueryParam("nama"),
		Kind: c.QueryParam("jenis"),
	})
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, list)
}

// GetSchool godoc
// @Summary Detail satuan pendidikan
// @Tags satpen
// @Produce json
// @Param npsn path string true "NPSN"
// @Success 200 {object} response.Response{data=models.SchoolView}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/satpen/{npsn} [get]
func (r *Routers) GetSchool(c echo.Context) error {
	const op = "http.routers.GetSchool"

	school, err := r.SatpenService.GetSchool(c.Request().Context(), c.Param("npsn"))
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, school)
}

// CreateSchool godoc
// @Summary Tambah satuan pendidikan
// @Tags satpen
// @Accept json
// @Produce json
// @Param request body dto.SchoolRequest true "Data sekolah"
// @Success 201 {object} response.Response{data=models.SchoolView}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "NPSN sudah terdaftar"
// @Security BearerAuth
// @Router /api/v1/satpen [post]
func (r *Routers) CreateSchool(c echo.Context) error {
	const op = "http.routers.CreateSchool"

	log := r.log.With(slog.String("op", op))

	var req dto.SchoolRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	school, err := r.SatpenService.CreateSchool(c.Request().Context(), satpen.SchoolInput{
		NPSN:       req.NPSN,
		Name:       req.Name,
		KindID:     req.KindID,
		Status:     req.Status,
		Address:    req.Address,
		LocationID: req.LocationID,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("school created", slog.String("npsn", school.NPSN))

	return ok(c, http.StatusCreated, school)
}

// UpdateSchool godoc
// @Summary Ubah satuan pendidikan
// @Description Field kosong tidak diubah
// @Tags satpen
// @Accept json
// @Produce json
// @Param npsn path string true "NPSN"
// @Param request body dto.SchoolUpdateRequest true "Perubahan"
// @Success 200 {object} response.Response{data=models.SchoolView}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/satpen/{npsn} [put]
func (r *Routers) UpdateSchool(c echo.Context) error {
	const op = "http.routers.UpdateSchool"

	log := r.log.With(slog.String("op", op))

	var req dto.SchoolUpdateRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	school, err := r.SatpenService.UpdateSchool(c.Request().Context(), c.Param("npsn"), satpen.SchoolUpdate{
		Name:       req.Name,
		KindID:     req.KindID,
		Status:     req.Status,
		Address:    req.Address,
		LocationID: req.LocationID,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, school)
}

// DeleteSchool godoc
// @Summary Hapus satuan pendidikan
// @Tags satpen
// @Produce json
// @Param npsn path string true "NPSN"
// @Success 200 {object} response.Response{data=models.SchoolView}
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/satpen/{npsn} [delete]
func (r *Routers) DeleteSchool(c echo.Context) error {
	const op = "http.routers.DeleteSchool"

	log := r.log.With(slog.String("op", op))

	school, err := r.SatpenService.DeleteSchool(c.Request().Context(), c.Param("npsn"))
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("school deleted", slog.String("npsn", school.NPSN))

	return ok(c, http.StatusOK, school)
}

// Lokasi

// ListLocations godoc
// @Summary Daftar lokasi
// @Tags lokasi
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Location}
// @Router /api/v1/lokasi [get]
func (r *Routers) ListLocations(c echo.Context) error {
	const op = "http.routers.ListLocations"

	list, err := r.SatpenService.ListLocations(c.Request().Context())
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, list)
}

// GetLocation godoc
// @Summary Detail lokasi
// @Tags lokasi
// @Produce json
// @Param id path int true "ID lokasi"
// @Success 200 {object} response.Response{data=models.Location}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/lokasi/{id} [get]
func (r *Routers) GetLocation(c echo.Context) error {
	const op = "http.routers.GetLocation"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	loc, err := r.SatpenService.GetLocation(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, loc)
}

// CreateLocation godoc
// @Summary Tambah lokasi
// @Tags lokasi
// @Accept json
// @Produce json
// @Param request body dto.LocationRequest true "Data lokasi"
// @Success 201 {object} response.Response{data=models.Location}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/lokasi [post]
func (r *Routers) CreateLocation(c echo.Context) error {
	const op = "http.routers.CreateLocation"

	log := r.log.With(slog.String("op", op))

	var req dto.LocationRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	loc, err := r.SatpenService.CreateLocation(c.Request().Context(), locationInput(req))
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusCreated, loc)
}

// UpdateLocation godoc
// @Summary Ubah lokasi
// @Tags lokasi
// @Accept json
// @Produce json
// @Param id path int true "ID lokasi"
// @Param request body dto.LocationRequest true "Perubahan"
// @Success 200 {object} response.Response{data=models.Location}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/lokasi/{id} [put]
func (r *Routers) UpdateLocation(c echo.Context) error {
	const op = "http.routers.UpdateLocation"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.LocationRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	loc, err := r.SatpenService.UpdateLocation(c.Request().Context(), id, locationInput(req))
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, loc)
}

// DeleteLocation godoc
// @Summary Hapus lokasi
// @Tags lokasi
// @Produce json
// @Param id path int true "ID lokasi"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Lokasi masih dipakai"
// @Security BearerAuth
// @Router /api/v1/lokasi/{id} [delete]
func (r *Routers) DeleteLocation(c echo.Context) error {
	const op = "http.routers.DeleteLocation"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.SatpenService.DeleteLocation(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, map[string]int64{"id": id})
}

// Jenis sekolah

// ListKinds godoc
// @Summary Daftar jenis sekolah
// @Tags jenis-sekolah
// @Produce json
// @Success 200 {object} response.Response{data=[]models.SchoolKind}
// @Router /api/v1/jenis-sekolah [get]
func (r *Routers) ListKinds(c echo.Context) error {
	const op = "http.routers.ListKinds"

	list, err := r.SatpenService.ListKinds(c.Request().Context())
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, list)
}

// GetKind godoc
// @Summary Detail jenis sekolah
// @Tags jenis-sekolah
// @Produce json
// @Param id path int true "ID jenis"
// @Success 200 {object} response.Response{data=models.SchoolKind}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/jenis-sekolah/{id} [get]
func (r *Routers) GetKind(c echo.Context) error {
	const op = "http.routers.GetKind"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	kind, err := r.SatpenService.GetKind(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, kind)
}

// CreateKind godoc
// @Summary Tambah jenis sekolah
// @Tags jenis-sekolah
// @Accept json
// @Produce json
// @Param request body dto.KindRequest true "Nama jenis"
// @Success 201 {object} response.Response{data=models.SchoolKind}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/jenis-sekolah [post]
func (r *Routers) CreateKind(c echo.Context) error {
	const op = "http.routers.CreateKind"

	log := r.log.With(slog.String("op", op))

	var req dto.KindRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	kind, err := r.SatpenService.CreateKind(c.Request().Context(), req.Name)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusCreated, kind)
}

// UpdateKind godoc
// @Summary Ubah jenis sekolah
// @Tags jenis-sekolah
// @Accept json
// @Produce json
// @Param id path int true "ID jenis"
// @Param request body dto.KindRequest true "Nama jenis"
// @Success 200 {object} response.Response{data=models.SchoolKind}
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/jenis-sekolah/{id} [put]
func (r *Routers) UpdateKind(c echo.Context) error {
	const op = "http.routers.UpdateKind"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.KindRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	kind, err := r.SatpenService.UpdateKind(c.Request().Context(), id, req.Name)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, kind)
}

// DeleteKind godoc
// @Summary Hapus jenis sekolah
// @Description Ikon ikut terhapus. Gagal jika masih ada sekolah dengan jenis ini.
// @Tags jenis-sekolah
// @Produce json
// @Param id path int true "ID jenis"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/jenis-sekolah/{id} [delete]
func (r *Routers) DeleteKind(c echo.Context) error {
	const op = "http.routers.DeleteKind"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.SatpenService.DeleteKind(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	log.Info("school kind deleted", slog.Int64("id", id))

	return ok(c, http.StatusOK, map[string]int64{"id": id})
}

// CreateKindIcon godoc
// @Summary Tambah ikon jenis sekolah
// @Tags jenis-sekolah
// @Accept json
// @Produce json
// @Param request body dto.KindIconRequest true "Ikon (data URI atau URL http(s))"
// @Success 201 {object} response.Response{data=models.SchoolKindIcon}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/jenis-sekolah/gambar [post]
func (r *Routers) CreateKindIcon(c echo.Context) error {
	const op = "http.routers.CreateKindIcon"

	log := r.log.With(slog.String("op", op))

	var req dto.KindIconRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}
	if req.KindID == 0 {
		return r.fail(c, log, apperr.BadRequest("id_jenis wajib diisi"))
	}

	icon, err := r.SatpenService.CreateKindIcon(c.Request().Context(), req.KindID, req.Image)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusCreated, icon)
}

// UpdateKindIcon godoc
// @Summary Ganti ikon jenis sekolah
// @Description Ikon lama dihapus dari storage
// @Tags jenis-sekolah
// @Accept json
// @Produce json
// @Param id path int true "ID ikon"
// @Param request body dto.KindIconRequest true "Ikon baru"
// @Success 200 {object} response.Response{data=models.SchoolKindIcon}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/jenis-sekolah/gambar/{id} [put]
func (r *Routers) UpdateKindIcon(c echo.Context) error {
	const op = "http.routers.UpdateKindIcon"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.KindIconRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	icon, err := r.SatpenService.UpdateKindIcon(c.Request().Context(), id, req.KindID, req.Image)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, icon)
}

// DeleteKindIcon godoc
// @Summary Hapus ikon jenis sekolah
// @Tags jenis-sekolah
// @Produce json
// @Param id path int true "ID ikon"
// @Success 200 {object} response.Response{data=models.SchoolKindIcon}
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/jenis-sekolah/gambar/{id} [delete]
func (r *Routers) DeleteKindIcon(c echo.Context) error {
	const op = "http.routers.DeleteKindIcon"

	log := r.log.With(slog.String("op", op))

	id, err := paramID(c, "id")
	if err != nil {
		return r.fail(c, log, err)
	}

	icon, err := r.SatpenService.DeleteKindIcon(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, icon)
}

func locationInput(req dto.LocationRequest) satpen.LocationInput {
	return satpen.LocationInput{
		Kelurahan:  req.Kelurahan,
		Kecamatan:  req.Kecamatan,
		Kabupaten:  req.Kabupaten,
		Provinsi:   req.Provinsi,
		StreetName: req.StreetName,
	}
}
