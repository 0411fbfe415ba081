package http

import (
	"log/slog"
	"net/http"

	"cabdin/internal/domain/models"
	dashboard "cabdin/internal/services/dashboard_service"

	"github.com/labstack/echo/v4"
)

// DashboardAdmins godoc
// @Summary Jumlah admin per role
// @Tags dashboard
// @Produce json
// @Param role query string false "Admin atau Superadmin"
// @Success 200 {object} response.Response{data=[]models.NamedCount}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/admin [get]
func (r *Routers) DashboardAdmins(c echo.Context) error {
	const op = "http.routers.DashboardAdmins"

	counts, err := r.DashboardService.AdminCount(c.Request().Context(), models.Role(c.QueryParam("role")))
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, http.StatusOK, counts)
}

// DashboardNews godoc
// @Summary Jumlah berita per bulan
// @Description Tanpa filter menghitung tahun berjalan
// @Tags dashboard
// @Produce json
// @Param tanggal_mulai query string false "YYYY-MM-DD"
// @Param tanggal_akhir query string false "YYYY-MM-DD"
// @Param tahun query int false "Tahun"
// @Param tahun_mulai query int false "Tahun awal"
// @Param tahun_akhir query int false "Tahun akhir"
// @Param bulan_mulai query int false "Bulan awal (1-12), bersama tahun"
// @Param bulan_akhir query int false "Bulan akhir (1-12), bersama tahun"
// @Success 200 {object} response.Response{data=[]models.MonthlyCount}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/berita [get]
func (r *Routers) DashboardNews(c echo.Context) error {
	const op = "http.routers.DashboardNews"

	log := r.log.With(slog.String("op", op))

	f := dashboard.NewsFilter{
		DateFrom: c.QueryParam("tanggal_mulai"),
		DateTo:   c.QueryParam("tanggal_akhir"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"bulan_mulai", &f.MonthFrom},
		{"bulan_akhir", &f.MonthTo},
		{"tahun", &f.Year},
		{"tahun_mulai", &f.YearFrom},
		{"tahun_akhir", &f.YearTo},
	}
	for _, p := range ints {
		v, err := queryInt(c, p.name)
		if err != nil {
			return r.fail(c, log, err)
		}
		*p.dst = v
	}

	counts, err := r.DashboardService.NewsPerMonth(c.Request().Context(), f)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, counts)
}

// DashboardSchools godoc
// @Summary Jumlah sekolah per jenis
// @Tags dashboard
// @Produce json
// @Param status query string false "Negeri atau Swasta"
// @Param jenis_id query int false "ID jenis sekolah"
// @Success 200 {object} response.Response{data=models.SchoolCounts}
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/sekolah [get]
func (r *Routers) DashboardSchools(c echo.Context) error {
	const op = "http.routers.DashboardSchools"

	log := r.log.With(slog.String("op", op))

	kindID, err := queryID(c, "jenis_id")
	if err != nil {
		return r.fail(c, log, err)
	}

	f := dashboard.SchoolFilter{Status: models.SchoolStatus(c.QueryParam("status"))}
	if kindID != nil {
		f.KindID = *kindID
	}

	counts, err := r.DashboardService.SchoolsPerKind(c.Request().Context(), f)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, counts)
}
