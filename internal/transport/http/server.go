package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/sl"
	admin "cabdin/internal/services/admin_service"
	content "cabdin/internal/services/content_service"
	dashboard "cabdin/internal/services/dashboard_service"
	footer "cabdin/internal/services/footer_service"
	layanan "cabdin/internal/services/layanan_service"
	prakata "cabdin/internal/services/prakata_service"
	satpen "cabdin/internal/services/satpen_service"
	struktur "cabdin/internal/services/struktur_service"
	"cabdin/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "cabdin/docs"
)

type UserService interface {
	Register(ctx context.Context, email, password string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Profile(ctx context.Context, userID uuid.UUID) (models.Admin, error)
}

type AdminService interface {
	List(ctx context.Context) ([]models.Admin, error)
	Filter(ctx context.Context, filter models.AdminFilter) ([]models.Admin, error)
	Get(ctx context.Context, id uuid.UUID) (models.Admin, error)
	Update(ctx context.Context, id uuid.UUID, in admin.UpdateInput) (models.Admin, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) (models.Admin, error)
}

type ContentService interface {
	Get(ctx context.Context, id int64) (*models.ContentJoined, error)
	List(ctx context.Context) ([]models.ContentJoined, error)
	Filter(ctx context.Context, in content.FilterInput) ([]models.ContentJoined, error)
	Create(ctx context.Context, in content.CreateInput) (*models.ContentJoined, error)
	Update(ctx context.Context, id int64, in content.UpdateInput) (*models.ContentJoined, error)
	Delete(ctx context.Context, id int64) (*models.ContentJoined, error)
}

type PrakataService interface {
	List(ctx context.Context) ([]models.Prakata, error)
	Create(ctx context.Context, in prakata.Input) (models.Prakata, error)
	Update(ctx context.Context, id int64, in prakata.Input) (models.Prakata, error)
	Delete(ctx context.Context, id int64) (models.Prakata, error)
}

type StrukturService interface {
	List(ctx context.Context, id *int64) ([]models.OrgStructure, error)
	Create(ctx context.Context, in struktur.Input) (models.OrgStructure, error)
	Update(ctx context.Context, id int64, in struktur.Input) (models.OrgStructure, error)
	Delete(ctx context.Context, id int64) (models.OrgStructure, error)
}

type SatpenService interface {
	ListSchools(ctx context.Context, filter models.SchoolFilter) ([]models.SchoolView, error)
	GetSchool(ctx context.Context, npsn string) (models.SchoolView, error)
	CreateSchool(ctx context.Context, in satpen.SchoolInput) (models.SchoolView, error)
	UpdateSchool(ctx context.Context, npsn string, in satpen.SchoolUpdate) (models.SchoolView, error)
	DeleteSchool(ctx context.Context, npsn string) (models.SchoolView, error)

	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id int64) (models.Location, error)
	CreateLocation(ctx context.Context, in satpen.LocationInput) (models.Location, error)
	UpdateLocation(ctx context.Context, id int64, in satpen.LocationInput) (models.Location, error)
	DeleteLocation(ctx context.Context, id int64) error

	ListKinds(ctx context.Context) ([]models.SchoolKind, error)
	GetKind(ctx context.Context, id int64) (models.SchoolKind, error)
	CreateKind(ctx context.Context, name string) (models.SchoolKind, error)
	UpdateKind(ctx context.Context, id int64, name string) (models.SchoolKind, error)
	DeleteKind(ctx context.Context, id int64) error

	CreateKindIcon(ctx context.Context, kindID int64, image string) (models.SchoolKindIcon, error)
	UpdateKindIcon(ctx context.Context, id int64, kindID int64, image string) (models.SchoolKindIcon, error)
	DeleteKindIcon(ctx context.Context, id int64) (models.SchoolKindIcon, error)
}

type FooterService interface {
	List(ctx context.Context) ([]models.Footer, error)
	Get(ctx context.Context, id int64) (models.Footer, error)
	Update(ctx context.Context, id int64, in footer.UpdateInput) (models.Footer, error)
}

type LayananService interface {
	List(ctx context.Context, in layanan.ListInput) ([]models.ServiceDocument, error)
	Get(ctx context.Context, id int64) (models.ServiceDocument, error)
	Create(ctx context.Context, in layanan.CreateInput) (models.ServiceDocument, error)
	Update(ctx context.Context, id int64, in layanan.UpdateInput) (models.ServiceDocument, error)
	Delete(ctx context.Context, id int64) (models.ServiceDocument, error)
}

type DashboardService interface {
	AdminCount(ctx context.Context, role models.Role) ([]models.NamedCount, error)
	NewsPerMonth(ctx context.Context, f dashboard.NewsFilter) ([]models.MonthlyCount, error)
	SchoolsPerKind(ctx context.Context, f dashboard.SchoolFilter) (models.SchoolCounts, error)
}

// HealthChecker is a dependency reported by /health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ContentModule binds a content service to its route prefix.
type ContentModule struct {
	Path    string // e.g. "/berita"
	Service ContentService
}

type Routers struct {
	log              *slog.Logger
	UserService      UserService
	AdminService     AdminService
	Contents         []ContentModule
	PrakataService   PrakataService
	StrukturService  StrukturService
	SatpenService    SatpenService
	FooterService    FooterService
	LayananService   LayananService
	DashboardService DashboardService
	Health           map[string]HealthChecker
}

func NewRouter(log *slog.Logger) *Routers {
	return &Routers{
		log:    log,
		Health: map[string]HealthChecker{},
	}
}

// fail renders err as an ErrorResponse with the status of its kind.
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	kind := apperr.KindOf(err)
	status, code := statusOf(kind)

	if status >= http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Debug("request rejected", slog.String("kind", kind.String()), sl.Err(err))
	}

	return c.JSON(status, response.ErrorResponse{
		Status:  "error",
		Error:   code,
		Details: apperr.Message(err),
	})
}

func statusOf(kind apperr.Kind) (int, string) {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound, "not_found"
	case apperr.KindBadRequest:
		return http.StatusBadRequest, "bad_request"
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case apperr.KindForbidden:
		return http.StatusForbidden, "forbidden"
	case apperr.KindConflict:
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperr.BadRequest("format permintaan tidak valid")
	}

	if err := c.Validate(req); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, err.Error(), err)
	}

	return nil
}

func ok(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, response.SuccessResponse(data))
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("parameter %s harus berupa angka positif", name)
	}
	return id, nil
}

func queryID(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperr.BadRequest("parameter %s harus berupa angka positif", name)
	}
	return &id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.BadRequest("parameter %s harus berupa angka", name)
	}
	return n, nil
}

// parseTime accepts YYYY-MM-DD or RFC 3339. Empty input is nil.
func parseTime(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}

	return nil, apperr.BadRequest("tanggal %q harus berformat YYYY-MM-DD", v)
}

// Health godoc
// @Summary Status layanan
// @Description Memeriksa koneksi database dan redis
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (r *Routers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	result := map[string]string{}

	for name, dep := range r.Health {
		if err := dep.HealthCheck(ctx); err != nil {
			r.log.Warn("health check failed", slog.String("dependency", name), sl.Err(err))
			result[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		result[name] = "up"
	}

	return c.JSON(status, result)
}
