// Package services aggregates the counters shown on the admin dashboard.
// Results are cached in process for a short TTL.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/repository"

	"github.com/patrickmn/go-cache"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

type AdminCounter interface {
	CountAdminsByRole(ctx context.Context) (map[models.Role]int64, error)
}

type SchoolCounter interface {
	ListKinds(ctx context.Context) ([]models.SchoolKind, error)
	CountSchoolsByKind(ctx context.Context, status models.SchoolStatus, kindID int64) (map[int64]int64, error)
}

// NewsFilter selects the range counted by NewsPerMonth. The first complete
// option wins, in field order: a date range, a month range within Year, a
// single Year, a year range. No option counts the current year.
type NewsFilter struct {
	DateFrom  string // YYYY-MM-DD
	DateTo    string
	MonthFrom int
	MonthTo   int
	Year      int
	YearFrom  int
	YearTo    int
}

type SchoolFilter struct {
	Status models.SchoolStatus
	KindID int64
}

type DashboardService struct {
	log     *slog.Logger
	admins  AdminCounter
	news    repository.MonthlyCounter
	schools SchoolCounter
	cache   *cache.Cache
	now     func() time.Time
}

func NewDashboardService(log *slog.Logger, admins AdminCounter, news repository.MonthlyCounter, schools SchoolCounter, ttl, cleanup time.Duration) *DashboardService {
	if cleanup <= 0 {
		cleanup = 2 * ttl
	}

	return &DashboardService{
		log:     log,
		admins:  admins,
		news:    news,
		schools: schools,
		cache:   cache.New(ttl, cleanup),
		now:     time.Now,
	}
}

// AdminCount returns the number of admins per role. An empty role lists both.
func (s *DashboardService) AdminCount(ctx context.Context, role models.Role) ([]models.NamedCount, error) {
	const op = "dashboard_service.AdminCount"

	if role != "" && !role.Valid() {
		return nil, apperr.BadRequest("role harus Superadmin atau Admin")
	}

	key := "admin:" + string(role)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.NamedCount), nil
	}

	counts, err := s.admins.CountAdminsByRole(ctx)
	if err != nil {
		s.log.Error("failed to count admins", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil data admin", fmt.Errorf("%s: %w", op, err))
	}

	var out []models.NamedCount
	for _, r := range []models.Role{models.RoleSuperadmin, models.RoleAdmin} {
		if role != "" && role != r {
			continue
		}
		out = append(out, models.NamedCount{Name: roleLabel(r), Count: counts[r]})
	}

	s.cache.SetDefault(key, out)

	return out, nil
}

// NewsPerMonth returns twelve buckets, January first, counting berita by the
// month of tanggal_diterbitkan.
func (s *DashboardService) NewsPerMonth(ctx context.Context, f NewsFilter) ([]models.MonthlyCount, error) {
	const op = "dashboard_service.NewsPerMonth"

	from, to, err := s.newsRange(f)
	if err != nil {
		return nil, err
	}

	key := "berita:" + from.Format(time.DateOnly) + ":" + to.Format(time.DateOnly)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.MonthlyCount), nil
	}

	counts, err := s.news.CountByMonth(ctx, from, to)
	if err != nil {
		s.log.Error("failed to count news", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil data berita", fmt.Errorf("%s: %w", op, err))
	}

	out := make([]models.MonthlyCount, len(monthLabels))
	for i, label := range monthLabels {
		out[i] = models.MonthlyCount{Month: label, Count: counts[i+1]}
	}

	s.cache.SetDefault(key, out)

	return out, nil
}

// newsRange returns the half-open interval [from, to) selected by f.
func (s *DashboardService) newsRange(f NewsFilter) (time.Time, time.Time, error) {
	year := func(y int) time.Time { return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC) }

	switch {
	case f.DateFrom != "" && f.DateTo != "":
		from, err := time.Parse(time.DateOnly, f.DateFrom)
		if err != nil {
			return time.Time{}, time.Time{}, apperr.BadRequest("tanggal_mulai harus berformat YYYY-MM-DD")
		}
		to, err := time.Parse(time.DateOnly, f.DateTo)
		if err != nil {
			return time.Time{}, time.Time{}, apperr.BadRequest("tanggal_akhir harus berformat YYYY-MM-DD")
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, apperr.BadRequest("tanggal_akhir tidak boleh sebelum tanggal_mulai")
		}
		return from, to.AddDate(0, 0, 1), nil

	case f.MonthFrom != 0 && f.MonthTo != 0 && f.Year != 0:
		if f.MonthFrom < 1 || f.MonthTo > 12 || f.MonthFrom > f.MonthTo {
			return time.Time{}, time.Time{}, apperr.BadRequest("rentang bulan harus 1 sampai 12")
		}
		if err := checkYear(f.Year); err != nil {
			return time.Time{}, time.Time{}, err
		}
		start := year(f.Year)
		return start.AddDate(0, f.MonthFrom-1, 0), start.AddDate(0, f.MonthTo, 0), nil

	case f.Year != 0:
		if err := checkYear(f.Year); err != nil {
			return time.Time{}, time.Time{}, err
		}
		return year(f.Year), year(f.Year + 1), nil

	case f.YearFrom != 0 && f.YearTo != 0:
		if err := checkYear(f.YearFrom); err != nil {
			return time.Time{}, time.Time{}, err
		}
		if f.YearTo < f.YearFrom {
			return time.Time{}, time.Time{}, apperr.BadRequest("tahun_akhir tidak boleh sebelum tahun_mulai")
		}
		return year(f.YearFrom), year(f.YearTo + 1), nil
	}

	y := s.now().Year()
	return year(y), year(y + 1), nil
}

// SchoolsPerKind counts schools for every jenis sekolah, zero included.
func (s *DashboardService) SchoolsPerKind(ctx context.Context, f SchoolFilter) (models.SchoolCounts, error) {
	const op = "dashboard_service.SchoolsPerKind"

	if f.Status != "" && f.Status != models.SchoolNegeri && f.Status != models.SchoolSwasta {
		return models.SchoolCounts{}, apperr.BadRequest("status harus Negeri atau Swasta")
	}

	key := "sekolah:" + string(f.Status) + ":" + strconv.FormatInt(f.KindID, 10)
	if v, ok := s.cache.Get(key); ok {
		return v.(models.SchoolCounts), nil
	}

	kinds, err := s.schools.ListKinds(ctx)
	if err != nil {
		s.log.Error("failed to list kinds", slog.String("op", op), sl.Err(err))
		return models.SchoolCounts{}, apperr.Internal("gagal mengambil jenis sekolah", fmt.Errorf("%s: %w", op, err))
	}

	counts, err := s.schools.CountSchoolsByKind(ctx, f.Status, f.KindID)
	if err != nil {
		s.log.Error("failed to count schools", slog.String("op", op), sl.Err(err))
		return models.SchoolCounts{}, apperr.Internal("gagal mengambil data sekolah", fmt.Errorf("%s: %w", op, err))
	}

	out := models.SchoolCounts{Data: make([]models.NamedCount, 0, len(kinds))}
	for _, k := range kinds {
		out.Data = append(out.Data, models.NamedCount{Name: k.Name, Count: counts[k.ID]})
	}

	s.cache.SetDefault(key, out)

	return out, nil
}

func roleLabel(r models.Role) string {
	if r == models.RoleSuperadmin {
		return "Super Admin"
	}
	return "Admin"
}

func checkYear(y int) error {
	if y < 2000 {
		return apperr.BadRequest("tahun tidak boleh kurang dari 2000")
	}
	return nil
}
