package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdminCounter struct {
	mock.Mock
}

func (m *MockAdminCounter) CountAdminsByRole(ctx context.Context) (map[models.Role]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.Role]int64), args.Error(1)
}

type MockMonthlyCounter struct {
	mock.Mock
}

func (m *MockMonthlyCounter) CountByMonth(ctx context.Context, from, to time.Time) (map[int]int64, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

type MockSchoolCounter struct {
	mock.Mock
}

func (m *MockSchoolCounter) ListKinds(ctx context.Context) ([]models.SchoolKind, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SchoolKind), args.Error(1)
}

func (m *MockSchoolCounter) CountSchoolsByKind(ctx context.Context, status models.SchoolStatus, kindID int64) (map[int64]int64, error) {
	args := m.Called(ctx, status, kindID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

type mocks struct {
	admins  *MockAdminCounter
	news    *MockMonthlyCounter
	schools *MockSchoolCounter
}

func newService() (*DashboardService, mocks) {
	m := mocks{new(MockAdminCounter), new(MockMonthlyCounter), new(MockSchoolCounter)}
	s := NewDashboardService(slogdiscard.NewDiscardLogger(), m.admins, m.news, m.schools, time.Minute, 0)
	s.now = func() time.Time { return time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC) }
	return s, m
}

func utc(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func TestDashboardService_AdminCount(t *testing.T) {
	ctx := context.Background()
	counts := map[models.Role]int64{models.RoleSuperadmin: 2, models.RoleAdmin: 5}

	tests := []struct {
		name     string
		role     models.Role
		want     []models.NamedCount
		wantKind apperr.Kind
		wantErr  bool
	}{
		{
			name: "both roles",
			want: []models.NamedCount{{Name: "Super Admin", Count: 2}, {Name: "Admin", Count: 5}},
		},
		{
			name: "superadmin only",
			role: models.RoleSuperadmin,
			want: []models.NamedCount{{Name: "Super Admin", Count: 2}},
		},
		{
			name:     "unknown role",
			role:     "Operator",
			wantErr:  true,
			wantKind: apperr.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newService()
			m.admins.On("CountAdminsByRole", ctx).Return(counts, nil).Maybe()

			got, err := s.AdminCount(ctx, tt.role)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDashboardService_AdminCountCached(t *testing.T) {
	ctx := context.Background()
	s, m := newService()
	m.admins.On("CountAdminsByRole", ctx).Return(map[models.Role]int64{models.RoleAdmin: 1}, nil).Once()

	for i := 0; i < 3; i++ {
		_, err := s.AdminCount(ctx, "")
		require.NoError(t, err)
	}

	m.admins.AssertNumberOfCalls(t, "CountAdminsByRole", 1)
}

func TestDashboardService_NewsPerMonth(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filter   NewsFilter
		from, to time.Time
	}{
		{"current year by default", NewsFilter{}, utc(2025, 1, 1), utc(2026, 1, 1)},
		{"date range is inclusive", NewsFilter{DateFrom: "2024-02-01", DateTo: "2024-02-29"}, utc(2024, 2, 1), utc(2024, 3, 1)},
		{"single year", NewsFilter{Year: 2023}, utc(2023, 1, 1), utc(2024, 1, 1)},
		{"month range within year", NewsFilter{Year: 2023, MonthFrom: 3, MonthTo: 5}, utc(2023, 3, 1), utc(2023, 6, 1)},
		{"year range", NewsFilter{YearFrom: 2021, YearTo: 2022}, utc(2021, 1, 1), utc(2023, 1, 1)},
		{"date range wins over year", NewsFilter{DateFrom: "2024-01-01", DateTo: "2024-01-31", Year: 2020}, utc(2024, 1, 1), utc(2024, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newService()
			m.news.On("CountByMonth", ctx, tt.from, tt.to).Return(map[int]int64{1: 3, 12: 1}, nil)

			got, err := s.NewsPerMonth(ctx, tt.filter)

			require.NoError(t, err)
			require.Len(t, got, 12)
			assert.Equal(t, models.MonthlyCount{Month: "Jan", Count: 3}, got[0])
			assert.Equal(t, models.MonthlyCount{Month: "Mei", Count: 0}, got[4])
			assert.Equal(t, models.MonthlyCount{Month: "Des", Count: 1}, got[11])
			m.news.AssertExpectations(t)
		})
	}
}

func TestDashboardService_NewsPerMonthInvalid(t *testing.T) {
	ctx := context.Background()

	for name, f := range map[string]NewsFilter{
		"bad date":       {DateFrom: "01-01-2024", DateTo: "2024-01-31"},
		"reversed dates": {DateFrom: "2024-02-01", DateTo: "2024-01-01"},
		"year too small": {Year: 1999},
		"month overflow": {Year: 2024, MonthFrom: 1, MonthTo: 13},
		"reversed years": {YearFrom: 2024, YearTo: 2020},
	} {
		t.Run(name, func(t *testing.T) {
			s, m := newService()

			_, err := s.NewsPerMonth(ctx, f)

			assert.True(t, apperr.Is(err, apperr.KindBadRequest))
			m.news.AssertNotCalled(t, "CountByMonth", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDashboardService_SchoolsPerKind(t *testing.T) {
	ctx := context.Background()

	t.Run("zero for kinds without schools", func(t *testing.T) {
		s, m := newService()
		m.schools.On("ListKinds", ctx).Return([]models.SchoolKind{{ID: 3, Name: "SMA"}, {ID: 4, Name: "SMK"}, {ID: 10, Name: "SLB"}}, nil)
		m.schools.On("CountSchoolsByKind", ctx, models.SchoolNegeri, int64(0)).Return(map[int64]int64{3: 12, 10: 1}, nil)

		got, err := s.SchoolsPerKind(ctx, SchoolFilter{Status: models.SchoolNegeri})

		require.NoError(t, err)
		assert.Equal(t, []models.NamedCount{
			{Name: "SMA", Count: 12},
			{Name: "SMK", Count: 0},
			{Name: "SLB", Count: 1},
		}, got.Data)
	})

	t.Run("count error", func(t *testing.T) {
		s, m := newService()
		m.schools.On("ListKinds", ctx).Return([]models.SchoolKind{}, nil)
		m.schools.On("CountSchoolsByKind", ctx, models.SchoolStatus(""), int64(4)).Return(nil, errors.New("timeout"))

		_, err := s.SchoolsPerKind(ctx, SchoolFilter{KindID: 4})

		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}
