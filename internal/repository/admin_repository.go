package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolation = "23505"

type AdminRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var adminColumns = []string{
	"id", "email", "password_hash", "role", "status_approval", "created_at", "updated_at",
}

func (r *AdminRepo) SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error) {
	const op = "repository.admin_repository.SaveAdmin"

	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	now := time.Now()

	query, args, err := r.sb.Insert("admin_users").
		Columns("id", "email", "password_hash", "role", "status_approval", "created_at", "updated_at").
		Values(admin.ID, admin.Email, admin.PasswordHash, admin.Role, admin.Status, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *AdminRepo) GetAdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error) {
	const op = "repository.admin_repository.GetAdminByID"

	admin, err := r.getOne(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	const op = "repository.admin_repository.GetAdminByEmail"

	admin, err := r.getOne(ctx, sq.Eq{"lower(email)": normalizeEmail(email)})
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

// ListAdmins returns admins newest first. Zero filter fields are ignored.
func (r *AdminRepo) ListAdmins(ctx context.Context, filter models.AdminFilter) ([]models.Admin, error) {
	const op = "repository.admin_repository.ListAdmins"

	qb := r.sb.Select(adminColumns...).From("admin_users")

	if filter.Role != "" {
		qb = qb.Where(sq.Eq{"role": filter.Role})
	}
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status_approval": filter.Status})
	}
	if filter.Email != "" {
		qb = qb.Where(sq.ILike{"email": "%" + filter.Email + "%"})
	}

	query, args, err := qb.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		admins = append(admins, admin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return admins, nil
}

func (r *AdminRepo) UpdateAdminFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.admin_repository.UpdateAdminFields"

	allowedFields := map[string]bool{
		"role":            true,
		"status_approval": true,
		"password_hash":   true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoFields)
	}

	ub := r.sb.Update("admin_users").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}
		ub = ub.Set(field, value)
	}

	query, args, err := ub.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	const op = "repository.admin_repository.DeleteAdmin"

	query, args, err := r.sb.Delete("admin_users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// CountAdminsByRole counts admins per role. Roles without rows are absent.
func (r *AdminRepo) CountAdminsByRole(ctx context.Context) (map[models.Role]int64, error) {
	const op = "repository.admin_repository.CountAdminsByRole"

	query, args, err := r.sb.Select("role", "COUNT(*)").
		From("admin_users").
		GroupBy("role").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	counts := make(map[models.Role]int64)
	for rows.Next() {
		var (
			role  string
			count int64
		)
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		counts[models.Role(role)] = count
	}

	return counts, rows.Err()
}

func (r *AdminRepo) getOne(ctx context.Context, where sq.Sqlizer) (models.Admin, error) {
	query, args, err := r.sb.Select(adminColumns...).
		From("admin_users").
		Where(where).
		ToSql()
	if err != nil {
		return models.Admin{}, err
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, storage.ErrNotFound
		}
		return models.Admin{}, err
	}

	return admin, nil
}

func scanAdmin(row pgx.Row) (models.Admin, error) {
	var (
		admin  models.Admin
		role   string
		status string
	)

	err := row.Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&role,
		&status,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return models.Admin{}, err
	}

	admin.Role = models.Role(role)
	admin.Status = models.ApprovalStatus(status)

	return admin, nil
}
