package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type StrukturRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewStrukturRepository(db *pgxpool.Pool) *StrukturRepo {
	return &StrukturRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var strukturColumns = []string{"id", "gambar_struktur", "gambar_dokumentasi", "dibuat_pada", "diperbarui_pada"}

func (r *StrukturRepo) SaveStructure(ctx context.Context, s models.OrgStructure) (int64, error) {
	const op = "repository.struktur_repository.SaveStructure"

	now := time.Now()

	query, args, err := r.sb.Insert("struktur_organisasi").
		Columns("gambar_struktur", "gambar_dokumentasi", "dibuat_pada", "diperbarui_pada").
		Values(s.StructureImage, s.DocumentationImg, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *StrukturRepo) GetStructure(ctx context.Context, id int64) (models.OrgStructure, error) {
	const op = "repository.struktur_repository.GetStructure"

	query, args, err := r.sb.Select(strukturColumns...).
		From("struktur_organisasi").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.OrgStructure{}, fmt.Errorf("%s: %w", op, err)
	}

	var s models.OrgStructure
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.StructureImage, &s.DocumentationImg, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.OrgStructure{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.OrgStructure{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// ListStructures returns rows by ascending id. A non-nil id narrows the result to that row.
func (r *StrukturRepo) ListStructures(ctx context.Context, id *int64) ([]models.OrgStructure, error) {
	const op = "repository.struktur_repository.ListStructures"

	qb := r.sb.Select(strukturColumns...).From("struktur_organisasi")
	if id != nil {
		qb = qb.Where(sq.Eq{"id": *id})
	}

	query, args, err := qb.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := []models.OrgStructure{}
	for rows.Next() {
		var s models.OrgStructure
		if err := rows.Scan(&s.ID, &s.StructureImage, &s.DocumentationImg, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, s)
	}

	return list, rows.Err()
}

func (r *StrukturRepo) UpdateStructureFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.struktur_repository.UpdateStructureFields"

	allowedFields := map[string]bool{
		"gambar_struktur":    true,
		"gambar_dokumentasi": true,
	}

	ub := r.sb.Update("struktur_organisasi").
		Set("diperbarui_pada", time.Now())

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

func (r *StrukturRepo) DeleteStructure(ctx context.Context, id int64) error {
	const op = "repository.struktur_repository.DeleteStructure"

	query, args, err := r.sb.Delete("struktur_organisasi").Where(sq.Eq{"id": id}).ToSql()
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
