package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PrakataRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPrakataRepository(db *pgxpool.Pool) *PrakataRepo {
	return &PrakataRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var prakataColumns = []string{"id", "judul", "sub_judul", "isi", "penutup", "dibuat_pada", "diperbarui_pada"}

func (r *PrakataRepo) SavePrakata(ctx context.Context, p models.Prakata) (int64, error) {
	const op = "repository.prakata_repository.SavePrakata"

	now := time.Now()

	query, args, err := r.sb.Insert("prakata").
		Columns("judul", "sub_judul", "isi", "penutup", "dibuat_pada", "diperbarui_pada").
		Values(p.Title, p.Subtitle, p.Body, p.Closing, now, now).
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

func (r *PrakataRepo) GetPrakata(ctx context.Context, id int64) (models.Prakata, error) {
	const op = "repository.prakata_repository.GetPrakata"

	query, args, err := r.sb.Select(prakataColumns...).
		From("prakata").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Prakata{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := scanPrakata(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Prakata{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Prakata{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (r *PrakataRepo) ListPrakata(ctx context.Context) ([]models.Prakata, error) {
	const op = "repository.prakata_repository.ListPrakata"

	query, args, err := r.sb.Select(prakataColumns...).
		From("prakata").
		OrderBy("dibuat_pada DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := []models.Prakata{}
	for rows.Next() {
		p, err := scanPrakata(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, p)
	}

	return list, rows.Err()
}

func (r *PrakataRepo) UpdatePrakataFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.prakata_repository.UpdatePrakataFields"

	allowedFields := map[string]bool{
		"judul":     true,
		"sub_judul": true,
		"isi":       true,
		"penutup":   true,
	}

	ub := r.sb.Update("prakata").
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

func (r *PrakataRepo) DeletePrakata(ctx context.Context, id int64) error {
	const op = "repository.prakata_repository.DeletePrakata"

	query, args, err := r.sb.Delete("prakata").Where(sq.Eq{"id": id}).ToSql()
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

func scanPrakata(row pgx.Row) (models.Prakata, error) {
	var (
		p        models.Prakata
		subtitle sql.NullString
		closing  sql.NullString
	)

	if err := row.Scan(&p.ID, &p.Title, &subtitle, &p.Body, &closing, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return models.Prakata{}, err
	}

	if subtitle.Valid {
		p.Subtitle = &subtitle.String
	}
	if closing.Valid {
		p.Closing = &closing.String
	}

	return p, nil
}
