package repository

import (
	"context"
	"errors"
	"fmt"

	"cabdin/internal/domain/models"
	"cabdin/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type FooterRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewFooterRepository(db *pgxpool.Pool) *FooterRepo {
	return &FooterRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FooterRepo) ListFooters(ctx context.Context) ([]models.Footer, error) {
	const op = "repository.footer_repository.ListFooters"

	query, args, err := r.sb.Select("id", "email", "no_telp", "alamat").
		From("footer").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	footers := []models.Footer{}
	for rows.Next() {
		var f models.Footer
		if err := rows.Scan(&f.ID, &f.Email, &f.Phone, &f.Address); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		footers = append(footers, f)
	}

	return footers, rows.Err()
}

func (r *FooterRepo) GetFooter(ctx context.Context, id int64) (models.Footer, error) {
	const op = "repository.footer_repository.GetFooter"

	query, args, err := r.sb.Select("id", "email", "no_telp", "alamat").
		From("footer").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Footer{}, fmt.Errorf("%s: %w", op, err)
	}

	var f models.Footer
	if err := r.db.QueryRow(ctx, query, args...).Scan(&f.ID, &f.Email, &f.Phone, &f.Address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Footer{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Footer{}, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *FooterRepo) UpdateFooterFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.footer_repository.UpdateFooterFields"

	allowedFields := map[string]bool{
		"email":   true,
		"no_telp": true,
		"alamat":  true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoFields)
	}

	ub := r.sb.Update("footer")
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
