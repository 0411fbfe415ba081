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

type LayananRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewLayananRepository(db *pgxpool.Pool) *LayananRepo {
	return &LayananRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var layananColumns = []string{
	"id", "judul", "nama_file", "url_file", "ukuran_file", "jenis_file", "jenis_layanan", "dibuat_pada", "diperbarui_pada",
}

func (r *LayananRepo) SaveDocument(ctx context.Context, d models.ServiceDocument) (int64, error) {
	const op = "repository.layanan_repository.SaveDocument"

	now := time.Now()

	query, args, err := r.sb.Insert("layanan").
		Columns("judul", "nama_file", "url_file", "ukuran_file", "jenis_file", "jenis_layanan", "dibuat_pada", "diperbarui_pada").
		Values(d.Title, d.FileName, d.FileURL, d.FileSize, d.FileType, d.Kind, now, now).
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

func (r *LayananRepo) GetDocument(ctx context.Context, id int64) (models.ServiceDocument, error) {
	const op = "repository.layanan_repository.GetDocument"

	query, args, err := r.sb.Select(layananColumns...).
		From("layanan").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.ServiceDocument{}, fmt.Errorf("%s: %w", op, err)
	}

	d, err := scanDocument(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ServiceDocument{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.ServiceDocument{}, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

// ListDocuments returns documents newest first. The date range is [From, To].
func (r *LayananRepo) ListDocuments(ctx context.Context, filter models.ServiceFilter) ([]models.ServiceDocument, error) {
	const op = "repository.layanan_repository.ListDocuments"

	qb := r.sb.Select(layananColumns...).From("layanan")

	if filter.ID != nil {
		qb = qb.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.Kind != "" {
		qb = qb.Where(sq.Eq{"jenis_layanan": filter.Kind})
	}
	if filter.FileType != "" {
		qb = qb.Where(sq.Eq{"jenis_file": filter.FileType})
	}
	if filter.From != nil {
		qb = qb.Where(sq.GtOrEq{"dibuat_pada": *filter.From})
	}
	if filter.To != nil {
		qb = qb.Where(sq.LtOrEq{"dibuat_pada": *filter.To})
	}

	query, args, err := qb.OrderBy("dibuat_pada DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	docs := []models.ServiceDocument{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (r *LayananRepo) UpdateDocumentFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.layanan_repository.UpdateDocumentFields"

	allowedFields := map[string]bool{
		"judul":         true,
		"nama_file":     true,
		"url_file":      true,
		"ukuran_file":   true,
		"jenis_file":    true,
		"jenis_layanan": true,
	}

	ub := r.sb.Update("layanan").
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

func (r *LayananRepo) DeleteDocument(ctx context.Context, id int64) error {
	const op = "repository.layanan_repository.DeleteDocument"

	query, args, err := r.sb.Delete("layanan").Where(sq.Eq{"id": id}).ToSql()
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

func scanDocument(row pgx.Row) (models.ServiceDocument, error) {
	var (
		d    models.ServiceDocument
		kind string
	)

	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.FileName,
		&d.FileURL,
		&d.FileSize,
		&d.FileType,
		&kind,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return models.ServiceDocument{}, err
	}

	d.Kind = models.ServiceKind(kind)

	return d, nil
}
