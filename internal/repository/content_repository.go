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

// ContentTable names the tables backing one content module.
type ContentTable struct {
	Table      string // e.g. "berita"
	ImageTable string // e.g. "berita_gambar"
	OwnerCol   string // column of ImageTable referencing Table.id
}

type ContentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
	t  ContentTable
}

func NewContentRepository(db *pgxpool.Pool, t ContentTable) *ContentRepo {
	return &ContentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		t:  t,
	}
}

var recordColumns = []string{
	"id", "judul", "penulis", "isi", "tanggal_diterbitkan", "dibuat_pada", "diperbarui_pada",
}

func (r *ContentRepo) SaveRecord(ctx context.Context, rec models.ContentRecord) (int64, error) {
	op := "repository.content_repository.SaveRecord." + r.t.Table

	now := time.Now()
	publishedAt := now
	if rec.PublishedAt != nil {
		publishedAt = *rec.PublishedAt
	}

	query, args, err := r.sb.Insert(r.t.Table).
		Columns("judul", "penulis", "isi", "tanggal_diterbitkan", "dibuat_pada", "diperbarui_pada").
		Values(rec.Title, rec.Author, rec.Body, publishedAt, now, now).
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

func (r *ContentRepo) GetRecordByID(ctx context.Context, id int64) (*models.ContentJoined, error) {
	op := "repository.content_repository.GetRecordByID." + r.t.Table

	query, args, err := r.sb.Select(recordColumns...).
		From(r.t.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rec, err := scanRecord(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	images, err := r.imagesByOwners(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.ContentJoined{
		ContentRecord: rec,
		Images:        nonNilImages(images[id]),
	}, nil
}

// ListRecords returns records newest first, each joined with its images.
func (r *ContentRepo) ListRecords(ctx context.Context, filter models.ContentFilter) ([]models.ContentJoined, error) {
	op := "repository.content_repository.ListRecords." + r.t.Table

	qb := r.sb.Select(recordColumns...).From(r.t.Table)

	if filter.Title != "" {
		qb = qb.Where(sq.ILike{"judul": "%" + filter.Title + "%"})
	}
	if filter.Author != "" {
		qb = qb.Where(sq.ILike{"penulis": "%" + filter.Author + "%"})
	}
	if filter.From != nil {
		qb = qb.Where(sq.GtOrEq{"tanggal_diterbitkan": *filter.From})
	}
	if filter.To != nil {
		qb = qb.Where(sq.Lt{"tanggal_diterbitkan": *filter.To})
	}

	query, args, err := qb.OrderBy("tanggal_diterbitkan DESC NULLS LAST", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var (
		records []models.ContentJoined
		ids     []int64
	)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, models.ContentJoined{ContentRecord: rec})
		ids = append(ids, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(ids) == 0 {
		return []models.ContentJoined{}, nil
	}

	images, err := r.imagesByOwners(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range records {
		records[i].Images = nonNilImages(images[records[i].ID])
	}

	return records, nil
}

func (r *ContentRepo) UpdateRecordFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	op := "repository.content_repository.UpdateRecordFields." + r.t.Table

	allowedFields := map[string]bool{
		"judul":               true,
		"penulis":             true,
		"isi":                 true,
		"tanggal_diterbitkan": true,
	}

	ub := r.sb.Update(r.t.Table).
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

func (r *ContentRepo) DeleteRecord(ctx context.Context, id int64) error {
	op := "repository.content_repository.DeleteRecord." + r.t.Table

	query, args, err := r.sb.Delete(r.t.Table).
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

func (r *ContentRepo) SaveImage(ctx context.Context, img models.ImageRef) (int64, error) {
	op := "repository.content_repository.SaveImage." + r.t.ImageTable

	query, args, err := r.sb.Insert(r.t.ImageTable).
		Columns(r.t.OwnerCol, "url_gambar", "keterangan", "dibuat_pada").
		Values(img.OwnerID, img.URL, img.Caption, time.Now()).
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

func (r *ContentRepo) UpdateImageFields(ctx context.Context, imageID int64, updates map[string]interface{}) error {
	op := "repository.content_repository.UpdateImageFields." + r.t.ImageTable

	allowedFields := map[string]bool{
		"url_gambar": true,
		"keterangan": true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoFields)
	}

	ub := r.sb.Update(r.t.ImageTable)
	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}
		ub = ub.Set(field, value)
	}

	query, args, err := ub.Where(sq.Eq{"id": imageID}).ToSql()
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

// DeleteImagesByOwner removes every image row of record ownerID.
func (r *ContentRepo) DeleteImagesByOwner(ctx context.Context, ownerID int64) error {
	op := "repository.content_repository.DeleteImagesByOwner." + r.t.ImageTable

	query, args, err := r.sb.Delete(r.t.ImageTable).
		Where(sq.Eq{r.t.OwnerCol: ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ContentRepo) imagesByOwners(ctx context.Context, ownerIDs []int64) (map[int64][]models.ImageRef, error) {
	query, args, err := r.sb.Select("id", r.t.OwnerCol, "url_gambar", "keterangan", "dibuat_pada").
		From(r.t.ImageTable).
		Where(sq.Eq{r.t.OwnerCol: ownerIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]models.ImageRef, len(ownerIDs))
	for rows.Next() {
		var (
			img     models.ImageRef
			caption sql.NullString
		)
		if err := rows.Scan(&img.ID, &img.OwnerID, &img.URL, &caption, &img.CreatedAt); err != nil {
			return nil, err
		}
		if caption.Valid {
			img.Caption = &caption.String
		}
		out[img.OwnerID] = append(out[img.OwnerID], img)
	}

	return out, rows.Err()
}

func scanRecord(row pgx.Row) (models.ContentRecord, error) {
	var (
		rec         models.ContentRecord
		publishedAt sql.NullTime
	)

	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Author,
		&rec.Body,
		&publishedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return models.ContentRecord{}, err
	}

	if publishedAt.Valid {
		rec.PublishedAt = &publishedAt.Time
	}

	return rec, nil
}

func nonNilImages(images []models.ImageRef) []models.ImageRef {
	if images == nil {
		return []models.ImageRef{}
	}
	return images
}

// CountByMonth counts records per calendar month (1..12) of tanggal_diterbitkan in [from, to).
func (r *ContentRepo) CountByMonth(ctx context.Context, from, to time.Time) (map[int]int64, error) {
	op := "repository.content_repository.CountByMonth." + r.t.Table

	query, args, err := r.sb.Select("EXTRACT(MONTH FROM tanggal_diterbitkan)::int AS bulan", "COUNT(*)").
		From(r.t.Table).
		Where(sq.GtOrEq{"tanggal_diterbitkan": from}).
		Where(sq.Lt{"tanggal_diterbitkan": to}).
		GroupBy("bulan").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	counts := make(map[int]int64, 12)
	for rows.Next() {
		var (
			month int
			count int64
		)
		if err := rows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		counts[month] = count
	}

	return counts, rows.Err()
}
