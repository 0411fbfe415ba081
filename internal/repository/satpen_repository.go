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
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SatpenRepo stores satuan pendidikan together with their lookup tables
// (lokasi, jenis_sekolah and jenis_sekolah_gambar).
type SatpenRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSatpenRepository(db *pgxpool.Pool) *SatpenRepo {
	return &SatpenRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Schools

func (r *SatpenRepo) SaveSchool(ctx context.Context, s models.School) error {
	const op = "repository.satpen_repository.SaveSchool"

	query, args, err := r.sb.Insert("satuan_pendidikan").
		Columns("npsn", "nama", "jenis_id", "status", "alamat", "lokasi_id").
		Values(s.NPSN, s.Name, s.KindID, s.Status, s.Address, s.LocationID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	return nil
}

func (r *SatpenRepo) GetSchool(ctx context.Context, npsn string) (models.SchoolView, error) {
	const op = "repository.satpen_repository.GetSchool"

	views, err := r.querySchools(ctx, sq.Eq{"s.npsn": npsn})
	if err != nil {
		return models.SchoolView{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(views) == 0 {
		return models.SchoolView{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return views[0], nil
}

// ListSchools returns the joined view filtered by name (ilike) and kind name.
func (r *SatpenRepo) ListSchools(ctx context.Context, filter models.SchoolFilter) ([]models.SchoolView, error) {
	const op = "repository.satpen_repository.ListSchools"

	where := sq.And{}
	if filter.Name != "" {
		where = append(where, sq.ILike{"s.nama": "%" + filter.Name + "%"})
	}
	if filter.Kind != "" {
		where = append(where, sq.Eq{"j.nama_jenis": filter.Kind})
	}

	views, err := r.querySchools(ctx, where)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

func (r *SatpenRepo) UpdateSchoolFields(ctx context.Context, npsn string, updates map[string]interface{}) error {
	const op = "repository.satpen_repository.UpdateSchoolFields"

	allowed := map[string]bool{
		"nama":      true,
		"jenis_id":  true,
		"status":    true,
		"alamat":    true,
		"lokasi_id": true,
	}

	if err := r.update(ctx, "satuan_pendidikan", sq.Eq{"npsn": npsn}, allowed, updates, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SatpenRepo) DeleteSchool(ctx context.Context, npsn string) error {
	const op = "repository.satpen_repository.DeleteSchool"

	if err := r.delete(ctx, "satuan_pendidikan", sq.Eq{"npsn": npsn}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CountSchoolsByKind counts schools per jenis_id. A zero kindID means all kinds.
func (r *SatpenRepo) CountSchoolsByKind(ctx context.Context, status models.SchoolStatus, kindID int64) (map[int64]int64, error) {
	const op = "repository.satpen_repository.CountSchoolsByKind"

	qb := r.sb.Select("jenis_id", "COUNT(*)").From("satuan_pendidikan")
	if status != "" {
		qb = qb.Where(sq.Eq{"status": status})
	}
	if kindID != 0 {
		qb = qb.Where(sq.Eq{"jenis_id": kindID})
	}

	query, args, err := qb.GroupBy("jenis_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var id, n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		counts[id] = n
	}

	return counts, rows.Err()
}

func (r *SatpenRepo) querySchools(ctx context.Context, where sq.Sqlizer) ([]models.SchoolView, error) {
	query, args, err := r.sb.Select(
		"s.npsn", "s.nama", "s.jenis_id", "s.status", "s.alamat", "s.lokasi_id",
		"COALESCE(j.nama_jenis, '')",
		"l.id", "l.kelurahan", "l.kecamatan", "l.kabupaten", "l.provinsi", "l.nama_jalan",
	).
		From("satuan_pendidikan s").
		LeftJoin("jenis_sekolah j ON j.id = s.jenis_id").
		LeftJoin("lokasi l ON l.id = s.lokasi_id").
		Where(where).
		OrderBy("s.nama ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []models.SchoolView{}
	for rows.Next() {
		var (
			v           models.SchoolView
			status      string
			locationID  sql.NullInt64
			joinedLocID sql.NullInt64
		)
		var kel, kec, kab, prov, street sql.NullString

		err := rows.Scan(
			&v.NPSN, &v.Name, &v.KindID, &status, &v.Address, &locationID,
			&v.KindName,
			&joinedLocID, &kel, &kec, &kab, &prov, &street,
		)
		if err != nil {
			return nil, err
		}

		v.Status = models.SchoolStatus(status)
		if locationID.Valid {
			v.LocationID = &locationID.Int64
		}
		if joinedLocID.Valid {
			v.Location = &models.Location{
				ID:         joinedLocID.Int64,
				Kelurahan:  kel.String,
				Kecamatan:  kec.String,
				Kabupaten:  kab.String,
				Provinsi:   prov.String,
				StreetName: street.String,
			}
		}

		views = append(views, v)
	}

	return views, rows.Err()
}

// Locations

var locationColumns = []string{"id", "kelurahan", "kecamatan", "kabupaten", "provinsi", "nama_jalan"}

func (r *SatpenRepo) SaveLocation(ctx context.Context, l models.Location) (int64, error) {
	const op = "repository.satpen_repository.SaveLocation"

	query, args, err := r.sb.Insert("lokasi").
		Columns("kelurahan", "kecamatan", "kabupaten", "provinsi", "nama_jalan").
		Values(l.Kelurahan, l.Kecamatan, l.Kabupaten, l.Provinsi, l.StreetName).
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

func (r *SatpenRepo) GetLocation(ctx context.Context, id int64) (models.Location, error) {
	const op = "repository.satpen_repository.GetLocation"

	query, args, err := r.sb.Select(locationColumns...).
		From("lokasi").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Location{}, fmt.Errorf("%s: %w", op, err)
	}

	var l models.Location
	err = r.db.QueryRow(ctx, query, args...).Scan(&l.ID, &l.Kelurahan, &l.Kecamatan, &l.Kabupaten, &l.Provinsi, &l.StreetName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Location{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Location{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

func (r *SatpenRepo) ListLocations(ctx context.Context) ([]models.Location, error) {
	const op = "repository.satpen_repository.ListLocations"

	query, args, err := r.sb.Select(locationColumns...).
		From("lokasi").
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

	locations := []models.Location{}
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Kelurahan, &l.Kecamatan, &l.Kabupaten, &l.Provinsi, &l.StreetName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}

func (r *SatpenRepo) UpdateLocationFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.satpen_repository.UpdateLocationFields"

	allowed := map[string]bool{
		"kelurahan":  true,
		"kecamatan":  true,
		"kabupaten":  true,
		"provinsi":   true,
		"nama_jalan": true,
	}

	if err := r.update(ctx, "lokasi", sq.Eq{"id": id}, allowed, updates, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SatpenRepo) DeleteLocation(ctx context.Context, id int64) error {
	const op = "repository.satpen_repository.DeleteLocation"

	if err := r.delete(ctx, "lokasi", sq.Eq{"id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// School kinds

func (r *SatpenRepo) SaveKind(ctx context.Context, name string) (int64, error) {
	const op = "repository.satpen_repository.SaveKind"

	query, args, err := r.sb.Insert("jenis_sekolah").
		Columns("nama_jenis").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *SatpenRepo) GetKind(ctx context.Context, id int64) (models.SchoolKind, error) {
	const op = "repository.satpen_repository.GetKind"

	kinds, err := r.queryKinds(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.SchoolKind{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(kinds) == 0 {
		return models.SchoolKind{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return kinds[0], nil
}

// ListKinds returns every jenis sekolah with its icons.
func (r *SatpenRepo) ListKinds(ctx context.Context) ([]models.SchoolKind, error) {
	const op = "repository.satpen_repository.ListKinds"

	kinds, err := r.queryKinds(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return kinds, nil
}

func (r *SatpenRepo) UpdateKindName(ctx context.Context, id int64, name string) error {
	const op = "repository.satpen_repository.UpdateKindName"

	allowed := map[string]bool{"nama_jenis": true}

	if err := r.update(ctx, "jenis_sekolah", sq.Eq{"id": id}, allowed, map[string]interface{}{"nama_jenis": name}, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SatpenRepo) DeleteKind(ctx context.Context, id int64) error {
	const op = "repository.satpen_repository.DeleteKind"

	if err := r.delete(ctx, "jenis_sekolah", sq.Eq{"id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SatpenRepo) queryKinds(ctx context.Context, where sq.Sqlizer) ([]models.SchoolKind, error) {
	qb := r.sb.Select("id", "nama_jenis").From("jenis_sekolah")
	if where != nil {
		qb = qb.Where(where)
	}

	query, args, err := qb.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kinds := []models.SchoolKind{}
	var ids []int64
	for rows.Next() {
		var k models.SchoolKind
		if err := rows.Scan(&k.ID, &k.Name); err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
		ids = append(ids, k.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return kinds, nil
	}

	icons, err := r.iconsWhere(ctx, sq.Eq{"id_jenis": ids})
	if err != nil {
		return nil, err
	}

	byKind := make(map[int64][]models.SchoolKindIcon)
	for _, ic := range icons {
		byKind[ic.KindID] = append(byKind[ic.KindID], ic)
	}
	for i := range kinds {
		kinds[i].Icons = byKind[kinds[i].ID]
	}

	return kinds, nil
}

// Kind icons

func (r *SatpenRepo) SaveKindIcon(ctx context.Context, icon models.SchoolKindIcon) (int64, error) {
	const op = "repository.satpen_repository.SaveKindIcon"

	now := time.Now()

	query, args, err := r.sb.Insert("jenis_sekolah_gambar").
		Columns("id_jenis", "url_gambar", "dibuat_pada", "diperbarui_pada").
		Values(icon.KindID, icon.URL, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}

	return id, nil
}

func (r *SatpenRepo) GetKindIcon(ctx context.Context, id int64) (models.SchoolKindIcon, error) {
	const op = "repository.satpen_repository.GetKindIcon"

	icons, err := r.iconsWhere(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.SchoolKindIcon{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(icons) == 0 {
		return models.SchoolKindIcon{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return icons[0], nil
}

func (r *SatpenRepo) UpdateKindIconFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.satpen_repository.UpdateKindIconFields"

	allowed := map[string]bool{
		"id_jenis":   true,
		"url_gambar": true,
	}

	if err := r.update(ctx, "jenis_sekolah_gambar", sq.Eq{"id": id}, allowed, updates, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SatpenRepo) DeleteKindIcon(ctx context.Context, id int64) error {
	const op = "repository.satpen_repository.DeleteKindIcon"

	if err := r.delete(ctx, "jenis_sekolah_gambar", sq.Eq{"id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SatpenRepo) iconsWhere(ctx context.Context, where sq.Sqlizer) ([]models.SchoolKindIcon, error) {
	query, args, err := r.sb.Select("id", "id_jenis", "url_gambar", "dibuat_pada", "diperbarui_pada").
		From("jenis_sekolah_gambar").
		Where(where).
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

	icons := []models.SchoolKindIcon{}
	for rows.Next() {
		var ic models.SchoolKindIcon
		if err := rows.Scan(&ic.ID, &ic.KindID, &ic.URL, &ic.CreatedAt, &ic.UpdatedAt); err != nil {
			return nil, err
		}
		icons = append(icons, ic)
	}

	return icons, rows.Err()
}

func (r *SatpenRepo) update(ctx context.Context, table string, where sq.Eq, allowed map[string]bool, updates map[string]interface{}, stamp bool) error {
	if len(updates) == 0 {
		return storage.ErrNoFields
	}

	ub := r.sb.Update(table)
	if stamp {
		ub = ub.Set("diperbarui_pada", time.Now())
	}

	for field, value := range updates {
		if !allowed[field] {
			return fmt.Errorf("field '%s' is not allowed for update", field)
		}
		ub = ub.Set(field, value)
	}

	query, args, err := ub.Where(where).ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return classify(err)
	}

	if result.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *SatpenRepo) delete(ctx context.Context, table string, where sq.Eq) error {
	query, args, err := r.sb.Delete(table).Where(where).ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return classify(err)
	}

	if result.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
