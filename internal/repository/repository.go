package repository

import (
	"errors"
	"fmt"
	"strings"

	"cabdin/internal/storage"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

const foreignKeyViolation = "23503"

var (
	BeritaTable  = ContentTable{Table: "berita", ImageTable: "berita_gambar", OwnerCol: "berita_id"}
	InovasiTable = ContentTable{Table: "inovasi", ImageTable: "inovasi_gambar", OwnerCol: "inovasi_id"}
	CeritaTable  = ContentTable{Table: "cerita_praktik_baik", ImageTable: "cerita_praktik_baik_gambar", OwnerCol: "cerita_id"}
	SeputarTable = ContentTable{Table: "seputar_cabdin", ImageTable: "seputar_cabdin_gambar", OwnerCol: "seputar_id"}
)

// Repository bundles every postgres repository over one pool.
type Repository struct {
	Admin    *AdminRepo
	Berita   *ContentRepo
	Inovasi  *ContentRepo
	Cerita   *ContentRepo
	Seputar  *ContentRepo
	Prakata  *PrakataRepo
	Struktur *StrukturRepo
	Satpen   *SatpenRepo
	Footer   *FooterRepo
	Layanan  *LayananRepo
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Admin:    NewAdminRepository(db),
		Berita:   NewContentRepository(db, BeritaTable),
		Inovasi:  NewContentRepository(db, InovasiTable),
		Cerita:   NewContentRepository(db, CeritaTable),
		Seputar:  NewContentRepository(db, SeputarTable),
		Prakata:  NewPrakataRepository(db),
		Struktur: NewStrukturRepository(db),
		Satpen:   NewSatpenRepository(db),
		Footer:   NewFooterRepository(db),
		Layanan:  NewLayananRepository(db),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// classify maps postgres constraint errors onto storage sentinels.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, pgErr.ConstraintName)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", storage.ErrReference, pgErr.ConstraintName)
	}

	return err
}
