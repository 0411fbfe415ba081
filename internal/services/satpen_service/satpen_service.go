package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/datauri"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/repository"
	"cabdin/internal/storage"
)

const (
	IconBucket = "satpen-icons"
	iconPrefix = "jenis"
)

type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error
	Remove(ctx context.Context, bucket string, names ...string) error
	PublicURL(bucket, name string) string
}

type SchoolInput struct {
	NPSN       string
	Name       string
	KindID     int64
	Status     models.SchoolStatus
	Address    string
	LocationID *int64
}

// SchoolUpdate fields left zero keep their stored value.
type SchoolUpdate struct {
	Name       string
	KindID     int64
	Status     models.SchoolStatus
	Address    string
	LocationID *int64
}

type LocationInput struct {
	Kelurahan  string
	Kecamatan  string
	Kabupaten  string
	Provinsi   string
	StreetName string
}

type SatpenService struct {
	log   *slog.Logger
	repo  repository.SatpenRepository
	blobs BlobStore
}

func NewSatpenService(log *slog.Logger, repo repository.SatpenRepository, blobs BlobStore) *SatpenService {
	return &SatpenService{
		log:   log,
		repo:  repo,
		blobs: blobs,
	}
}

// Satuan pendidikan

func (s *SatpenService) ListSchools(ctx context.Context, filter models.SchoolFilter) ([]models.SchoolView, error) {
	const op = "satpen_service.ListSchools"

	filter.Name = strings.TrimSpace(filter.Name)
	filter.Kind = strings.TrimSpace(filter.Kind)

	list, err := s.repo.ListSchools(ctx, filter)
	if err != nil {
		s.log.Error("failed to list schools", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil data satuan pendidikan", fmt.Errorf("%s: %w", op, err))
	}

	return list, nil
}

func (s *SatpenService) GetSchool(ctx context.Context, npsn string) (models.SchoolView, error) {
	const op = "satpen_service.GetSchool"

	school, err := s.repo.GetSchool(ctx, npsn)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.SchoolView{}, apperr.NotFound("satuan pendidikan dengan NPSN %s tidak ditemukan", npsn)
		}
		s.log.Error("failed to get school", slog.String("op", op), slog.String("npsn", npsn), sl.Err(err))
		return models.SchoolView{}, apperr.Internal("gagal mengambil satuan pendidikan", fmt.Errorf("%s: %w", op, err))
	}

	return school, nil
}

func (s *SatpenService) CreateSchool(ctx context.Context, in SchoolInput) (models.SchoolView, error) {
	const op = "satpen_service.CreateSchool"

	log := s.log.With(slog.String("op", op), slog.String("npsn", in.NPSN))

	school := models.School{
		NPSN:       strings.TrimSpace(in.NPSN),
		Name:       strings.TrimSpace(in.Name),
		KindID:     in.KindID,
		Status:     in.Status,
		Address:    strings.TrimSpace(in.Address),
		LocationID: in.LocationID,
	}

	if school.NPSN == "" || school.Name == "" {
		return models.SchoolView{}, apperr.BadRequest("npsn dan nama wajib diisi")
	}
	if !validStatus(school.Status) {
		return models.SchoolView{}, apperr.BadRequest("status harus Negeri atau Swasta")
	}

	if err := s.repo.SaveSchool(ctx, school); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return models.SchoolView{}, apperr.Conflict("NPSN %s sudah terdaftar", school.NPSN)
		case errors.Is(err, storage.ErrReference):
			return models.SchoolView{}, apperr.BadRequest("jenis sekolah atau lokasi tidak ditemukan")
		}
		log.Error("failed to save school", sl.Err(err))
		return models.SchoolView{}, apperr.Internal("gagal membuat satuan pendidikan", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("school created")

	return s.GetSchool(ctx, school.NPSN)
}

func (s *SatpenService) UpdateSchool(ctx context.Context, npsn string, in SchoolUpdate) (models.SchoolView, error) {
	const op = "satpen_service.UpdateSchool"

	log := s.log.With(slog.String("op", op), slog.String("npsn", npsn))

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(in.Name); v != "" {
		updates["nama"] = v
	}
	if in.KindID != 0 {
		updates["jenis_id"] = in.KindID
	}
	if in.Status != "" {
		if !validStatus(in.Status) {
			return models.SchoolView{}, apperr.BadRequest("status harus Negeri atau Swasta")
		}
		updates["status"] = in.Status
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		updates["alamat"] = v
	}
	if in.LocationID != nil {
		updates["lokasi_id"] = *in.LocationID
	}

	if len(updates) == 0 {
		return models.SchoolView{}, apperr.BadRequest("tidak ada data yang diperbarui")
	}

	if err := s.repo.UpdateSchoolFields(ctx, npsn, updates); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return models.SchoolView{}, apperr.NotFound("satuan pendidikan dengan NPSN %s tidak ditemukan", npsn)
		case errors.Is(err, storage.ErrReference):
			return models.SchoolView{}, apperr.BadRequest("jenis sekolah atau lokasi tidak ditemukan")
		}
		log.Error("failed to update school", sl.Err(err))
		return models.SchoolView{}, apperr.Internal("gagal memperbarui satuan pendidikan", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("school updated")

	return s.GetSchool(ctx, npsn)
}

func (s *SatpenService) DeleteSchool(ctx context.Context, npsn string) (models.SchoolView, error) {
	const op = "satpen_service.DeleteSchool"

	snapshot, err := s.GetSchool(ctx, npsn)
	if err != nil {
		return models.SchoolView{}, err
	}

	if err := s.repo.DeleteSchool(ctx, npsn); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.SchoolView{}, apperr.NotFound("satuan pendidikan dengan NPSN %s tidak ditemukan", npsn)
		}
		s.log.Error("failed to delete school", slog.String("op", op), slog.String("npsn", npsn), sl.Err(err))
		return models.SchoolView{}, apperr.Internal("gagal menghapus satuan pendidikan", fmt.Errorf("%s: %w", op, err))
	}

	return snapshot, nil
}

// Lokasi

func (s *SatpenService) ListLocations(ctx context.Context) ([]models.Location, error) {
	const op = "satpen_service.ListLocations"

	list, err := s.repo.ListLocations(ctx)
	if err != nil {
		s.log.Error("failed to list locations", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil data lokasi", fmt.Errorf("%s: %w", op, err))
	}

	return list, nil
}

func (s *SatpenService) GetLocation(ctx context.Context, id int64) (models.Location, error) {
	const op = "satpen_service.GetLocation"

	loc, err := s.repo.GetLocation(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Location{}, apperr.NotFound("lokasi %d tidak ditemukan", id)
		}
		s.log.Error("failed to get location", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.Location{}, apperr.Internal("gagal mengambil lokasi", fmt.Errorf("%s: %w", op, err))
	}

	return loc, nil
}

func (s *SatpenService) CreateLocation(ctx context.Context, in LocationInput) (models.Location, error) {
	const op = "satpen_service.CreateLocation"

	loc := models.Location{
		Kelurahan:  strings.TrimSpace(in.Kelurahan),
		Kecamatan:  strings.TrimSpace(in.Kecamatan),
		Kabupaten:  strings.TrimSpace(in.Kabupaten),
		Provinsi:   strings.TrimSpace(in.Provinsi),
		StreetName: strings.TrimSpace(in.StreetName),
	}

	id, err := s.repo.SaveLocation(ctx, loc)
	if err != nil {
		s.log.Error("failed to save location", slog.String("op", op), sl.Err(err))
		return models.Location{}, apperr.Internal("gagal membuat lokasi", fmt.Errorf("%s: %w", op, err))
	}

	loc.ID = id
	return loc, nil
}

func (s *SatpenService) UpdateLocation(ctx context.Context, id int64, in LocationInput) (models.Location, error) {
	const op = "satpen_service.UpdateLocation"

	updates := map[string]interface{}{}
	for col, v := range map[string]string{
		"kelurahan":  in.Kelurahan,
		"kecamatan":  in.Kecamatan,
		"kabupaten":  in.Kabupaten,
		"provinsi":   in.Provinsi,
		"nama_jalan": in.StreetName,
	} {
		if v = strings.TrimSpace(v); v != "" {
			updates[col] = v
		}
	}

	if len(updates) == 0 {
		return models.Location{}, apperr.BadRequest("tidak ada data yang diperbarui")
	}

	if err := s.repo.UpdateLocationFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Location{}, apperr.NotFound("lokasi %d tidak ditemukan", id)
		}
		s.log.Error("failed to update location", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.Location{}, apperr.Internal("gagal memperbarui lokasi", fmt.Errorf("%s: %w", op, err))
	}

	return s.GetLocation(ctx, id)
}

func (s *SatpenService) DeleteLocation(ctx context.Context, id int64) error {
	const op = "satpen_service.DeleteLocation"

	if err := s.repo.DeleteLocation(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return apperr.NotFound("lokasi %d tidak ditemukan", id)
		case errors.Is(err, storage.ErrReference):
			return apperr.Conflict("lokasi %d masih dipakai satuan pendidikan", id)
		}
		s.log.Error("failed to delete location", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return apperr.Internal("gagal menghapus lokasi", fmt.Errorf("%s: %w", op, err))
	}

	return nil
}

// Jenis sekolah

func (s *SatpenService) ListKinds(ctx context.Context) ([]models.SchoolKind, error) {
	const op = "satpen_service.ListKinds"

	list, err := s.repo.ListKinds(ctx)
	if err != nil {
		s.log.Error("failed to list kinds", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil jenis sekolah", fmt.Errorf("%s: %w", op, err))
	}

	return list, nil
}

func (s *SatpenService) GetKind(ctx context.Context, id int64) (models.SchoolKind, error) {
	const op = "satpen_service.GetKind"

	kind, err := s.repo.GetKind(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.SchoolKind{}, apperr.NotFound("jenis sekolah %d tidak ditemukan", id)
		}
		s.log.Error("failed to get kind", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.SchoolKind{}, apperr.Internal("gagal mengambil jenis sekolah", fmt.Errorf("%s: %w", op, err))
	}

	return kind, nil
}

func (s *SatpenService) CreateKind(ctx context.Context, name string) (models.SchoolKind, error) {
	const op = "satpen_service.CreateKind"

	name = strings.TrimSpace(name)
	if name == "" {
		return models.SchoolKind{}, apperr.BadRequest("nama jenis wajib diisi")
	}

	id, err := s.repo.SaveKind(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.SchoolKind{}, apperr.Conflict("jenis sekolah %q sudah ada", name)
		}
		s.log.Error("failed to save kind", slog.String("op", op), sl.Err(err))
		return models.SchoolKind{}, apperr.Internal("gagal membuat jenis sekolah", fmt.Errorf("%s: %w", op, err))
	}

	return models.SchoolKind{ID: id, Name: name}, nil
}

func (s *SatpenService) UpdateKind(ctx context.Context, id int64, name string) (models.SchoolKind, error) {
	const op = "satpen_service.UpdateKind"

	name = strings.TrimSpace(name)
	if name == "" {
		return models.SchoolKind{}, apperr.BadRequest("nama jenis wajib diisi")
	}

	if err := s.repo.UpdateKindName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return models.SchoolKind{}, apperr.NotFound("jenis sekolah %d tidak ditemukan", id)
		case errors.Is(err, storage.ErrAlreadyExists):
			return models.SchoolKind{}, apperr.Conflict("jenis sekolah %q sudah ada", name)
		}
		s.log.Error("failed to update kind", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.SchoolKind{}, apperr.Internal("gagal memperbarui jenis sekolah", fmt.Errorf("%s: %w", op, err))
	}

	return s.GetKind(ctx, id)
}

// DeleteKind removes the kind and the blobs of its icons. Kinds still used by
// a school are refused.
func (s *SatpenService) DeleteKind(ctx context.Context, id int64) error {
	const op = "satpen_service.DeleteKind"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	kind, err := s.GetKind(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteKind(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return apperr.NotFound("jenis sekolah %d tidak ditemukan", id)
		case errors.Is(err, storage.ErrReference):
			return apperr.Conflict("jenis sekolah %d masih dipakai satuan pendidikan", id)
		}
		log.Error("failed to delete kind", sl.Err(err))
		return apperr.Internal("gagal menghapus jenis sekolah", fmt.Errorf("%s: %w", op, err))
	}

	var names []string
	for _, icon := range kind.Icons {
		if name := datauri.BlobName(icon.URL); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		if err := s.blobs.Remove(ctx, IconBucket, names...); err != nil {
			log.Warn("failed to remove kind icons", sl.Err(err))
		}
	}

	return nil
}

// Icons

// CreateKindIcon attaches an icon to a kind. image is a data URI to upload
// or an http(s) URL stored as is.
func (s *SatpenService) CreateKindIcon(ctx context.Context, kindID int64, image string) (models.SchoolKindIcon, error) {
	const op = "satpen_service.CreateKindIcon"

	log := s.log.With(slog.String("op", op), slog.Int64("kind_id", kindID))

	if strings.TrimSpace(image) == "" {
		return models.SchoolKindIcon{}, apperr.BadRequest("gambar wajib diisi")
	}

	if _, err := s.GetKind(ctx, kindID); err != nil {
		return models.SchoolKindIcon{}, err
	}

	url, err := s.resolveIcon(ctx, image)
	if err != nil {
		return models.SchoolKindIcon{}, err
	}

	id, err := s.repo.SaveKindIcon(ctx, models.SchoolKindIcon{KindID: kindID, URL: url})
	if err != nil {
		log.Error("failed to save icon", sl.Err(err))
		return models.SchoolKindIcon{}, apperr.Internal("gagal menyimpan ikon", fmt.Errorf("%s: %w", op, err))
	}

	return s.getKindIcon(ctx, id)
}

// UpdateKindIcon replaces the icon image, removing the previous blob, and
// optionally moves it to another kind.
func (s *SatpenService) UpdateKindIcon(ctx context.Context, id int64, kindID int64, image string) (models.SchoolKindIcon, error) {
	const op = "satpen_service.UpdateKindIcon"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	current, err := s.getKindIcon(ctx, id)
	if err != nil {
		return models.SchoolKindIcon{}, err
	}

	updates := map[string]interface{}{}
	if kindID != 0 && kindID != current.KindID {
		if _, err := s.GetKind(ctx, kindID); err != nil {
			return models.SchoolKindIcon{}, err
		}
		updates["id_jenis"] = kindID
	}

	if strings.TrimSpace(image) != "" {
		if err := checkIcon(image); err != nil {
			return models.SchoolKindIcon{}, err
		}
		if name := datauri.BlobName(current.URL); name != "" {
			if err := s.blobs.Remove(ctx, IconBucket, name); err != nil {
				log.Error("failed to remove old icon", sl.Err(err))
				return models.SchoolKindIcon{}, apperr.Internal("gagal menghapus ikon lama", fmt.Errorf("%s: %w", op, err))
			}
		}
		url, err := s.resolveIcon(ctx, image)
		if err != nil {
			return models.SchoolKindIcon{}, err
		}
		updates["url_gambar"] = url
	}

	if len(updates) == 0 {
		return models.SchoolKindIcon{}, apperr.BadRequest("tidak ada data yang diperbarui")
	}

	if err := s.repo.UpdateKindIconFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.SchoolKindIcon{}, apperr.NotFound("ikon %d tidak ditemukan", id)
		}
		log.Error("failed to update icon", sl.Err(err))
		return models.SchoolKindIcon{}, apperr.Internal("gagal memperbarui ikon", fmt.Errorf("%s: %w", op, err))
	}

	return s.getKindIcon(ctx, id)
}

func (s *SatpenService) DeleteKindIcon(ctx context.Context, id int64) (models.SchoolKindIcon, error) {
	const op = "satpen_service.DeleteKindIcon"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	icon, err := s.getKindIcon(ctx, id)
	if err != nil {
		return models.SchoolKindIcon{}, err
	}

	if name := datauri.BlobName(icon.URL); name != "" {
		if err := s.blobs.Remove(ctx, IconBucket, name); err != nil {
			log.Error("failed to remove icon blob", sl.Err(err))
			return models.SchoolKindIcon{}, apperr.Internal("gagal menghapus ikon", fmt.Errorf("%s: %w", op, err))
		}
	}

	if err := s.repo.DeleteKindIcon(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.SchoolKindIcon{}, apperr.NotFound("ikon %d tidak ditemukan", id)
		}
		log.Error("failed to delete icon", sl.Err(err))
		return models.SchoolKindIcon{}, apperr.Internal("gagal menghapus ikon", fmt.Errorf("%s: %w", op, err))
	}

	return icon, nil
}

func (s *SatpenService) getKindIcon(ctx context.Context, id int64) (models.SchoolKindIcon, error) {
	const op = "satpen_service.getKindIcon"

	icon, err := s.repo.GetKindIcon(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.SchoolKindIcon{}, apperr.NotFound("ikon %d tidak ditemukan", id)
		}
		return models.SchoolKindIcon{}, apperr.Internal("gagal mengambil ikon", fmt.Errorf("%s: %w", op, err))
	}

	return icon, nil
}

// resolveIcon uploads a data URI and returns its public URL. Remote URLs are
// returned unchanged.
func (s *SatpenService) resolveIcon(ctx context.Context, image string) (string, error) {
	const op = "satpen_service.resolveIcon"

	image = strings.TrimSpace(image)
	if err := checkIcon(image); err != nil {
		return "", err
	}

	if datauri.IsRemoteURL(image) {
		return image, nil
	}

	f, err := datauri.Decode(image)
	if err != nil {
		return "", apperr.BadRequest("gambar base64 tidak valid")
	}

	name := datauri.NewFileName(iconPrefix, f.Ext)
	if err := s.blobs.Upload(ctx, IconBucket, name, f.Data, f.MIME); err != nil {
		s.log.Error("failed to upload icon", slog.String("op", op), sl.Err(err))
		return "", uploadFailed(op, "gagal mengunggah ikon", err)
	}

	return s.blobs.PublicURL(IconBucket, name), nil
}

func checkIcon(image string) error {
	image = strings.TrimSpace(image)
	if datauri.IsRemoteURL(image) {
		return nil
	}
	if !datauri.IsDataURI(image) {
		return apperr.BadRequest("URL gambar harus http(s) atau data URI")
	}
	if _, err := datauri.Decode(image); err != nil {
		return apperr.BadRequest("gambar base64 tidak valid")
	}
	return nil
}

func validStatus(st models.SchoolStatus) bool {
	return st == models.SchoolNegeri || st == models.SchoolSwasta
}

func uploadFailed(op, msg string, err error) error {
	if errors.Is(err, storage.ErrFileTooLarge) {
		return apperr.BadRequest("ukuran file melebihi batas maksimum")
	}
	return apperr.Internal(msg, fmt.Errorf("%s: %w", op, err))
}
