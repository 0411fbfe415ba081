package repository

import (
	"context"
	"time"

	"cabdin/internal/domain/models"

	"github.com/google/uuid"
)

type AdminRepository interface {
	SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (models.Admin, error)
	ListAdmins(ctx context.Context, filter models.AdminFilter) ([]models.Admin, error)
	UpdateAdminFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
	CountAdminsByRole(ctx context.Context) (map[models.Role]int64, error)
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

// ContentRepository serves one record table and its image table.
type ContentRepository interface {
	SaveRecord(ctx context.Context, rec models.ContentRecord) (int64, error)
	GetRecordByID(ctx context.Context, id int64) (*models.ContentJoined, error)
	ListRecords(ctx context.Context, filter models.ContentFilter) ([]models.ContentJoined, error)
	UpdateRecordFields(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteRecord(ctx context.Context, id int64) error
	SaveImage(ctx context.Context, img models.ImageRef) (int64, error)
	UpdateImageFields(ctx context.Context, imageID int64, updates map[string]interface{}) error
	DeleteImagesByOwner(ctx context.Context, ownerID int64) error
}

type MonthlyCounter interface {
	CountByMonth(ctx context.Context, from, to time.Time) (map[int]int64, error)
}

type PrakataRepository interface {
	SavePrakata(ctx context.Context, p models.Prakata) (int64, error)
	GetPrakata(ctx context.Context, id int64) (models.Prakata, error)
	ListPrakata(ctx context.Context) ([]models.Prakata, error)
	UpdatePrakataFields(ctx context.Context, id int64, updates map[string]interface{}) error
	DeletePrakata(ctx context.Context, id int64) error
}

type StrukturRepository interface {
	SaveStructure(ctx context.Context, s models.OrgStructure) (int64, error)
	GetStructure(ctx context.Context, id int64) (models.OrgStructure, error)
	ListStructures(ctx context.Context, id *int64) ([]models.OrgStructure, error)
	UpdateStructureFields(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteStructure(ctx context.Context, id int64) error
}

type SatpenRepository interface {
	SaveSchool(ctx context.Context, s models.School) error
	GetSchool(ctx context.Context, npsn string) (models.SchoolView, error)
	ListSchools(ctx context.Context, filter models.SchoolFilter) ([]models.SchoolView, error)
	UpdateSchoolFields(ctx context.Context, npsn string, updates map[string]interface{}) error
	DeleteSchool(ctx context.Context, npsn string) error
	CountSchoolsByKind(ctx context.Context, status models.SchoolStatus, kindID int64) (map[int64]int64, error)

	SaveLocation(ctx context.Context, l models.Location) (int64, error)
	GetLocation(ctx context.Context, id int64) (models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	UpdateLocationFields(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteLocation(ctx context.Context, id int64) error

	SaveKind(ctx context.Context, name string) (int64, error)
	GetKind(ctx context.Context, id int64) (models.SchoolKind, error)
	ListKinds(ctx context.Context) ([]models.SchoolKind, error)
	UpdateKindName(ctx context.Context, id int64, name string) error
	DeleteKind(ctx context.Context, id int64) error

	SaveKindIcon(ctx context.Context, icon models.SchoolKindIcon) (int64, error)
	GetKindIcon(ctx context.Context, id int64) (models.SchoolKindIcon, error)
	UpdateKindIconFields(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteKindIcon(ctx context.Context, id int64) error
}

type FooterRepository interface {
	ListFooters(ctx context.Context) ([]models.Footer, error)
	GetFooter(ctx context.Context, id int64) (models.Footer, error)
	UpdateFooterFields(ctx context.Context, id int64, updates map[string]interface{}) error
}

type LayananRepository interface {
	SaveDocument(ctx context.Context, d models.ServiceDocument) (int64, error)
	GetDocument(ctx context.Context, id int64) (models.ServiceDocument, error)
	ListDocuments(ctx context.Context, filter models.ServiceFilter) ([]models.ServiceDocument, error)
	UpdateDocumentFields(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteDocument(ctx context.Context, id int64) error
}
