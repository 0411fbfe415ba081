package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	httpapp "cabdin/internal/app/http"
	"cabdin/internal/config"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/lib/sanitize"
	"cabdin/internal/repository"
	admin "cabdin/internal/services/admin_service"
	"cabdin/internal/services/auth"
	content "cabdin/internal/services/content_service"
	dashboard "cabdin/internal/services/dashboard_service"
	footer "cabdin/internal/services/footer_service"
	layanan "cabdin/internal/services/layanan_service"
	prakata "cabdin/internal/services/prakata_service"
	satpen "cabdin/internal/services/satpen_service"
	struktur "cabdin/internal/services/struktur_service"
	token "cabdin/internal/services/token_service"
	user "cabdin/internal/services/user_service"
	"cabdin/internal/storage/filestorage"
	"cabdin/internal/storage/postgresql"
	redisapp "cabdin/internal/storage/redis"
	httprouters "cabdin/internal/transport/http"
)

const (
	driverLocal    = "local"
	driverSupabase = "supabase"
)

// contentModule describes one of the article-like modules served by the
// generic content service.
type contentModule struct {
	path  string
	table repository.ContentTable
	cfg   content.Config
}

var contentModules = []contentModule{
	{"/berita", repository.BeritaTable, content.Config{Name: "berita", Bucket: "berita", Prefix: "berita"}},
	{"/inovasi", repository.InovasiTable, content.Config{Name: "inovasi", Bucket: "inovasi", Prefix: "inovasi"}},
	{"/cerita-praktik-baik", repository.CeritaTable, content.Config{Name: "cerita praktik baik", Bucket: "cerita_praktik_baik", Prefix: "cerita"}},
	{"/seputar-cabdin", repository.SeputarTable, content.Config{Name: "seputar cabdin", Bucket: "seputar_cabdin", Prefix: "seputar"}},
}

type App struct {
	log        *slog.Logger
	HTTPServer *httpapp.Server
	handler    http.Handler
	storage    *postgresql.Storage
	redis      *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	pg, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	blobs, err := newBlobStore(cfg.Storage)
	if err != nil {
		pg.Stop()
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.NewRepository(pg.DB)
	tokenRepo := repository.NewRedisTokenRepo(rdb)
	policy := sanitize.New()

	tokens := token.NewTokenService(log, tokenRepo, cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	gate := auth.NewGate(log, repo.Admin)

	routers := httprouters.NewRouter(log)
	routers.UserService = user.NewUserService(log, repo.Admin, tokens)
	routers.AdminService = admin.NewAdminService(log, repo.Admin)
	routers.PrakataService = prakata.NewPrakataService(log, repo.Prakata, policy)
	routers.StrukturService = struktur.NewStrukturService(log, repo.Struktur, blobs)
	routers.SatpenService = satpen.NewSatpenService(log, repo.Satpen, blobs)
	routers.FooterService = footer.NewFooterService(log, repo.Footer)
	routers.LayananService = layanan.NewLayananService(log, repo.Layanan, blobs)
	routers.DashboardService = dashboard.NewDashboardService(log, repo.Admin, repo.Berita, repo.Satpen, cfg.Cache.DashboardTTL, cfg.Cache.Cleanup)

	for _, m := range contentModules {
		svc := content.NewContentService(log, m.cfg, repository.NewContentRepository(pg.DB, m.table), policy, blobs)
		routers.Contents = append(routers.Contents, httprouters.ContentModule{Path: m.path, Service: svc})
	}

	routers.Health["postgres"] = pg
	routers.Health["redis"] = rdb

	opts := httpapp.Options{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		Timeout:       cfg.HTTP.Timeout,
		IdleTimeout:   cfg.HTTP.IdleTimeout,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		JWTSecret:     cfg.Auth.JWTSecret,
		SessionSecret: cfg.Auth.SessionSecret,
		LoginRate:     cfg.Auth.LoginRate,
	}
	if cfg.Storage.Driver != driverSupabase {
		opts.StaticDir = cfg.Storage.BaseDir
		opts.StaticPrefix = staticPrefix(cfg.Storage.BaseURL)
	}

	server := httpapp.New(log, opts, routers, gate)
	server.BuildRouters()

	return &App{
		log:        log,
		HTTPServer: server,
		handler:    server.Handler(),
		storage:    pg,
		redis:      rdb,
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Stop closes the database pool and the redis client. The HTTP server is
// stopped separately by its owner.
func (a *App) Stop() {
	if a.storage != nil {
		a.storage.Stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis", sl.Err(err))
		}
	}
}

func newBlobStore(cfg config.StorageConfig) (filestorage.BlobStore, error) {
	switch cfg.Driver {
	case driverSupabase:
		return filestorage.NewInstrumented(filestorage.NewSupabaseStorage(cfg.SupabaseURL, cfg.ServiceKey, cfg.MaxSize)), nil
	case driverLocal, "":
		local, err := filestorage.NewLocalFileStorage(cfg.BaseDir, cfg.BaseURL, cfg.MaxSize)
		if err != nil {
			return nil, err
		}
		return filestorage.NewInstrumented(local), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// staticPrefix is the path part of the public base URL, "/uploads" by default.
func staticPrefix(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/uploads"
	}
	return u.Path
}
