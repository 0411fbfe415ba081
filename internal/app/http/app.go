package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	appmw "cabdin/internal/middleware"
	httprouters "cabdin/internal/transport/http"
	"cabdin/internal/transport/http/dto/response"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Options struct {
	Host          string
	Port          string
	Timeout       time.Duration
	IdleTimeout   time.Duration
	CORSOrigins   []string
	JWTSecret     string
	SessionSecret string
	LoginRate     float64
	// StaticDir, when set, is served under StaticPrefix (local blob storage).
	StaticDir    string
	StaticPrefix string
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	gate    appmw.Gate
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers, gate appmw.Gate) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.Recover())

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: origins[0] != "*",
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))
	e.Use(appmw.PrometheusMetrics)

	store := sessions.NewCookieStore([]byte(opts.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	e.Use(session.Middleware(store))

	e.Use(appmw.BearerToken(opts.JWTSecret))
	e.Use(appmw.Identity)

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		gate:    gate,
		opts:    opts,
	}
}

// Handler exposes the configured echo instance, with routes built.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	srv := &http.Server{
		Addr:         s.addr(),
		Handler:      s.e,
		ReadTimeout:  s.opts.Timeout,
		WriteTimeout: 2 * s.opts.Timeout,
		IdleTimeout:  s.opts.IdleTimeout,
	}

	if err := s.e.StartServer(srv); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.opts.Host, s.opts.Port)
}

func (s *Server) loginLimiter() echo.MiddlewareFunc {
	limit := rate.Limit(s.opts.LoginRate)
	if limit <= 0 {
		limit = 5
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     int(limit) * 2,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, response.ErrTooManyRequests)
		},
	})
}

func (s *Server) BuildRouters() {
	r := s.routers

	s.e.GET("/health", r.HealthCheck)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if s.opts.StaticDir != "" {
		s.e.Static(s.opts.StaticPrefix, s.opts.StaticDir)
	}

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	approved := appmw.RequireApproved(s.gate)

	api := s.e.Group("/api/v1")
	{
		limiter := s.loginLimiter()

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", r.Register, limiter)
			authGroup.POST("/login", r.Login, limiter)
			authGroup.POST("/refresh", r.Refresh)
			authGroup.POST("/logout", r.Logout, appmw.RequireAuth)
			authGroup.GET("/profile", r.Profile, appmw.RequireAuth)
		}

		adminGroup := api.Group("/admin", appmw.RequireSuperadmin(s.gate))
		{
			adminGroup.GET("", r.ListAdmins)
			adminGroup.GET("/filter", r.FilterAdmins)
			adminGroup.GET("/:id", r.GetAdmin)
			adminGroup.PUT("/:id", r.UpdateAdmin)
			adminGroup.DELETE("/:id", r.DeleteAdmin)
		}

		for _, m := range r.Contents {
			h := r.Content(m)
			g := api.Group(m.Path)
			g.GET("", h.List)
			g.GET("/filter", h.Filter)
			g.GET("/:id", h.Get)
			g.POST("", h.Create, approved)
			g.PUT("/:id", h.Update, approved)
			g.DELETE("/:id", h.Delete, approved)
		}

		prakataGroup := api.Group("/prakata")
		{
			prakataGroup.GET("", r.ListPrakata)
			prakataGroup.POST("", r.CreatePrakata, approved)
			prakataGroup.PUT("/:id", r.UpdatePrakata, approved)
			prakataGroup.DELETE("/:id", r.DeletePrakata, approved)
		}

		strukturGroup := api.Group("/struktur-organisasi")
		{
			strukturGroup.GET("", r.ListStruktur)
			strukturGroup.POST("", r.CreateStruktur, approved)
			strukturGroup.PUT("/:id", r.UpdateStruktur, approved)
			strukturGroup.DELETE("/:id", r.DeleteStruktur, approved)
		}

		satpenGroup := api.Group("/satpen")
		{
			satpenGroup.GET("", r.ListSchools)
			satpenGroup.GET("/:npsn", r.GetSchool)
			satpenGroup.POST("", r.CreateSchool, approved)
			satpenGroup.PUT("/:npsn", r.UpdateSchool, approved)
			satpenGroup.DELETE("/:npsn", r.DeleteSchool, approved)
		}

		lokasiGroup := api.Group("/lokasi")
		{
			lokasiGroup.GET("", r.ListLocations)
			lokasiGroup.GET("/:id", r.GetLocation)
			lokasiGroup.POST("", r.CreateLocation, approved)
			lokasiGroup.PUT("/:id", r.UpdateLocation, approved)
			lokasiGroup.DELETE("/:id", r.DeleteLocation, approved)
		}

		jenisGroup := api.Group("/jenis-sekolah")
		{
			jenisGroup.GET("", r.ListKinds)
			jenisGroup.GET("/:id", r.GetKind)
			jenisGroup.POST("", r.CreateKind, approved)
			jenisGroup.PUT("/:id", r.UpdateKind, approved)
			jenisGroup.DELETE("/:id", r.DeleteKind, approved)
			jenisGroup.POST("/gambar", r.CreateKindIcon, approved)
			jenisGroup.PUT("/gambar/:id", r.UpdateKindIcon, approved)
			jenisGroup.DELETE("/gambar/:id", r.DeleteKindIcon, approved)
		}

		footerGroup := api.Group("/footer")
		{
			footerGroup.GET("", r.ListFooter)
			footerGroup.PUT("/:id", r.UpdateFooter, approved)
		}

		layananGroup := api.Group("/layanan")
		{
			layananGroup.GET("", r.ListLayanan)
			layananGroup.GET("/:id", r.GetLayanan)
			layananGroup.POST("", r.CreateLayanan, approved)
			layananGroup.PUT("/:id", r.UpdateLayanan, approved)
			layananGroup.DELETE("/:id", r.DeleteLayanan, approved)
		}

		dashboardGroup := api.Group("/dashboard", appmw.RequireAuth)
		{
			dashboardGroup.GET("/admin", r.DashboardAdmins)
			dashboardGroup.GET("/berita", r.DashboardNews)
			dashboardGroup.GET("/sekolah", r.DashboardSchools)
		}
	}
}
