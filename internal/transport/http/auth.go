package http

import (
	"log/slog"
	"net/http"

	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/middleware"
	"cabdin/internal/transport/http/dto/request"
	"cabdin/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// Register godoc
// @Summary Registrasi admin baru
// @Description Membuat akun admin dengan status Pending. Akun baru harus disetujui Superadmin.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Email dan password"
// @Success 201 {object} response.Response{data=object{user_id=string}}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Email sudah terdaftar"
// @Router /api/v1/auth/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(slog.String("op", op))

	var req request.RegisterRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	id, err := r.UserService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("admin registered", slog.String("user_id", id.String()))

	return ok(c, http.StatusCreated, map[string]string{"user_id": id.String()})
}

// Login godoc
// @Summary Login admin
// @Description Memverifikasi email dan password lalu mengembalikan access dan refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Email dan password"
// @Success 200 {object} response.Response{data=models.TokenPair}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "Email atau password salah"
// @Failure 403 {object} response.ErrorResponse "Akun belum disetujui"
// @Router /api/v1/auth/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(slog.String("op", op))

	var req request.LoginRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	tokens, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return r.fail(c, log, err)
	}

	sess, err := session.Get(middleware.SessionName, c)
	if err == nil {
		sess.Values[middleware.SessionUserID] = tokens.UserID.String()
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to save session", sl.Err(err))
		}
	}

	return ok(c, http.StatusOK, tokens)
}

// Refresh godoc
// @Summary Perbarui token
// @Description Menukar refresh token dengan pasangan token baru. Refresh token lama tidak berlaku lagi.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshRequest true "Refresh token"
// @Success 200 {object} response.Response{data=models.TokenPair}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/auth/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(slog.String("op", op))

	var req request.RefreshRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	tokens, err := r.UserService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, tokens)
}

// Logout godoc
// @Summary Logout
// @Description Mencabut semua refresh token milik admin dan menghapus sesi.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(slog.String("op", op))

	userID, found := middleware.UserID(c)
	if !found {
		return r.fail(c, log, apperr.Unauthorized("autentikasi diperlukan"))
	}

	if err := r.UserService.Logout(c.Request().Context(), userID); err != nil {
		return r.fail(c, log, err)
	}

	if sess, err := session.Get(middleware.SessionName, c); err == nil {
		delete(sess.Values, middleware.SessionUserID)
		sess.Options.MaxAge = -1
		_ = sess.Save(c.Request(), c.Response())
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "logout berhasil"})
}

// Profile godoc
// @Summary Profil admin
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=models.Admin}
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/auth/profile [get]
func (r *Routers) Profile(c echo.Context) error {
	const op = "http.routers.Profile"

	log := r.log.With(slog.String("op", op))

	userID, found := middleware.UserID(c)
	if !found {
		return r.fail(c, log, apperr.Unauthorized("autentikasi diperlukan"))
	}

	profile, err := r.UserService.Profile(c.Request().Context(), userID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return ok(c, http.StatusOK, profile)
}
