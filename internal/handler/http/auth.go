package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/middleware"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leavedesk-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *auth.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService *auth.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var dto employee.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	emp, err := h.authService.Register(r.Context(), dto)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered successfully", emp.ToProfileResponse())
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var dto employee.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	emp, pair, err := h.authService.Login(r.Context(), dto)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))

	response.Success(w, map[string]interface{}{
		"access_token": pair.AccessToken,
		"expires_at":   pair.AccessExpiresAt,
		"employee":     emp.ToProfileResponse(),
	})
}

func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))

	response.Success(w, map[string]interface{}{
		"access_token": pair.AccessToken,
		"expires_at":   pair.AccessExpiresAt,
	})
}

func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		h.authService.Logout(cookie.Value)
	}

	expired := h.jwtService.RefreshTokenCookie("", time.Now().Unix())
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

func (h *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	emp, err := h.authService.Profile(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp.ToProfileResponse())
}

func (h *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var dto employee.ForgotPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), dto); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "If the email exists, a reset code has been sent", nil)
}

func (h *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var dto employee.ResetPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	if err := h.authService.ResetPassword(r.Context(), dto); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password reset successfully", nil)
}
