package http

import (
	"encoding/json"
	"net/http"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/middleware"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ListInterns(w http.ResponseWriter, r *http.Request)
	ApproveRegistration(w http.ResponseWriter, r *http.Request)
	DisapproveRegistration(w http.ResponseWriter, r *http.Request)
	SetHoursTarget(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// GetProfile implements UserHandler.
func (h *userHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	usr, err := h.userService.GetProfile(r.Context(), middleware.CurrentUserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.ToResponse(usr))
}

// UpdateProfile implements UserHandler.
func (h *userHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = middleware.CurrentUserID(r)

	usr, err := h.userService.UpdateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", user.ToResponse(usr))
}

// ListInterns implements UserHandler.
func (h *userHandlerImpl) ListInterns(w http.ResponseWriter, r *http.Request) {
	var status *user.AccountStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := user.AccountStatus(s)
		status = &st
	}

	interns, err := h.userService.ListInterns(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]user.UserResponse, 0, len(interns))
	for _, intern := range interns {
		responses = append(responses, user.ToResponse(intern))
	}

	response.Success(w, responses)
}

// ApproveRegistration implements UserHandler.
func (h *userHandlerImpl) ApproveRegistration(w http.ResponseWriter, r *http.Request) {
	usr, err := h.userService.ReviewRegistration(r.Context(), chi.URLParam(r, "id"), true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registration approved", user.ToResponse(usr))
}

// DisapproveRegistration implements UserHandler.
func (h *userHandlerImpl) DisapproveRegistration(w http.ResponseWriter, r *http.Request) {
	usr, err := h.userService.ReviewRegistration(r.Context(), chi.URLParam(r, "id"), false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registration disapproved", user.ToResponse(usr))
}

// SetHoursTarget implements UserHandler.
func (h *userHandlerImpl) SetHoursTarget(w http.ResponseWriter, r *http.Request) {
	var req user.SetHoursTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	usr, err := h.userService.SetHoursTarget(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hours target updated", user.ToResponse(usr))
}
