package middleware

import (
	"net/http"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStaff requires admin, supervisor or trainer role
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		switch user.Role(roleStr) {
		case user.RoleAdmin, user.RoleSupervisor, user.RoleTrainer:
			next.ServeHTTP(w, r)
		default:
			response.HandleError(w, user.ErrStaffAccessRequired)
		}
	})
}

// RequireIntern requires intern role
func RequireIntern(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Intern access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleIntern) {
			response.Forbidden(w, "Intern access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IsStaffRole reports whether a claims role string belongs to reviewing staff.
func IsStaffRole(role string) bool {
	switch user.Role(role) {
	case user.RoleAdmin, user.RoleSupervisor, user.RoleTrainer:
		return true
	}
	return false
}
