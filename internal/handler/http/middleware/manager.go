package middleware

import (
	"net/http"

	"github.com/attendly/worktime-backend-go/internal/domain/auth"
	"github.com/attendly/worktime-backend-go/internal/domain/employee"
	"github.com/attendly/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// ManagerOnly guards decision endpoints and department-wide views.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleManager) {
			response.HandleError(w, auth.ErrManagerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
