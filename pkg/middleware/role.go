package middleware

import (
	"net/http"

	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/pkg/apiErrors"
	"github.com/franbz1/hotel-san-miguel/pkg/log"
	"github.com/samber/lo"
)

// Perfis de funcionário (coluna usuarios.rol_id)
const (
	RoleAdmin         = 1
	RoleGerente       = 2
	RoleRecepcionista = 3
)

var roleNames = map[int]string{
	RoleAdmin:         "admin",
	RoleGerente:       "gerente",
	RoleRecepcionista: "recepcionista",
}

// RoleMiddleware restringe a rota aos perfis informados; depende das claims do AuthMiddleware
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logger.Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !lo.Contains(allowedRoles, userClaims.UserRoleID) {
				logger.WithFields(log.Fields{
					"user_id":   userClaims.UserID,
					"user_role": roleNames[userClaims.UserRoleID],
					"path":      r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly cobre cadastro de funcionários e disparo manual de jobs
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrGerente cobre os relatórios financeiros e de ocupação
func AdminOrGerente() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleGerente})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(lo.Keys(roleNames))
}
