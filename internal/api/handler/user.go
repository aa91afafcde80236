package handler

import (
	"net/http"

	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/authenticating"
	"github.com/franbz1/hotel-san-miguel/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CreateUserRequest é o corpo aceito para cadastrar um funcionário
type CreateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// CreateUser cria um novo funcionário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Nombre == "" || req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Nombre:       req.Nombre,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
		})
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

// ListUsers lista os funcionários ativos
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}
