package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/franbz1/hotel-san-miguel/infrastructure/repository/mocks"
	"github.com/franbz1/hotel-san-miguel/internal/config"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, config.Auth{Secret: "test-secret", TokenTTL: time.Hour})
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Gerente123"), bcrypt.MinCost)
	require.NoError(t, err)

	gerente := &domain.User{ID: 5, Nombre: "Gerente", Email: "gerente@hotel.co", PasswordHash: string(hash), Active: true, RoleID: 2}

	t.Run("Login válido gera token com o perfil do usuário", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "gerente@hotel.co").Return(gerente, nil)

		token, err := service.LoginUser(ctx, " Gerente@Hotel.co ", "Gerente123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "gerente@hotel.co").Return(gerente, nil)

		_, err := service.LoginUser(ctx, "gerente@hotel.co", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Usuário inativo", func(t *testing.T) {
		inactive := *gerente
		inactive.Active = false
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "gerente@hotel.co").Return(&inactive, nil)

		_, err := service.LoginUser(ctx, "gerente@hotel.co", "Gerente123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "x@hotel.co").Return(nil, nil)

		_, err := service.LoginUser(ctx, "x@hotel.co", "Gerente123")

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrUserNotFound, authErr.Code)
	})

	t.Run("Campos vazios não consultam o banco", func(t *testing.T) {
		_, err := service.LoginUser(ctx, "", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, config.Auth{Secret: "test-secret", TokenTTL: time.Hour})

	t.Run("Token expirado", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 1, RoleID: 1}, "test-secret", -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 1, RoleID: 1}, "outro", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, config.Auth{Secret: "test-secret"})
	ctx := context.Background()

	t.Run("Recepcionista por padrão e senha com hash", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "nuevo@hotel.co").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, 3, user.RoleID)
				assert.True(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Recepcion1")))
				user.ID = 12
				return user, nil
			})

		user, err := service.CreateUser(ctx, &domain.User{Nombre: "Nuevo", Email: "Nuevo@hotel.co", PasswordHash: "Recepcion1"})
		require.NoError(t, err)
		assert.Equal(t, 12, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "gerente@hotel.co").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(ctx, &domain.User{Nombre: "G", Email: "gerente@hotel.co", PasswordHash: "Gerente123"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Senha fraca", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.User{Nombre: "G", Email: "g@hotel.co", PasswordHash: "abc"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Perfil inexistente", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.User{Nombre: "G", Email: "g@hotel.co", PasswordHash: "Gerente123", RoleID: 9})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}
