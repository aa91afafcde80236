package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	t.Run("Usuário encontrado", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, nombre, email, password_hash, active, rol_id, created_at, updated_at FROM usuarios WHERE deleted = \$1 AND email = \$2`).
			WithArgs(false, "gerente@hotel.co").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "Gerente", "gerente@hotel.co", "hash", true, 2, now, now))

		user, err := repo.GetUserByEmail(context.Background(), "gerente@hotel.co")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 2, user.RoleID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Sem linhas retorna nil sem erro", func(t *testing.T) {
		mock.ExpectQuery("FROM usuarios").WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(context.Background(), "nao@existe.co")
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO usuarios \(nombre,email,password_hash,active,rol_id\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id, created_at, updated_at`).
		WithArgs("Recepción", "recepcion@hotel.co", "hash", true, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(9, now, now))

	user, err := repo.CreateUser(context.Background(), &domain.User{
		Nombre:       "Recepción",
		Email:        "recepcion@hotel.co",
		PasswordHash: "hash",
		Active:       true,
		RoleID:       3,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
