package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepository_Aggregate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInvoiceRepository(db)
	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	t.Run("Limite superior exclusivo e soft delete", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT COALESCE(SUM(f.total), 0), COUNT(f.id) FROM facturas f " +
				"WHERE f.deleted = $1 AND f.fecha_factura >= $2 AND f.fecha_factura < $3",
		)).
			WithArgs(false, from, to).
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow("400.00", 3))

		result, err := repo.Aggregate(context.Background(), domain.InvoiceQuery{
			IssuedAt: domain.DateBound{From: from, To: to},
		})
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(400).Equal(result.Sum))
		assert.Equal(t, 3, result.Count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE").WillReturnError(errors.New("connection reset"))

		_, err := repo.Aggregate(context.Background(), domain.InvoiceQuery{
			IssuedAt: domain.DateBound{From: from, To: to},
		})
		assert.ErrorContains(t, err, "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvoiceRepository_FindMany(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInvoiceRepository(db)
	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 15, 23, 59, 59, 999000000, time.UTC)
	issued := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	query := domain.InvoiceQuery{
		IssuedAt:          domain.DateBound{From: from, To: to, InclusiveEnd: true},
		ActiveGuest:       true,
		ActiveReservation: true,
		Include:           []domain.InvoiceRelation{domain.InvoiceRelationGuest, domain.InvoiceRelationReservation},
		OrderBy:           &domain.InvoiceOrder{Field: "fecha_factura", Direction: domain.SortDesc},
	}

	columns := append(append(append([]string{}, invoiceColumns...), guestColumns...), reservationColumns...)

	t.Run("Carrega huésped e reserva, com reserva opcional", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"FROM facturas f " +
				"JOIN huespedes h ON h.id = f.huesped_id " +
				"LEFT JOIN reservas r ON r.id = f.reserva_id " +
				"WHERE f.deleted = $1 AND f.fecha_factura >= $2 AND f.fecha_factura <= $3 " +
				"AND h.deleted = $4 AND (f.reserva_id IS NULL OR r.deleted = $5) " +
				"ORDER BY f.fecha_factura DESC",
		)).
			WithArgs(false, from, to, false, false).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(
					2, "150.00", issued, 10, 7, false, createdAt, createdAt,
					10, "Ana", "Gómez", "CC123", false, createdAt, createdAt,
					7, from, from.AddDate(0, 0, 2), "300.00", 3, 10, false, createdAt, createdAt,
				).
				AddRow(
					1, "90.00", issued.Add(-time.Hour), 11, nil, false, createdAt, createdAt,
					11, "Luis", "Pérez", "CC456", false, createdAt, createdAt,
					nil, nil, nil, nil, nil, nil, nil, nil, nil,
				))

		invoices, err := repo.FindMany(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, invoices, 2)

		first := invoices[0]
		assert.Equal(t, 2, first.ID)
		require.NotNil(t, first.ReservaID)
		assert.Equal(t, 7, *first.ReservaID)
		require.NotNil(t, first.Huesped)
		assert.Equal(t, "Ana", first.Huesped.Nombres)
		require.NotNil(t, first.Reserva)
		assert.Equal(t, 3, first.Reserva.HabitacionID)
		assert.True(t, decimal.NewFromInt(300).Equal(first.Reserva.Costo))

		second := invoices[1]
		assert.Nil(t, second.ReservaID)
		assert.Nil(t, second.Reserva)
		assert.Equal(t, "Luis", second.Huesped.Nombres)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Sem linhas retorna lista vazia", func(t *testing.T) {
		mock.ExpectQuery("FROM facturas f").
			WillReturnRows(sqlmock.NewRows(columns))

		invoices, err := repo.FindMany(context.Background(), query)
		require.NoError(t, err)
		assert.NotNil(t, invoices)
		assert.Empty(t, invoices)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Campo de ordenação fora da lista não chega ao banco", func(t *testing.T) {
		_, err := repo.FindMany(context.Background(), domain.InvoiceQuery{
			IssuedAt: domain.DateBound{From: from, To: to},
			OrderBy:  &domain.InvoiceOrder{Field: "total; DROP TABLE facturas", Direction: domain.SortAsc},
		})
		assert.ErrorContains(t, err, "campo de ordenação não suportado")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
