package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/infrastructure/database/postgres"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/lib/pq"
)

const (
	revenueClosingsTable = "cierres_ingresos ci"
)

type RevenueClosingRepository interface {
	SaveOrUpdate(ctx context.Context, closing *domain.RevenueClosing) error
	ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.RevenueClosing, error)
}

type revenueClosingRepository struct {
	conn postgres.Queryer
}

func NewRevenueClosingRepository(conn postgres.Queryer) RevenueClosingRepository {
	return &revenueClosingRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava o fechamento do dia, substituindo os valores caso a data já exista.
// closing.ID recebe o id persistido, que é o original quando a data já tinha fechamento.
func (r *revenueClosingRepository) SaveOrUpdate(ctx context.Context, closing *domain.RevenueClosing) error {
	query := squirrel.StatementBuilder.
		Insert("cierres_ingresos").
		Columns("id", "fecha", "total_ingresos", "cantidad_facturas", "promedio_por_factura").
		Values(
			closing.ID,
			closing.Fecha,
			closing.TotalIngresos,
			closing.CantidadFacturas,
			closing.PromedioPorFactura,
		).
		Suffix(`
			ON CONFLICT (fecha) DO UPDATE SET
				total_ingresos = EXCLUDED.total_ingresos,
				cantidad_facturas = EXCLUDED.cantidad_facturas,
				promedio_por_factura = EXCLUDED.promedio_por_factura,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var storedID string
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&storedID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	closing.ID = storedID
	return nil
}

func (r *revenueClosingRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.RevenueClosing, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query, args, err := squirrel.
		Select(
			"ci.id",
			"ci.fecha",
			"ci.total_ingresos",
			"ci.cantidad_facturas",
			"ci.promedio_por_factura",
			"ci.created_at",
			"ci.updated_at",
		).
		From(revenueClosingsTable).
		Where(squirrel.GtOrEq{"ci.fecha": start}).
		Where(squirrel.Lt{"ci.fecha": end}).
		OrderBy("ci.fecha ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	closings := make([]*domain.RevenueClosing, 0)
	for rows.Next() {
		closing, err := r.scanClosing(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fechamento: %w", err)
		}
		closings = append(closings, closing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return closings, nil
}

func (r *revenueClosingRepository) scanClosing(rows *sql.Rows) (*domain.RevenueClosing, error) {
	closing := &domain.RevenueClosing{}

	err := rows.Scan(
		&closing.ID,
		&closing.Fecha,
		&closing.TotalIngresos,
		&closing.CantidadFacturas,
		&closing.PromedioPorFactura,
		&closing.CreatedAt,
		&closing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return closing, nil
}
