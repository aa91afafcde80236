package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/infrastructure/database/postgres"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
)

type OccupancyRepository interface {
	// Aggregate executa uma consulta de agregação por período. A consulta deve retornar
	// as colunas periodo, occupied_rooms, reservation_count e revenue_total.
	Aggregate(ctx context.Context, query squirrel.Sqlizer) ([]domain.PeriodBucket, error)
}

type occupancyRepository struct {
	conn postgres.Queryer
}

func NewOccupancyRepository(conn postgres.Queryer) OccupancyRepository {
	return &occupancyRepository{
		conn: conn,
	}
}

func (r *occupancyRepository) Aggregate(ctx context.Context, query squirrel.Sqlizer) ([]domain.PeriodBucket, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	buckets := make([]domain.PeriodBucket, 0)
	for rows.Next() {
		var bucket domain.PeriodBucket
		err := rows.Scan(
			&bucket.Periodo,
			&bucket.OccupiedRooms,
			&bucket.ReservationCount,
			&bucket.RevenueTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buckets, nil
}
