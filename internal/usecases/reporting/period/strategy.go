// Package period implementa as estratégias de agrupamento temporal (dia, semana, mês e ano)
// usadas no relatório de ocupação e receita por período.
package period

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
)

// Strategy gera a série de calendário de um período e a consulta de agregação sobre reservas
type Strategy interface {
	Type() domain.PeriodType
	// IntervalUnit é o passo da série, usado também no cálculo do fim de cada balde
	IntervalUnit() string
	// Truncate alinha a data ao início do período (UTC)
	Truncate(t time.Time) time.Time
	// BucketEnd retorna o último instante ainda dentro do balde iniciado em start
	BucketEnd(start time.Time) time.Time
	// GenerateSeries gera os inícios de balde de Truncate(start) até Truncate(end), em ordem crescente
	GenerateSeries(start, end time.Time) []time.Time
	BuildGenerateSeries(start, end time.Time) squirrel.Sqlizer
	BuildAggregationQuery(start, end time.Time, roomType *domain.RoomType) squirrel.SelectBuilder
}

// calendar são as primitivas que cada estratégia define
type calendar interface {
	IntervalUnit() string
	Truncate(t time.Time) time.Time
	next(t time.Time) time.Time
	// bucketEndOffset é a quantidade subtraída de "início + 1 unidade" para obter o fim do balde
	bucketEndOffset() string
}

const seriesSQL = "SELECT generate_series(date_trunc(?, ?::timestamp), date_trunc(?, ?::timestamp), ?::interval) AS periodo"

func oneUnit(c calendar) string {
	return "1 " + c.IntervalUnit()
}

func generateSeries(c calendar, start, end time.Time) []time.Time {
	last := c.Truncate(end)
	series := make([]time.Time, 0)
	for current := c.Truncate(start); !current.After(last); current = c.next(current) {
		series = append(series, current)
	}
	return series
}

func seriesArgs(c calendar, start, end time.Time) []interface{} {
	return []interface{}{c.IntervalUnit(), start.UTC(), c.IntervalUnit(), end.UTC(), oneUnit(c)}
}

func buildGenerateSeries(c calendar, start, end time.Time) squirrel.Sqlizer {
	return squirrel.Expr(seriesSQL, seriesArgs(c, start, end)...)
}

// buildAggregationQuery cruza a série gerada com as reservas ativas que se sobrepõem a cada balde.
// O LEFT JOIN garante uma linha por balde mesmo sem reservas.
func buildAggregationQuery(c calendar, start, end time.Time, roomType *domain.RoomType) squirrel.SelectBuilder {
	roomJoin := "habitaciones h ON h.id = r.habitacion_id AND h.deleted = false"
	joinArgs := make([]interface{}, 0, 3)
	if roomType != nil {
		roomJoin += " AND h.tipo = ?"
		joinArgs = append(joinArgs, string(*roomType))
	}
	joinArgs = append(joinArgs, oneUnit(c), c.bucketEndOffset())

	join := fmt.Sprintf(
		"(reservas r INNER JOIN %s) ON r.deleted = false"+
			" AND r.fecha_inicio <= s.periodo + ?::interval - ?::interval"+
			" AND r.fecha_fin > s.periodo",
		roomJoin,
	)

	return squirrel.
		Select(
			"s.periodo",
			"COUNT(DISTINCT r.habitacion_id) AS occupied_rooms",
			"COUNT(r.id) AS reservation_count",
			"COALESCE(SUM(r.costo), 0) AS revenue_total",
		).
		Prefix("WITH series AS ("+seriesSQL+")", seriesArgs(c, start, end)...).
		From("series s").
		LeftJoin(join, joinArgs...).
		GroupBy("s.periodo").
		OrderBy("s.periodo ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
