package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/franbz1/hotel-san-miguel/infrastructure/repository"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/reporting/period"
	"github.com/franbz1/hotel-san-miguel/pkg/apiErrors"
	"github.com/franbz1/hotel-san-miguel/pkg/log"
	"github.com/franbz1/hotel-san-miguel/pkg/utils"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OccupancyReporter interface {
	OccupancyReport(ctx context.Context, filter domain.OccupancyFilter) (*domain.OccupancyReport, error)
}

type OccupancyService struct {
	occupancyRepo repository.OccupancyRepository
}

func NewOccupancyService(occupancyRepo repository.OccupancyRepository) OccupancyReporter {
	return &OccupancyService{
		occupancyRepo: occupancyRepo,
	}
}

// OccupancyReport agrega reservas por balde de calendário. Todos os baldes do intervalo
// aparecem na resposta, com zeros quando não há reservas.
func (s *OccupancyService) OccupancyReport(ctx context.Context, filter domain.OccupancyFilter) (*domain.OccupancyReport, error) {
	strategy, err := period.Select(filter.PeriodType)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrUnsupportedPeriod, fmt.Sprintf("período recebido: %q", filter.PeriodType))
	}

	start, err := utils.ParseDate(filter.StartDate)
	if err != nil {
		return nil, invalidDate(filter.StartDate)
	}

	end, err := utils.ParseDate(filter.EndDate)
	if err != nil {
		return nil, invalidDate(filter.EndDate)
	}

	if start.After(end) {
		return nil, invalidRange(filter.StartDate, filter.EndDate)
	}

	roomType, err := normalizeRoomType(filter.RoomType)
	if err != nil {
		return nil, err
	}

	query := strategy.BuildAggregationQuery(start, end, roomType)
	rows, err := s.occupancyRepo.Aggregate(ctx, query)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("occupancy-report: erro ao agregar reservas (%s, %s a %s)",
			strategy.Type(), filter.StartDate, filter.EndDate)
		return nil, aggregationFailed("erro ao gerar relatório de ocupação")
	}

	return &domain.OccupancyReport{
		PeriodType: strategy.Type(),
		StartDate:  start.Format(time.DateOnly),
		EndDate:    end.Format(time.DateOnly),
		RoomType:   roomType,
		Buckets:    mergeBuckets(strategy.GenerateSeries(start, end), rows),
	}, nil
}

func normalizeRoomType(roomType *domain.RoomType) (*domain.RoomType, error) {
	if roomType == nil || strings.TrimSpace(string(*roomType)) == "" {
		return nil, nil
	}

	normalized := domain.RoomType(strings.ToUpper(strings.TrimSpace(string(*roomType))))
	if !normalized.IsValid() {
		return nil, NewReportError(ErrInvalidRoomType, apiErrors.ErrInvalidRoomType, fmt.Sprintf("tipo recebido: %q", string(*roomType)))
	}

	return &normalized, nil
}

// mergeBuckets preenche a série de calendário com as linhas retornadas pelo banco
func mergeBuckets(series []time.Time, rows []domain.PeriodBucket) []domain.PeriodBucket {
	byStart := lo.KeyBy(rows, func(row domain.PeriodBucket) int64 {
		return row.Periodo.Unix()
	})

	return lo.Map(series, func(start time.Time, _ int) domain.PeriodBucket {
		if row, ok := byStart[start.Unix()]; ok {
			row.Periodo = start
			row.RevenueTotal = utils.RoundWithTwoDecimalPlace(row.RevenueTotal)
			return row
		}
		return domain.PeriodBucket{
			Periodo:      start,
			RevenueTotal: decimal.Zero,
		}
	})
}
