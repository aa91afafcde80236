package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/franbz1/hotel-san-miguel/infrastructure/repository"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/pkg/apiErrors"
	"github.com/franbz1/hotel-san-miguel/pkg/log"
	"github.com/franbz1/hotel-san-miguel/pkg/utils"
)

// ClosingManager grava e consulta os fechamentos diários de receita
type ClosingManager interface {
	CloseDay(ctx context.Context, date string) (*domain.RevenueClosing, error)
	ListClosings(ctx context.Context, year, month int) ([]*domain.RevenueClosing, error)
}

type ClosingService struct {
	revenue     RevenueReporter
	closingRepo repository.RevenueClosingRepository
}

func NewClosingService(revenue RevenueReporter, closingRepo repository.RevenueClosingRepository) ClosingManager {
	return &ClosingService{
		revenue:     revenue,
		closingRepo: closingRepo,
	}
}

// CloseDay calcula a receita do dia e grava (ou substitui) o fechamento correspondente
func (s *ClosingService) CloseDay(ctx context.Context, date string) (*domain.RevenueClosing, error) {
	fecha, err := utils.ParseDate(date)
	if err != nil {
		return nil, invalidDate(date)
	}

	daily, err := s.revenue.DailyRevenue(ctx, date)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do fechamento: %w", err)
	}

	closing := &domain.RevenueClosing{
		ID:                 id,
		Fecha:              fecha,
		TotalIngresos:      daily.TotalRevenue,
		CantidadFacturas:   daily.InvoiceCount,
		PromedioPorFactura: daily.AveragePerInvoice,
	}

	if err := s.closingRepo.SaveOrUpdate(ctx, closing); err != nil {
		log.ForContext(ctx).WithError(err).Errorf("revenue-closing: erro ao gravar fechamento de %s", date)
		return nil, aggregationFailed("erro ao gravar fechamento diário")
	}

	// closing.ID agora é o id persistido
	return closing, nil
}

func (s *ClosingService) ListClosings(ctx context.Context, year, month int) ([]*domain.RevenueClosing, error) {
	if month < 1 || month > 12 {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, fmt.Sprintf("mês recebido: %d", month))
	}

	closings, err := s.closingRepo.ListByMonth(ctx, year, time.Month(month))
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("revenue-closing: erro ao listar fechamentos de %d-%02d", year, month)
		return nil, aggregationFailed("erro ao listar fechamentos")
	}

	return closings, nil
}
