// Package reporting contém os casos de uso de relatórios financeiros e de ocupação
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

type RevenueReporter interface {
	DailyRevenue(ctx context.Context, date string) (*domain.DailyRevenue, error)
	MonthlyRevenue(ctx context.Context, year, month int) (*domain.MonthlyRevenue, error)
	InvoicesInRange(ctx context.Context, startDate, endDate string) ([]*domain.Invoice, error)
}

type RevenueService struct {
	invoiceRepo repository.InvoiceRepository
}

func NewRevenueService(invoiceRepo repository.InvoiceRepository) RevenueReporter {
	return &RevenueService{
		invoiceRepo: invoiceRepo,
	}
}

// DailyRevenue soma as faturas ativas emitidas no dia [00:00, 00:00 do dia seguinte)
func (s *RevenueService) DailyRevenue(ctx context.Context, date string) (*domain.DailyRevenue, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, invalidDate(date)
	}

	aggregate, err := s.invoiceRepo.Aggregate(ctx, domain.InvoiceQuery{
		IssuedAt: domain.DateBound{
			From: day,
			To:   day.AddDate(0, 0, 1),
		},
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("revenue-daily: erro ao agregar faturas de %s", date)
		return nil, aggregationFailed("erro ao calcular a receita diária")
	}

	return &domain.DailyRevenue{
		Date:              day.Format(time.DateOnly),
		TotalRevenue:      aggregate.Sum,
		InvoiceCount:      aggregate.Count,
		AveragePerInvoice: utils.AveragePerItem(aggregate.Sum, aggregate.Count),
	}, nil
}

// MonthlyRevenue soma as faturas ativas do mês [dia 1, dia 1 do mês seguinte)
func (s *RevenueService) MonthlyRevenue(ctx context.Context, year, month int) (*domain.MonthlyRevenue, error) {
	if month < 1 || month > 12 {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, fmt.Sprintf("mês recebido: %d", month))
	}

	start := utils.FirstDayOfMonth(year, time.Month(month))
	aggregate, err := s.invoiceRepo.Aggregate(ctx, domain.InvoiceQuery{
		IssuedAt: domain.DateBound{
			From: start,
			To:   utils.FirstDayOfMonth(year, time.Month(month+1)),
		},
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("revenue-monthly: erro ao agregar faturas de %d-%02d", year, month)
		return nil, aggregationFailed("erro ao calcular a receita mensal")
	}

	return &domain.MonthlyRevenue{
		Year:              year,
		Month:             month,
		TotalRevenue:      aggregate.Sum,
		InvoiceCount:      aggregate.Count,
		AveragePerInvoice: utils.AveragePerItem(aggregate.Sum, aggregate.Count),
	}, nil
}

// InvoicesInRange lista as faturas ativas entre as datas (ambas inclusivas), mais recentes primeiro.
// Faturas de huéspedes removidos ou ligadas a reservas removidas ficam de fora.
func (s *RevenueService) InvoicesInRange(ctx context.Context, startDate, endDate string) ([]*domain.Invoice, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, invalidDate(startDate)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, invalidDate(endDate)
	}

	if start.After(end) {
		return nil, invalidRange(startDate, endDate)
	}

	invoices, err := s.invoiceRepo.FindMany(ctx, domain.InvoiceQuery{
		IssuedAt: domain.DateBound{
			From:         utils.StartOfDay(start),
			To:           utils.EndOfDay(end),
			InclusiveEnd: true,
		},
		ActiveGuest:       true,
		ActiveReservation: true,
		Include:           []domain.InvoiceRelation{domain.InvoiceRelationGuest, domain.InvoiceRelationReservation},
		OrderBy: &domain.InvoiceOrder{
			Field:     "fecha_factura",
			Direction: domain.SortDesc,
		},
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("revenue-invoices: erro ao buscar faturas entre %s e %s", startDate, endDate)
		return nil, aggregationFailed("erro ao buscar faturas do período")
	}

	if invoices == nil {
		invoices = make([]*domain.Invoice, 0)
	}

	return invoices, nil
}
