package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/reporting"
	"github.com/franbz1/hotel-san-miguel/pkg/apiErrors"
	"github.com/franbz1/hotel-san-miguel/pkg/log"
)

// GetDailyRevenue retorna a receita de um dia (?date=YYYY-MM-DD)
func GetDailyRevenue(service reporting.RevenueReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a data (date)", nil)
			return
		}

		logger.WithField("date", date).Info("revenue-daily: calculando receita diária")

		result, err := service.DailyRevenue(r.Context(), date)
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// GetMonthlyRevenue retorna a receita de um mês (?year=&month=)
func GetMonthlyRevenue(service reporting.RevenueReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, ok := parseYearMonth(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"year":  year,
			"month": month,
		}).Info("revenue-monthly: calculando receita mensal")

		result, err := service.MonthlyRevenue(r.Context(), year, month)
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// GetInvoicesInRange lista as faturas ativas do intervalo (?start_date=&end_date=)
func GetInvoicesInRange(service reporting.RevenueReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")
		if startDate == "" || endDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar start_date e end_date", nil)
			return
		}

		invoices, err := service.InvoicesInRange(r.Context(), startDate, endDate)
		if err != nil {
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": startDate,
			"end_date":   endDate,
			"invoices":   len(invoices),
		}).Info("revenue-invoices: faturas encontradas")

		writeJSON(w, r, http.StatusOK, invoices)
	})
}

// GetOccupancyReport agrega ocupação e receita por dia, semana, mês ou ano
func GetOccupancyReport(service reporting.OccupancyReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.OccupancyFilter{
			PeriodType: query.Get("period"),
			StartDate:  query.Get("start_date"),
			EndDate:    query.Get("end_date"),
		}
		if filter.PeriodType == "" || filter.StartDate == "" || filter.EndDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar period, start_date e end_date", nil)
			return
		}

		if roomType := query.Get("room_type"); roomType != "" {
			rt := domain.RoomType(roomType)
			filter.RoomType = &rt
		}

		report, err := service.OccupancyReport(r.Context(), filter)
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetRevenueClosings lista os fechamentos diários gravados no mês (?year=&month=)
func GetRevenueClosings(service reporting.ClosingManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := parseYearMonth(w, r)
		if !ok {
			return
		}

		closings, err := service.ListClosings(r.Context(), year, month)
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, closings)
	})
}

// parseYearMonth lê year e month da query; sem year, usa o ano corrente
func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	query := r.URL.Query()

	monthStr := query.Get("month")
	if monthStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o mês (month)", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidMonth, "Mês inválido, deve estar entre 1-12", nil)
		return 0, 0, false
	}

	year := time.Now().Year()
	if yearStr := query.Get("year"); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil || year < 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return 0, 0, false
		}
	}

	return year, month, true
}
