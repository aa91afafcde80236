package domain

import "github.com/shopspring/decimal"

type DailyRevenue struct {
	Date              string          `json:"date"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	InvoiceCount      int             `json:"invoiceCount"`
	AveragePerInvoice decimal.Decimal `json:"averagePerInvoice"`
}

type MonthlyRevenue struct {
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	InvoiceCount      int             `json:"invoiceCount"`
	AveragePerInvoice decimal.Decimal `json:"averagePerInvoice"`
}
