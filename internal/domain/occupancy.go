package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType é o token de granularidade do relatório de ocupação
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// PeriodBucket representa um ponto da série de calendário; o balde cobre [Periodo, Periodo + 1 unidade)
type PeriodBucket struct {
	Periodo          time.Time       `json:"periodo"`
	OccupiedRooms    int             `json:"occupied_rooms"`
	ReservationCount int             `json:"reservation_count"`
	RevenueTotal     decimal.Decimal `json:"revenue_total"`
}

type OccupancyFilter struct {
	PeriodType string
	StartDate  string
	EndDate    string
	RoomType   *RoomType
}

type OccupancyReport struct {
	PeriodType PeriodType     `json:"period_type"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	RoomType   *RoomType      `json:"room_type,omitempty"`
	Buckets    []PeriodBucket `json:"buckets"`
}
