// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomType representa a categoria de uma habitação
type RoomType string

const (
	RoomTypeSencilla RoomType = "SENCILLA"
	RoomTypeDoble    RoomType = "DOBLE"
	RoomTypeTriple   RoomType = "TRIPLE"
	RoomTypeFamiliar RoomType = "FAMILIAR"
	RoomTypeSuite    RoomType = "SUITE"
)

var roomTypes = map[RoomType]bool{
	RoomTypeSencilla: true,
	RoomTypeDoble:    true,
	RoomTypeTriple:   true,
	RoomTypeFamiliar: true,
	RoomTypeSuite:    true,
}

// IsValid verifica se o tipo pertence à enumeração conhecida
func (t RoomType) IsValid() bool {
	return roomTypes[t]
}

type Guest struct {
	ID              int       `json:"id"`
	Nombres         string    `json:"nombres"`
	PrimerApellido  string    `json:"primer_apellido"`
	NumeroDocumento string    `json:"numero_documento"`
	Deleted         bool      `json:"deleted"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Reservation ocupa o intervalo semiaberto [FechaInicio, FechaFin)
type Reservation struct {
	ID           int             `json:"id"`
	FechaInicio  time.Time       `json:"fecha_inicio"`
	FechaFin     time.Time       `json:"fecha_fin"`
	Costo        decimal.Decimal `json:"costo"`
	HabitacionID int             `json:"habitacion_id"`
	HuespedID    int             `json:"huesped_id"`
	Deleted      bool            `json:"deleted"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Invoice struct {
	ID           int             `json:"id"`
	Total        decimal.Decimal `json:"total"`
	FechaFactura time.Time       `json:"fecha_factura"`
	HuespedID    int             `json:"huesped_id"`
	ReservaID    *int            `json:"reserva_id"`
	Deleted      bool            `json:"deleted"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Huesped      *Guest          `json:"huesped,omitempty"`
	Reserva      *Reservation    `json:"reserva,omitempty"`
}
