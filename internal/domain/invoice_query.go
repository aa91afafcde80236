package domain

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InvoiceRelation identifica uma relação da fatura que pode ser carregada junto
type InvoiceRelation string

const (
	InvoiceRelationGuest       InvoiceRelation = "guest"
	InvoiceRelationReservation InvoiceRelation = "reservation"
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// DateBound é um limite de datas com início inclusivo. O fim é inclusivo
// apenas quando InclusiveEnd é verdadeiro.
type DateBound struct {
	From         time.Time
	To           time.Time
	InclusiveEnd bool
}

type InvoiceOrder struct {
	Field     string
	Direction SortDirection
}

// InvoiceQuery descreve um filtro sobre faturas ativas (deleted = false)
type InvoiceQuery struct {
	IssuedAt          DateBound
	ActiveGuest       bool // exige huésped vinculado não removido
	ActiveReservation bool // exige reserva não removida quando houver vínculo
	Include           []InvoiceRelation
	OrderBy           *InvoiceOrder
}

// Includes verifica se a relação deve ser carregada
func (q InvoiceQuery) Includes(rel InvoiceRelation) bool {
	return lo.Contains(q.Include, rel)
}

type InvoiceAggregate struct {
	Sum   decimal.Decimal
	Count int
}
