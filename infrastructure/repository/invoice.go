// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/infrastructure/database/postgres"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	invoicesTable = "facturas f"
)

var invoiceColumns = []string{
	"f.id",
	"f.total",
	"f.fecha_factura",
	"f.huesped_id",
	"f.reserva_id",
	"f.deleted",
	"f.created_at",
	"f.updated_at",
}

var guestColumns = []string{
	"h.id",
	"h.nombres",
	"h.primer_apellido",
	"h.numero_documento",
	"h.deleted",
	"h.created_at",
	"h.updated_at",
}

var reservationColumns = []string{
	"r.id",
	"r.fecha_inicio",
	"r.fecha_fin",
	"r.costo",
	"r.habitacion_id",
	"r.huesped_id",
	"r.deleted",
	"r.created_at",
	"r.updated_at",
}

// Campos de ordenação aceitos
var invoiceOrderFields = map[string]string{
	"id":            "f.id",
	"total":         "f.total",
	"fecha_factura": "f.fecha_factura",
}

type InvoiceRepository interface {
	// Aggregate retorna soma de total e quantidade de faturas ativas que atendem ao filtro
	Aggregate(ctx context.Context, query domain.InvoiceQuery) (*domain.InvoiceAggregate, error)
	// FindMany retorna as faturas ativas que atendem ao filtro, carregando as relações pedidas
	FindMany(ctx context.Context, query domain.InvoiceQuery) ([]*domain.Invoice, error)
}

type invoiceRepository struct {
	conn postgres.Queryer
}

func NewInvoiceRepository(conn postgres.Queryer) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) Aggregate(ctx context.Context, query domain.InvoiceQuery) (*domain.InvoiceAggregate, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(f.total), 0)", "COUNT(f.id)").
		From(invoicesTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyInvoiceFilters(queryBuilder, query)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregate := &domain.InvoiceAggregate{}
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&aggregate.Sum, &aggregate.Count)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar faturas: %w", err)
	}

	return aggregate, nil
}

func (r *invoiceRepository) FindMany(ctx context.Context, query domain.InvoiceQuery) ([]*domain.Invoice, error) {
	withGuest := query.Includes(domain.InvoiceRelationGuest)
	withReservation := query.Includes(domain.InvoiceRelationReservation)

	columns := append([]string{}, invoiceColumns...)
	if withGuest {
		columns = append(columns, guestColumns...)
	}
	if withReservation {
		columns = append(columns, reservationColumns...)
	}

	queryBuilder := squirrel.
		Select(columns...).
		From(invoicesTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyInvoiceFilters(queryBuilder, query)

	if query.OrderBy != nil {
		orderBy, err := invoiceOrderClause(*query.OrderBy)
		if err != nil {
			return nil, err
		}
		queryBuilder = queryBuilder.OrderBy(orderBy)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows, withGuest, withReservation)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

// applyInvoiceFilters aplica o limite de datas, o filtro de soft delete e os filtros de relação
func applyInvoiceFilters(b squirrel.SelectBuilder, query domain.InvoiceQuery) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"f.deleted": false}).
		Where(squirrel.GtOrEq{"f.fecha_factura": query.IssuedAt.From})

	if query.IssuedAt.InclusiveEnd {
		b = b.Where(squirrel.LtOrEq{"f.fecha_factura": query.IssuedAt.To})
	} else {
		b = b.Where(squirrel.Lt{"f.fecha_factura": query.IssuedAt.To})
	}

	if query.ActiveGuest || query.Includes(domain.InvoiceRelationGuest) {
		b = b.Join("huespedes h ON h.id = f.huesped_id")
		if query.ActiveGuest {
			b = b.Where(squirrel.Eq{"h.deleted": false})
		}
	}

	if query.ActiveReservation || query.Includes(domain.InvoiceRelationReservation) {
		b = b.LeftJoin("reservas r ON r.id = f.reserva_id")
		if query.ActiveReservation {
			b = b.Where(squirrel.Or{
				squirrel.Eq{"f.reserva_id": nil},
				squirrel.Eq{"r.deleted": false},
			})
		}
	}

	return b
}

func invoiceOrderClause(order domain.InvoiceOrder) (string, error) {
	column, ok := invoiceOrderFields[order.Field]
	if !ok {
		return "", fmt.Errorf("campo de ordenação não suportado: %s", order.Field)
	}

	switch order.Direction {
	case domain.SortAsc, domain.SortDesc:
	default:
		return "", fmt.Errorf("direção de ordenação inválida: %s", order.Direction)
	}

	return fmt.Sprintf("%s %s", column, order.Direction), nil
}

func scanInvoice(rows *sql.Rows, withGuest, withReservation bool) (*domain.Invoice, error) {
	invoice := &domain.Invoice{}
	var reservaID sql.NullInt64

	dest := []interface{}{
		&invoice.ID,
		&invoice.Total,
		&invoice.FechaFactura,
		&invoice.HuespedID,
		&reservaID,
		&invoice.Deleted,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	}

	guest := &domain.Guest{}
	if withGuest {
		dest = append(dest,
			&guest.ID,
			&guest.Nombres,
			&guest.PrimerApellido,
			&guest.NumeroDocumento,
			&guest.Deleted,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		)
	}

	// colunas da reserva vêm nulas quando a fatura não tem reserva (LEFT JOIN)
	var (
		resID, resRoomID, resGuestID sql.NullInt64
		resStart, resEnd             sql.NullTime
		resCreatedAt, resUpdatedAt   sql.NullTime
		resCost                      decimal.NullDecimal
		resDeleted                   sql.NullBool
	)
	if withReservation {
		dest = append(dest,
			&resID,
			&resStart,
			&resEnd,
			&resCost,
			&resRoomID,
			&resGuestID,
			&resDeleted,
			&resCreatedAt,
			&resUpdatedAt,
		)
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	if reservaID.Valid {
		id := int(reservaID.Int64)
		invoice.ReservaID = &id
	}

	if withGuest {
		invoice.Huesped = guest
	}

	if withReservation && resID.Valid {
		invoice.Reserva = &domain.Reservation{
			ID:           int(resID.Int64),
			FechaInicio:  resStart.Time,
			FechaFin:     resEnd.Time,
			Costo:        resCost.Decimal,
			HabitacionID: int(resRoomID.Int64),
			HuespedID:    int(resGuestID.Int64),
			Deleted:      resDeleted.Bool,
			CreatedAt:    resCreatedAt.Time,
			UpdatedAt:    resUpdatedAt.Time,
		}
	}

	return invoice, nil
}
