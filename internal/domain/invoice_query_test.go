package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceQuery_Includes(t *testing.T) {
	query := InvoiceQuery{Include: []InvoiceRelation{InvoiceRelationGuest}}

	assert.True(t, query.Includes(InvoiceRelationGuest))
	assert.False(t, query.Includes(InvoiceRelationReservation))
	assert.False(t, InvoiceQuery{}.Includes(InvoiceRelationGuest))

	assert.Equal(t, InvoiceRelation("guest"), InvoiceRelationGuest)
	assert.Equal(t, InvoiceRelation("reservation"), InvoiceRelationReservation)
}
