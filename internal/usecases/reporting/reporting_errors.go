package reporting

import (
	"errors"
	"fmt"

	"github.com/franbz1/hotel-san-miguel/internal/usecases/reporting/period"
	"github.com/franbz1/hotel-san-miguel/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrInvalidDateFormat     = errors.New("formato de data inválido, use YYYY-MM-DD")
	ErrInvalidMonth          = errors.New("mês inválido, deve estar entre 1-12")
	ErrInvalidRange          = errors.New("a data inicial deve ser anterior ou igual à data final")
	ErrUnsupportedPeriodType = period.ErrUnsupportedPeriodType
	ErrInvalidRoomType       = errors.New("tipo de habitação inválido")

	// Erros de persistência
	ErrAggregationFailed = errors.New("falha ao agregar dados do relatório")
)

// ReportError carrega o código de API junto ao erro base
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Mensagem apresentada ao cliente
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um erro de relatório
func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro foi causado por parâmetros inválidos
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnsupportedPeriodType) ||
		errors.Is(err, ErrInvalidRoomType)
}

func invalidDate(value string) *ReportError {
	return NewReportError(ErrInvalidDateFormat, apiErrors.ErrInvalidDate, fmt.Sprintf("data recebida: %q", value))
}

func invalidRange(start, end string) *ReportError {
	return NewReportError(ErrInvalidRange, apiErrors.ErrInvalidDateRange, fmt.Sprintf("%s > %s", start, end))
}

func aggregationFailed(details string) *ReportError {
	return NewReportError(ErrAggregationFailed, apiErrors.ErrAggregationFailed, details)
}
