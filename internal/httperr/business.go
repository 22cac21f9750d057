package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ===============================
// Error Kinds
// ===============================

type Kind string

const (
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
	KindSchedulingConflict Kind = "scheduling_conflict"
	KindInternal           Kind = "internal"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Details map[string]string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness é um erro de entrada inválida identificado por código.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalidInput, Code: code}
}

func ErrInvalid(code string, details map[string]string) error {
	return BusinessError{Kind: KindInvalidInput, Code: code, Details: details}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindSchedulingConflict, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf classifica qualquer erro; o que não é de negócio é interno.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}

// ===============================
// Postgres
// ===============================

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// IsExclusionConflict detecta violação da constraint de sobreposição
// (ou unicidade) de agendamentos no Postgres.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}
