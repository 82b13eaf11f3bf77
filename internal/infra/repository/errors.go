package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type constraintKind int

const (
	notConstraint constraintKind = iota
	uniqueConstraint
	foreignKeyConstraint
)

// classify inspects a driver error. detail is the constraint name on
// postgres and the message on sqlite; both mention the offending column.
func classify(err error) (kind constraintKind, detail string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return uniqueConstraint, pgErr.ConstraintName + " " + pgErr.Detail
		case pgForeignKeyViolation:
			return foreignKeyConstraint, pgErr.ConstraintName + " " + pgErr.Detail
		}
		return notConstraint, ""
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueConstraint, liteErr.Error()
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyConstraint, liteErr.Error()
		}
	}

	return notConstraint, ""
}

// translateVeterinarianErr maps unique violations on veterinarians to the
// matching conflict.
func translateVeterinarianErr(err error) error {
	if err == nil {
		return nil
	}

	kind, detail := classify(err)
	if kind != uniqueConstraint {
		return err
	}

	if strings.Contains(strings.ToLower(detail), "email") {
		return veterinarian.ErrEmailTaken
	}
	return veterinarian.ErrCrmvTaken
}

// translateReferenceErr maps a foreign key violation to ref. Columns are
// checked in order; sqlite does not say which key failed, so the first
// candidate wins there.
func translateReferenceErr(err error, refs map[string]*httperr.ReferenceNotFoundError, order ...string) error {
	if err == nil {
		return nil
	}

	kind, detail := classify(err)
	if kind != foreignKeyConstraint || len(order) == 0 {
		return err
	}

	detail = strings.ToLower(detail)
	for _, col := range order {
		if strings.Contains(detail, col) {
			return refs[col]
		}
	}
	return refs[order[0]]
}
