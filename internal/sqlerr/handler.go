package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/recipes-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tablePrefix marks the entity name inside a wrapped ErrNoRows.
const tablePrefix = "table:"

// foreignKeyInUse is a delete-side ForeignKeyViolation, used only for codes.
const foreignKeyInUse Code = "foreign_key_in_use"

var (
	uniqueConstraintPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	missingParentPattern    = regexp.MustCompile(`is not present in table "([^"]+)"`)
	stillReferencedPattern  = regexp.MustCompile(`is still referenced from table "([^"]+)"`)
)

// NotFound returns pgx.ErrNoRows tagged with the entity it was looking for,
// so HandleError can name the entity in the 404 message.
func NotFound(entity string) error {
	return fmt.Errorf("%s%s:%w", tablePrefix, entity, pgx.ErrNoRows)
}

// IsNotFound reports whether err is a no-rows error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// ErrCode reports the Code of err when it wraps an *Error, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		Detail:         src.Detail,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates an application error code of the form
// <DOMAIN>_<ACTION>, e.g. recipes + ForeignKeyViolation => RECIPE_NOT_FOUND.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText, NumericOutOfRange:
		action = "INVALID"
	case foreignKeyInUse:
		action = "IN_USE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for sqlErr.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		if child := referencingTable(sqlErr); child != "" {
			return fmt.Sprintf("The %s is still referenced by a %s", humanizeText(singular(sqlErr.TableName)), humanizeText(singular(child)))
		}
		return fmt.Sprintf("The referenced %s does not exist", humanizeText(singular(referencedTable(sqlErr))))

	case UniqueViolation:
		// "identifier" is replaced by the column name when it can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidText, NumericOutOfRange:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name: a "<name>_id" column wins, then the
// singularized table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

func singular(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// referencedTable names the parent table of an insert-side foreign key
// violation. Postgres reports it in Detail; the constraint name
// "<table>_<column>_fkey" is the fallback, then the column, then the table.
func referencedTable(sqlErr *Error) string {
	if m := missingParentPattern.FindStringSubmatch(sqlErr.Detail); len(m) > 1 {
		return m[1]
	}

	column := strings.ToLower(sqlErr.ColumnName)
	if column == "" && sqlErr.TableName != "" {
		name := strings.TrimPrefix(sqlErr.ConstraintName, sqlErr.TableName+"_")
		if name != sqlErr.ConstraintName && strings.HasSuffix(name, "_fkey") {
			column = strings.TrimSuffix(name, "_fkey")
		}
	}
	if strings.HasSuffix(column, "_id") {
		return strings.TrimSuffix(column, "_id") + "s"
	}

	if sqlErr.TableName != "" {
		return sqlErr.TableName
	}
	return "records"
}

// referencingTable names the child table of a delete-side foreign key
// violation, or "" for an insert-side one.
func referencingTable(sqlErr *Error) string {
	if m := stillReferencedPattern.FindStringSubmatch(sqlErr.Detail); len(m) > 1 {
		return m[1]
	}
	return ""
}

// humanizeText converts snake_case into Title Case: "recipe_ingredient" -> "Recipe Ingredient".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint
// named "unique_<table>_<column>" or "<table>_<column>_(key|ukey)".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// notFoundEntity extracts the entity from an error built by NotFound.
func notFoundEntity(err error) string {
	msg := err.Error()
	idx := strings.Index(msg, tablePrefix)
	if idx < 0 {
		return ""
	}
	rest := msg[idx+len(tablePrefix):]
	entity, _, found := strings.Cut(rest, ":")
	if !found {
		return ""
	}
	return entity
}

// HandleError converts a low-level database error into an application error.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: 400 for constraint and format violations, 500 otherwise
//   - ErrNoRows: 404 naming the entity when tagged by NotFound
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			if referencingTable(sqlErr) != "" {
				errorCode = generateErrorCode(sqlErr.TableName, foreignKeyInUse)
			} else {
				errorCode = generateErrorCode(referencedTable(sqlErr), ForeignKeyViolation)
			}
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil, nil)

		case UniqueViolation:
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, InvalidText, NumericOutOfRange:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if IsNotFound(err) {
		if entity := notFoundEntity(err); entity != "" {
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", getEntityName(entity, "")), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
