package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrorInfo is the parsed form of a persistence error.
type ErrorInfo struct {
	Code    string
	Message string
	// Field is set when the error can be pinned to a single input field
	// (unique violations).
	Field string
}

// ParseError maps GORM and driver errors onto the code taxonomy. It
// understands both the postgres wording and the sqlite wording used by the
// test database.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "an internal error occurred"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: fmt.Sprintf("%s was not found", context),
		}
	}

	errLower := strings.ToLower(err.Error())

	// postgres: duplicate key value violates unique constraint "..."
	// sqlite: UNIQUE constraint failed: customers.email
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseUniqueViolation(errLower)
	}

	// postgres: violates foreign key constraint
	// sqlite: FOREIGN KEY constraint failed
	if strings.Contains(errLower, "foreign key constraint") {
		if strings.Contains(errLower, "still referenced") {
			return ErrorInfo{
				Code:    ResourceConflict,
				Message: "the row is still referenced by dependent data and can not be deleted",
			}
		}
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "a referenced row does not exist",
		}
	}

	if strings.Contains(errLower, "violates not-null constraint") ||
		strings.Contains(errLower, "not null constraint failed") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "a required field is missing",
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: fmt.Sprintf("%s failed, please try again later", context),
	}
}

func parseUniqueViolation(errLower string) ErrorInfo {
	if strings.Contains(errLower, "email") {
		return ErrorInfo{
			Code:    CustomerEmailExists,
			Message: "a customer with this email already exists",
			Field:   "email",
		}
	}
	if strings.Contains(errLower, "phone") {
		return ErrorInfo{
			Code:    CustomerPhoneExists,
			Message: "a customer with this phone already exists",
			Field:   "phone",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "a row with these values already exists",
	}
}

// BindingFieldErrors flattens gin binding failures into a field->message map
// for RespondWithValidationError. Non-validator errors (malformed JSON, type
// mismatches) land under a single "body" key.
func BindingFieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "request body is malformed"
		return fields
	}

	for _, fe := range verrs {
		name := snakeCase(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "this field is required"
		case "gt":
			fields[name] = fmt.Sprintf("must be greater than %s", fe.Param())
		case "gte":
			fields[name] = fmt.Sprintf("must be greater than or equal to %s", fe.Param())
		case "email":
			fields[name] = "must be a valid email address"
		case "max":
			fields[name] = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "oneof":
			fields[name] = fmt.Sprintf("must be one of: %s", fe.Param())
		default:
			fields[name] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return fields
}

// snakeCase maps a Go struct field name to its wire name (UnitPrice ->
// unit_price), matching the json tags used on request structs.
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			// break only at a lower-to-upper boundary so acronyms
			// like ID stay together
			if i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
