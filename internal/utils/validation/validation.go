// Package validation checks raw user input for transactions, budgets and
// categories and reports problems as a field to message map.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Errors maps a field name to a human readable message. An empty map means valid.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// TransactionInput is the raw form of a new transaction.
type TransactionInput struct {
	Description string `json:"description" validate:"not_blank"`
	Amount      string `json:"amount" validate:"positive_amount"`
	Type        string `json:"type" validate:"oneof=income expense"`
	Category    string `json:"category" validate:"not_blank"`
	Date        string `json:"date" validate:"not_blank,iso_date"`
}

// BudgetInput is the raw form of a budget. An empty period means monthly.
type BudgetInput struct {
	Category string `json:"category" validate:"not_blank"`
	Amount   string `json:"amount" validate:"positive_amount"`
	Period   string `json:"period" validate:"omitempty,oneof=weekly monthly yearly"`
}

// CategoryInput is the raw form of a category.
type CategoryInput struct {
	Name  string `json:"name" validate:"not_blank"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Type  string `json:"type" validate:"omitempty,oneof=income expense"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		_, ok := ParseAmount(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		return isISODate(fl.Field().String())
	})
	return v
}

// ParseAmount parses s as a strictly positive finite decimal.
func ParseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}

func isISODate(s string) bool {
	s = strings.TrimSpace(s)
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}

var fieldLabels = map[string]string{
	"description": "Description",
	"amount":      "Amount",
	"type":        "Type",
	"category":    "Category",
	"date":        "Date",
	"period":      "Period",
	"name":        "Name",
	"color":       "Color",
	"currency":    "Currency",
}

func message(kind string, fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "not_blank", "required":
		return label + " is required"
	case "positive_amount":
		if kind == "budget" {
			return "Budget limit must be a valid positive number"
		}
		return "Amount must be a valid positive number"
	case "oneof":
		return label + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "iso_date":
		return label + " must be a date in YYYY-MM-DD format"
	case "hexcolor":
		return label + " must be a hex colour such as #38b000"
	}
	return label + " is invalid"
}

// check runs the validator and classifies the outcome for errors.Is.
func check(kind string, s any) (Errors, error) {
	out := Errors{}
	err := validate.Struct(s)
	if err == nil {
		return out, nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		out["_"] = err.Error()
		return out, apperrors.NewValidationError(apperrors.ErrValidation, out)
	}

	var sentinel error = apperrors.ErrValidation
	for _, fe := range ves {
		out[fe.Field()] = message(kind, fe)
		switch fe.Tag() {
		case "not_blank", "required":
			sentinel = apperrors.ErrMissingField
		case "positive_amount":
			if sentinel == apperrors.ErrValidation {
				sentinel = apperrors.ErrInvalidAmount
			}
		}
	}
	return out, apperrors.NewValidationError(sentinel, out)
}

// ValidateTransaction returns the field errors of a transaction input.
func ValidateTransaction(in TransactionInput) Errors {
	out, _ := check("transaction", in)
	return out
}

// CheckTransaction is ValidateTransaction as an error, nil when valid.
func CheckTransaction(in TransactionInput) error {
	_, err := check("transaction", in)
	return err
}

// ValidateBudget returns the field errors of a budget input.
func ValidateBudget(in BudgetInput) Errors {
	out, _ := check("budget", in)
	return out
}

// CheckBudget is ValidateBudget as an error, nil when valid.
func CheckBudget(in BudgetInput) error {
	_, err := check("budget", in)
	return err
}

// ValidateCategory returns the field errors of a category input.
func ValidateCategory(in CategoryInput) Errors {
	out, _ := check("category", in)
	return out
}

// CheckCategory is ValidateCategory as an error, nil when valid.
func CheckCategory(in CategoryInput) error {
	_, err := check("category", in)
	return err
}

// CheckCurrency requires a three letter upper-case code.
func CheckCurrency(code string) error {
	if err := validate.Var(code, "required,len=3,alpha,uppercase"); err != nil {
		fields := Errors{"currency": "Currency must be a three letter upper-case code"}
		if strings.TrimSpace(code) == "" {
			return apperrors.NewValidationError(apperrors.ErrMissingField, map[string]string{"currency": "Currency is required"})
		}
		return apperrors.NewValidationError(apperrors.ErrValidation, fields)
	}
	return nil
}

// IsFutureDate reports whether date falls after the start of today in now's location.
func IsFutureDate(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return date.After(today)
}

// AsError converts a non-empty Errors map into an *apperrors.ValidationError.
// Messages from ValidateX are classified by their wording.
func AsError(e Errors) error {
	if e.Valid() {
		return nil
	}
	var sentinel error = apperrors.ErrValidation
	for _, msg := range e {
		switch {
		case strings.HasSuffix(msg, " is required"):
			sentinel = apperrors.ErrMissingField
		case strings.Contains(msg, "valid positive number") && sentinel == apperrors.ErrValidation:
			sentinel = apperrors.ErrInvalidAmount
		}
	}
	return apperrors.NewValidationError(sentinel, e)
}
