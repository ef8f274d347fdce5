// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the e-mail of sign-in credentials.
	FieldEmail = "email"

	// FieldPassword targets the password of sign-in credentials.
	FieldPassword = "password"

	// FieldPage targets the 1-based page number of a list filter.
	FieldPage = "page"

	// FieldQuery targets the free-text search of a list filter.
	FieldQuery = "query"
)

// maxQueryLength bounds the search string accepted by list pages.
const maxQueryLength = 256

// InvoiceID is an invoice identifier taken from a URL.
type InvoiceID string

// RequestValidator implements [Validator] for request models:
// models.Credentials, models.InvoiceFilter and InvoiceID.
type RequestValidator struct {
	structValidator *validator.Validate
}

// NewRequestValidator constructs a RequestValidator.
func NewRequestValidator() Validator {
	return &RequestValidator{
		structValidator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.InvoiceFilter:
		return v.validateInvoiceFilter(value, fields...)
	case *models.InvoiceFilter:
		return v.validateInvoiceFilter(*value, fields...)

	case InvoiceID:
		return validateInvoiceID(value)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *RequestValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	structFields := make([]string, 0, len(fields))
	for _, field := range fields {
		switch field {
		case FieldEmail:
			structFields = append(structFields, "Email")
		case FieldPassword:
			structFields = append(structFields, "Password")
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	err := v.structValidator.StructPartial(creds, structFields...)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// report the first failing field with a package sentinel
	switch validationErrs[0].Field() {
	case "Email":
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}
}

func (v *RequestValidator) validateInvoiceFilter(filter models.InvoiceFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldQuery}
	}

	for _, field := range fields {
		switch field {
		case FieldPage:
			if filter.Page < 1 {
				return ErrInvalidPage
			}
		case FieldQuery:
			if len(filter.Query) > maxQueryLength {
				return ErrQueryTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateInvoiceID(id InvoiceID) error {
	if _, err := uuid.Parse(string(id)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return nil
}
