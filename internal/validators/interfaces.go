// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the dashboard.
//
// Core concepts:
//   - FormValidator: validates a submitted invoice form and, on failure,
//     recovers the fields that are valid on their own so the form can be
//     re-filled.
//   - Validator: generic interface to validate request models such as
//     sign-in credentials, list filters and identifiers. Supports optional
//     field-level scoping for targeted validation.
//
// Validation is pure: nothing in this package performs I/O or logging.
package validators

import (
	"context"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// FormValidator validates raw invoice forms.
type FormValidator interface {
	// ValidateInvoiceForm returns either the coerced fields or the per-field
	// messages together with the independently valid fields.
	ValidateInvoiceForm(form models.InvoiceForm) models.InvoiceFormResult
}
