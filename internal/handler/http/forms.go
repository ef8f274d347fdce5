package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// maxFormSize bounds the body of every posted form.
const maxFormSize = 1 << 20

// decodeForm reads the submitted fields of r. HTML form encodings and JSON
// objects are accepted; only keys that were actually submitted are present
// in the result. JSON strings are taken verbatim, other JSON scalars by
// their literal text and null counts as not submitted.
func decodeForm(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)

	contentType := r.Header.Get("Content-Type")
	mediaType := ""
	if contentType != "" {
		var err error
		if mediaType, _, err = mime.ParseMediaType(contentType); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
	}

	switch mediaType {
	case "application/json":
		return decodeJSONForm(r)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormSize); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedForm, err)
		}
	case "", "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedForm, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	return fields, nil
}

func decodeJSONForm(r *http.Request) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		if bytes.Equal(value, []byte("null")) {
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			fields[key] = s
			continue
		}
		fields[key] = string(value)
	}

	return fields, nil
}

// invoiceForm picks the recognised invoice fields out of the submitted
// ones. Unrecognised keys are dropped.
func invoiceForm(fields map[string]string) models.InvoiceForm {
	pick := func(name string) *string {
		value, ok := fields[name]
		if !ok {
			return nil
		}
		return &value
	}

	return models.InvoiceForm{
		CustomerID: pick(models.FieldCustomerID),
		Amount:     pick(models.FieldAmount),
		Status:     pick(models.FieldStatus),
	}
}
