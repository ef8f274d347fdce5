package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new invoices and users. Version 7
// ids sort by creation time, which keeps the invoices primary key index
// append-mostly.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random v4 id if the clock based
// generator fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
