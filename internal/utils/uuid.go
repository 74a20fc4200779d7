package utils

import "github.com/google/uuid"

// UUIDGenerator issues row and session identifiers. Ids are UUIDv7 so that
// rows inserted by one owner sort by creation time within an index page.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
