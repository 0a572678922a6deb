package utils

import "github.com/google/uuid"

// UUIDGenerator produces file, device and invitation identifiers. Time
// ordered v7 UUIDs are preferred; a random v4 UUID is returned when the
// clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a UUID in its canonical textual form.
func IsUUID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}
