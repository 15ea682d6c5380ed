package model

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID mints a prefixed identifier. Seed data uses stable ids like
// "user-1"; everything created at runtime gets "<prefix>-<uuid>".
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// Date and clock formats used across the booking domain. Slots and
// appointments carry calendar dates and wall-clock times as strings, the
// shape the availability grid is keyed by.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)
