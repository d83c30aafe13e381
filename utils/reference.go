package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a short booking reference the front desk can read
// out to a guest, e.g. "RES-5A3F9C1B".
func NewReferenceCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RES-" + strings.ToUpper(id[:8])
}
