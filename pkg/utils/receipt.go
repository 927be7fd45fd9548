package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReceiptNo generates a unique receipt number with the given prefix,
// e.g. "OFF-3F91A2C4" for locally issued receipts.
func GenerateReceiptNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
