package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	day := time.Date(2025, 6, 11, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "INV-20250611-0001", FormatInvoiceNumber(day, 1))
	assert.Equal(t, "INV-20250611-0042", FormatInvoiceNumber(day, 42))
	assert.Equal(t, "INV-20250611-12345", FormatInvoiceNumber(day, 12345))
}
