package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactToken(t *testing.T) {
	assert.Equal(t, "[REDACTED]", RedactToken(""))
	assert.Equal(t, "[REDACTED]", RedactToken("short"))
	assert.Equal(t, "[REDACTED]…wxyz", RedactToken("eyJhbGciOi.abc.wxyz"))
}

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "al***@example.org", RedactEmail("alice@example.org"))
	assert.Equal(t, "***@example.org", RedactEmail("al@example.org"))
	assert.Equal(t, "***", RedactEmail("not-an-email"))
}
