package sheet_test

import (
	"testing"

	"hotel/internal/domains/export/sheet"

	"github.com/stretchr/testify/assert"
)

func TestSheet(t *testing.T) {
	s := sheet.New("name", "notes")
	s.Append("Acme", `said "hi", left`)
	s.Append("", "multi\nline")

	assert.Equal(t, "\"name\",\"notes\"\r\n\"Acme\",\"said \"\"hi\"\", left\"\r\n\"\",\"multi\nline\"\r\n", string(s.Bytes()))
}
