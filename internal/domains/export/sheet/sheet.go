// Package sheet writes CSV with every field quoted.
package sheet

import (
	"bytes"
	"strings"
)

type Sheet struct {
	buf bytes.Buffer
}

func New(header ...string) *Sheet {
	s := &Sheet{}
	s.Append(header...)

	return s
}

// Append writes one record. Quotes inside a field are doubled.
func (s *Sheet) Append(fields ...string) {
	for i, field := range fields {
		if i > 0 {
			s.buf.WriteByte(',')
		}

		s.buf.WriteByte('"')
		s.buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		s.buf.WriteByte('"')
	}

	s.buf.WriteString("\r\n")
}

func (s *Sheet) Bytes() []byte {
	return s.buf.Bytes()
}
