package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "maumdiary")
	assert.Contains(t, out, Version)
	assert.Contains(t, out, Date)
}
