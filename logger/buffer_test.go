package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferCollectsMessages(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, []string{}, b.Messages)

	b.Debug("sniffing %s", "manifest")
	b.Warn("missing %d names", 2)

	assert.Equal(t, []string{
		"[debug] sniffing manifest",
		"[warn] missing 2 names",
	}, b.Messages)
}
