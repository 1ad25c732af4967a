package logger

import "testing"

// TestPrinter routes log lines through t.Logf so they are attributed to the
// test that emitted them.
type TestPrinter struct {
	t testing.TB
}

func NewTestPrinter(t testing.TB) *TestPrinter {
	return &TestPrinter{t: t}
}

func (p *TestPrinter) Print(level Level, message string, fields Fields) {
	suffix := ""
	for _, field := range fields {
		suffix += " " + field.Key() + "=" + field.String()
	}
	p.t.Logf("%-6s %s%s", level, message, suffix)
}
