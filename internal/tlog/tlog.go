// Package tlog вывод ошибок в тестах с выделением текста.
package tlog

import "strings"

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// TestingPrinter обёртка над *testing.T для вывода данных.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

// Log вывод ошибки.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error вывод ошибки с провалом теста.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check ничего не делает и возвращает false если ошибки нет,
// иначе выводит её с провалом теста и возвращает true.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	return b.String()
}
