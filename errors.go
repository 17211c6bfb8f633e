package exactstr

import (
	stderrs "errors"
	"strconv"
	"strings"
)

// NewAllocFailure ошибка отказа выделения блока данного размера.
// Предназначена для реализаций Allocator с ограниченным запасом
// памяти, рантаймный аллокатор её не возвращает.
func NewAllocFailure(size int) error {
	return allocFailure{size: size}
}

// IsAllocFailure такая ошибка указывает на то, что аллокатор не смог
// выделить блок под новое содержимое. Str при этом осталась ровно в
// прежнем состоянии.
func IsAllocFailure(err error) bool {
	var e allocFailure
	return stderrs.As(err, &e)
}

type allocFailure struct {
	size int
}

func (e allocFailure) Error() string {
	var b strings.Builder
	b.WriteString("failed to allocate a block of ")
	b.WriteString(strconv.Itoa(e.size))
	b.WriteString(" bytes")
	return b.String()
}
