// Package uvarints кодирование длин в ULEB128 для бинарной формы
// содержимого.
package uvarints

import (
	"encoding/binary"
	"math/bits"

	"github.com/sirkon/errors"
)

// ErrorInvalidEncoding ошибка отдаваемая когда закодированное значение
// явно некорректно.
const ErrorInvalidEncoding errors.Const = "not a correct ULEB 128 encoded uint64"

// Length длина кодированного представления данного числа.
func Length(v uint64) int {
	return (bits.Len64(v|1) + 6) / 7
}

// Append дописывает кодированное представление v в dst.
func Append(dst []byte, v uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	l := binary.PutUvarint(buf[:], v)

	return append(dst, buf[:l]...)
}

// Read вычитывает кодированное значение из начала buf. Возвращается
// значение и остаток buf.
func Read(buf []byte) (uint64, []byte, error) {
	v, n := binary.Uvarint(buf)
	if n <= 0 {
		return 0, buf, ErrorInvalidEncoding
	}

	return v, buf[n:], nil
}
