package exactstr

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/exactstr/internal/byteop"
	"github.com/sirkon/exactstr/internal/uvarints"
)

// Бинарная форма Str — конкатенация длины содержимого в uvarint и
// самого содержимого. Текстовая форма — само содержимое как есть, за
// счёт неё же доступна и сериализация в JSON. Обе формы ничего не
// знают о внутреннем устройстве и восстанавливаются в блок точно
// подходящего размера через рантаймный аллокатор.

const errorDataTooShort errors.Const = "encoded data is too short"

// EncodedLen длина бинарного представления содержимого.
func (s Str) EncodedLen() int {
	return uvarints.Length(uint64(s.size)) + s.size
}

// Encode дописывает бинарное представление содержимого в dst.
func (s Str) Encode(dst []byte) []byte {
	dst = uvarints.Append(dst, uint64(s.size))
	return append(dst, s.String()...)
}

// Decode вычитывает бинарное представление из начала src и заменяет
// им содержимое s. Возвращается остаток src. При некорректных данных
// s не меняется.
func (s *Str) Decode(src []byte) (rest []byte, err error) {
	length, rest, err := uvarints.Read(src)
	if err != nil {
		return src, errors.Wrap(err, "read content length")
	}

	if uint64(len(rest)) < length {
		return src, errors.Wrap(errorDataTooShort, "check content length").
			Uint64("need-bytes", length).
			Int("rest-bytes", len(rest))
	}

	if err := defaultHeap.Replace(s, byteop.String(rest[:length])); err != nil {
		return src, errors.Wrap(err, "replace content")
	}

	return rest[length:], nil
}

// MarshalBinary для реализации encoding.BinaryMarshaler.
func (s Str) MarshalBinary() ([]byte, error) {
	return s.Encode(make([]byte, 0, s.EncodedLen())), nil
}

// UnmarshalBinary для реализации encoding.BinaryUnmarshaler.
func (s *Str) UnmarshalBinary(data []byte) error {
	rest, err := s.Decode(data)
	if err != nil {
		return errors.Wrap(err, "decode content")
	}

	if len(rest) != 0 {
		return errors.New("unexpected data past the encoded content").
			Int("trailing-bytes", len(rest))
	}

	return nil
}

// MarshalText для реализации encoding.TextMarshaler. Содержимое
// копируется, результат не привязан к текущему блоку.
func (s Str) MarshalText() ([]byte, error) {
	return byteop.Clone(s.Bytes()), nil
}

// UnmarshalText для реализации encoding.TextUnmarshaler.
func (s *Str) UnmarshalText(data []byte) error {
	if err := defaultHeap.Replace(s, byteop.String(data)); err != nil {
		return errors.Wrap(err, "replace content")
	}

	return nil
}
