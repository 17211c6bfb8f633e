package exactstr

import (
	"unsafe"

	"github.com/sirkon/errors"
)

// Append дописывает фрагмент в конец содержимого s. Пустой фрагмент
// не делает ничего. Запасной вместимости после операции не остаётся,
// т.е. каждый следующий Append снова выделит новый блок.
func (h *Heap) Append(s *Str, frag string) error {
	if len(frag) == 0 {
		return nil
	}

	size := s.size + len(frag)
	ptr, err := h.mem.Alloc(size)
	if err != nil {
		return errors.Wrap(err, "allocate grown block").
			Int("block-size", size).
			Int("previous-size", s.size)
	}

	// Прежний блок жив до публикации, поэтому дописывание Str
	// самой к себе безопасно.
	dst := unsafe.Slice(ptr, size)
	copy(dst, s.String())
	copy(dst[s.size:], frag)

	h.publish(s, ptr, size)
	return nil
}

// AppendStr дописывает содержимое другой Str в конец s.
func (h *Heap) AppendStr(s *Str, other Str) error {
	if err := h.Append(s, other.String()); err != nil {
		return errors.Wrap(err, "append owned content")
	}

	return nil
}
