package exactstr

import (
	"strings"
	"unsafe"

	"github.com/sirkon/errors"
)

// Remove удаляет до count неперекрывающихся вхождений фрагмента frag
// из содержимого s. Поиск производится слева направо по содержимому
// каким оно было до удаления: байты сошедшиеся над вырезанным участком
// нового вхождения не образуют. Если вхождений меньше чем count, то
// удаляются все найденные и операция всё равно успешна. Пустой
// фрагмент не совпадает нигде и не делает ничего.
func (h *Heap) Remove(s *Str, frag string, count int) error {
	if len(frag) == 0 || count <= 0 || s.size < len(frag) {
		return nil
	}

	content := s.String()

	// Сбор смещений вхождений. Очередной поиск начинается сразу за
	// концом предыдущего вхождения, за счёт чего перекрытия исключены.
	var starts []int
	pos := 0
	for len(starts) < count {
		i := strings.Index(content[pos:], frag)
		if i < 0 {
			break
		}

		starts = append(starts, pos+i)
		pos += i + len(frag)
	}

	if len(starts) == 0 {
		// Вхождений нет, содержимое не меняется и перевыделение
		// не требуется.
		return nil
	}

	size := s.size - len(starts)*len(frag)
	if size == 0 {
		h.Free(s)
		return nil
	}

	ptr, err := h.mem.Alloc(size)
	if err != nil {
		return errors.Wrap(err, "allocate shrunk block").
			Int("block-size", size).
			Int("previous-size", s.size).
			Int("occurrences-found", len(starts))
	}

	// Перенос выживших байтов: промежутки между вхождениями в их
	// исходном порядке.
	dst := unsafe.Slice(ptr, size)
	n := 0
	prev := 0
	for _, start := range starts {
		n += copy(dst[n:], content[prev:start])
		prev = start + len(frag)
	}
	copy(dst[n:], content[prev:])

	h.publish(s, ptr, size)
	return nil
}
