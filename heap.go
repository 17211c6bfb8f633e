package exactstr

import (
	"unsafe"

	"github.com/sirkon/errors"
	"github.com/sirkon/exactstr/internal/byteop"
)

// Allocator выделение и освобождение блоков памяти точного размера.
// Реализация должна отдавать указатель на блок не менее size байтов
// и принимать его же обратно в Free ровно один раз.
//
// Реализация по-умолчанию построена на рантаймном аллокаторе Go, где
// Free ничего не делает и память забирается сборщиком мусора.
type Allocator interface {
	Alloc(size int) (*byte, error)
	Free(ptr *byte, size int)
}

// Heap производит операции над Str через заданный аллокатор.
// Каждая мутация проходит один и тот же путь: выделение нового блока
// точно подходящего размера, заполнение, публикация пары
// указатель/длина и лишь затем освобождение прежнего блока. При отказе
// выделения Str остаётся ровно в прежнем состоянии.
//
// Str обязана мутироваться и освобождаться через ту же кучу, которая
// выделила её текущий блок: в двух машинных словах не остаётся места
// на запись владельца.
type Heap struct {
	mem Allocator
}

// NewHeap конструктор Heap с данными опциями.
func NewHeap(opts ...HeapOpt) *Heap {
	h := &Heap{
		mem: runtimeAllocator{},
	}
	for _, opt := range opts {
		opt(h, heapOptRestriction{})
	}

	return h
}

var defaultHeap = NewHeap()

// New выделяет блок точно подходящего размера, копирует в него text
// и возвращает Str владеющую этим блоком.
func (h *Heap) New(text string) (Str, error) {
	var res Str
	if err := h.Replace(&res, text); err != nil {
		return Str{}, errors.Wrap(err, "set initial content")
	}

	return res, nil
}

// NewBytes вариант New принимающий слайс байтов. Байты обязаны
// являться корректным UTF-8.
func (h *Heap) NewBytes(data []byte) (Str, error) {
	return h.New(byteop.String(data))
}

// Replace замена содержимого s на text. Если длина не меняется, то
// новые байты пишутся прямо в существующий блок, иначе выделяется
// новый блок точно подходящего размера.
func (h *Heap) Replace(s *Str, text string) error {
	if len(text) == 0 {
		h.Free(s)
		return nil
	}

	if s.size == len(text) {
		copy(unsafe.Slice(s.ptr, s.size), text)
		return nil
	}

	ptr, err := h.mem.Alloc(len(text))
	if err != nil {
		return errors.Wrap(err, "allocate replacement block").Int("block-size", len(text))
	}

	copy(unsafe.Slice(ptr, len(text)), text)
	h.publish(s, ptr, len(text))
	return nil
}

// Clone копия s в свежевыделенном блоке той же кучи.
func (h *Heap) Clone(s Str) (Str, error) {
	res, err := h.New(s.String())
	if err != nil {
		return Str{}, errors.Wrap(err, "allocate content copy")
	}

	return res, nil
}

// Free освобождает текущий блок и оставляет s пустой. Пустая Str
// остаётся пригодной к использованию.
func (h *Heap) Free(s *Str) {
	if s.ptr == nil {
		s.size = 0
		return
	}

	ptr, size := s.ptr, s.size
	s.ptr, s.size = nil, 0
	h.mem.Free(ptr, size)
}

// publish замена пары указатель/длина с освобождением прежнего блока.
// Новый блок обязан быть полностью заполнен до вызова.
func (h *Heap) publish(s *Str, ptr *byte, size int) {
	old, oldsize := s.ptr, s.size
	s.ptr, s.size = ptr, size
	if old != nil {
		h.mem.Free(old, oldsize)
	}
}

type runtimeAllocator struct{}

func (runtimeAllocator) Alloc(size int) (*byte, error) {
	block := make([]byte, size)
	return unsafe.SliceData(block), nil
}

func (runtimeAllocator) Free(*byte, int) {}
