package exactstr

// HeapOpt определение опции кучи.
type HeapOpt func(h *Heap, _ heapOptRestriction)

type heapOptRestriction struct{}

// WithAllocator устанавливает аллокатор кучи. По-умолчанию
// используется рантаймный аллокатор.
func WithAllocator(mem Allocator) HeapOpt {
	return func(h *Heap, _ heapOptRestriction) {
		h.mem = mem
	}
}
