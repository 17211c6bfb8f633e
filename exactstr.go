// Package exactstr реализует изменяемую строку занимающую ровно два
// машинных слова: указатель на данные и их длину в байтах. Вместимость
// не хранится и всегда совпадает с длиной, т.е. каждая мутация
// выделяет новый блок точно подходящего размера и освобождает прежний.
package exactstr

import "unsafe"

// Str изменяемая строка размером в два машинных слова. Нулевое
// значение готово к использованию и представляет пустую строку.
//
// Значение не предназначено для конкурентного использования,
// синхронизация при необходимости лежит на пользователе.
type Str struct {
	ptr  *byte
	size int
}

// New конструктор Str с данным начальным содержимым. Содержимое
// копируется в свежевыделенный блок точно подходящего размера.
func New(text string) Str {
	res, err := defaultHeap.New(text)
	if err != nil {
		// Рантаймный аллокатор не умеет возвращать ошибок.
		panic(err)
	}

	return res
}

// NewBytes конструктор Str с данным начальным содержимым в виде
// слайса байтов. Байты обязаны являться корректным UTF-8, проверки
// не производится.
func NewBytes(data []byte) Str {
	res, err := defaultHeap.NewBytes(data)
	if err != nil {
		panic(err)
	}

	return res
}

// String представление текущего содержимого в виде строки. Копирования
// не производится: строка ссылается на текущий блок данных и действует
// лишь до следующей мутации данного Str.
func (s Str) String() string {
	if s.size == 0 {
		return ""
	}

	return unsafe.String(s.ptr, s.size)
}

// Bytes представление текущего содержимого в виде слайса байтов без
// копирования. Слайс ссылается на текущий блок данных и действует лишь
// до следующей мутации. Запись в него допустима, но байты обязаны
// оставаться корректным UTF-8.
func (s Str) Bytes() []byte {
	if s.size == 0 {
		return nil
	}

	return unsafe.Slice(s.ptr, s.size)
}

// Len длина содержимого в байтах. Она же — точный размер текущего
// выделенного блока.
func (s Str) Len() int {
	return s.size
}

// IsEmpty короткая форма Len() == 0.
func (s Str) IsEmpty() bool {
	return s.size == 0
}

// Append дописывает фрагмент в конец содержимого. Укороченная форма
// Heap.Append над рантаймным аллокатором.
func (s *Str) Append(frag string) error {
	return defaultHeap.Append(s, frag)
}

// AppendStr дописывает содержимое другой Str в конец. Укороченная
// форма Heap.AppendStr над рантаймным аллокатором.
func (s *Str) AppendStr(other Str) error {
	return defaultHeap.AppendStr(s, other)
}

// Remove удаляет до count неперекрывающихся вхождений фрагмента frag,
// слева направо. Укороченная форма Heap.Remove над рантаймным
// аллокатором.
func (s *Str) Remove(frag string, count int) error {
	return defaultHeap.Remove(s, frag, count)
}

// Replace замена содержимого на данное. Укороченная форма Heap.Replace
// над рантаймным аллокатором.
func (s *Str) Replace(text string) error {
	return defaultHeap.Replace(s, text)
}

// Clear освобождает текущий блок и оставляет пустую строку.
func (s *Str) Clear() {
	defaultHeap.Free(s)
}
