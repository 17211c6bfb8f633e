package exactstr

import (
	"hash/maphash"
	"strings"
)

// Сравнение и хеширование ведутся по содержимому, а не по паре
// указатель/длина, и позволяют использовать Str как ключ или значение
// хеш-таблицы наравне с обычной строкой.

// Equal проверка равенства содержимого с другой Str.
func (s Str) Equal(other Str) bool {
	return s.String() == other.String()
}

// EqualString проверка равенства содержимого с данной строкой.
func (s Str) EqualString(v string) bool {
	return s.String() == v
}

// Compare лексикографическое сравнение содержимого с другой Str.
// Результат такой же как у strings.Compare.
func (s Str) Compare(other Str) int {
	return strings.Compare(s.String(), other.String())
}

// CompareString лексикографическое сравнение содержимого с данной
// строкой.
func (s Str) CompareString(v string) int {
	return strings.Compare(s.String(), v)
}

// Hash хеш содержимого с данным зерном. Для одного зерна совпадает с
// хешем обычной строки с тем же содержимым.
func (s Str) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, s.String())
}
