package byteop

import "unsafe"

// String представление данного слайса байтов в виде строки без
// копирования. Строка ссылается на память источника, поэтому источник
// не должен меняться пока она используется.
func String(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(data), len(data))
}
