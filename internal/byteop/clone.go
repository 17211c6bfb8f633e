package byteop

// Clone копирование данного слайса байтов. Результат никогда не
// ссылается на память источника, в том числе для пустого входа.
func Clone(data []byte) []byte {
	res := make([]byte, len(data))
	copy(res, data)

	return res
}
