// Package extmocks моки внешних интерфейсов библиотеки.
package extmocks

//go:generate mockgen -package extmocks -destination allocator_mock.go -mock_names Allocator=AllocatorMock github.com/sirkon/exactstr Allocator
