package exactstr_test

import (
	"encoding/json"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/exactstr"
	"github.com/sirkon/exactstr/internal/tlog"
)

func TestBinaryCodec(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		s := exactstr.New("hello my friend")

		data := s.Encode(nil)
		if len(data) != s.EncodedLen() {
			t.Errorf("expected encoded length %d got %d", s.EncodedLen(), len(data))
		}

		var r exactstr.Str
		rest, err := r.Decode(data)
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "decode just encoded data"))
			return
		}
		if len(rest) != 0 {
			t.Errorf("unexpected %d bytes left after the decoding", len(rest))
		}
		if !r.Equal(s) {
			t.Errorf("expected '%s' got '%s'", s.String(), r.String())
		}
	})

	t.Run("empty-content", func(t *testing.T) {
		var s exactstr.Str

		data := s.Encode(nil)
		if len(data) != 1 {
			t.Errorf("expected a single length byte, got %d bytes", len(data))
		}

		r := exactstr.New("leftover")
		if _, err := r.Decode(data); err != nil {
			tlog.Error(t, errors.Wrap(err, "decode empty content"))
			return
		}
		if !r.IsEmpty() {
			t.Errorf("expected empty content got '%s'", r.String())
		}
	})

	t.Run("trailing-data", func(t *testing.T) {
		s := exactstr.New("abc")
		data := s.Encode(nil)
		data = append(data, "tail"...)

		var r exactstr.Str
		rest, err := r.Decode(data)
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "decode with a trailing data"))
			return
		}
		if string(rest) != "tail" {
			t.Errorf("expected 'tail' rest got '%s'", string(rest))
		}
		if r.String() != "abc" {
			t.Errorf("expected 'abc' got '%s'", r.String())
		}

		// Строгая распаковка хвост запрещает.
		if err := r.UnmarshalBinary(data); err == nil {
			t.Error("trailing data is expected to fail UnmarshalBinary")
		}
	})

	t.Run("malformed-input", func(t *testing.T) {
		r := exactstr.New("untouched")

		// Некорректная длина.
		if _, err := r.Decode([]byte{0x80}); err == nil {
			t.Error("invalid length encoding is expected to fail")
		}

		// Длина больше остатка данных.
		if _, err := r.Decode([]byte{0x05, 'a', 'b'}); err == nil {
			t.Error("length past the data end is expected to fail")
		}

		if r.String() != "untouched" {
			t.Errorf("content has changed on failed decodes: '%s'", r.String())
		}
	})

	t.Run("marshal-round-trip", func(t *testing.T) {
		s := exactstr.New("ƒoo ƒoo")
		data, err := s.MarshalBinary()
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "marshal content"))
			return
		}

		var r exactstr.Str
		if err := r.UnmarshalBinary(data); err != nil {
			tlog.Error(t, errors.Wrap(err, "unmarshal content"))
			return
		}
		if !r.Equal(s) {
			t.Errorf("expected '%s' got '%s'", s.String(), r.String())
		}
	})
}

func TestJSON(t *testing.T) {
	type record struct {
		Name  exactstr.Str `json:"name"`
		Value int          `json:"value"`
	}

	src := record{
		Name:  exactstr.New("hello my friend"),
		Value: 13,
	}

	data, err := json.Marshal(src)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "marshal a record"))
		return
	}
	if string(data) != `{"name":"hello my friend","value":13}` {
		t.Errorf("unexpected JSON representation %s", string(data))
	}

	var dst record
	if err := json.Unmarshal(data, &dst); err != nil {
		tlog.Error(t, errors.Wrap(err, "unmarshal a record"))
		return
	}
	if !dst.Name.Equal(src.Name) {
		t.Errorf("expected '%s' got '%s'", src.Name.String(), dst.Name.String())
	}
	if dst.Value != src.Value {
		t.Errorf("expected %d got %d", src.Value, dst.Value)
	}
}
