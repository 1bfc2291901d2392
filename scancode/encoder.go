package scancode

import (
	"fmt"

	"github.com/ardnew/softps2/pkg"
)

// makeCode locates a key in the tables.
type makeCode struct {
	code     byte
	extended bool
	ok       bool
}

// reverseTable maps each key back to the scancode that produces it.
var reverseTable [256]makeCode

func init() {
	// Extended first so the normal table wins for keys reachable both ways.
	for i := len(extendedTable) - 1; i >= 0; i-- {
		if k := extendedTable[i]; k != KeyNone {
			reverseTable[k] = makeCode{code: byte(i), extended: true, ok: true}
		}
	}
	for i := len(normalTable) - 1; i >= 0; i-- {
		if k := normalTable[i]; k != KeyNone {
			reverseTable[k] = makeCode{code: byte(i), ok: true}
		}
	}
}

// Encode returns the scancode set 2 bytes for a key transition. A make code
// is the scancode, optionally prefixed by 0xE0; a break code inserts 0xF0
// before the scancode. Keys without a translation return
// [pkg.ErrUnknownKey].
func Encode(k Key, pressed bool) ([]byte, error) {
	return AppendEncode(make([]byte, 0, 3), k, pressed)
}

// AppendEncode appends the encoding of a key transition to dst.
func AppendEncode(dst []byte, k Key, pressed bool) ([]byte, error) {
	mc := reverseTable[k]
	if !mc.ok {
		return dst, fmt.Errorf("encode %s: %w", k, pkg.ErrUnknownKey)
	}
	if mc.extended {
		dst = append(dst, PrefixExtended)
	}
	if !pressed {
		dst = append(dst, PrefixRelease)
	}
	return append(dst, mc.code), nil
}

// EncodeText returns the make and break codes that type s one key at a
// time. Only runes that are keys themselves are accepted; shifted
// characters such as uppercase letters have no single-key encoding.
func EncodeText(s string) ([]byte, error) {
	buf := make([]byte, 0, len(s)*3)
	for _, r := range s {
		if r <= 0 || r >= 0x80 {
			return nil, fmt.Errorf("encode %q: %w", r, pkg.ErrUnknownKey)
		}
		k := Key(r)
		var err error
		if buf, err = AppendEncode(buf, k, true); err != nil {
			return nil, fmt.Errorf("encode %q: %w", r, pkg.ErrUnknownKey)
		}
		if buf, err = AppendEncode(buf, k, false); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// Keys returns every key the tables can produce, in key order.
func Keys() []Key {
	var keys []Key
	for k := range reverseTable {
		if reverseTable[k].ok {
			keys = append(keys, Key(k))
		}
	}
	return keys
}
