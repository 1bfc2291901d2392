package scancode

import (
	"testing"

	"github.com/ardnew/softps2/hal/sim"
	"github.com/ardnew/softps2/pkg"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		pressed bool
		want    []byte
	}{
		{"a make", 'a', true, []byte{0x1C}},
		{"a break", 'a', false, []byte{0xF0, 0x1C}},
		{"up make", KeyUpArrow, true, []byte{0xE0, 0x75}},
		{"up break", KeyUpArrow, false, []byte{0xE0, 0xF0, 0x75}},
		{"slash prefers main block", '/', true, []byte{0x4A}},
		{"enter prefers main block", KeyEnter, true, []byte{0x5A}},
		{"escape", KeyEscape, true, []byte{0x76}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.key, tt.pressed)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Unknown(t *testing.T) {
	for _, k := range []Key{KeyNone, 'A', Key(0xFE)} {
		_, err := Encode(k, true)
		require.ErrorIs(t, err, pkg.ErrUnknownKey, "key %v", k)
	}
}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	keys := Keys()
	require.NotEmpty(t, keys)

	for _, k := range keys {
		for _, pressed := range []bool{true, false} {
			data, err := Encode(k, pressed)
			require.NoError(t, err)

			dec := NewDecoder(sim.New(data...))
			ev, ok := dec.Poll()
			require.True(t, ok, "key %v", k)
			require.Equal(t, NewEvent(k, pressed), ev, "key %v", k)

			_, ok = dec.Poll()
			require.False(t, ok, "key %v produced more than one event", k)
		}
	}
}

func TestAppendEncode(t *testing.T) {
	buf := []byte{0xAA}
	buf, err := AppendEncode(buf, KeyLeftShift, true)
	require.NoError(t, err)
	buf, err = AppendEncode(buf, KeyLeftShift, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0x12, 0xF0, 0x12}, buf)

	out, err := AppendEncode(buf, KeyNone, true)
	require.ErrorIs(t, err, pkg.ErrUnknownKey)
	require.Equal(t, buf, out)
}

func TestEncodeText(t *testing.T) {
	data, err := EncodeText("hi\n")
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x33, 0xF0, 0x33, // h
		0x43, 0xF0, 0x43, // i
		0x5A, 0xF0, 0x5A, // enter
	}, data)

	dec := NewDecoder(sim.New(data...))
	var typed []Key
	for {
		ev, ok := dec.Poll()
		if !ok {
			break
		}
		if ev.Pressed() {
			typed = append(typed, ev.Key())
		}
	}
	require.Equal(t, []Key{'h', 'i', KeyEnter}, typed)
}

func TestEncodeText_Unknown(t *testing.T) {
	tests := []string{"Hello", "é", "tab\x00"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := EncodeText(s)
			require.ErrorIs(t, err, pkg.ErrUnknownKey)
		})
	}
}
