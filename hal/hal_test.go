package hal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLayout(t *testing.T) {
	require.Equal(t, uintptr(0), StatusOffset%RegisterSize, "status register misaligned")
	require.Equal(t, uintptr(0), DataOffset%RegisterSize, "data register misaligned")
	require.Equal(t, StatusOffset+RegisterSize, DataOffset)
	require.Equal(t, uintptr(0), DefaultBase%4096, "base is not page aligned")
}

func TestFunc(t *testing.T) {
	queue := []uint32{0xE0, 0x75}

	var r Registers = Func{
		Status: func() bool { return len(queue) > 0 },
		Data: func() uint32 {
			v := queue[0]
			queue = queue[1:]
			return v
		},
	}

	require.True(t, r.DataAvailable())
	require.Equal(t, uint32(0xE0), r.ReadData())
	require.True(t, r.DataAvailable())
	require.Equal(t, uint32(0x75), r.ReadData())
	require.False(t, r.DataAvailable())
}

type faultyRegisters struct {
	Func
	err error
}

func (f faultyRegisters) Err() error { return f.err }

func TestErr(t *testing.T) {
	idle := Func{Status: func() bool { return false }, Data: func() uint32 { return 0 }}
	require.NoError(t, Err(idle))

	boom := errors.New("unplugged")
	require.ErrorIs(t, Err(faultyRegisters{Func: idle, err: boom}), boom)
	require.NoError(t, Err(faultyRegisters{Func: idle}))
}
