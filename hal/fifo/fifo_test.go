package fifo

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/ardnew/softps2/hal"
	"github.com/ardnew/softps2/pkg"
	"github.com/stretchr/testify/require"
)

var _ hal.Registers = (*HAL)(nil)
var _ hal.Faulter = (*HAL)(nil)

// drain reads bytes until the source reports an error or the timeout expires.
func drain(t *testing.T, h *HAL, timeout time.Duration) ([]byte, error) {
	t.Helper()
	var got []byte
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for h.DataAvailable() {
			got = append(got, byte(h.ReadData()))
		}
		if err := h.Err(); err != nil {
			return got, err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("source did not finish within %v", timeout)
	return got, nil
}

func TestNewReader_EOF(t *testing.T) {
	input := []byte{0xE0, 0xF0, 0x75, 0x1C}
	h := NewReader(bytes.NewReader(input))
	require.NoError(t, h.Init(context.Background()))
	defer h.Close()

	got, err := drain(t, h, 2*time.Second)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, input, got)
	require.Empty(t, h.Path())
}

func TestNewReader_LargerThanBuffer(t *testing.T) {
	input := make([]byte, MaxPending*4)
	for i := range input {
		input[i] = byte(i)
	}

	h := NewReader(bytes.NewReader(input))
	require.NoError(t, h.Init(context.Background()))
	defer h.Close()

	got, err := drain(t, h, 5*time.Second)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, input, got)
}

func TestReadData_Empty(t *testing.T) {
	h := NewReader(bytes.NewReader(nil))
	require.False(t, h.DataAvailable())
	require.Equal(t, uint32(0), h.ReadData())
	require.ErrorIs(t, h.Err(), pkg.ErrNotRunning)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x1C, 0xF0, 0x1C}, 0o644))

	h := Open(path)
	require.NoError(t, h.Init(context.Background()))
	defer h.Close()

	got, err := drain(t, h, 2*time.Second)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, []byte{0x1C, 0xF0, 0x1C}, got)
	require.Equal(t, path, h.Path())
}

func TestOpen_Missing(t *testing.T) {
	h := Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, h.Init(context.Background()))
}

func TestInit_Twice(t *testing.T) {
	h := NewReader(bytes.NewReader(nil))
	require.NoError(t, h.Init(context.Background()))
	defer h.Close()
	require.ErrorIs(t, h.Init(context.Background()), pkg.ErrAlreadyRunning)
}

func TestInit_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := NewReader(bytes.NewReader(nil))
	require.ErrorIs(t, h.Init(ctx), context.Canceled)
}

func TestClose(t *testing.T) {
	h := NewReader(bytes.NewReader([]byte{0x1C}))
	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	require.ErrorIs(t, h.Err(), pkg.ErrClosed)
	require.ErrorIs(t, h.Init(context.Background()), pkg.ErrClosed)
}

func TestClose_ClosesReader(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	h := NewReader(pr)
	require.NoError(t, h.Init(context.Background()))
	require.NoError(t, h.Err())

	// The reader goroutine is blocked in Read until the pipe is closed.
	require.NoError(t, h.Close())
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("reader goroutine still blocked after Close")
	}

	_, err := pw.Write([]byte{0x1C})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestNew_NamedPipe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("named pipes require a unix platform")
	}

	dir := t.TempDir()
	h := New(dir)
	require.NoError(t, h.Init(context.Background()))

	require.NotEmpty(t, h.UUID())
	require.Equal(t, filepath.Join(dir, "ps2-"+h.UUID()), h.SourceDir())
	require.Equal(t, filepath.Join(h.SourceDir(), "data"), h.Path())

	info, err := os.Stat(h.Path())
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&os.ModeNamedPipe)

	w, err := os.OpenFile(h.Path(), os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = w.Write([]byte{0xE0, 0x75})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var got []byte
	require.Eventually(t, func() bool {
		for h.DataAvailable() {
			got = append(got, byte(h.ReadData()))
		}
		return len(got) == 2
	}, 2*time.Second, time.Millisecond)
	require.Equal(t, []byte{0xE0, 0x75}, got)

	// The pipe stays open after the writer leaves.
	require.NoError(t, h.Err())

	require.NoError(t, h.Close())
	_, err = os.Stat(h.SourceDir())
	require.True(t, os.IsNotExist(err))

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine did not exit")
	}
}
