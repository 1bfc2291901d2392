package fifo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/ardnew/softps2/pkg"
)

// MaxPending is the number of unread bytes buffered between the stream and
// the poller. The reader goroutine stops reading while the buffer is full.
const MaxPending = 256

// readChunk is the size of a single read from the stream.
const readChunk = 64

// FIFO file name inside the source directory.
const fifoData = "data"

// HAL implements hal.Registers over a byte stream.
//
// The stream is read by a background goroutine into a bounded buffer, so
// DataAvailable and ReadData never block. Three constructors select the
// stream:
//
//   - [New] creates a named pipe in a unique subdirectory of a directory
//   - [Open] reads an existing path (named pipe, capture file or device node)
//   - [NewReader] reads any io.Reader, such as os.Stdin
type HAL struct {
	// Source directory created by New (dir/ps2-{uuid}/)
	dir       string
	sourceDir string
	uuid      string

	// Stream
	path   string
	file   *os.File
	reader io.Reader
	closer io.Closer

	// Buffered bytes from the reader goroutine
	pending chan byte

	// State
	mutex     sync.Mutex
	initDone  bool
	closed    bool
	err       error
	closeCh   chan struct{}
	closeOnce sync.Once
	done      chan struct{}
}

// New creates a HAL that will create a named pipe under dir.
// Init creates dir/ps2-{uuid}/data; writers send raw scancode bytes to it.
func New(dir string) *HAL {
	return newHAL(dir, "", nil)
}

// Open creates a HAL that will read the file at path.
func Open(path string) *HAL {
	return newHAL("", path, nil)
}

// NewReader creates a HAL that will read r.
// If r is also an io.Closer, Close closes it, which unblocks a pending
// read. Otherwise the reader goroutine, and so Done, waits for r to return.
func NewReader(r io.Reader) *HAL {
	h := newHAL("", "", r)
	if c, ok := r.(io.Closer); ok {
		h.closer = c
	}
	return h
}

func newHAL(dir, path string, r io.Reader) *HAL {
	return &HAL{
		dir:     dir,
		path:    path,
		reader:  r,
		pending: make(chan byte, MaxPending),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Init opens the stream and starts the reader goroutine.
func (h *HAL) Init(ctx context.Context) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.closed {
		return pkg.ErrClosed
	}
	if h.initDone {
		return pkg.ErrAlreadyRunning
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if h.dir != "" {
		h.uuid = uuid.NewString()
		h.sourceDir = filepath.Join(h.dir, "ps2-"+h.uuid)
		if err := os.MkdirAll(h.sourceDir, 0o755); err != nil {
			return fmt.Errorf("create source dir: %w", err)
		}
		h.path = filepath.Join(h.sourceDir, fifoData)
		if err := createFIFO(h.path); err != nil {
			h.cleanup()
			return err
		}
	}

	if h.reader == nil {
		f, err := openStream(h.path)
		if err != nil {
			h.cleanup()
			return err
		}
		h.file = f
		h.reader = f
	}

	h.initDone = true
	go h.pump(h.reader)

	pkg.LogInfo(pkg.ComponentHAL, "fifo source started", "path", h.path)
	return nil
}

// pump copies the stream into the pending buffer until it fails or the HAL
// is closed.
func (h *HAL) pump(r io.Reader) {
	defer close(h.done)

	var chunk [readChunk]byte
	for {
		n, err := r.Read(chunk[:])
		for _, b := range chunk[:n] {
			select {
			case h.pending <- b:
			case <-h.closeCh:
				return
			}
		}
		if err != nil {
			h.mutex.Lock()
			if h.err == nil && !h.closed {
				h.err = err
			}
			h.mutex.Unlock()
			if err == io.EOF {
				pkg.LogInfo(pkg.ComponentHAL, "fifo source reached end of stream", "path", h.path)
			} else {
				pkg.LogWarn(pkg.ComponentHAL, "fifo source read failed", "path", h.path, "error", err)
			}
			return
		}
	}
}

// DataAvailable reports whether a byte is buffered.
func (h *HAL) DataAvailable() bool {
	return len(h.pending) > 0
}

// ReadData pops the next buffered byte, or returns 0 if none is buffered.
func (h *HAL) ReadData() uint32 {
	select {
	case b := <-h.pending:
		return uint32(b)
	default:
		return 0
	}
}

// Err returns the stream error once every byte read before it has been
// consumed, [pkg.ErrNotRunning] before Init, [pkg.ErrClosed] after Close,
// or nil.
func (h *HAL) Err() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return pkg.ErrClosed
	}
	if !h.initDone {
		return pkg.ErrNotRunning
	}
	if len(h.pending) > 0 {
		return nil
	}
	return h.err
}

// Close stops the reader goroutine, closes the stream and removes anything
// Init created. A reader passed to NewReader is closed only if it
// implements io.Closer.
func (h *HAL) Close() error {
	h.closeOnce.Do(func() {
		close(h.closeCh)
	})

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	h.cleanup()
	pkg.LogInfo(pkg.ComponentHAL, "fifo source stopped", "path", h.path)
	return nil
}

// Done is closed when the reader goroutine exits.
func (h *HAL) Done() <-chan struct{} {
	return h.done
}

// Path returns the stream path, or "" for NewReader.
func (h *HAL) Path() string {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.path
}

// SourceDir returns the directory created by Init for New, or "".
func (h *HAL) SourceDir() string {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.sourceDir
}

// UUID returns the identifier of the directory created for New, or "".
func (h *HAL) UUID() string {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.uuid
}

func (h *HAL) cleanup() {
	if h.closer != nil {
		h.closer.Close()
		h.closer = nil
	}
	if h.file != nil {
		h.file.Close()
		h.file = nil
	}
	if h.sourceDir != "" {
		os.RemoveAll(h.sourceDir)
	}
}

// openStream opens path for reading. Named pipes are opened read-write so
// the open does not wait for a writer and the pipe stays open while writers
// come and go.
func openStream(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	flag := os.O_RDONLY
	if info.Mode()&os.ModeNamedPipe != 0 {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
