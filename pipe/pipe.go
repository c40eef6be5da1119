// Package pipe implements the byte-stream IPC endpoint as a pair of OS pipe
// file descriptors, so the same primitive serves cross-goroutine and
// cross-process signaling. The kernel buffer provides FIFO ordering and the
// block-until-nonempty read semantics; a mutex per end serializes same-side
// callers.
package pipe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/brettbedarf/buildfs"
	"github.com/brettbedarf/buildfs/internal/util"
)

// Pipe is a unidirectional FIFO byte stream backed by an OS pipe.
// It implements buildfs.Pipe.
type Pipe struct {
	r *os.File
	w *os.File

	// Serialize same-side callers; opposite sides never share a lock so one
	// goroutine can Send while another Receives.
	rmu sync.Mutex
	wmu sync.Mutex

	sent     atomic.Int64
	received atomic.Int64

	logger util.Logger
}

var _ buildfs.Pipe = (*Pipe)(nil)

// Stats is a snapshot of bytes transferred through a Pipe.
type Stats struct {
	BytesSent     int64
	BytesReceived int64
}

// New creates a pipe with its two ends wired together.
func New() (*Pipe, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("create pipe: %w", err)
	}
	return &Pipe{
		r:      r,
		w:      w,
		logger: util.GetLogger("pipe"),
	}, nil
}

// Send blocks until every byte of p has been accepted by the kernel buffer.
// It returns an error only on a closed or broken pipe.
func (p *Pipe) Send(buf []byte) error {
	p.wmu.Lock()
	defer p.wmu.Unlock()

	for len(buf) > 0 {
		n, err := p.w.Write(buf)
		p.sent.Add(int64(n))
		if err != nil {
			return fmt.Errorf("pipe send: %w", err)
		}
		buf = buf[n:]
	}
	p.logger.Trace().Int64("bytes_sent", p.sent.Load()).Msg("send complete")
	return nil
}

// Receive blocks until at least one byte is available, then returns what is
// immediately available up to len(buf). An empty buf returns (0, nil) without
// blocking. After the write end closes and buffered data drains, Receive
// returns (0, io.EOF).
func (p *Pipe) Receive(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	p.rmu.Lock()
	defer p.rmu.Unlock()

	n, err := p.r.Read(buf)
	p.received.Add(int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("pipe receive: %w", err)
	}
	return n, nil
}

// CloseWrite closes the write end; the reader sees EOF once buffered data
// drains.
func (p *Pipe) CloseWrite() error {
	p.wmu.Lock()
	defer p.wmu.Unlock()
	return p.w.Close()
}

// CloseRead closes the read end. A subsequent Send fails with a broken-pipe
// error.
func (p *Pipe) CloseRead() error {
	p.rmu.Lock()
	defer p.rmu.Unlock()
	return p.r.Close()
}

// Close closes both ends. Safe to call after either end was closed
// individually.
func (p *Pipe) Close() error {
	werr := p.CloseWrite()
	rerr := p.CloseRead()
	if werr != nil && !errors.Is(werr, os.ErrClosed) {
		return werr
	}
	if rerr != nil && !errors.Is(rerr, os.ErrClosed) {
		return rerr
	}
	return nil
}

// Stats returns a snapshot of bytes transferred so far.
func (p *Pipe) Stats() Stats {
	return Stats{
		BytesSent:     p.sent.Load(),
		BytesReceived: p.received.Load(),
	}
}
