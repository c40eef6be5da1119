package buildfs

// Pipe is a unidirectional FIFO byte stream with one conceptual writer and one
// conceptual reader. One goroutine may Send while another concurrently
// Receives without external locking.
type Pipe interface {
	// Send blocks until every byte of p has been accepted by the channel
	// (not necessarily consumed by the reader). It returns an error only on
	// a closed or broken pipe.
	Send(p []byte) error

	// Receive blocks until at least one byte is available, then returns as
	// many bytes as are immediately available up to len(p). Short reads are
	// normal; callers must not assume len(p) bytes arrive in one call.
	// Receive with an empty buffer returns (0, nil) immediately without
	// blocking. Once the write end is closed and the buffer is drained it
	// returns (0, io.EOF).
	Receive(p []byte) (int, error)

	// CloseWrite closes the write end, delivering EOF to the reader after
	// buffered data drains.
	CloseWrite() error

	// CloseRead closes the read end.
	CloseRead() error

	// Close closes both ends.
	Close() error
}

// FileMtime manipulates file modification times as a coarse build-freshness
// signal. A handle is bound to no particular file; every call takes a path and
// reflects the current on-disk timestamp. It never touches file content.
type FileMtime interface {
	// GetIfInDistantFuture reports whether the file's stored mtime sits at
	// the distant-future sentinel. The error is non-nil when the path cannot
	// be stat'ed, in which case the boolean is meaningless.
	GetIfInDistantFuture(path string) (bool, error)

	// SetToDistantFuture stamps the file with the sentinel. Fails if the
	// path does not exist.
	SetToDistantFuture(path string) error

	// SetToNow stamps the file with the current wall-clock time. Fails if
	// the path does not exist.
	SetToNow(path string) error
}

// DirectoryEntryConsumer receives one callback per direct child of an
// enumerated directory. Delivery order is unspecified.
type DirectoryEntryConsumer interface {
	Consume(path string, isDir bool)
}

// DirectoryEntryFunc adapts a plain function to DirectoryEntryConsumer.
type DirectoryEntryFunc func(path string, isDir bool)

func (f DirectoryEntryFunc) Consume(path string, isDir bool) { f(path, isDir) }
