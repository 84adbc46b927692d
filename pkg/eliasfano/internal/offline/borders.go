// Package offline provides a scoped temp-file primitive used by
// EliasFanoLongBigList's offline construction mode: border offsets are
// streamed to disk instead of being held in memory, then replayed back in
// a second pass.
package offline

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// BorderStream is a write-then-read temp file of uint64 border offsets.
// The zero value is not usable; use NewBorderStream. The temp file is
// always removed by Close, on every exit path, whether or not writing or
// reading succeeded.
type BorderStream struct {
	file *os.File
	w    *bufio.Writer
}

// NewBorderStream creates a new temp file to stream border offsets into.
func NewBorderStream() (*BorderStream, error) {
	f, err := os.CreateTemp("", "eliasfano-borders-*")
	if err != nil {
		return nil, fmt.Errorf("create border temp file: %w", err)
	}

	return &BorderStream{file: f, w: bufio.NewWriter(f)}, nil
}

// Write appends one border offset to the stream.
func (s *BorderStream) Write(v uint64) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], v)

	if _, err := s.w.Write(buf[:]); err != nil {
		return fmt.Errorf("write border: %w", err)
	}

	return nil
}

// Reader flushes any buffered writes, rewinds the temp file, and returns
// a BorderReader that replays every value written so far, in order.
func (s *BorderStream) Reader() (*BorderReader, error) {
	if err := s.w.Flush(); err != nil {
		return nil, fmt.Errorf("flush border stream: %w", err)
	}

	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("rewind border stream: %w", err)
	}

	return &BorderReader{r: bufio.NewReader(s.file)}, nil
}

// Close closes and removes the temp file. A second call removes nothing
// and returns the error from closing an already-closed file.
func (s *BorderStream) Close() error {
	path := s.file.Name()

	closeErr := s.file.Close()
	removeErr := os.Remove(path)

	if closeErr != nil {
		return fmt.Errorf("close border temp file: %w", closeErr)
	}

	if removeErr != nil && !os.IsNotExist(removeErr) {
		return fmt.Errorf("remove border temp file: %w", removeErr)
	}

	return nil
}

// BorderReader replays a BorderStream's written values in order.
type BorderReader struct {
	r *bufio.Reader
}

// Next reads the next border offset. ok is false once every value
// written has been consumed.
func (r *BorderReader) Next() (v uint64, ok bool, err error) {
	var buf [8]byte

	n, err := readFull(r.r, buf[:])
	if n == 0 && err != nil {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("read border: %w", err)
	}

	return binary.BigEndian.Uint64(buf[:]), true, nil
}

// readFull reads len(buf) bytes, returning (0, err) at a clean EOF with
// no bytes read and a wrapped error for a short/partial read.
func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0

	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n

		if err != nil {
			if total == 0 {
				return 0, err
			}

			return total, fmt.Errorf("short border read: %w", err)
		}
	}

	return total, nil
}
