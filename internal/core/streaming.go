package core

// streaming.go provides the reader chain every input file passes through
// before CSV parsing:
//
//   - BOMSkippingReader: drops a leading UTF-8 BOM so the first header matches its column name
//   - UTF8Sanitizer: replaces invalid UTF-8 bytes with '?' and counts them, so the
//     caller can reject the file
//   - CountingReader: tracks bytes read for the run summary
//
// Use WrapInput to apply all transforms in the correct order.

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
// Spreadsheet exports on Windows commonly add one.
type BOMSkippingReader struct {
	br      *bufio.Reader
	checked bool
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{br: bufio.NewReader(r)}
}

// Read implements io.Reader. On the first read, it checks for and skips the BOM.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true
		head, err := r.br.Peek(len(utf8BOM))
		if err != nil && err != io.EOF {
			return 0, err
		}
		if bytes.Equal(head, utf8BOM) {
			_, _ = r.br.Discard(len(utf8BOM))
		}
	}
	return r.br.Read(p)
}

// UTF8Sanitizer wraps an io.Reader and replaces invalid UTF-8 bytes with '?'.
// Multi-byte sequences split across reads are carried over, not replaced.
type UTF8Sanitizer struct {
	reader   io.Reader
	pending  []byte
	Replaced int // Number of invalid bytes replaced so far
}

// NewUTF8Sanitizer creates a new streaming UTF-8 sanitizer.
func NewUTF8Sanitizer(r io.Reader) *UTF8Sanitizer {
	return &UTF8Sanitizer{
		reader:  r,
		pending: make([]byte, 0, utf8.UTFMax),
	}
}

// Read implements io.Reader, sanitizing in place.
func (s *UTF8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := copy(p, s.pending)
	s.pending = s.pending[:0]

	n, err := s.reader.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	atEOF := err == io.EOF
	write := 0
	for read := 0; read < n; {
		if p[read] < utf8.RuneSelf {
			p[write] = p[read]
			write++
			read++
			continue
		}

		r, size := utf8.DecodeRune(p[read:n])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(p[read:n]) {
				// Possibly a sequence cut by the buffer boundary
				s.pending = append(s.pending, p[read:n]...)
				break
			}
			p[write] = '?'
			s.Replaced++
			write++
			read++
			continue
		}

		copy(p[write:], p[read:read+size])
		write += size
		read += size
	}

	if write == 0 && len(s.pending) > 0 && err == nil {
		// Only a partial rune was read; fetch more before returning
		return s.Read(p)
	}
	return write, err
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapInput wraps a raw input file with byte counting, BOM skipping and
// UTF-8 sanitization.
//
// The order matters:
// 1. Counting sits on the raw file so BytesRead matches the file size
// 2. The BOM must be stripped before sanitization sees it
// 3. Sanitization is last, directly under the CSV parser
func WrapInput(r io.Reader) (*UTF8Sanitizer, *CountingReader) {
	counter := NewCountingReader(r)
	sanitizer := NewUTF8Sanitizer(NewBOMSkippingReader(counter))
	return sanitizer, counter
}
