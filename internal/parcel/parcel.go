package parcel

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed is returned when a payload cannot be decoded
var ErrMalformed = errors.New("malformed payload")

// maxStringLen bounds a single string field so a corrupt length prefix
// cannot trigger a huge allocation.
const maxStringLen = 1 << 20

// Writer accumulates an encoded payload
type Writer struct {
	buf bytes.Buffer
	tmp [binary.MaxVarintLen64]byte
}

// NewWriter creates an empty payload writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteUvarint appends an unsigned varint
func (w *Writer) WriteUvarint(v uint64) {
	n := binary.PutUvarint(w.tmp[:], v)
	w.buf.Write(w.tmp[:n])
}

// WriteByte appends a single byte
func (w *Writer) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

// WriteString appends a length-prefixed string
func (w *Writer) WriteString(s string) {
	w.WriteUvarint(uint64(len(s)))
	w.buf.WriteString(s)
}

// WriteBytes appends a length-prefixed byte slice
func (w *Writer) WriteBytes(b []byte) {
	w.WriteUvarint(uint64(len(b)))
	w.buf.Write(b)
}

// Bytes returns the encoded payload
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Reader decodes a payload produced by Writer
type Reader struct {
	r *bytes.Reader
}

// NewReader creates a reader over payload
func NewReader(payload []byte) *Reader {
	return &Reader{r: bytes.NewReader(payload)}
}

// ReadUvarint reads an unsigned varint
func (r *Reader) ReadUvarint() (uint64, error) {
	v, err := binary.ReadUvarint(r.r)
	if err != nil {
		return 0, fmt.Errorf("%w: reading varint: %v", ErrMalformed, err)
	}
	return v, nil
}

// ReadByte reads a single byte
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: reading byte: %v", ErrMalformed, err)
	}
	return b, nil
}

// ReadString reads a length-prefixed string
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes reads a length-prefixed byte slice
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n > maxStringLen || n > uint64(r.r.Len()) {
		return nil, fmt.Errorf("%w: field length %d exceeds remaining %d bytes", ErrMalformed, n, r.r.Len())
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, fmt.Errorf("%w: reading field: %v", ErrMalformed, err)
	}
	return b, nil
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return r.r.Len()
}

// expectEnd fails if any bytes are left after decoding a top-level payload
func (r *Reader) expectEnd() error {
	if n := r.Remaining(); n != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformed, n)
	}
	return nil
}
