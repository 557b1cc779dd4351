package vm

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// ---------------------------------------------------------------------------
// Port: the I/O collaborator
// ---------------------------------------------------------------------------

// Port is the engine's I/O collaborator. ReadByte may block until a byte
// is available; end-of-stream policy belongs to the implementation
// (both adapters below yield 0). A Port error aborts the run as a
// runtime fault after the current tick's grid and stack mutations have
// been committed.
type Port interface {
	ReadByte() (byte, error)
	WriteByte(b byte) error
	WriteDecimal(v int64) error
}

// ---------------------------------------------------------------------------
// BufferPort: in-memory adapter
// ---------------------------------------------------------------------------

// BufferPort is an in-memory Port for batch runs and tests. Reads past
// the end of the input yield 0; more input may be appended with Feed.
type BufferPort struct {
	in  []byte
	pos int
	out bytes.Buffer
}

// NewBufferPort creates a BufferPort with the given initial input.
func NewBufferPort(input []byte) *BufferPort {
	return &BufferPort{in: input}
}

// Feed appends bytes to the pending input.
func (p *BufferPort) Feed(data []byte) {
	p.in = append(p.in, data...)
}

// ReadByte returns the next input byte, or 0 once input is exhausted.
func (p *BufferPort) ReadByte() (byte, error) {
	if p.pos >= len(p.in) {
		return 0, nil
	}
	b := p.in[p.pos]
	p.pos++
	return b, nil
}

// WriteByte appends b to the output buffer.
func (p *BufferPort) WriteByte(b byte) error {
	p.out.WriteByte(b)
	return nil
}

// WriteDecimal appends the decimal representation of v to the output.
func (p *BufferPort) WriteDecimal(v int64) error {
	p.out.WriteString(strconv.FormatInt(v, 10))
	return nil
}

// Output returns the bytes written so far.
func (p *BufferPort) Output() []byte {
	return p.out.Bytes()
}

// ---------------------------------------------------------------------------
// StreamPort: stream adapter
// ---------------------------------------------------------------------------

// StreamPort adapts an io.Reader and io.Writer into a Port. Reads block
// until a byte is available; end of stream yields 0.
type StreamPort struct {
	r *bufio.Reader
	w io.Writer
}

// NewStreamPort creates a StreamPort over r and w.
func NewStreamPort(r io.Reader, w io.Writer) *StreamPort {
	return &StreamPort{r: bufio.NewReader(r), w: w}
}

// ReadByte reads one byte, blocking until available. End of stream
// yields 0 without error.
func (p *StreamPort) ReadByte() (byte, error) {
	b, err := p.r.ReadByte()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return b, nil
}

// WriteByte writes b to the underlying writer.
func (p *StreamPort) WriteByte(b byte) error {
	_, err := p.w.Write([]byte{b})
	return err
}

// WriteDecimal writes the decimal representation of v.
func (p *StreamPort) WriteDecimal(v int64) error {
	_, err := p.w.Write([]byte(strconv.FormatInt(v, 10)))
	return err
}
