// Package history persists entities flowing off the pipeline: per-kind keyed
// stores with a timestamped append-only text stream each, and an optional
// PostgreSQL mirror.
package history

import (
	"bufio"
	"os"
	"time"

	"github.com/ycsun666/MTH9815-Final/internal/codec"
)

// Appender is a buffered append-only text stream. Records are flushed on
// Close; prior content of the target file is truncated on open.
type Appender struct {
	file *os.File
	buf  *bufio.Writer
}

// OpenAppender creates or truncates the stream at path.
func OpenAppender(path string) (*Appender, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Appender{file: f, buf: bufio.NewWriter(f)}, nil
}

// Append writes one timestamped record line.
func (a *Appender) Append(record string) error {
	if _, err := a.buf.WriteString(codec.Timestamp(time.Now())); err != nil {
		return err
	}
	if err := a.buf.WriteByte(','); err != nil {
		return err
	}
	if _, err := a.buf.WriteString(record); err != nil {
		return err
	}
	return a.buf.WriteByte('\n')
}

// Close flushes buffered records and closes the file.
func (a *Appender) Close() error {
	if err := a.buf.Flush(); err != nil {
		a.file.Close()
		return err
	}
	return a.file.Close()
}
