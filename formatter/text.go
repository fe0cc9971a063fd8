package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/sinklog/core"
)

// Text formats console lines as "[level] message"
type Text struct {
	Config
}

// NewText creates a new text formatter
func NewText(cfg Config) *Text {
	return &Text{Config: cfg}
}

// Format formats a line as text
func (f *Text) Format(t time.Time, level core.Level, msg string) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(t, level, msg, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatTo formats a line and writes it to w with a single Write call
func (f *Text) FormatTo(w io.Writer, t time.Time, level core.Level, msg string) error {
	buf := getBuffer()

	f.formatToBuffer(t, level, msg, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *Text) formatToBuffer(t time.Time, level core.Level, msg string, buf *bytes.Buffer) {
	if f.TimestampFormat != "" {
		buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	buf.WriteByte('[')
	if f.Color {
		buf.WriteString("\x1b[")
		buf.WriteString(strconv.Itoa(int(level.Color())))
		buf.WriteByte('m')
		buf.WriteString(level.String())
		buf.WriteString("\x1b[39m")
	} else {
		buf.WriteString(level.String())
	}
	buf.WriteString("] ")

	buf.WriteString(msg)
	buf.WriteByte('\n')
}
