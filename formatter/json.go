package formatter

import (
	"bytes"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sinklog/core"
)

// Keys used by the JSON formatter
const (
	TimeKey    = "dt"
	MessageKey = "message"
	LevelKey   = "level"
	ScopeKey   = "scope"
)

// JSON encodes records as newline-terminated JSON objects
type JSON struct {
	enc zapcore.Encoder
}

// NewJSON creates a new JSON formatter
func NewJSON() *JSON {
	return &JSON{enc: zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        TimeKey,
		MessageKey:     MessageKey,
		NameKey:        ScopeKey,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
		LineEnding:     "\n",
	})}
}

// Format encodes a record as JSON
func (f *JSON) Format(rec core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatRecord(rec, buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord appends the encoded record to buf. Record fields are
// written in key order so output is deterministic; fields named like one
// of the fixed keys are skipped.
func (f *JSON) FormatRecord(rec core.Record, buf *bytes.Buffer) error {
	keys := make([]string, 0, len(rec.Fields))
	for k := range rec.Fields {
		switch k {
		case TimeKey, MessageKey, LevelKey, ScopeKey:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zapcore.Field, 0, len(keys)+1)
	fields = append(fields, zap.String(LevelKey, rec.Level.String()))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, rec.Fields[k]))
	}

	out, err := f.enc.EncodeEntry(zapcore.Entry{
		Time:       rec.Time,
		Message:    rec.Message,
		LoggerName: rec.Scope,
	}, fields)
	if err != nil {
		return err
	}
	buf.Write(out.Bytes())
	out.Free()
	return nil
}
