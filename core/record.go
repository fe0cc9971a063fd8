package core

import "time"

// Record is a single log event as it leaves a sink for a transport
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	// Scope is the name of the scoped logger that produced the record,
	// empty for the root logger.
	Scope  string
	Fields map[string]any
}

// NewRecord creates a record stamped with the current time
func NewRecord(level Level, msg, scope string) Record {
	return Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Scope:   scope,
	}
}

// WithFields returns a copy of r whose field map holds r's fields
// overlaid with the given ones. r itself is left untouched.
func (r Record) WithFields(fields map[string]any) Record {
	merged := make(map[string]any, len(r.Fields)+len(fields))
	for k, v := range r.Fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	r.Fields = merged
	return r
}
