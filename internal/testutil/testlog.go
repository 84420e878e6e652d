package testlog

import (
	"sync"

	"service-food-delivery/internal/logx"
)

// Entry is a recorded log entry.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field returns the value of the first field with the given key.
func (e Entry) Field(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Recorder collects entries written through its loggers.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Logger returns a logger bound to the recorder.
func (r *Recorder) Logger() logx.Logger {
	return bound{r: r}
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Has reports whether an entry with msg was recorded.
func (r *Recorder) Has(msg string) bool {
	for _, e := range r.Entries() {
		if e.Msg == msg {
			return true
		}
	}
	return false
}

func (r *Recorder) add(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := append([]logx.Field(nil), fields...)
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: cp})
}

type bound struct {
	r    *Recorder
	base []logx.Field
}

var _ logx.Logger = bound{}

func (b bound) fields(f []logx.Field) []logx.Field {
	out := make([]logx.Field, 0, len(b.base)+len(f))
	out = append(out, b.base...)
	return append(out, f...)
}

func (b bound) Debug(msg string, f ...logx.Field) { b.r.add("debug", msg, b.fields(f)) }
func (b bound) Info(msg string, f ...logx.Field)  { b.r.add("info", msg, b.fields(f)) }
func (b bound) Warn(msg string, f ...logx.Field)  { b.r.add("warn", msg, b.fields(f)) }
func (b bound) Error(msg string, f ...logx.Field) { b.r.add("error", msg, b.fields(f)) }

func (b bound) With(f ...logx.Field) logx.Logger {
	return bound{r: b.r, base: b.fields(f)}
}

func (b bound) Sync() error { return nil }
