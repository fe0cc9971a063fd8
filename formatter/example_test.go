package formatter_test

import (
	"os"
	"time"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/formatter"
)

func ExampleText() {
	f := formatter.NewText(formatter.Config{})
	_ = f.FormatTo(os.Stdout, time.Now(), core.WarnLevel, "low battery")
	// Output: [warn] low battery
}

func ExampleJSON() {
	f := formatter.NewJSON()
	rec := core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "disk full",
		Fields:  map[string]any{"homeyId": "abc123"},
	}
	data, _ := f.Format(rec)
	os.Stdout.Write(data)
	// Output: {"dt":"2026-02-18T13:00:00Z","message":"disk full","level":"error","homeyId":"abc123"}
}
