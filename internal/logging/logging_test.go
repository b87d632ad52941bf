package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{in: "debug", want: log.DebugLevel},
		{in: "info", want: log.InfoLevel},
		{in: "warn", want: log.WarnLevel},
		{in: "", want: log.WarnLevel},
		{in: "error", want: log.ErrorLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"", "text", "json", "logfmt"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\"): expected error")
	}
}

func TestDefaultLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: log.WarnLevel, Formatter: log.TextFormatter})

	logger.Debug("parsed entries", "count", 3)
	if buf.Len() != 0 {
		t.Errorf("debug output at warn level: %q", buf.String())
	}

	logger.Warn("store file is large")
	if !strings.Contains(buf.String(), "store file is large") {
		t.Errorf("warn output missing: %q", buf.String())
	}
}
