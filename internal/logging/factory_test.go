package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		wantType Logger
		wantSubs string
		wantErr  bool
	}{
		{name: "text", level: "info", format: "text", wantType: &SlogLogger{}, wantSubs: "level=INFO"},
		{name: "json", level: "debug", format: "json", wantType: &SlogLogger{}, wantSubs: `"level":"INFO"`},
		{name: "console", level: "info", format: "console", wantType: &ZerologLogger{}, wantSubs: "INF"},
		{name: "empty format falls back to console", level: "warn", format: "", wantType: &ZerologLogger{}},
		{name: "bad slog level", level: "loud", format: "text", wantErr: true},
		{name: "bad zerolog level", level: "loud", format: "console", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.level, tt.format, &buf)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, log)

			log.Info(context.Background(), "hello", "k", "v")
			if tt.wantSubs != "" {
				assert.Contains(t, buf.String(), tt.wantSubs)
			}
		})
	}
}
