package logging

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestResolveLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Options
		want    zerolog.Level
	}{
		{name: "default", options: Options{}, want: zerolog.InfoLevel},
		{name: "explicit", options: Options{Level: "WARN"}, want: zerolog.WarnLevel},
		{name: "unknown falls back", options: Options{Level: "chatty"}, want: zerolog.InfoLevel},
		{name: "verbose wins", options: Options{Level: "error", Verbose: true}, want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveLevel(tt.options); got != tt.want {
				t.Fatalf("resolveLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFileWriter(t *testing.T) {
	t.Parallel()

	if writer := newFileWriter("  "); writer != nil {
		t.Fatal("expected no file writer for a blank path")
	}

	path := filepath.Join(t.TempDir(), "pocketlove.log")
	writer := newFileWriter(path)
	if writer == nil {
		t.Fatal("expected a file writer")
	}
	defer writer.Close()

	if writer.Filename != path || !writer.Compress {
		t.Fatalf("unexpected rotation settings: %+v", writer)
	}
	if _, err := writer.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write log line: %v", err)
	}
}
