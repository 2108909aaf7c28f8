package server

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/log"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetSink(&buf)
	log.SetLevel(log.Info)
	t.Cleanup(func() {
		log.SetSink(os.Stderr)
		log.SetLevel(log.Notice)
	})
	return &buf
}

func TestWebLogger_BasicLogging(t *testing.T) {
	buf := captureLogs(t)
	logger := NewWebLogger("test-render-123", log.New("test"))

	logger.Printf("%s\n", "Test log message")

	out := buf.String()
	if !strings.Contains(out, "[test-render-123] Test log message") {
		t.Errorf("Expected tagged message, got %q", out)
	}
	if strings.Contains(out, "message\n\n") {
		t.Errorf("Expected trailing newline to be trimmed, got %q", out)
	}
}

func TestWebLogger_MultipleMessages(t *testing.T) {
	buf := captureLogs(t)
	logger := NewWebLogger("test-render-456", log.New("test"))

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s", msg)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(messages) {
		t.Fatalf("Expected %d lines, got %d: %q", len(messages), len(lines), buf.String())
	}
	for i, msg := range messages {
		if !strings.Contains(lines[i], msg) {
			t.Errorf("Line %d: expected %q, got %q", i, msg, lines[i])
		}
	}
}

func TestWebLogger_BelowLevelIsDropped(t *testing.T) {
	buf := captureLogs(t)
	log.SetLevel(log.Warning)

	NewWebLogger("quiet", log.New("test")).Printf("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info message to be filtered, got %q", buf.String())
	}
}
