package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name          string
		level         Level
		logFunc       func(Logger, string)
		expectedInLog bool
	}{
		{
			name:          "debug message when level is debug",
			level:         LevelDebug,
			logFunc:       func(l Logger, msg string) { l.Debug(msg) },
			expectedInLog: true,
		},
		{
			name:          "debug message when level is info",
			level:         LevelInfo,
			logFunc:       func(l Logger, msg string) { l.Debug(msg) },
			expectedInLog: false,
		},
		{
			name:          "info message when level is info",
			level:         LevelInfo,
			logFunc:       func(l Logger, msg string) { l.Info(msg) },
			expectedInLog: true,
		},
		{
			name:          "warn message when level is error",
			level:         LevelError,
			logFunc:       func(l Logger, msg string) { l.Warn(msg) },
			expectedInLog: false,
		},
		{
			name:          "error message when level is error",
			level:         LevelError,
			logFunc:       func(l Logger, msg string) { l.Error(msg) },
			expectedInLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(tt.level, buf)

			testMsg := "test message"
			tt.logFunc(logger, testMsg)

			output := buf.String()
			contains := strings.Contains(output, testMsg)

			if contains != tt.expectedInLog {
				t.Errorf("expected message in log: %v, got: %v (output: %s)",
					tt.expectedInLog, contains, output)
			}
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LevelInfo, buf)

	logger.Info("test message",
		F("key1", "value1"),
		F("key2", 42),
	)

	output := buf.String()

	if !strings.Contains(output, `"key1":"value1"`) {
		t.Errorf("expected key1 in output, got: %s", output)
	}

	if !strings.Contains(output, `"key2":42`) {
		t.Errorf("expected key2 in output, got: %s", output)
	}
}

func TestLogger_ErrorField(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LevelInfo, buf)

	logger.Warn("read failed", F("error", errors.New("broken pipe")))

	if !strings.Contains(buf.String(), `"error":"broken pipe"`) {
		t.Errorf("expected error text in output, got: %s", buf.String())
	}
}

func TestLogger_WithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	baseLogger := NewConsoleLogger(LevelInfo, buf, true)

	childLogger := baseLogger.WithFields(
		F("run_id", "123"),
		F("stream", "stdout"),
	)

	childLogger.Info("test message", F("action", "create"))

	output := buf.String()

	expectedFields := []string{"run_id=123", "stream=stdout", "action=create"}
	for _, field := range expectedFields {
		if !strings.Contains(output, field) {
			t.Errorf("expected %s in output, got: %s", field, output)
		}
	}
}

func TestLogger_SilentMode(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LevelSilent, buf)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	if buf.Len() > 0 {
		t.Errorf("expected no output in silent mode, got: %s", buf.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LevelError, buf)

	logger.Info("info message")
	if buf.Len() > 0 {
		t.Errorf("expected no output at error level for info, got: %s", buf.String())
	}

	logger.SetLevel(LevelInfo)
	buf.Reset()

	logger.Info("info message")
	if buf.Len() == 0 {
		t.Error("expected output after changing to info level")
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelSilent, "SILENT"},
		{Level(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"silent", LevelSilent, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := FromConfig(Config{Level: "debug", Format: "json"}, buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hello")
	if !strings.Contains(buf.String(), `"message":"hello"`) {
		t.Errorf("expected json record, got: %s", buf.String())
	}

	if _, err := FromConfig(Config{Format: "xml"}, buf); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := FromConfig(Config{Level: "loud"}, buf); err == nil {
		t.Error("expected error for unknown level")
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLogger(LevelInfo, bytes.NewBuffer(make([]byte, 0, 1024*1024)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message",
			F("iteration", i),
			F("key", "value"),
		)
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(NewLogger(LevelInfo, &buf))
	Default().Info("from default")

	if !strings.Contains(buf.String(), "from default") {
		t.Errorf("expected default logger output, got %q", buf.String())
	}
}
