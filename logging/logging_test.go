package logging

import "testing"

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(nil)
	if err != nil {
		t.Fatalf("NewLogger(nil) error: %v", err)
	}
	if logger == nil {
		t.Fatal("NewLogger(nil) returned nil logger")
	}
}

func TestNewLoggerStyles(t *testing.T) {
	for _, style := range []Style{StyleTerminal, StyleJSON, StyleNoop} {
		t.Run(string(style), func(t *testing.T) {
			logger, err := NewLogger(&Config{Style: style, Level: "debug"})
			if err != nil {
				t.Fatalf("NewLogger(%s) error: %v", style, err)
			}
			if logger == nil {
				t.Fatalf("NewLogger(%s) returned nil logger", style)
			}
		})
	}
}

func TestNewLoggerRejectsBadInput(t *testing.T) {
	if _, err := NewLogger(&Config{Style: "syslog"}); err == nil {
		t.Error("expected error for unknown style")
	}
	if _, err := NewLogger(&Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
