package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit_Level(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want logrus.Level
	}{
		{"Debug", "debug", logrus.DebugLevel},
		{"Warn", "warn", logrus.WarnLevel},
		{"Garbage falls back to info", "loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			Init()
			if got := Log.GetLevel(); got != tt.want {
				t.Errorf("GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit_JSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "JSON")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	Log.WithField("score", 3).Info("game over")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "game over" {
		t.Errorf("msg = %v, want %q", entry["msg"], "game over")
	}
	if entry["score"] != float64(3) {
		t.Errorf("score = %v, want 3", entry["score"])
	}
}
