package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/extsort/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	l.Info("test message")
	l.Error("bad thing")

	if !strings.Contains(out.String(), "[INFO] test message") {
		t.Errorf("stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] bad thing") {
		t.Errorf("stderr: %q", errOut.String())
	}
	if strings.Contains(out.String(), "bad thing") {
		t.Error("ERROR line leaked to stdout")
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "extsort.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !bytes.Contains(b, []byte("["+l.RunID()+"]")) {
		t.Errorf("log file missing run ID %q: %s", l.RunID(), string(b))
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	var out bytes.Buffer
	l.SetOutput(&out, &out)
	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	if strings.Contains(out.String(), "hidden") {
		t.Error("Debug(false) produced output")
	}
	if !strings.Contains(out.String(), "[DEBUG] shown") {
		t.Errorf("Debug(true) output: %q", out.String())
	}
}

func TestRunID_Distinct(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	a, _ := NewLogger(&cfg)
	b, _ := NewLogger(&cfg)
	if len(a.RunID()) != 8 || a.RunID() == b.RunID() {
		t.Errorf("run IDs %q, %q: want distinct 8-char IDs", a.RunID(), b.RunID())
	}
}
