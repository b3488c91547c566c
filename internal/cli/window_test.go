package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/config"
)

func TestWindowCommandHandsLoadedSessionToRunner(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, "quiz:\n  id: sample\nwindow:\n  width: 640\n  height: 480\n")

	var got *app.Session
	var gotCfg config.Config
	runner := func(session *app.Session, cfg config.Config, debug bool) error {
		got, gotCfg = session, cfg
		if debug {
			t.Fatalf("expected debug off")
		}
		return nil
	}

	cmd := newRootCmd(runner)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"window", "--config", cfgPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("window: %v", err)
	}
	if got == nil || got.QuizID() != "sample" || got.Model().Total() == 0 {
		t.Fatalf("expected the sample session, got %+v", got)
	}
	if gotCfg.Window.Width != 640 || gotCfg.Window.Height != 480 {
		t.Fatalf("window size not passed through: %+v", gotCfg.Window)
	}
}

func TestWindowCommandAbsentWithoutRunner(t *testing.T) {
	if _, _, err := newRootCmd(nil).Find([]string{"window"}); err == nil {
		t.Fatalf("expected no window command without a runner")
	}
}
