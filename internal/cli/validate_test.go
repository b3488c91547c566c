package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/config"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCSVSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "capitals.csv"), "question,optionA,optionB,optionC,answer\n"+
		"Capital of France?,Paris,Rome,Madrid,A\n"+
		"Capital of Italy?,Paris,Rome,Madrid,B\n")
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, "quiz:\n  source: csv\n  id: capitals\n  dir: "+dir+"\n")

	out, err := runCLI(t, "validate", "--config", cfgPath)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "quiz capitals (csv): 2 questions") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidateStaticDefault(t *testing.T) {
	out, err := runCLI(t, "validate", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "(static): 3 questions") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidateHeaderOnlyWarns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty.csv"), "question,optionA,optionB,optionC,answer\n")
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, "quiz:\n  source: csv\n  id: empty\n  dir: "+dir+"\n")

	out, err := runCLI(t, "validate", "--config", cfgPath)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "no questions loaded") {
		t.Fatalf("expected empty-set warning, got %q", out)
	}
}

func TestValidateMalformedCSVFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.csv"), "question,optionA,optionB,optionC,answer\nq,a,b,c,D\n")
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, "quiz:\n  source: csv\n  id: bad\n  dir: "+dir+"\n")

	if _, err := runCLI(t, "validate", "--config", cfgPath); err == nil {
		t.Fatalf("expected malformed csv to fail validation")
	}
}

func TestSessionSettingsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Quiz.AdvanceDelay = "250ms"
	cfg.Layout.ReferenceWidth = 400
	cfg.Layout.ReferenceHeight = 300

	settings := sessionSettings(cfg)
	if settings.AdvanceDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms delay, got %v", settings.AdvanceDelay)
	}
	if settings.Layout.ReferenceWidth != 400 || settings.Layout.ReferenceHeight != 300 {
		t.Fatalf("unexpected layout %+v", settings.Layout)
	}

	cfg.Quiz.AdvanceDelay = ""
	if got := sessionSettings(cfg).AdvanceDelay; got != app.DefaultAdvanceDelay {
		t.Fatalf("expected default delay, got %v", got)
	}
}
