package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func restoreConfig(t *testing.T) {
	t.Helper()
	player, fade, hazard := Player, Fade, Hazard
	t.Cleanup(func() {
		Player, Fade, Hazard = player, fade, hazard
	})
}

func TestDefaults(t *testing.T) {
	if Player.StartX != 50 || Player.StartY != 300 {
		t.Errorf("spawn = (%v,%v), want (50,300)", Player.StartX, Player.StartY)
	}
	if Player.Bounce != 0.2 {
		t.Errorf("bounce = %v, want 0.2", Player.Bounce)
	}
	if Fade.From != 0 || Fade.To != 1 || Fade.DurationMs != 100 || Fade.Repeat != 5 {
		t.Errorf("fade = %+v", Fade)
	}
	if Hazard.CollisionInset != 20 {
		t.Errorf("inset = %v, want 20", Hazard.CollisionInset)
	}
}

func TestTuningOverridesOnlyProvidedFields(t *testing.T) {
	restoreConfig(t)

	tuning, err := ParseTuning([]byte(`
player:
  move_speed: 4
  gravity_y: 0.5
fade:
  repeat: 2
`))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	tuning.Apply()

	if Player.MoveSpeed != 4 || Player.GravityY != 0.5 {
		t.Errorf("player = %+v", Player)
	}
	if Player.StartX != 50 || Player.JumpSpeed != 7.5 || Player.Bounce != 0.2 {
		t.Error("fields missing from the file should keep their defaults")
	}
	if Fade.Repeat != 2 || Fade.DurationMs != 100 {
		t.Errorf("fade = %+v", Fade)
	}
	if Hazard.CollisionInset != 20 {
		t.Errorf("inset = %v, want 20", Hazard.CollisionInset)
	}
}

func TestParseTuningErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "player: [1, 2"},
		{"wrong type", "player:\n  move_speed: fast\n"},
		{"negative repeat", "fade:\n  repeat: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNilTuningApplyIsNoop(t *testing.T) {
	restoreConfig(t)
	var tuning *Tuning
	tuning.Apply()
	if Player.MoveSpeed != 2.75 {
		t.Errorf("move speed = %v", Player.MoveSpeed)
	}
}

func TestLoadTuning(t *testing.T) {
	restoreConfig(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("hazard:\n  collision_inset: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	tuning.Apply()
	if Hazard.CollisionInset != 12 {
		t.Errorf("inset = %v, want 12", Hazard.CollisionInset)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestTuningWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewTuningWatcher(path)
	if err != nil {
		t.Fatalf("NewTuningWatcher: %v", err)
	}
	defer w.Close()

	if changed, _ := w.Poll(); changed {
		t.Fatal("no change expected before writing")
	}

	if err := os.WriteFile(path, []byte("player:\n  move_speed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if changed, _ := w.Poll(); changed {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("watcher did not report the write")
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{DirectionNone, DirectionLeft, DirectionRight} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	if Direction(3).Valid() || Direction(-1).Valid() {
		t.Error("out-of-range directions should be invalid")
	}
	if Direction(9).String() != "unknown" {
		t.Error("unknown direction should say so")
	}
}

func TestTickMs(t *testing.T) {
	if got := TickMs(); got < 16.6 || got > 16.7 {
		t.Errorf("TickMs = %v at 60 TPS", got)
	}
}

func TestTuningWatcherWaitsForWritesToSettle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := newTuningWatcher(path, 300*time.Millisecond)
	if err != nil {
		t.Fatalf("newTuningWatcher: %v", err)
	}
	defer w.Close()

	final := "player:\n  move_speed: 3\n"
	if err := os.WriteFile(path, []byte("player:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(final), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(50 * time.Millisecond)
	if changed, _ := w.Poll(); changed {
		t.Fatal("change reported before writes settled")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if changed, _ := w.Poll(); changed {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != final {
				t.Errorf("file at report time = %q, want the final write", data)
			}
			time.Sleep(400 * time.Millisecond)
			if again, _ := w.Poll(); again {
				t.Error("both writes should be reported as one change")
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("watcher did not report the settled write")
}
