package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromBytesPartialOverride(t *testing.T) {
	data := []byte(`
movement:
  walk_speed: 90
physics:
  gravity: 2000
`)
	tun, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if tun.Movement.WalkSpeed != 90 {
		t.Fatalf("WalkSpeed = %v, want 90", tun.Movement.WalkSpeed)
	}
	if tun.Physics.Gravity != 2000 {
		t.Fatalf("Gravity = %v, want 2000", tun.Physics.Gravity)
	}
	// Untouched sections keep their defaults.
	def := Default()
	if tun.Movement.RunSpeed != def.Movement.RunSpeed {
		t.Fatalf("RunSpeed = %v, want default %v", tun.Movement.RunSpeed, def.Movement.RunSpeed)
	}
	if tun.Probe != def.Probe {
		t.Fatalf("Probe = %+v, want default %+v", tun.Probe, def.Probe)
	}
}

func TestFromBytesInvalidYAML(t *testing.T) {
	if _, err := FromBytes([]byte("movement: [")); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}

func TestGateValueLookup(t *testing.T) {
	g := Gate{Effects: []GateEffect{{State: "attack", Enter: false, Exit: true}}}

	cases := []struct {
		name      string
		state     string
		wantEnter bool
		wantExit  bool
		wantOK    bool
	}{
		{"configured_state", "attack", false, true, true},
		{"unknown_state", "walk", false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enter, ok := g.EnterValue(c.state)
			if ok != c.wantOK || (ok && enter != c.wantEnter) {
				t.Fatalf("EnterValue = %t,%t want %t,%t", enter, ok, c.wantEnter, c.wantOK)
			}
			exit, ok := g.ExitValue(c.state)
			if ok != c.wantOK || (ok && exit != c.wantExit) {
				t.Fatalf("ExitValue = %t,%t want %t,%t", exit, ok, c.wantExit, c.wantOK)
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("CLAMBER_CONFIG", "/tmp/tuning.yaml")
	t.Setenv("CLAMBER_DEBUG", "true")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if e.ConfigPath != "/tmp/tuning.yaml" {
		t.Fatalf("ConfigPath = %q", e.ConfigPath)
	}
	if !e.Debug {
		t.Fatalf("Debug = false, want true")
	}
}

func TestStoreReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("movement:\n  walk_speed: 55\n"), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}

	store := NewStore(Default())
	if err := store.Reload(path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := store.Get().Movement.WalkSpeed; got != 55 {
		t.Fatalf("WalkSpeed = %v, want 55", got)
	}

	// A bad file keeps the previous tuning.
	if err := os.WriteFile(path, []byte("movement: ["), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	if err := store.Reload(path); err == nil {
		t.Fatalf("expected reload error for bad yaml")
	}
	if got := store.Get().Movement.WalkSpeed; got != 55 {
		t.Fatalf("WalkSpeed = %v after failed reload, want 55", got)
	}
}

func TestIsTuningFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"tuning.yaml", true},
		{"tuning.YML", true},
		{"notes.txt", false},
		{"tuning.yaml.swp", false},
	}
	for _, c := range cases {
		if got := isTuningFile(c.path); got != c.want {
			t.Fatalf("isTuningFile(%q) = %t, want %t", c.path, got, c.want)
		}
	}
}
