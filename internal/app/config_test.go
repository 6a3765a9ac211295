package app

import (
	"flag"
	"io"
	"testing"
	"time"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	args := []string{"-gen", "diagonal", "-tile", "4", "-seed", "-9", "-regen", "1500ms", "-set", "span=32", "-set", "min_w=3"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Gen != "diagonal" || cfg.Tile != 4 || cfg.Seed != -9 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Regen != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s regen, got %v", cfg.Regen)
	}
	if cfg.Params["span"] != "32" || cfg.Params["min_w"] != "3" {
		t.Fatalf("unexpected params %v", cfg.Params)
	}
}

func TestBindDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Gen != "room" || cfg.Tile != 10 || cfg.Regen != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestKeyValuesRejectsMalformed(t *testing.T) {
	kv := KeyValues{}
	for _, bad := range []string{"span", "=3", ""} {
		if err := kv.Set(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if err := kv.Set("seed=a=b"); err != nil || kv["seed"] != "a=b" {
		t.Fatalf("value may contain '=': %v %v", err, kv)
	}
}
