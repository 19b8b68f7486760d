package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cbusgw.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadGatewayDefaults(t *testing.T) {
	cfg, err := LoadGateway("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Name != "cbusgw" {
		t.Fatalf("name default: %q", cfg.Name)
	}
	if cfg.Listen != ":5550" {
		t.Fatalf("listen default: %q", cfg.Listen)
	}
}

func TestLoadGatewayFromFile(t *testing.T) {
	path := writeConfig(t, `
name = "layout-gw"
listen = "0.0.0.0:7700"
can_interface = "can0"
can_id = 72
`)
	cfg, err := LoadGateway(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Name != "layout-gw" || cfg.Listen != "0.0.0.0:7700" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.CANInterface != "can0" || cfg.CANID != 72 {
		t.Fatalf("can values not applied: %+v", cfg)
	}
}

func TestLoadGatewayEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `listen = "0.0.0.0:7700"`)
	t.Setenv("CBUSGW_LISTEN", "127.0.0.1:9900")
	t.Setenv("CBUSGW_CAN_ID", "9")

	cfg, err := LoadGateway(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:9900" {
		t.Fatalf("env override not applied: %q", cfg.Listen)
	}
	if cfg.CANID != 9 {
		t.Fatalf("env override not applied: %d", cfg.CANID)
	}
}

func TestLoadGatewayRejectsBadCANID(t *testing.T) {
	path := writeConfig(t, `can_id = 200`)
	if _, err := LoadGateway(path); err == nil {
		t.Fatal("expected validation failure for can_id 200")
	}
}

func TestLoadGatewayMissingFile(t *testing.T) {
	if _, err := LoadGateway(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
