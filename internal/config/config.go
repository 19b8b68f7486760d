package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"

	"github.com/railmod/cbusgw/internal/cbus"
)

// Gateway is the cbusgw daemon configuration. Values come from an
// optional TOML file, then CBUSGW_* environment overrides.
type Gateway struct {
	Name         string `toml:"name" env:"CBUSGW_NAME"`
	Listen       string `toml:"listen" env:"CBUSGW_LISTEN"`
	CANInterface string `toml:"can_interface" env:"CBUSGW_CAN_IFACE"`
	CANID        uint8  `toml:"can_id" env:"CBUSGW_CAN_ID"`
}

func LoadGateway(path string) (Gateway, error) {
	var cfg Gateway
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Gateway{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Gateway{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Gateway{}, fmt.Errorf("config env parse failed: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = "cbusgw"
	}
	if cfg.Listen == "" {
		cfg.Listen = ":5550"
	}
	if err := ValidateGateway(cfg); err != nil {
		return Gateway{}, err
	}
	return cfg, nil
}

func ValidateGateway(cfg Gateway) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("gateway config missing name")
	}
	if strings.TrimSpace(cfg.Listen) == "" {
		return fmt.Errorf("gateway config missing listen")
	}
	if cfg.CANID > cbus.MaxCANID {
		return fmt.Errorf("gateway config can_id %d above %d", cfg.CANID, cbus.MaxCANID)
	}
	return nil
}
