package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides points at the live config values so a YAML document only
// replaces the keys it mentions.
type overrides struct {
	Game      *Config          `yaml:"game"`
	Player    *PlayerConfig    `yaml:"player"`
	Shooting  *ShootingConfig  `yaml:"shooting"`
	Inventory *InventoryConfig `yaml:"inventory"`
	Cloud     *CloudConfig     `yaml:"cloud"`
	Host      *HostConfig      `yaml:"host"`
	Camera    *CameraConfig    `yaml:"camera"`
}

// LoadOverrides applies tuning values from a YAML document on top of the
// defaults set in init. An empty document is not an error.
func LoadOverrides(r io.Reader) error {
	o := overrides{
		Game:      C,
		Player:    &Player,
		Shooting:  &Shooting,
		Inventory: &Inventory,
		Cloud:     &Cloud,
		Host:      &Host,
		Camera:    &Camera,
	}
	if err := yaml.NewDecoder(r).Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config overrides: %w", err)
	}
	return nil
}

// LoadOverridesFile is LoadOverrides for a path on disk.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	return LoadOverrides(f)
}
