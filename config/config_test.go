package config

import "testing"

func TestShootingWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   ShootingConfig
		want ShootingConfig
	}{
		{"zero value", ShootingConfig{}, DefaultShooting()},
		{"set fields kept", ShootingConfig{ProjectileSpeed: 450, MuzzleUp: -5, MaxProjectiles: 2}, func() ShootingConfig {
			c := DefaultShooting()
			c.ProjectileSpeed, c.MuzzleUp, c.MaxProjectiles = 450, -5, 2
			return c
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WithDefaults(); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
