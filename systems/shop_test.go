package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/persistence"
)

func newTestShop(coins int) (*Shop, *persistence.Store) {
	store := persistence.NewStore(persistence.NewMemoryBackend())
	store.AddCoins(coins)
	return NewShop(store, cfg.Shop.Items), store
}

func TestShopUnlock(t *testing.T) {
	tests := []struct {
		name      string
		coins     int
		id        string
		wantErr   error
		wantCoins int
	}{
		{"affordable", 12, "trail_orange", nil, 2},
		{"exact", 10, "trail_orange", nil, 0},
		{"too poor", 9, "trail_orange", ErrInsufficientCoins, 9},
		{"unknown", 100, "trail_rainbow", ErrUnknownItem, 100},
		{"free item is pre-unlocked", 100, "trail_white", ErrAlreadyUnlocked, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shop, store := newTestShop(tt.coins)
			err := shop.Unlock(tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if store.Coins() != tt.wantCoins {
				t.Fatalf("coins = %d, want %d", store.Coins(), tt.wantCoins)
			}
		})
	}
}

func TestShopUnlockTwice(t *testing.T) {
	shop, store := newTestShop(40)
	if err := shop.Unlock("trail_purple"); err != nil {
		t.Fatalf("first unlock: %v", err)
	}
	if err := shop.Unlock("trail_purple"); !errors.Is(err, ErrAlreadyUnlocked) {
		t.Fatalf("second unlock err = %v", err)
	}
	if store.Coins() != 15 {
		t.Fatalf("charged twice: %d", store.Coins())
	}
}

func TestShopEquip(t *testing.T) {
	shop, _ := newTestShop(10)

	if c := shop.TrailColor(); c != cfg.White {
		t.Fatalf("default trail colour = %v", c)
	}
	if err := shop.Equip("trail_orange"); !errors.Is(err, ErrLocked) {
		t.Fatalf("equipping a locked item: %v", err)
	}
	if err := shop.Equip("nope"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("equipping unknown item: %v", err)
	}

	if err := shop.Unlock("trail_orange"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := shop.Equip("trail_orange"); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if c := shop.TrailColor(); c != cfg.Orange {
		t.Fatalf("trail colour = %v, want orange", c)
	}
	if _, ok := shop.Equipped(cfg.SlotHat); ok {
		t.Fatalf("nothing should be in the hat slot")
	}
}
