package systems

import (
	"errors"
	"fmt"
	"image/color"

	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/persistence"
)

var (
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrAlreadyUnlocked   = errors.New("item already unlocked")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrLocked            = errors.New("item is locked")
)

// Shop sells cosmetics against the coins kept in the profile store.
type Shop struct {
	store *persistence.Store
	items []cfg.ShopItem
}

// NewShop grants every free item so there is always something to equip.
func NewShop(store *persistence.Store, items []cfg.ShopItem) *Shop {
	s := &Shop{store: store, items: items}
	for _, item := range items {
		if item.Cost == 0 && !store.IsUnlocked(item.ID) {
			store.Unlock(item.ID)
		}
	}
	return s
}

func (s *Shop) Items() []cfg.ShopItem { return s.items }

func (s *Shop) item(id string) (cfg.ShopItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return cfg.ShopItem{}, false
}

// Unlock buys id.
func (s *Shop) Unlock(id string) error {
	item, ok := s.item(id)
	if !ok {
		return fmt.Errorf("unlock %q: %w", id, ErrUnknownItem)
	}
	if s.store.IsUnlocked(id) {
		return fmt.Errorf("unlock %q: %w", id, ErrAlreadyUnlocked)
	}
	if !s.store.SpendCoins(item.Cost) {
		return fmt.Errorf("unlock %q costs %d, have %d: %w", id, item.Cost, s.store.Coins(), ErrInsufficientCoins)
	}
	s.store.Unlock(id)
	return nil
}

// Equip wears an unlocked item in its slot.
func (s *Shop) Equip(id string) error {
	item, ok := s.item(id)
	if !ok {
		return fmt.Errorf("equip %q: %w", id, ErrUnknownItem)
	}
	if !s.store.IsUnlocked(id) {
		return fmt.Errorf("equip %q: %w", id, ErrLocked)
	}
	s.store.Equip(item.Slot, id)
	return nil
}

// Equipped returns the item worn in slot.
func (s *Shop) Equipped(slot string) (cfg.ShopItem, bool) {
	id := s.store.Equipped(slot)
	if id == "" {
		return cfg.ShopItem{}, false
	}
	return s.item(id)
}

// TrailColor is the equipped trail's colour, white by default.
func (s *Shop) TrailColor() color.RGBA {
	if item, ok := s.Equipped(cfg.SlotTrail); ok {
		return item.Color
	}
	return cfg.White
}
