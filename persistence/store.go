// Package persistence keeps the player's profile: coins, best run score and
// cosmetic unlocks. A Store is created once and handed to whoever needs it.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
)

const profileKey = "profile"

type profile struct {
	Coins    int               `json:"coins"`
	Best     int               `json:"best"`
	Unlocked []string          `json:"unlocked"`
	Equipped map[string]string `json:"equipped"`
}

// Store is the in-memory profile plus the backend it is saved to.
type Store struct {
	backend  Backend
	coins    int
	best     int
	unlocked map[string]bool
	equipped map[string]string
}

// NewStore returns an empty profile. Call Load to read a saved one.
func NewStore(backend Backend) *Store {
	return &Store{
		backend:  backend,
		unlocked: make(map[string]bool),
		equipped: make(map[string]string),
	}
}

// Load replaces the in-memory profile with the saved one. A missing profile
// leaves the defaults in place.
func (s *Store) Load() error {
	data, err := s.backend.LoadItem(profileKey)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}

	s.coins = p.Coins
	s.best = p.Best
	s.unlocked = make(map[string]bool, len(p.Unlocked))
	for _, id := range p.Unlocked {
		s.unlocked[id] = true
	}
	s.equipped = make(map[string]string, len(p.Equipped))
	for slot, id := range p.Equipped {
		s.equipped[slot] = id
	}
	return nil
}

// Save writes the profile to the backend.
func (s *Store) Save() error {
	p := profile{
		Coins:    s.coins,
		Best:     s.best,
		Unlocked: make([]string, 0, len(s.unlocked)),
		Equipped: s.equipped,
	}
	for id := range s.unlocked {
		p.Unlocked = append(p.Unlocked, id)
	}
	sort.Strings(p.Unlocked)

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.backend.SaveItem(profileKey, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// SaveOrWarn saves and only logs on failure. Losing a save never stops play.
func (s *Store) SaveOrWarn() {
	if err := s.Save(); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (s *Store) Coins() int { return s.coins }

func (s *Store) AddCoins(n int) {
	if n > 0 {
		s.coins += n
	}
}

// SpendCoins deducts n if the balance covers it.
func (s *Store) SpendCoins(n int) bool {
	if n < 0 || n > s.coins {
		return false
	}
	s.coins -= n
	return true
}

func (s *Store) Best() int { return s.best }

// RecordScore keeps score if it beats the best so far and reports whether it did.
func (s *Store) RecordScore(score int) bool {
	if score <= s.best {
		return false
	}
	s.best = score
	return true
}

func (s *Store) IsUnlocked(id string) bool { return s.unlocked[id] }

func (s *Store) Unlock(id string) { s.unlocked[id] = true }

// Equipped returns the item id worn in slot, or "" for none.
func (s *Store) Equipped(slot string) string { return s.equipped[slot] }

func (s *Store) Equip(slot, id string) { s.equipped[slot] = id }
