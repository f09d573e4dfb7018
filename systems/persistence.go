package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/quasilyte/gdata"
)

const abilitiesItem = "abilities"

// itemStore is the subset of gdata.Manager used for settings storage.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang_abilities",
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	store = m
	return nil
}

// LoadAbilitySettings returns the saved ability tunables, or nil when nothing
// has been saved yet or persistence is unavailable.
func LoadAbilitySettings() (*cfg.AbilitySettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(abilitiesItem)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", abilitiesItem, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	// Start from the defaults so fields added later keep sensible values.
	settings := cfg.Ability
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", abilitiesItem, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveAbilitySettings validates and stores s.
func SaveAbilitySettings(s cfg.AbilitySettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", abilitiesItem, err)
	}
	if err := store.SaveItem(abilitiesItem, data); err != nil {
		return fmt.Errorf("save %s: %w", abilitiesItem, err)
	}
	return nil
}

// ApplySavedAbilitySettings loads the saved tunables into cfg.Ability so
// characters spawned afterwards pick them up. Failures keep the defaults.
func ApplySavedAbilitySettings() {
	saved, err := LoadAbilitySettings()
	if err != nil {
		log.Printf("[persistence] keeping default ability settings: %v", err)
		return
	}
	if saved == nil {
		return
	}
	cfg.Ability = *saved
	log.Printf("[persistence] loaded ability settings")
}
