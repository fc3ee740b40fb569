package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// itemStore is the part of *gdata.Manager used for save data
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// SavedProgress is the last completed warp: the level it happened in and
// the drop position the warper was clamped to.
type SavedProgress struct {
	Level string  `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Warps int     `json:"warps"`
}

// InitPersistence initializes the gdata manager for save data
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "warpzone",
	})
	if err != nil {
		log.Printf("[persistence] Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadProgress returns nil without error when there is nothing saved
func LoadProgress() (*SavedProgress, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(progressKey)
	if err != nil {
		log.Printf("[persistence] Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("[persistence] Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

func SaveProgress(progress *SavedProgress) error {
	if store == nil || progress == nil {
		return nil
	}

	data, err := json.Marshal(progress)
	if err != nil {
		log.Printf("[persistence] Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := store.SaveItem(progressKey, data); err != nil {
		log.Printf("[persistence] Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// ClearProgress removes any saved progress
func ClearProgress() error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(progressKey, nil); err != nil {
		log.Printf("[persistence] Warning: Could not clear progress: %v", err)
		return err
	}
	return nil
}
