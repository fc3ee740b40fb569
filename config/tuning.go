package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk override file. Only fields present in the file are applied.
type Tuning struct {
	Grid *struct {
		CellSize     *float64 `yaml:"cell_size"`
		StepDuration *float32 `yaml:"step_duration"`
	} `yaml:"grid"`
	Warp *struct {
		StartEnabled   *bool `yaml:"start_enabled"` // Only warpers created afterwards
		LogTransitions *bool `yaml:"log_transitions"`
		FlashFrames    *int  `yaml:"flash_frames"`
		SaveOnFinish   *bool `yaml:"save_on_finish"`
	} `yaml:"warp"`
	Camera *struct {
		FollowSpeed *float64 `yaml:"follow_speed"`
	} `yaml:"camera"`
}

// ParseTuning decodes a tuning document
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) validate() error {
	if t.Grid != nil {
		if t.Grid.CellSize != nil && *t.Grid.CellSize <= 0 {
			return fmt.Errorf("grid.cell_size must be positive, got %v", *t.Grid.CellSize)
		}
		if t.Grid.CellSize != nil && *t.Grid.CellSize < Grid.ActorSize {
			return fmt.Errorf("grid.cell_size must be at least the actor size %v, got %v", Grid.ActorSize, *t.Grid.CellSize)
		}
		if t.Grid.StepDuration != nil && *t.Grid.StepDuration <= 0 {
			return fmt.Errorf("grid.step_duration must be positive, got %v", *t.Grid.StepDuration)
		}
	}
	if t.Warp != nil && t.Warp.FlashFrames != nil && *t.Warp.FlashFrames < 0 {
		return fmt.Errorf("warp.flash_frames must not be negative, got %d", *t.Warp.FlashFrames)
	}
	if t.Camera != nil && t.Camera.FollowSpeed != nil {
		if s := *t.Camera.FollowSpeed; s <= 0 || s > 1 {
			return fmt.Errorf("camera.follow_speed must be in (0, 1], got %v", s)
		}
	}
	return nil
}

// Apply writes the present fields over the global configuration
func (t *Tuning) Apply() {
	if g := t.Grid; g != nil {
		if g.CellSize != nil {
			Grid.CellSize = *g.CellSize
		}
		if g.StepDuration != nil {
			Grid.StepDuration = *g.StepDuration
		}
	}
	t.ApplyLive()
}

// ApplyLive writes every present field except grid, which warpers already
// placed on the grid depend on
func (t *Tuning) ApplyLive() {
	if w := t.Warp; w != nil {
		if w.StartEnabled != nil {
			Warp.StartEnabled = *w.StartEnabled
		}
		if w.LogTransitions != nil {
			Warp.LogTransitions = *w.LogTransitions
		}
		if w.FlashFrames != nil {
			Warp.FlashFrames = *w.FlashFrames
		}
		if w.SaveOnFinish != nil {
			Warp.SaveOnFinish = *w.SaveOnFinish
		}
	}
	if c := t.Camera; c != nil && c.FollowSpeed != nil {
		Camera.FollowSpeed = *c.FollowSpeed
	}
}

// LoadTuning reads, validates and applies a tuning file
func LoadTuning(path string) error {
	t, err := readTuning(path)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

// ReloadTuning is LoadTuning for a running game. Grid settings are left
// alone and only take effect on the next start.
func ReloadTuning(path string) error {
	t, err := readTuning(path)
	if err != nil {
		return err
	}
	if t.Grid != nil {
		log.Printf("[config] Warning: %s: grid settings are not reloaded, restart to apply them", path)
	}
	t.ApplyLive()
	return nil
}

func readTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
