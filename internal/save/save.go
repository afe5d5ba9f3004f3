// Package save persists the player's best score and last settings as a
// small JSON document.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/config"
)

// DefaultPath is where the game keeps its save file.
const DefaultPath = "~/.matrixsnake/save.json"

// Data is the persisted state. Fields absent from the file keep the
// file's defaults; explicit zeros are kept.
type Data struct {
	BestScore       int     `json:"best_score"`
	LastSeed        uint64  `json:"last_seed"`
	LastWallDensity float64 `json:"last_wall_density"`
	MoveIntervalMs  int     `json:"move_interval_ms"`
	SoundVolume     float64 `json:"sound_volume"`
}

// Defaults returns the state of a fresh install under the built-in
// configuration.
func Defaults() Data {
	return DefaultsFrom(config.DefaultSnakeConfig())
}

// DefaultsFrom returns the state of a fresh install under cfg.
func DefaultsFrom(cfg config.SnakeConfig) Data {
	return Data{
		LastWallDensity: cfg.Map.DefaultDensity,
		MoveIntervalMs:  cfg.Speed.DefaultMs,
		SoundVolume:     cfg.Audio.DefaultVolume,
	}
}

// MoveInterval returns the saved move interval.
func (d Data) MoveInterval() time.Duration {
	return time.Duration(d.MoveIntervalMs) * time.Millisecond
}

// Sanitize replaces values no version of the game could have written
// with the built-in defaults.
func (d Data) Sanitize() Data {
	return d.sanitize(Defaults())
}

func (d Data) sanitize(def Data) Data {
	if d.BestScore < 0 {
		d.BestScore = 0
	}
	if math.IsNaN(d.LastWallDensity) || d.LastWallDensity < 0 {
		d.LastWallDensity = def.LastWallDensity
	}
	if d.MoveIntervalMs <= 0 {
		d.MoveIntervalMs = def.MoveIntervalMs
	}
	if math.IsNaN(d.SoundVolume) || d.SoundVolume < 0 || d.SoundVolume > 1 {
		d.SoundVolume = def.SoundVolume
	}
	return d
}

// File is a save file on disk.
type File struct {
	Path string
	// Defaults fill fields the file lacks. The zero value means Defaults().
	Defaults Data
}

func (f *File) fresh() Data {
	if f.Defaults == (Data{}) {
		return Defaults()
	}
	return f.Defaults
}

// NewFile returns a File for path, expanding a leading ~. Missing fields
// are filled from Defaults(); set File.Defaults to use a loaded config.
func NewFile(path string) (*File, error) {
	if path == "" {
		path = DefaultPath
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("save: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &File{Path: path}, nil
}

// Load reads the save file. A missing file yields the file's defaults and
// no error. An unreadable or malformed file yields the defaults and an
// error the caller may log.
func (f *File) Load() (Data, error) {
	def := f.fresh()
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("save: cannot read %s: %w", f.Path, err)
	}

	d := def
	if err := json.Unmarshal(raw, &d); err != nil {
		return def, fmt.Errorf("save: cannot parse %s: %w", f.Path, err)
	}
	return d.sanitize(def), nil
}

// Save writes d atomically: the document goes to a temp file in the same
// directory, which is then renamed over the save file.
func (f *File) Save(d Data) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("save: cannot encode: %w", err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.json")
	if err != nil {
		return fmt.Errorf("save: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("save: cannot write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: cannot close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return fmt.Errorf("save: cannot replace %s: %w", f.Path, err)
	}
	return nil
}

// Update loads the file, applies fn and saves the result. Load errors
// do not prevent the save; they are returned joined with any save error.
func (f *File) Update(fn func(*Data)) (Data, error) {
	d, loadErr := f.Load()
	fn(&d)
	return d, errors.Join(loadErr, f.Save(d))
}
