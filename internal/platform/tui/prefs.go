package tui

import (
	"sync"

	"github.com/vovakirdan/matrix-snake/internal/games/snake"
	"github.com/vovakirdan/matrix-snake/internal/save"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

// PrefsStore persists the save data the game updates as it runs.
// *save.File implements it.
type PrefsStore interface {
	Update(fn func(*save.Data)) (save.Data, error)
}

// ScoreRecorder records finished runs. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(e storage.ScoreEntry) (storage.ScoreEntry, error)
}

// MemoryPrefs keeps save data in memory. SSH sessions use it so remote
// players never touch the host's save file.
type MemoryPrefs struct {
	mu   sync.Mutex
	data save.Data
}

// NewMemoryPrefs returns prefs starting from d.
func NewMemoryPrefs(d save.Data) *MemoryPrefs {
	return &MemoryPrefs{data: d}
}

// Update applies fn to the stored data.
func (p *MemoryPrefs) Update(fn func(*save.Data)) (save.Data, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.data)
	return p.data, nil
}

// Data returns a copy of the stored data.
func (p *MemoryPrefs) Data() save.Data {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// PrefsFrom converts save data into the values a new App starts from.
func PrefsFrom(d save.Data) snake.Prefs {
	return snake.Prefs{
		BestScore:    d.BestScore,
		Seed:         d.LastSeed,
		Density:      d.LastWallDensity,
		MoveInterval: d.MoveInterval(),
		Volume:       d.SoundVolume,
	}
}
