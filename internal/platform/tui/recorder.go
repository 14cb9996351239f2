package tui

//go:generate go tool mockgen -destination=./mocks/mock_recorder.go -package=mocks . RunRecorder

import (
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/storage"
)

// RunRecorder persists the run journal. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(run storage.Run) error
}

var _ RunRecorder = (*storage.Store)(nil)

// Journaled is implemented by games whose sessions can be recorded and
// replayed from their input frames.
type Journaled interface {
	Seed() int64
	StartLevel() int
	ConfigDigest() string
	HighestLevel() int
	Hash() uint64
}

// runLog accumulates one run: every frame fed to the game since the model
// was created, plus the best outcome across restarts.
type runLog struct {
	id           string
	frames       []core.InputFrame
	games        int
	bestScore    int
	highestLevel int
}

func (r *runLog) record(in core.InputFrame) {
	r.frames = append(r.frames, in.Clone())
}

func (r *runLog) finishGame(score, highestLevel int) {
	r.games++
	r.bestScore = max(r.bestScore, score)
	r.highestLevel = max(r.highestLevel, highestLevel)
}

// run builds the journal entry for the run so far.
func (r *runLog) run(gameID string, j Journaled) storage.Run {
	return storage.Run{
		ID:           r.id,
		GameID:       gameID,
		Seed:         j.Seed(),
		StartLevel:   j.StartLevel(),
		ConfigDigest: j.ConfigDigest(),
		Frames:       r.frames,
		Ticks:        len(r.frames),
		Score:        r.bestScore,
		HighestLevel: max(r.highestLevel, j.HighestLevel()),
		Games:        r.games,
		Hash:         j.Hash(),
	}
}
