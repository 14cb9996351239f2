package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

// ErrRunNotFound is returned when a run ID is not in the journal.
var ErrRunNotFound = errors.New("storage: run not found")

// framesVersion is bumped whenever the encoded frame layout changes.
const framesVersion = 1

// Run is one recorded play session: everything needed to replay it
// deterministically, plus the outcome it produced.
type Run struct {
	ID           string
	GameID       string
	Seed         int64
	StartLevel   int
	ConfigDigest string
	Frames       []core.InputFrame // Nil in RecentRuns listings
	Ticks        int
	Score        int // Best score of any game in the run
	HighestLevel int
	Games        int // Finished games
	Hash         uint64
	CreatedAt    time.Time
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// framesPayload is the msgpack document stored in runs.frames.
type framesPayload struct {
	Version int      `msgpack:"v"`
	Frames  [][]int8 `msgpack:"f"`
}

// EncodeFrames serializes input frames compactly, one action list per tick.
func EncodeFrames(frames []core.InputFrame) ([]byte, error) {
	p := framesPayload{Version: framesVersion, Frames: make([][]int8, len(frames))}
	for i, f := range frames {
		actions := f.Actions()
		row := make([]int8, len(actions))
		for j, a := range actions {
			row[j] = int8(a) //#nosec G115 -- actions fit in int8
		}
		p.Frames[i] = row
	}
	data, err := msgpack.Marshal(&p)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode frames: %w", err)
	}
	return data, nil
}

// DecodeFrames is the inverse of EncodeFrames.
func DecodeFrames(data []byte) ([]core.InputFrame, error) {
	var p framesPayload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("storage: cannot decode frames: %w", err)
	}
	if p.Version != framesVersion {
		return nil, fmt.Errorf("storage: unsupported frames version %d", p.Version)
	}
	frames := make([]core.InputFrame, len(p.Frames))
	for i, row := range p.Frames {
		f := core.NewInputFrame()
		for _, a := range row {
			f.Set(core.Action(a))
		}
		frames[i] = f
	}
	return frames, nil
}

// SaveRun inserts a run or replaces the stored copy with the same ID, so
// a live session can be checkpointed repeatedly.
func (s *Store) SaveRun(run Run) error {
	if run.ID == "" {
		return errors.New("storage: run has no ID")
	}
	frames, err := EncodeFrames(run.Frames)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO runs
		 (id, game_id, seed, start_level, config_digest, frames, ticks, score, highest_level, games, final_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			frames = excluded.frames,
			ticks = excluded.ticks,
			score = excluded.score,
			highest_level = excluded.highest_level,
			games = excluded.games,
			final_hash = excluded.final_hash`,
		run.ID,
		run.GameID,
		run.Seed,
		run.StartLevel,
		run.ConfigDigest,
		frames,
		run.Ticks,
		run.Score,
		run.HighestLevel,
		run.Games,
		strconv.FormatUint(run.Hash, 16),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(sc rowScanner, withFrames bool) (Run, error) {
	var r Run
	var frames []byte
	var hash string
	var createdAt any

	dest := []any{
		&r.ID, &r.GameID, &r.Seed, &r.StartLevel, &r.ConfigDigest,
		&r.Ticks, &r.Score, &r.HighestLevel, &r.Games, &hash, &createdAt,
	}
	if withFrames {
		dest = append(dest, &frames)
	}
	if err := sc.Scan(dest...); err != nil {
		return Run{}, err
	}

	h, err := strconv.ParseUint(hash, 16, 64)
	if err != nil {
		return Run{}, fmt.Errorf("storage: bad hash %q for run %s: %w", hash, r.ID, err)
	}
	r.Hash = h
	r.CreatedAt = parseTime(createdAt)

	if withFrames {
		if r.Frames, err = DecodeFrames(frames); err != nil {
			return Run{}, err
		}
	}
	return r, nil
}

const runColumns = `id, game_id, seed, start_level, config_digest,
		        ticks, score, highest_level, games, final_hash, created_at`

// Run loads a run with its recorded frames.
func (s *Store) Run(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+`, frames FROM runs WHERE id = ?`, id)
	r, err := scanRun(row, true)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot load run: %w", err)
	}
	return r, nil
}

// RecentRuns lists the newest runs of a game without their frames.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows, false)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run. Deleting an unknown ID is not an error.
func (s *Store) DeleteRun(id string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}
