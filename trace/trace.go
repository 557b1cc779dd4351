// Package trace records worm execution ticks into a SQLite database for
// post-hoc inspection of a run's control flow.
package trace

import (
	"database/sql"
	"fmt"

	"github.com/tliron/commonlog"
	_ "modernc.org/sqlite"

	"github.com/chazu/sandworm/vm"
)

var log = commonlog.GetLogger("worm.trace")

const schema = `
CREATE TABLE IF NOT EXISTS ticks (
	step        INTEGER PRIMARY KEY,
	cmd         INTEGER NOT NULL,
	head_x      INTEGER NOT NULL,
	head_y      INTEGER NOT NULL,
	direction   TEXT    NOT NULL,
	body_len    INTEGER NOT NULL,
	stack_depth INTEGER NOT NULL
);
`

// Recorder writes one row per committed tick. It implements the engine's
// tick observer contract via Record.
type Recorder struct {
	db     *sql.DB
	insert *sql.Stmt
}

// Open creates or opens a trace database at path and ensures the schema
// exists.
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open trace db %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init trace schema: %w", err)
	}
	insert, err := db.Prepare(
		"INSERT INTO ticks (step, cmd, head_x, head_y, direction, body_len, stack_depth) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare trace insert: %w", err)
	}

	log.Infof("recording trace to %s", path)
	return &Recorder{db: db, insert: insert}, nil
}

// Record stores one tick event.
func (r *Recorder) Record(ev vm.TickEvent) error {
	_, err := r.insert.Exec(
		ev.Step, ev.Cmd, ev.Head.X, ev.Head.Y, ev.Dir.String(), ev.BodyLen, ev.StackDepth)
	if err != nil {
		return fmt.Errorf("record tick %d: %w", ev.Step, err)
	}
	return nil
}

// Count returns the number of recorded ticks.
func (r *Recorder) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM ticks").Scan(&n); err != nil {
		return 0, fmt.Errorf("count ticks: %w", err)
	}
	return n, nil
}

// Last returns the most recent tick event, or false if none were
// recorded.
func (r *Recorder) Last() (vm.TickEvent, bool, error) {
	row := r.db.QueryRow(
		"SELECT step, cmd, head_x, head_y, direction, body_len, stack_depth FROM ticks ORDER BY step DESC LIMIT 1")

	var ev vm.TickEvent
	var dir string
	err := row.Scan(&ev.Step, &ev.Cmd, &ev.Head.X, &ev.Head.Y, &dir, &ev.BodyLen, &ev.StackDepth)
	if err == sql.ErrNoRows {
		return vm.TickEvent{}, false, nil
	}
	if err != nil {
		return vm.TickEvent{}, false, fmt.Errorf("load last tick: %w", err)
	}
	if ev.Dir, err = vm.ParseDirection(dir); err != nil {
		return vm.TickEvent{}, false, fmt.Errorf("load last tick: %w", err)
	}
	return ev, true, nil
}

// Close flushes and closes the database.
func (r *Recorder) Close() error {
	_ = r.insert.Close()
	return r.db.Close()
}
