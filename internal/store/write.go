package store

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// RunRecord is one recorded scenario run.
type RunRecord struct {
	ID       string `json:"id"`
	Seq      int64  `json:"seq"`
	Scenario string `json:"scenario"`
	Profile  string `json:"profile"`
	Pass     bool   `json:"pass"`
	Cases    int    `json:"cases"`
	Failures int    `json:"failures"`
}

// CaseRecord is one evaluated case of a run. Seq is the case's position in
// the run, starting at 1.
type CaseRecord struct {
	RunID   string `json:"run_id"`
	Seq     int64  `json:"seq"`
	Name    string `json:"name"`
	Left    string `json:"left"`
	Right   string `json:"right"`
	Op      string `json:"op"`
	Expect  string `json:"expect"`
	Outcome string `json:"outcome"`
	Pass    bool   `json:"pass"`
}

// CaseID derives the stable ID of the case at seq within run runID.
// A run ID that is not a UUID is hashed as text.
func CaseID(runID string, seq int64) string {
	ns, err := uuid.Parse(runID)
	if err != nil {
		ns = uuid.NewSHA1(uuid.NameSpaceOID, []byte(runID))
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(seq))
	return uuid.NewSHA1(ns, b[:]).String()
}

// RecordRun inserts a run and assigns its seq, which is returned.
// Uses ON CONFLICT(id) DO NOTHING for idempotency: recording an existing run
// returns the seq it already has.
func (s *Store) RecordRun(ctx context.Context, run RunRecord) (int64, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, seq, scenario, profile, pass, case_count, failures)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?
		FROM runs
		WHERE true
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Scenario,
		run.Profile,
		boolToInt(run.Pass),
		run.Cases,
		run.Failures,
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}

	var seq int64
	if err := s.db.QueryRowContext(ctx, `SELECT seq FROM runs WHERE id = ?`, run.ID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("record run: read seq: %w", err)
	}
	return seq, nil
}

// RecordCase inserts one case result. The run must already be recorded
// (foreign key constraint). Duplicate (run, seq) pairs are silently ignored.
func (s *Store) RecordCase(ctx context.Context, c CaseRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO case_results
		(id, run_id, seq, name, left_value, right_value, op, expect, outcome, pass)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		CaseID(c.RunID, c.Seq),
		c.RunID,
		c.Seq,
		c.Name,
		c.Left,
		c.Right,
		c.Op,
		c.Expect,
		c.Outcome,
		boolToInt(c.Pass),
	)
	if err != nil {
		return fmt.Errorf("record case: %w", err)
	}
	return nil
}

// RecordCases inserts a run's cases in one transaction.
func (s *Store) RecordCases(ctx context.Context, cases []CaseRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record cases: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO case_results
		(id, run_id, seq, name, left_value, right_value, op, expect, outcome, pass)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("record cases: prepare: %w", err)
	}
	defer stmt.Close()

	for _, c := range cases {
		if _, err := stmt.ExecContext(ctx,
			CaseID(c.RunID, c.Seq), c.RunID, c.Seq, c.Name, c.Left, c.Right,
			c.Op, c.Expect, c.Outcome, boolToInt(c.Pass),
		); err != nil {
			return fmt.Errorf("record cases: case %d: %w", c.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record cases: commit: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
