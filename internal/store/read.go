package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ListRuns returns every recorded run, oldest first.
// Returns an empty slice (not nil) when nothing is recorded.
func (s *Store) ListRuns(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, scenario, profile, pass, case_count, failures
		FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunRecord{}
	for rows.Next() {
		var r RunRecord
		var pass int
		if err := rows.Scan(&r.ID, &r.Seq, &r.Scenario, &r.Profile, &pass, &r.Cases, &r.Failures); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Pass = pass != 0
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns the run with the given ID. The bool is false when no such
// run exists.
func (s *Store) GetRun(ctx context.Context, id string) (RunRecord, bool, error) {
	var r RunRecord
	var pass int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seq, scenario, profile, pass, case_count, failures
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Seq, &r.Scenario, &r.Profile, &pass, &r.Cases, &r.Failures)
	if err == sql.ErrNoRows {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, fmt.Errorf("get run: %w", err)
	}
	r.Pass = pass != 0
	return r, true, nil
}

// CasesForRun returns a run's cases in scenario order.
// With failedOnly set, passing cases are skipped.
func (s *Store) CasesForRun(ctx context.Context, runID string, failedOnly bool) ([]CaseRecord, error) {
	query := `
		SELECT run_id, seq, name, left_value, right_value, op, expect, outcome, pass
		FROM case_results
		WHERE run_id = ?`
	if failedOnly {
		query += ` AND pass = 0`
	}
	query += `
		ORDER BY seq ASC, id COLLATE BINARY ASC`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()

	cases := []CaseRecord{}
	for rows.Next() {
		var c CaseRecord
		var pass int
		if err := rows.Scan(&c.RunID, &c.Seq, &c.Name, &c.Left, &c.Right, &c.Op, &c.Expect, &c.Outcome, &pass); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		c.Pass = pass != 0
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return cases, nil
}
