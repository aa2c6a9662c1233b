// Package harness runs comparison scenarios against the comparison facade.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: numeric_promotion
//	description: "What this scenario validates"
//	profile:
//	  mode: mysql
//	  collation: utf8mb4_general_ci
//	  null_order: first
//	  null_safe: true
//	  tz_offset: 8h
//	cases:
//	  - name: negative int below max uint64
//	    left: "int:-1"
//	    right: "uint64:18446744073709551615"
//	    op: cmp
//	    expect: lt
//	    symmetric: true
//
// Every profile field is optional and validated by the CUE profile schema in
// internal/config. Unknown YAML fields are rejected.
//
// # Outcomes
//
//   - lt, eq, gt: three-way results (op cmp)
//   - true, false: predicate results
//   - null: SQL NULL outside null-safe mode
//   - incomparable: the comparator could not order the operands
//   - needs_cast: the pair has no direct comparator
//   - invariant: the null-safe path rejected the operands (nullsafe: true)
//
// # Deterministic Testing
//
// Each run gets a UUIDv7 run ID. Tests inject testutil.FixedRunIDs so that
// snapshots are byte-identical across runs and can be compared with golden
// files (testdata/golden/{name}.golden).
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/numeric.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.New().Run(ctx, scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
