// Package compare implements the typed comparison engine.
//
// Given two dynamically typed values it decides whether they are equal, less
// or greater, honoring collation, null ordering, timezone offset and type
// promotion rules.
//
// ARCHITECTURE:
//
// Dispatch Tables:
// Both tables are dense arrays indexed by (left TypeClass, right TypeClass),
// built once in init() and never mutated afterwards. A nil operator-table
// entry is the "unsupported" marker: the caller must insert a cast.
//
//	opTable        [ClassMax][ClassMax]*pairFuncs   three-way + predicate
//	nullSafeTable  [ClassMax][ClassMax]NullSafeFunc (a, b, collation, nullpos)
//
// Pairwise Comparators:
// Each supported pair is written once in one direction (cmp_*.go). The
// reverse direction is derived with mirrorThreeWay / mirrorPredicate, which
// swap operands and mirror the result or the operator.
//
// Comparison Facade (facade.go):
//   - CanCompare is a pure lookup
//   - ComparePredicate and CompareThreeWay return typed errors
//   - CompareNullSafe panics with *InvariantViolation on failure
//   - CompareAndMaterialize reports needCast instead of failing
//
// CRITICAL PATTERNS:
//
// Result Sentinels:
// Null is normal control flow (SQL NULL propagation). Incomparable never
// leaves the package as a Result: the facade converts it to an error.
//
// Concurrency:
// No engine call blocks or mutates shared state. The only pooled resource is
// the collator pool inside internal/collation.
package compare
