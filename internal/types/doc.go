// Package types provides the value taxonomy consumed by the comparison engine.
//
// This package contains type definitions only. Every other internal package
// that touches column values imports types; types imports only the leaf
// collaborator packages (decimal, lob, rowid). JSON values carry their encoded
// document and are decoded by the comparator. No comparison logic lives here.
//
// Key design constraints:
//   - ObjType is the concrete storage tag; TypeClass is the dispatch coordinate
//   - ClassOf is total and fixed: every valid ObjType has exactly one class
//   - Value is immutable and built only through constructors
//   - The zero Value is SQL NULL
package types
