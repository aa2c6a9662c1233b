// Package config loads comparison profiles.
//
// A profile is a small CUE document validated against the embedded #Profile
// schema (profile.cue). Defaults come from the schema's default markers, so
// an empty document is a valid profile. The same schema validates profiles
// embedded in YAML scenarios through FromSpec.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"github.com/cockroachdb/errors"

	"github.com/roach88/objcmp/internal/compare"
	"github.com/roach88/objcmp/internal/types"
)

//go:embed profile.cue
var schemaSource string

// Spec is the raw profile as written by the user, before defaults.
// Empty fields take the schema default.
type Spec struct {
	Mode      string `json:"mode,omitempty" yaml:"mode"`
	Collation string `json:"collation,omitempty" yaml:"collation"`
	NullOrder string `json:"null_order,omitempty" yaml:"null_order"`
	NullSafe  *bool  `json:"null_safe,omitempty" yaml:"null_safe"`
	TZOffset  string `json:"tz_offset,omitempty" yaml:"tz_offset"`
}

// Profile is a validated profile with every field resolved.
type Profile struct {
	Mode      compare.CompatMode
	Collation types.Collation
	NullPos   compare.NullPos
	NullSafe  bool

	// TZOffset is in microseconds, or compare.InvalidTZOffset when unset.
	TZOffset int64
}

// ProfileError reports an invalid profile, with the CUE position when known.
type ProfileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *ProfileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default returns the profile an empty document produces for mode.
func Default(mode compare.CompatMode) Profile {
	return Profile{
		Mode:     mode,
		NullPos:  mode.DefaultNullPos(),
		NullSafe: true,
		TZOffset: compare.InvalidTZOffset,
	}
}

// LoadProfile reads and validates a profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrap(err, "failed to read profile")
	}
	return ParseProfile(data, path)
}

// ParseProfile validates src against #Profile. filename is used only in
// error positions.
func ParseProfile(src []byte, filename string) (Profile, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return Profile{}, formatCUEError(err)
	}
	return resolve(ctx, v)
}

// FromSpec validates a profile that arrived through another format, such as
// the profile block of a YAML scenario.
func FromSpec(spec Spec) (Profile, error) {
	ctx := cuecontext.New()
	v := ctx.Encode(spec)
	if err := v.Err(); err != nil {
		return Profile{}, formatCUEError(err)
	}
	return resolve(ctx, v)
}

func resolve(ctx *cue.Context, v cue.Value) (Profile, error) {
	schema := ctx.CompileString(schemaSource, cue.Filename("profile.cue"))
	if err := schema.Err(); err != nil {
		return Profile{}, errors.Wrap(err, "profile schema does not compile")
	}

	unified := schema.LookupPath(cue.ParsePath("#Profile")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Profile{}, formatCUEError(err)
	}

	var spec Spec
	if err := unified.Decode(&spec); err != nil {
		return Profile{}, formatCUEError(err)
	}
	return spec.profile()
}

// profile converts a defaulted spec. The schema has already restricted every
// enumerated field, so parse errors here mean the schema and the parsers
// disagree.
func (s Spec) profile() (Profile, error) {
	mode, err := compare.ParseCompatMode(s.Mode)
	if err != nil {
		return Profile{}, &ProfileError{Field: "mode", Message: err.Error()}
	}
	p := Default(mode)

	if p.Collation, err = types.ParseCollation(s.Collation); err != nil {
		return Profile{}, &ProfileError{Field: "collation", Message: err.Error()}
	}
	if s.NullOrder != "" {
		if p.NullPos, err = compare.ParseNullPos(s.NullOrder); err != nil {
			return Profile{}, &ProfileError{Field: "null_order", Message: err.Error()}
		}
	}
	if s.NullSafe != nil {
		p.NullSafe = *s.NullSafe
	}
	if s.TZOffset != "" {
		d, err := time.ParseDuration(s.TZOffset)
		if err != nil {
			return Profile{}, &ProfileError{Field: "tz_offset", Message: err.Error()}
		}
		p.TZOffset = d.Microseconds()
	}
	return p, nil
}

// Context builds the comparison context the profile describes.
func (p Profile) Context() compare.Context {
	return compare.NewContext(p.Collation, p.TZOffset, p.NullPos, p.NullSafe, p.Mode)
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	pe := &ProfileError{Field: "profile", Message: first.Error()}
	if path := first.Path(); len(path) > 0 {
		pe.Field = path[len(path)-1]
	}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		pe.Pos = positions[0]
	}
	return pe
}
