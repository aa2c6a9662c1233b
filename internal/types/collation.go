package types

import (
	"fmt"
	"strings"
)

// Collation identifies the ordering rules applied to character data.
// CollationInvalid doubles as "unspecified" on contexts and values.
type Collation uint8

const (
	CollationInvalid Collation = iota
	CollationBinary
	CollationUTF8MB4GeneralCI
	CollationUTF8MB4Bin
	CollationUTF8MB4UnicodeCI
	CollationUTF16GeneralCI
	CollationUTF16Bin
	CollationGBKChineseCI
	CollationGBKBin

	collationMax
)

var collationNames = [collationMax]string{
	CollationInvalid:          "invalid",
	CollationBinary:           "binary",
	CollationUTF8MB4GeneralCI: "utf8mb4_general_ci",
	CollationUTF8MB4Bin:       "utf8mb4_bin",
	CollationUTF8MB4UnicodeCI: "utf8mb4_unicode_ci",
	CollationUTF16GeneralCI:   "utf16_general_ci",
	CollationUTF16Bin:         "utf16_bin",
	CollationGBKChineseCI:     "gbk_chinese_ci",
	CollationGBKBin:           "gbk_bin",
}

// IsValid reports whether c names a usable collation.
func (c Collation) IsValid() bool {
	return c > CollationInvalid && c < collationMax
}

// IsBinary reports whether c orders by raw code units: the binary
// collation itself or any *_bin collation.
func (c Collation) IsBinary() bool {
	switch c {
	case CollationBinary, CollationUTF8MB4Bin, CollationUTF16Bin, CollationGBKBin:
		return true
	}
	return false
}

// IsCaseInsensitive reports whether c folds case.
func (c Collation) IsCaseInsensitive() bool {
	return c.IsValid() && !c.IsBinary()
}

// Name returns the collation name.
func (c Collation) Name() string {
	if c >= collationMax {
		return fmt.Sprintf("collation(%d)", uint8(c))
	}
	return collationNames[c]
}

func (c Collation) String() string {
	return c.Name()
}

// ParseCollation resolves a collation name. The empty string yields
// CollationInvalid without error, meaning "unspecified".
func ParseCollation(name string) (Collation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return CollationInvalid, nil
	}
	for c := CollationBinary; c < collationMax; c++ {
		if collationNames[c] == name {
			return c, nil
		}
	}
	return CollationInvalid, fmt.Errorf("unknown collation %q", name)
}
