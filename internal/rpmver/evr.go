// Package rpmver implements RPM's epoch-version-release arithmetic: parsing
// EVR strings and comparing them by the segmented digit/alpha algorithm RPM
// itself uses, tilde-before-everything rule included.
package rpmver

import (
	"strconv"
	"strings"
)

// legalRune reports whether r is allowed in an EVR version or release
// component: [0-9A-Za-z._+%{}~].
func legalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	}
	switch r {
	case '.', '_', '+', '%', '{', '}', '~':
		return true
	}
	return false
}

func firstIllegal(s string) (rune, bool) {
	for _, r := range s {
		if !legalRune(r) {
			return r, true
		}
	}
	return 0, false
}

// EVR is an epoch-version-release triple. The zero value is not meaningful;
// construct one with Parse.
type EVR struct {
	Epoch   uint32
	HasE    bool // whether an explicit epoch was present on parse
	Version string
	Release string
}

// EpochOrZero returns the epoch, treating an absent epoch as 0.
func (e EVR) EpochOrZero() uint32 {
	return e.Epoch
}

// Parse parses "[E:]V[-R]" into an EVR per spec: the epoch, if present, must
// be an unsigned 32-bit integer; the version must be non-empty and must not
// begin with '-'; if a '-' appears, everything after the first one is the
// release, and the release must be non-empty; version and release may only
// hold the legal EVR alphabet.
func Parse(s string) (EVR, error) {
	rest := s
	hasEpoch := false
	var epoch uint32

	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		epochStr := s[:idx]
		n, err := strconv.ParseUint(epochStr, 10, 32)
		if err != nil {
			return EVR{}, newParseError(BadEpoch, s, "epoch must be an unsigned 32-bit integer")
		}
		epoch = uint32(n)
		hasEpoch = true
		rest = s[idx+1:]
	}

	if rest == "" || rest[0] == '-' {
		return EVR{}, newParseError(MissingVersion, s, "version must be non-empty and not start with '-'")
	}

	var version, release string
	if dash := strings.IndexByte(rest, '-'); dash >= 0 {
		version = rest[:dash]
		release = rest[dash+1:]
		if release == "" {
			return EVR{}, newParseError(MissingRelease, s, "release present but empty")
		}
	} else {
		version = rest
		release = ""
	}

	if r, bad := firstIllegal(version); bad {
		return EVR{}, newParseError(IllegalCharacter, s, "illegal character "+strconv.QuoteRune(r)+" in version")
	}
	if r, bad := firstIllegal(release); bad {
		return EVR{}, newParseError(IllegalCharacter, s, "illegal character "+strconv.QuoteRune(r)+" in release")
	}

	return EVR{Epoch: epoch, HasE: hasEpoch, Version: version, Release: release}, nil
}

// String renders the EVR back to "[E:]V[-R]" form. Printing an EVR parsed
// with an explicit epoch of 0 round-trips to "0:V-R"; an EVR parsed without
// an epoch prints as "V-R", per spec.md's 0:V-R <-> V-R normalization note.
func (e EVR) String() string {
	var b strings.Builder
	if e.HasE {
		b.WriteString(strconv.FormatUint(uint64(e.Epoch), 10))
		b.WriteByte(':')
	}
	b.WriteString(e.Version)
	if e.Release != "" {
		b.WriteByte('-')
		b.WriteString(e.Release)
	}
	return b.String()
}

// Ordering is the result of comparing two values: Less, Equal, or Greater.
type Ordering int

const (
	Less Ordering = -1
	Equal Ordering = 0
	Greater Ordering = 1
)

// Compare implements spec.md's EVR.cmp: epoch first, then version, then
// release, each via vercmp.
func Compare(a, b EVR) Ordering {
	if a.Epoch != b.Epoch {
		if a.Epoch < b.Epoch {
			return Less
		}
		return Greater
	}
	if c := Vercmp(a.Version, b.Version); c != Equal {
		return c
	}
	return Vercmp(a.Release, b.Release)
}
