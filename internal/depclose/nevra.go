// Package depclose implements the worklist-driven transitive dependency
// closure over a read-only package catalog: starting from a set of
// requested names, it discovers provider groups, records Requires,
// Provides, and Obsoletes facts, and follows newly discovered requirement
// strings until the work drains.
package depclose

import (
	"fmt"
	"strconv"

	"github.com/open-edge-platform/pkgcloser/internal/rpmver"
)

// NEVRA identifies a concrete build: name, epoch, version, release, arch.
type NEVRA struct {
	Name    string
	Epoch   uint32
	HasE    bool
	Version string
	Release string
	Arch    string
}

// String renders "name-[epoch:]version-release.arch", epoch omitted when
// absent or zero.
func (n NEVRA) String() string {
	if n.HasE && n.Epoch != 0 {
		return fmt.Sprintf("%s-%d:%s-%s.%s", n.Name, n.Epoch, n.Version, n.Release, n.Arch)
	}
	return fmt.Sprintf("%s-%s-%s.%s", n.Name, n.Version, n.Release, n.Arch)
}

// evr reconstructs the EVR this NEVRA carries, for ordering purposes.
func (n NEVRA) evr() rpmver.EVR {
	return rpmver.EVR{Epoch: n.Epoch, HasE: n.HasE, Version: n.Version, Release: n.Release}
}

// Compare orders NEVRAs by (name, epoch_or_zero, EVR-compare of
// version/release, arch), per the PropositionModel's NEVRA ordering rule.
func Compare(a, b NEVRA) rpmver.Ordering {
	if a.Name != b.Name {
		if a.Name < b.Name {
			return rpmver.Less
		}
		return rpmver.Greater
	}
	if a.Epoch != b.Epoch {
		if a.Epoch < b.Epoch {
			return rpmver.Less
		}
		return rpmver.Greater
	}
	if c := rpmver.Compare(a.evr(), b.evr()); c != rpmver.Equal {
		return c
	}
	if a.Arch != b.Arch {
		if a.Arch < b.Arch {
			return rpmver.Less
		}
		return rpmver.Greater
	}
	return rpmver.Equal
}

func nevraKey(n NEVRA) string {
	return n.Name + "\x00" + strconv.FormatUint(uint64(n.Epoch), 10) + "\x00" + n.Version + "\x00" + n.Release + "\x00" + n.Arch
}
