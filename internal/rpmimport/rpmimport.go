// Package rpmimport reads real .rpm headers and converts their NEVRA,
// Provides, Requires, and Obsoletes tags into the core's value types. It
// exists to seed realistic catalog fixtures (memcat or sqlite) from actual
// packages rather than hand-typed test data; it is not part of the
// production lookup path, which only ever reads a pre-built catalog through
// a CatalogGateway.
package rpmimport

import (
	"fmt"
	"io"

	rpm "github.com/sassoftware/go-rpmutils"

	"github.com/open-edge-platform/pkgcloser/internal/depclose"
	"github.com/open-edge-platform/pkgcloser/internal/rpmreq"
)

// Sense flags as stored in RPM header dependency tags. A dependency tag's
// flags value is a bitmask; only the three comparison bits that select an
// operator are mirrored below. An entry with no version, or with none of
// these bits set, is rendered as a bare name.
const (
	senseLess    = 1 << 1
	senseGreater = 1 << 2
	senseEqual   = 1 << 3
)

// Package is the result of importing one .rpm's header: its identity plus
// its three dependency-bucket strings, each already in the "name op evr"
// form rpmreq.Parse accepts.
type Package struct {
	NEVRA     depclose.NEVRA
	Provides  []string
	Requires  []string
	Obsoletes []string
	Files     []string
}

// Read parses the RPM header from r and extracts everything a catalog
// importer needs to populate one group's row and its dependency edges.
func Read(r io.Reader) (Package, error) {
	hdr, err := rpm.ReadHeader(r)
	if err != nil {
		return Package{}, fmt.Errorf("reading rpm header: %w", err)
	}

	nevra, err := headerNEVRA(hdr)
	if err != nil {
		return Package{}, fmt.Errorf("extracting NEVRA: %w", err)
	}

	provides, err := headerDeps(hdr, rpm.PROVIDENAME, rpm.PROVIDEVERSION, rpm.PROVIDEFLAGS)
	if err != nil {
		return Package{}, fmt.Errorf("extracting provides: %w", err)
	}
	requires, err := headerDeps(hdr, rpm.REQUIRENAME, rpm.REQUIREVERSION, rpm.REQUIREFLAGS)
	if err != nil {
		return Package{}, fmt.Errorf("extracting requires: %w", err)
	}
	obsoletes, err := headerDeps(hdr, rpm.OBSOLETENAME, rpm.OBSOLETEVERSION, rpm.OBSOLETEFLAGS)
	if err != nil {
		return Package{}, fmt.Errorf("extracting obsoletes: %w", err)
	}

	files, err := hdr.GetStrings(rpm.FILENAMES)
	if err != nil {
		// Headers built without a file list (e.g. source RPMs) are routine.
		files = nil
	}

	return Package{
		NEVRA:     nevra,
		Provides:  provides,
		Requires:  requires,
		Obsoletes: obsoletes,
		Files:     files,
	}, nil
}

func headerNEVRA(hdr *rpm.RpmHeader) (depclose.NEVRA, error) {
	n, err := hdr.GetNEVRA()
	if err != nil {
		return depclose.NEVRA{}, err
	}
	epoch, hasEpoch := uint32(0), n.Epoch != "" && n.Epoch != "0"
	if hasEpoch {
		var parsed int
		if _, err := fmt.Sscanf(n.Epoch, "%d", &parsed); err != nil {
			return depclose.NEVRA{}, fmt.Errorf("parsing epoch %q: %w", n.Epoch, err)
		}
		epoch = uint32(parsed)
	}
	return depclose.NEVRA{
		Name:    n.Name,
		Epoch:   epoch,
		HasE:    hasEpoch,
		Version: n.Version,
		Release: n.Release,
		Arch:    n.Arch,
	}, nil
}

// headerDeps renders one dependency tag triple (names, versions, flags) into
// "name", "name op evr" strings ready for rpmreq.Parse.
func headerDeps(hdr *rpm.RpmHeader, nameTag, verTag, flagTag int) ([]string, error) {
	names, err := hdr.GetStrings(nameTag)
	if err != nil {
		return nil, nil // tag absent: this package has none of this kind
	}
	vers, _ := hdr.GetStrings(verTag)
	flags, _ := hdr.GetInt32s(flagTag)

	out := make([]string, 0, len(names))
	for i, name := range names {
		if isRpmlib(name) {
			continue
		}
		var ver string
		if i < len(vers) {
			ver = vers[i]
		}
		var flag int32
		if i < len(flags) {
			flag = flags[i]
		}
		out = append(out, renderDep(name, ver, flag))
	}
	return out, nil
}

func renderDep(name, ver string, flag int32) string {
	if ver == "" {
		return name
	}
	op := ""
	switch {
	case flag&senseLess != 0 && flag&senseEqual != 0:
		op = rpmreq.LE.String()
	case flag&senseGreater != 0 && flag&senseEqual != 0:
		op = rpmreq.GE.String()
	case flag&senseLess != 0:
		op = rpmreq.LT.String()
	case flag&senseGreater != 0:
		op = rpmreq.GT.String()
	case flag&senseEqual != 0:
		op = rpmreq.EQ.String()
	default:
		return name
	}
	return fmt.Sprintf("%s %s %s", name, op, ver)
}

// isRpmlib reports whether name is an rpmlib(...) pseudo-dependency, which
// describes a packaging-format feature rather than a real capability and is
// excluded from the dependency graph per the closure's scope.
func isRpmlib(name string) bool {
	return len(name) >= 7 && name[:7] == "rpmlib("
}
