package depclose

import (
	"sort"
	"strings"

	"github.com/open-edge-platform/pkgcloser/internal/utils/logger"
)

// ProviderMap maps a provided-thing string to the ordered set of NEVRAs
// observed to provide it. The key is the provider's own version expression
// when it declared one (e.g. "libfoo = 1.0-1"), otherwise the requirement
// string that was looked up (e.g. "libfoo" or "/usr/bin/ls").
type ProviderMap map[string][]NEVRA

// Close computes the transitive dependency closure of requested names over
// gw: starting from requested, it discovers provider groups, records
// Provides/Requires/Obsoletes facts, and follows newly discovered
// requirement strings until the worklist drains.
//
// The returned propositions are deduplicated and sorted per
// PropositionModel's ordering guarantee, so the result is independent of
// traversal order and of the order names were requested in.
func Close(gw CatalogGateway, requested []string) ([]Proposition, ProviderMap, error) {
	return CloseWithRunID(gw, requested, "")
}

// CloseWithRunID behaves exactly like Close, but stamps runID onto every
// "catalog lookup failed, skipping" log line so log lines from concurrent
// closure runs (e.g. several cmd/closer invocations sharing a log sink) can
// be told apart. An empty runID is omitted from the log fields.
func CloseWithRunID(gw CatalogGateway, requested []string, runID string) ([]Proposition, ProviderMap, error) {
	seen := make(map[string]bool)
	propSet := make(map[string]Proposition)
	providers := make(ProviderMap)

	work := make([]string, len(requested))
	copy(work, requested)

	log := logger.Logger()
	if runID != "" {
		log = log.With("run_id", runID)
	}

	for len(work) > 0 {
		head := work[len(work)-1]
		work = work[:len(work)-1]

		if seen[head] {
			continue
		}
		seen[head] = true

		refs, err := gw.ProvidersOfName(head)
		if err != nil {
			log.Warnw("catalog lookup failed, skipping", "op", "providers_of_name", "thing", head, "error", err)
			refs = nil
		}

		groupIDs := make([]int64, 0, len(refs))
		for _, r := range refs {
			groupIDs = append(groupIDs, r.GroupID)
		}

		if strings.HasPrefix(head, "/") {
			fileGroupIDs, err := gw.GroupsContainingFile(head)
			if err != nil {
				log.Warnw("catalog lookup failed, skipping", "op", "groups_containing_file", "path", head, "error", err)
				fileGroupIDs = nil
			}
			for _, gid := range fileGroupIDs {
				refs = append(refs, ProviderRef{GroupID: gid})
				groupIDs = append(groupIDs, gid)
			}
		}

		for _, r := range refs {
			nevra, ok, err := gw.NEVRAOfGroup(r.GroupID)
			if err != nil {
				log.Warnw("catalog lookup failed, skipping", "op", "nevra_of_group", "group_id", r.GroupID, "error", err)
				continue
			}
			if !ok {
				log.Warnw("group missing required NEVRA attributes, skipping", "group_id", r.GroupID)
				continue
			}

			thing := head
			if r.HasExpr {
				thing = r.Expr
			}
			known := false
			for _, have := range providers[thing] {
				if have == nevra {
					known = true
					break
				}
			}
			if !known {
				providers[thing] = append(providers[thing], nevra)
			}
			addProp(propSet, Provides(nevra, thing))
		}

		for _, gid := range groupIDs {
			// A group's own NEVRA lookup failing only means we cannot label
			// its Requires propositions with a NEVRA; it does not mean the
			// group's Requires/Obsoletes facts themselves are unreachable,
			// so those are still looked up and still drive the worklist.
			nevra, ok, err := gw.NEVRAOfGroup(gid)
			if err != nil {
				log.Warnw("catalog lookup failed, requires of this group will be walked without a NEVRA label", "op", "nevra_of_group", "group_id", gid, "error", err)
			} else if !ok {
				log.Warnw("group missing required NEVRA attributes, requires of this group will be walked without a NEVRA label", "group_id", gid)
			}
			hasNEVRA := err == nil && ok

			reqExprs, err := gw.RequirementsOfGroup(gid)
			if err != nil {
				log.Warnw("catalog lookup failed, skipping", "op", "requirements_of_group", "group_id", gid, "error", err)
				reqExprs = nil
			}
			for _, reqExpr := range reqExprs {
				if hasNEVRA {
					addProp(propSet, Requires(nevra, reqExpr))
				}
				work = append(work, reqExpr)
			}

			obs, err := gw.ObsoletesOfGroup(gid)
			if err != nil {
				log.Warnw("catalog lookup failed, skipping", "op", "obsoletes_of_group", "group_id", gid, "error", err)
				obs = nil
			}
			for _, o := range obs {
				addProp(propSet, Obsoletes(o.Name, o.Expr))
				work = append(work, o.Name)
			}
		}
	}

	result := make([]Proposition, 0, len(propSet))
	for _, p := range propSet {
		result = append(result, p)
	}
	sortPropositions(result)

	for thing := range providers {
		sort.Slice(providers[thing], func(i, j int) bool {
			return Compare(providers[thing][i], providers[thing][j]) < 0
		})
	}

	return result, providers, nil
}

func addProp(set map[string]Proposition, p Proposition) {
	set[p.dedupeKey()] = p
}
