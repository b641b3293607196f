package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/open-edge-platform/pkgcloser/internal/catalog/sqlite"
	"github.com/open-edge-platform/pkgcloser/internal/depclose"
	"github.com/open-edge-platform/pkgcloser/internal/utils/logger"
	"github.com/open-edge-platform/pkgcloser/internal/utils/security"
)

var outputFormat string

// jsonProposition mirrors Proposition's fields for --format json output;
// Proposition itself stays a plain value type with no JSON tags since its
// primary representation is String().
type jsonProposition struct {
	Kind  string `json:"kind"`
	Left  string `json:"left,omitempty"`
	NEVRA string `json:"nevra,omitempty"`
	Right string `json:"right"`
}

type jsonResult struct {
	RunID     string            `json:"run_id"`
	Obsoletes []jsonProposition `json:"obsoletes"`
	Provides  []jsonProposition `json:"provides"`
	Requires  []jsonProposition `json:"requires"`
}

func executeClose(cmd *cobra.Command, args []string) error {
	catalogPath := args[0]
	requested := args[1:]

	runID := uuid.New().String()
	log := logger.Logger().With("run_id", runID)

	if _, err := security.CheckSymlink(catalogPath, security.RejectSymlinks); err != nil {
		return fmt.Errorf("opening catalog %s: %w", catalogPath, err)
	}

	gw, err := sqlite.Open(catalogPath)
	if err != nil {
		return fmt.Errorf("opening catalog %s: %w", catalogPath, err)
	}
	defer func() {
		if cerr := gw.Close(); cerr != nil {
			log.Warnw("closing catalog failed", "error", cerr)
		}
	}()

	log.Infow("starting closure", "catalog", catalogPath, "requested", requested)

	props, _, err := depclose.CloseWithRunID(gw, requested, runID)
	if err != nil {
		return fmt.Errorf("computing closure: %w", err)
	}

	buckets := bucketize(props)

	switch outputFormat {
	case "json":
		return printJSON(runID, buckets)
	case "text", "":
		printText(buckets)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (supported: text, json)", outputFormat)
	}
}

type bucketed struct {
	Obsoletes []depclose.Proposition
	Provides  []depclose.Proposition
	Requires  []depclose.Proposition
}

// bucketize splits an already-sorted proposition list into its three kinds.
// Close guarantees Kind-major ordering (Obsoletes < Provides < Requires), so
// a single pass preserves each bucket's internal sort.
func bucketize(props []depclose.Proposition) bucketed {
	var b bucketed
	for _, p := range props {
		switch p.Kind {
		case depclose.ObsoletesKind:
			b.Obsoletes = append(b.Obsoletes, p)
		case depclose.ProvidesKind:
			b.Provides = append(b.Provides, p)
		case depclose.RequiresKind:
			b.Requires = append(b.Requires, p)
		}
	}
	return b
}

func printText(b bucketed) {
	for _, p := range b.Obsoletes {
		fmt.Println(p.String())
	}
	for _, p := range b.Provides {
		fmt.Println(p.String())
	}
	for _, p := range b.Requires {
		fmt.Println(p.String())
	}
}

func printJSON(runID string, b bucketed) error {
	result := jsonResult{
		RunID:     runID,
		Obsoletes: toJSONPropositions(b.Obsoletes),
		Provides:  toJSONPropositions(b.Provides),
		Requires:  toJSONPropositions(b.Requires),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func toJSONPropositions(props []depclose.Proposition) []jsonProposition {
	out := make([]jsonProposition, 0, len(props))
	for _, p := range props {
		jp := jsonProposition{Right: p.Right}
		switch p.Kind {
		case depclose.ObsoletesKind:
			jp.Kind = "obsoletes"
			jp.Left = p.Left
		case depclose.ProvidesKind:
			jp.Kind = "provides"
			jp.NEVRA = p.NEVRA.String()
		case depclose.RequiresKind:
			jp.Kind = "requires"
			jp.NEVRA = p.NEVRA.String()
		}
		out = append(out, jp)
	}
	return out
}
