package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-edge-platform/pkgcloser/internal/rpmimport"
	"github.com/open-edge-platform/pkgcloser/internal/utils/security"
)

// createImportCommand creates the import helper subcommand. It prints an
// RPM's NEVRA and dependency facts so they can be hand-assembled into a
// memcat or sqlite fixture; it does not write to a catalog itself, since
// defining and loading the catalog schema is out of scope for this tool.
func createImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <rpm-file>",
		Short: "Print the NEVRA and dependency facts extracted from an RPM header",
		Args:  cobra.ExactArgs(1),
		RunE:  executeImport,
	}
	return cmd
}

func executeImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := security.SafeOpenFile(path, os.O_RDONLY, 0, security.RejectSymlinks)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	pkg, err := rpmimport.Read(f)
	if err != nil {
		return fmt.Errorf("reading rpm header from %s: %w", path, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(pkg)
}
