// Package main implements the catalog-api command: the HTTP server for the
// media catalog, its schema migrations and operator utilities.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Configuration comes from CATALOG_*
// environment variables and an optional config.yaml.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog-api",
		Short:         "Media catalog API with token authentication",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newHashPasswordCmd(),
	)
	return root
}
