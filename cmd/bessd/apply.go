package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openbess/bessd/pkg/client"
)

var (
	applyFile string
	applyAddr string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a pipeline manifest to a running daemon",
	Long: `Apply reads a YAML pipeline manifest and replays it against the
control API in dependency order: workers, traffic classes, ports,
modules, then connections. Workers stay paused for the whole batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(applyFile)
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		manifest, err := client.ParseManifest(data)
		if err != nil {
			return err
		}

		c, err := client.Dial(applyAddr)
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := c.Apply(ctx, manifest); err != nil {
			return fmt.Errorf("apply failed: %w", err)
		}

		fmt.Printf("Applied %s: %d workers, %d tcs, %d ports, %d modules, %d connections\n",
			applyFile, len(manifest.Workers), len(manifest.Tcs),
			len(manifest.Ports), len(manifest.Modules), len(manifest.Connections))
		return nil
	},
}
