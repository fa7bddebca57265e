package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fleetbill-dev/fleetbill/internal/config"
	"github.com/fleetbill-dev/fleetbill/internal/fleet"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new fleetbill project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	// Create directory structure.
	dirs := []string{
		"fleet",
		"import",
		filepath.Join("import", "processed"),
		"reports",
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write fleetbill.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "fleetbill.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty fleet registry (header only).
	svc := fleet.NewService(nil)
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing fleet registry: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized fleetbill project for %s in %s\n", name, dir)
	return nil
}
