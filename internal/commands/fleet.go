package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fleetbill-dev/fleetbill/internal/fleet"
	"github.com/fleetbill-dev/fleetbill/internal/model"
)

func newFleetCommand() *cobra.Command {
	fleetCmd := &cobra.Command{
		Use:   "fleet",
		Short: "Vehicle registry operations",
	}
	fleetCmd.AddCommand(newFleetListCommand())
	fleetCmd.AddCommand(newFleetAddCommand())
	return fleetCmd
}

func newFleetListCommand() *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered vehicles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc, err := fleet.Load(absDir)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tVIN\tPLATE\tPAPER\tMAKE\tMODEL\tYEAR")
			for _, v := range svc.All() {
				year := ""
				if v.Year != 0 {
					year = fmt.Sprint(v.Year)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					v.Name, v.VIN, v.Plate, v.PaperPlate, v.Make, v.Model, year)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	return cmd
}

func newFleetAddCommand() *cobra.Command {
	var projectDir string
	var v model.VehicleDetail

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a vehicle to the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc, err := fleet.Load(absDir)
			if err != nil {
				return err
			}
			if err := svc.Add(v); err != nil {
				return err
			}
			if err := svc.Save(absDir); err != nil {
				return err
			}

			fmt.Printf("Added %s (%s)\n", v.Name, v.VIN)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&v.Name, "name", "", "canonical vehicle name (required)")
	cmd.Flags().StringVar(&v.VIN, "vin", "", "VIN (required)")
	cmd.Flags().StringVar(&v.Plate, "plate", "", "primary license plate")
	cmd.Flags().StringVar(&v.PaperPlate, "paper-plate", "", "temporary/paper plate")
	cmd.Flags().StringVar(&v.Make, "make", "", "vehicle make")
	cmd.Flags().StringVar(&v.Model, "model", "", "vehicle model")
	cmd.Flags().IntVar(&v.Year, "year", 0, "model year")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("vin")

	return cmd
}
