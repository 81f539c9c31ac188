package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/clonelens/clonelens/internal/clone"
	"github.com/clonelens/clonelens/internal/loader"
	"github.com/clonelens/clonelens/internal/report"
	"github.com/spf13/cobra"
)

var (
	scanPretty  bool
	scanJSONOut string
)

var scanCmd = &cobra.Command{
	Use:   "scan <abi-paths...>",
	Short: "Load ABIs and print each contract's fingerprint and selectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		files := loader.ExpandPaths(args)
		if len(files) == 0 {
			return errors.New("No ABI files found.")
		}

		ifaces, err := loader.LoadFiles(files)
		if err != nil {
			return err
		}

		ctx := context.Background()
		pool := clone.NewWorkerPool(ctx, 0)
		defer pool.Close()

		profiles, err := clone.BuildProfiles(ctx, pool, ifaces)
		if err != nil {
			return err
		}

		if scanPretty {
			report.PrintProfiles(profiles)
		}

		if scanJSONOut != "" {
			if err := report.WriteProfilesJSON(scanJSONOut, profiles); err != nil {
				return err
			}
			fmt.Printf("Wrote JSON: %s\n", scanJSONOut)
		}

		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanPretty, "pretty", false, "Human-readable summary for each ABI")
	scanCmd.Flags().StringVar(&scanJSONOut, "json", "", "Write JSON of per-contract fingerprints")
}
