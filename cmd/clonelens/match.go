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
	matchTop     int
	matchPretty  bool
	matchJSONOut string
	matchCSVOut  string
	matchSVGOut  string
)

var matchCmd = &cobra.Command{
	Use:   "match <abi-paths...>",
	Short: "Compare all ABIs and rank near-clone pairs by combined score",
	RunE: func(cmd *cobra.Command, args []string) error {
		files := loader.ExpandPaths(args)
		if len(files) < 2 {
			return errors.New("Provide at least two ABI files or a glob that matches 2+ files.")
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

		pairs, err := clone.CompareAll(ctx, pool, profiles)
		if err != nil {
			return err
		}

		top := matchTop
		if top < 1 {
			top = 1
		}
		topPairs := clone.Top(pairs, top)

		if matchPretty {
			report.PrintPairs(topPairs)
		}

		if matchJSONOut != "" {
			if err := report.WritePairsJSON(matchJSONOut, topPairs); err != nil {
				return err
			}
			fmt.Printf("Wrote JSON pairs: %s\n", matchJSONOut)
		}

		if matchCSVOut != "" {
			if err := report.WritePairsCSV(matchCSVOut, topPairs); err != nil {
				return err
			}
			fmt.Printf("Wrote CSV pairs: %s\n", matchCSVOut)
		}

		if matchSVGOut != "" && len(topPairs) > 0 {
			if err := report.WriteBadge(matchSVGOut, topPairs[0]); err != nil {
				return err
			}
			fmt.Printf("Wrote SVG badge: %s\n", matchSVGOut)
		}

		if !matchPretty && matchJSONOut == "" && matchCSVOut == "" && matchSVGOut == "" {
			out, err := report.RenderPairsJSON(topPairs)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}

		return nil
	},
}

func init() {
	matchCmd.Flags().IntVar(&matchTop, "top", 20, "How many top pairs to show/save")
	matchCmd.Flags().BoolVar(&matchPretty, "pretty", false, "Human-readable ranked pairs")
	matchCmd.Flags().StringVar(&matchJSONOut, "json", "", "Write JSON pairs")
	matchCmd.Flags().StringVar(&matchCSVOut, "csv", "", "Write CSV pairs")
	matchCmd.Flags().StringVar(&matchSVGOut, "svg", "", "Write an SVG badge for the closest pair")
}
