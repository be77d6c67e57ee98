// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cmd - regions command
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/2dChan/geogen/random"
	"github.com/spf13/cobra"
)

// regionsCmd lists the region table in effect
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the sampling regions with canonical boxes and probabilities",
	Args:  cobra.NoArgs,
	RunE:  runRegions,
}

func runRegions(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	regions := e.sampler.Regions()
	weights := make([]float64, len(regions))
	for i, r := range regions {
		weights[i] = r.Weight
	}
	table, err := random.NewWeightedTable(weights)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWEST\tSOUTH\tEAST\tNORTH\tWEIGHT\tPROBABILITY\tCROSSING")
	for i, r := range regions {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\t%.4f\t%t\n",
			r.Name, r.Box.West, r.Box.South, r.Box.East, r.Box.North,
			r.Weight, table.Probability(i), r.Box.Crossing())
	}
	return tw.Flush()
}
