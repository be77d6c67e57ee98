// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cmd - generate command
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/2dChan/geogen"
	"github.com/2dChan/geogen/antimeridian"
	"github.com/2dChan/geogen/geom"
	"github.com/2dChan/geogen/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate points or boxes as WKT, one per line",
	Long: `Generate rows of synthetic geometry. Rows are split across shards, each
shard drawing from its own stream derived from the seed and shard index, and
written in shard order so the output is identical for a given seed and shard
count.

Crossing boxes are written in the crossing representation (west > east)
unless --split is set, in which case they become a two-part MULTIPOLYGON cut
at the antimeridian.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Int("rows", 1000, "number of rows to generate")
	f.Int("shards", 1, "number of parallel shards")
	f.String("kind", config.KindPoint, "geometry kind (point, box)")
	f.Float64("min-size", 0.01, "minimum box width and height in degrees")
	f.Float64("max-size", 1.0, "maximum box width and height in degrees")
	f.Bool("split", false, "split crossing boxes at the antimeridian")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	cfg, logger := e.cfg, e.logger

	start := time.Now()
	logger.Info("starting generation",
		zap.Int64("seed", cfg.Seed),
		zap.Int("shards", cfg.Shards),
		zap.Int("rows", cfg.Rows),
		zap.String("kind", cfg.Kind),
	)

	out := make([][]string, cfg.Shards)
	crossing := make([]int, cfg.Shards)
	err = geogen.RunShards(cmd.Context(), cfg.Seed, cfg.Shards, e.sampler,
		func(ctx context.Context, shard int, g *geogen.Generator) error {
			_, count := geogen.ShardRows(cfg.Rows, cfg.Shards, shard)
			rows := make([]string, 0, count)
			for range count {
				if err := ctx.Err(); err != nil {
					return err
				}
				row, crossed, err := generateRow(g, cfg)
				if err != nil {
					return fmt.Errorf("shard %d: %w", shard, err)
				}
				if crossed {
					crossing[shard]++
				}
				rows = append(rows, row)
			}
			out[shard] = rows
			return nil
		})
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return err
	}

	if err := writeRows(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}

	total := 0
	for _, n := range crossing {
		total += n
	}
	logger.Info("generation complete",
		zap.Int("rows", cfg.Rows),
		zap.Int("crossing", total),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// generateRow returns one WKT row and whether it crosses the antimeridian.
func generateRow(g *geogen.Generator, cfg *config.Config) (string, bool, error) {
	if cfg.Kind == config.KindPoint {
		return g.SamplePoint().String(), false, nil
	}

	box, err := g.SampleBox(cfg.MinSize, cfg.MaxSize)
	if err != nil {
		return "", false, err
	}
	if !box.Crossing() || !cfg.Split {
		return box.String(), box.Crossing(), nil
	}
	return multiPolygon(antimeridian.Split(box)), true, nil
}

func multiPolygon(parts []geom.BoundingBox) string {
	var sb strings.Builder
	sb.WriteString("MULTIPOLYGON (")
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strings.TrimPrefix(p.String(), "POLYGON "))
	}
	sb.WriteString(")")
	return sb.String()
}

func writeRows(w io.Writer, shards [][]string) error {
	bw := bufio.NewWriter(w)
	for _, rows := range shards {
		for _, row := range rows {
			if _, err := bw.WriteString(row); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
