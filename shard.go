// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geogen

import (
	"context"
	"errors"
	"fmt"

	"github.com/2dChan/geogen/continent"
	"golang.org/x/sync/errgroup"
)

// ShardFunc generates the rows of one shard with that shard's generator.
type ShardFunc func(ctx context.Context, shard int, g *Generator) error

// RunShards runs fn once per shard, each on its own goroutine with a Generator
// derived from seed and the shard index. All shards share sampler. The first
// error cancels ctx for the remaining shards and is returned.
//
// The rows of a shard depend only on seed and the shard index, never on
// scheduling.
func RunShards(ctx context.Context, seed int64, shards int, sampler *continent.Sampler, fn ShardFunc) error {
	if shards <= 0 {
		return fmt.Errorf("RunShards: %w: %d shards", ErrInvalidWorker, shards)
	}
	if sampler == nil {
		return errors.New("RunShards: nil sampler")
	}

	eg, ctx := errgroup.WithContext(ctx)
	for shard := range shards {
		eg.Go(func() error {
			g, err := NewGenerator(seed, WithWorker(shard), WithSampler(sampler))
			if err != nil {
				return err
			}
			return fn(ctx, shard, g)
		})
	}
	return eg.Wait()
}

// ShardRows returns the first row and row count of a shard when total rows
// are split as evenly as possible across shards.
func ShardRows(total, shards, shard int) (start, count int) {
	if total <= 0 || shards <= 0 || shard < 0 || shard >= shards {
		return 0, 0
	}
	base, rem := total/shards, total%shards
	start = shard*base + min(shard, rem)
	count = base
	if shard < rem {
		count++
	}
	return start, count
}
