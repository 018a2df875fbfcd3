// Package pipeline composes the leaf components — trace enumeration,
// decoding, command splitting, filtering, and deduplication — into the
// single pull-based pass described in spec §5: enumerate, decode,
// classify, filter, dedup.
package pipeline

import (
	"context"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/rizsotto/Bear/compilation"
	"github.com/rizsotto/Bear/database"
	"github.com/rizsotto/Bear/filter"
	"github.com/rizsotto/Bear/tool"
	"github.com/rizsotto/Bear/trace"
)

// Options configures one pipeline run.
type Options struct {
	// TraceDir holds the execution.* trace files left behind by the
	// (out of scope) interception library.
	TraceDir string
	Tools    tool.Config
	Include  []string
	Exclude  []string
}

// Run enumerates TraceDir, decodes and classifies each trace, and
// returns the deduplicated, filtered set of Compilations found. A
// corrupt trace file is logged and skipped; it never aborts the run.
func Run(ctx context.Context, opts Options) (*database.Database, error) {
	files, err := trace.Enumerate(opts.TraceDir)
	if err != nil {
		return nil, errors.Annotate(err, "enumerate trace files in %s", opts.TraceDir).Err()
	}

	keep := filter.New(opts.Include, opts.Exclude)
	db := database.New()

	for _, path := range files {
		exec, err := trace.Decode(path)
		if err != nil {
			logging.Warningf(ctx, "skipping corrupt trace file %s: %v", path, err)
			continue
		}
		for _, c := range compilation.Split(exec, opts.Tools) {
			if !keep(c) {
				continue
			}
			db.Add(c)
		}
	}
	return db, nil
}
