package pipeline

import (
	"context"

	"github.com/backmassage/exifdate/internal/config"
	"github.com/backmassage/exifdate/internal/logging"
)

// Run is the top-level batch entry point. root must already be resolved by
// [ResolveRoot]. Files are processed sequentially in discovery order; a
// cancelled ctx stops the run between files. Per-file failures never stop
// the batch.
func Run(ctx context.Context, cfg *config.Config, root string, log *logging.Logger, w MetadataWriter, rep *Reporter) RunStats {
	var stats RunStats

	files, err := Discover(root, cfg.Extensions)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	stats.Total = len(files)
	logBatchHeader(cfg, log, root, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted after %d of %d files", i, stats.Total)
			break
		}

		res := ProcessFile(ctx, cfg, path, w)
		if res.State != StateSkipped {
			log.Debug("[%d/%d] %s: token %q (%s rule)", stats.Current, stats.Total, path, res.Token.Value, res.Token.Rule)
		}
		rep.Report(res)
		stats.Add(res)
	}

	log.Debug("Done: %d applied, %d emitted, %d skipped, %d failed",
		stats.Applied, stats.Emitted, stats.Skipped, stats.Failed)
	return stats
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, root string, stats *RunStats) {
	log.Debug("Root: %s", root)
	log.Debug("Extensions: %v", cfg.Extensions)
	log.Debug("Found %d files", stats.Total)
	if cfg.DryRun {
		log.Debug("Dry run: commands are printed, not executed")
	} else if cfg.KeepOriginal {
		log.Debug("Originals are kept as <file>_original")
	}
}
