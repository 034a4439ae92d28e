package cleaner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kxue43/yml-cleaner/config"
)

type (
	Reporter interface {
		Cleaning(folder string)
		Finished()
	}

	Logger interface {
		Printf(string, ...any)
	}

	Summary struct {
		Stats
		Folders int
		Files   int
	}

	Cleaner struct {
		reporter Reporter
		logger   Logger
		cfg      *config.Config
		DryRun   bool
	}
)

// NewCleaner returns a Cleaner for cfg. A nil logger disables per-file statistics.
func NewCleaner(cfg *config.Config, reporter Reporter, logger Logger) *Cleaner {
	return &Cleaner{cfg: cfg, reporter: reporter, logger: logger}
}

// Run cleans every subject folder of every category under root, one file at a time.
// The first error aborts the run and files rewritten before it stay rewritten.
func (c *Cleaner) Run(ctx context.Context, root string) (summary Summary, err error) {
	for _, category := range c.cfg.Categories {
		var folders []string

		folders, err = FindSubjectFolders(root, category.Folder)
		if err != nil {
			return summary, err
		}

		for _, folder := range folders {
			if err = ctx.Err(); err != nil {
				return summary, fmt.Errorf("stopped before cleaning %q: %w", folder, context.Cause(ctx))
			}

			c.reporter.Cleaning(folder)

			if err = c.cleanFolder(folder, category.Prefix, &summary); err != nil {
				return summary, err
			}

			summary.Folders += 1
		}
	}

	c.reporter.Finished()

	return summary, nil
}

func (c *Cleaner) cleanFolder(folder, prefix string, summary *Summary) error {
	for _, name := range c.cfg.Files {
		path := filepath.Join(folder, name)

		stats, err := CleanFile(path, prefix, c.DryRun)
		if err != nil {
			return err
		}

		summary.Files += 1
		summary.Add(stats)

		if c.logger != nil {
			c.logger.Printf("%s: %d lines, %d prefixed with %q, %d re-indented\n", path, stats.Lines, stats.Prefixed, prefix, stats.Reindented)
		}
	}

	return nil
}
