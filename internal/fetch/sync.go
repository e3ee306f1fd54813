package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gearscan/internal/solver"

	"go.uber.org/zap"
)

// SyncResult lists the files written and the files left untouched because they
// already existed.
type SyncResult struct {
	Written []string
	Skipped []string
}

// Sync downloads the inputs of day into dir: the full input as DayNN.txt and the
// first two samples as DayNN_1.txt and DayNN_2.txt. Existing files are never
// overwritten, and nothing is downloaded for them. A failed input download does not
// prevent the samples from being written; the download errors are returned joined.
func (c *Client) Sync(ctx context.Context, dir string, day int) (SyncResult, error) {
	var (
		res      SyncResult
		inputErr error
	)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return res, fmt.Errorf("failed to create input directory: %w", err)
	}

	inputPath := filepath.Join(dir, solver.InputFileName(day, solver.PartNumbers, solver.Full))
	if exists(inputPath) {
		res.Skipped = append(res.Skipped, inputPath)
	} else {
		data, err := c.FetchInput(ctx, day)
		if err != nil {
			inputErr = fmt.Errorf("could not fetch input: %w", err)
			c.logger.Warn("input download failed, fetching samples only", zap.Int("day", day), zap.Error(err))
		} else {
			if err := os.WriteFile(inputPath, data, 0644); err != nil {
				return res, fmt.Errorf("failed to write input: %w", err)
			}
			res.Written = append(res.Written, inputPath)
		}
	}

	samplePaths := []string{
		filepath.Join(dir, solver.InputFileName(day, solver.PartNumbers, solver.Mini)),
		filepath.Join(dir, solver.InputFileName(day, solver.GearRatios, solver.Mini)),
	}
	var missing []string
	for _, p := range samplePaths {
		if exists(p) {
			res.Skipped = append(res.Skipped, p)
		} else {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return res, inputErr
	}

	samples, err := c.FetchSamples(ctx, day)
	if err != nil {
		return res, errors.Join(inputErr, fmt.Errorf("could not fetch samples: %w", err))
	}
	if len(samples) == 0 {
		c.logger.Warn("no samples found on puzzle page", zap.Int("day", day))
		return res, inputErr
	}

	for i, p := range samplePaths {
		if i >= len(samples) || exists(p) {
			continue
		}
		if err := os.WriteFile(p, []byte(samples[i]), 0644); err != nil {
			return res, fmt.Errorf("failed to write sample: %w", err)
		}
		res.Written = append(res.Written, p)
	}

	c.logger.Info("inputs synced", zap.Int("day", day), zap.Int("written", len(res.Written)), zap.Int("skipped", len(res.Skipped)))
	return res, inputErr
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
