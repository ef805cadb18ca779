package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

const convertedName = "input.srt"

// convertibleExts are subtitle formats ffmpeg can rewrite as SRT.
var convertibleExts = map[string]bool{
	".vtt": true,
	".ass": true,
	".ssa": true,
}

func needsConversion(path string) bool {
	return convertibleExts[strings.ToLower(filepath.Ext(path))]
}

// prepareInput returns the path of an SRT file to parse and a cleanup func.
// WebVTT and ASS/SSA inputs are converted with ffmpeg into a temp dir first;
// everything else is parsed as-is.
func (a *implAnalyzer) prepareInput(ctx context.Context, inputPath string) (string, func(), error) {
	if !needsConversion(inputPath) {
		return inputPath, func() {}, nil
	}

	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return "", nil, fmt.Errorf("%w: resolve %s: %w", model.ErrInput, inputPath, err)
	}
	if _, err := os.Stat(absInput); err != nil {
		return "", nil, fmt.Errorf("%w: %w", model.ErrInput, err)
	}

	tempDir, err := os.MkdirTemp("", "caption-digest-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { a.cleanupTempDir(ctx, tempDir) }

	a.logger.Info(ctx, "Converting %s to SRT with %s", inputPath, a.cfg.Convert.FFmpegBinary)

	// Relative output name, ffmpeg runs inside tempDir.
	args := []string{"-y", "-i", absInput, convertedName}
	if _, err := a.executor.ExecuteInDir(ctx, tempDir, a.cfg.Convert.FFmpegBinary, args...); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: convert %s: %w", model.ErrInput, inputPath, err)
	}

	return filepath.Join(tempDir, convertedName), cleanup, nil
}

// cleanupTempDir removes a temporary directory, logs warning if it fails
func (a *implAnalyzer) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		a.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		a.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
