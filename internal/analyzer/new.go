package analyzer

import (
	"io"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/pkg/executor"
)

type implAnalyzer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
	stdout   io.Writer
	now      func() time.Time
}

// New creates a new Analyzer instance. Reports without an output path
// are written to stdout.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger, stdout io.Writer) Analyzer {
	return &implAnalyzer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		stdout:   stdout,
		now:      time.Now,
	}
}
