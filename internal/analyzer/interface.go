package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

// Analyzer runs one read, parse, classify, render and write pass.
type Analyzer interface {
	Process(ctx context.Context, req Request) (model.AnalysisResult, error)
}

// Request describes a single run. An empty OutputPath prints to stdout.
type Request struct {
	InputPath  string
	OutputPath string
	Format     model.Format
	Profile    model.Profile
}
