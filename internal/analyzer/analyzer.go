package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/caption-digest/internal/classifier"
	"github.com/nguyentantai21042004/caption-digest/internal/model"
	"github.com/nguyentantai21042004/caption-digest/internal/parser"
)

// Process reads req.InputPath, classifies its segments and writes the report.
// Nothing is written when the input yields no segments.
func (a *implAnalyzer) Process(ctx context.Context, req Request) (model.AnalysisResult, error) {
	startTime := time.Now()
	log := a.logger.With("run_id", uuid.NewString())

	if req.Format == model.FormatDocx && req.OutputPath == "" {
		return model.AnalysisResult{}, fmt.Errorf("%w: docx output requires an output path", model.ErrOutput)
	}

	log.Info(ctx, "Analyzing %s (profile: %s, format: %s)", req.InputPath, req.Profile, req.Format)

	srtPath, cleanup, err := a.prepareInput(ctx, req.InputPath)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("prepare input: %w", err)
	}
	defer cleanup()

	content, err := parser.ReadFile(srtPath)
	if err != nil {
		return model.AnalysisResult{}, err
	}

	segments := parser.Parse(content)
	log.Debug(ctx, "Parsed %d segments from %s", len(segments), srtPath)
	if len(segments) == 0 {
		return model.AnalysisResult{}, fmt.Errorf("%w in %s", model.ErrNoSegments, req.InputPath)
	}

	res := classifier.Analyze(segments, req.Profile, a.now())

	if err := a.write(res, req); err != nil {
		return res, err
	}

	log.Info(ctx, "Analysis complete: %d segments, %d key topics, %d action items in %s",
		res.TotalSegments, len(res.KeyTopics), len(res.ActionableItems), time.Since(startTime))
	if req.OutputPath != "" {
		log.Info(ctx, "Report written to %s", req.OutputPath)
	}

	return res, nil
}
