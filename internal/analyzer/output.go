package analyzer

import (
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
	"github.com/nguyentantai21042004/caption-digest/internal/renderer"
)

// write renders res in req.Format and writes it to req.OutputPath or stdout.
func (a *implAnalyzer) write(res model.AnalysisResult, req Request) error {
	if req.Format == model.FormatDocx {
		if err := renderer.Docx(res, req.OutputPath); err != nil {
			return fmt.Errorf("%w: %w", model.ErrOutput, err)
		}
		return nil
	}

	if req.OutputPath == "" {
		if err := emit(a.stdout, res, req.Format); err != nil {
			return fmt.Errorf("%w: write stdout: %w", model.ErrOutput, err)
		}
		return nil
	}

	f, err := os.Create(req.OutputPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", model.ErrOutput, req.OutputPath, err)
	}
	if err := emit(f, res, req.Format); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", model.ErrOutput, req.OutputPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", model.ErrOutput, req.OutputPath, err)
	}
	return nil
}

// emit renders res for w. The terminal format picks its color profile from w.
func emit(w io.Writer, res model.AnalysisResult, format model.Format) error {
	switch format {
	case model.FormatText:
		return renderer.WriteTerminal(w, res)
	case model.FormatJSON:
		data, err := renderer.JSON(res)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := io.WriteString(w, renderer.Markdown(res))
		return err
	}
}
