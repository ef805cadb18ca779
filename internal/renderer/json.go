package renderer

import (
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

// JSON renders the result as an indented JSON document.
func JSON(res model.AnalysisResult) ([]byte, error) {
	if res.KeyTopics == nil {
		res.KeyTopics = []model.ClassifiedItem{}
	}
	if res.ActionableItems == nil {
		res.ActionableItems = []model.ClassifiedItem{}
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return append(data, '\n'), nil
}
