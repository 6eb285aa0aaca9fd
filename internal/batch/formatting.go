package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// formatBatchResults formats the batch detections in the specified format.
func formatBatchResults(detections []*pipeline.Detection, filePaths []string, format string, allCandidates bool) (string, error) {
	switch format {
	case "json":
		return formatJSON(detections, filePaths)
	case "csv":
		return formatCSV(detections, filePaths, allCandidates)
	default: // text
		return formatText(detections, filePaths, allCandidates)
	}
}

// formatJSON formats detections as JSON.
func formatJSON(detections []*pipeline.Detection, filePaths []string) (string, error) {
	type fileDetection struct {
		File      string              `json:"file"`
		Detection *pipeline.Detection `json:"detection"`
	}
	batchResult := struct {
		Files []fileDetection `json:"files"`
	}{
		Files: make([]fileDetection, len(detections)),
	}

	for i, d := range detections {
		batchResult.Files[i] = fileDetection{File: filePaths[i], Detection: d}
	}

	bts, err := json.MarshalIndent(batchResult, "", "  ")
	return string(bts), err
}

// formatCSV formats detections as CSV.
func formatCSV(detections []*pipeline.Detection, filePaths []string, allCandidates bool) (string, error) {
	csvData := [][]string{
		{"file", "rank", "language", "name", "confidence", "scripts"},
	}

	for i, d := range detections {
		if d == nil {
			continue
		}
		file := filePaths[i]
		scripts := strings.Join(d.Scripts, "+")
		for j, res := range d.Results {
			csvData = append(csvData, []string{
				file,
				strconv.Itoa(j),
				res.Language,
				langmodel.Name(res.Language),
				fmt.Sprintf("%.4f", res.Confidence),
				scripts,
			})
			if !allCandidates {
				break
			}
		}
	}

	var output strings.Builder
	writer := csv.NewWriter(&output)
	for _, row := range csvData {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return output.String(), nil
}

// formatText formats detections as plain text.
func formatText(detections []*pipeline.Detection, filePaths []string, allCandidates bool) (string, error) {
	var output strings.Builder
	for i, d := range detections {
		if i > 0 {
			output.WriteString("\n")
		}
		output.WriteString(fmt.Sprintf("# %s\n", filePaths[i]))
		if d == nil {
			continue
		}
		for _, res := range d.Results {
			output.WriteString(fmt.Sprintf("%s (%s) %.4f\n",
				res.Language, langmodel.Name(res.Language), res.Confidence))
			if !allCandidates {
				break
			}
		}
	}
	return output.String(), nil
}
