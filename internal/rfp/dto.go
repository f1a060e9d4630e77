package rfp

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"rfp-backend/internal/analysis"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ArtifactResponse carries one generated artifact inline with a suggested
// download name. The server never writes artifacts to disk.
type ArtifactResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int    `json:"sizeBytes"`
	Data        string `json:"data"`
}

// SummaryResponse mirrors the per-category item counts shown to the user.
type SummaryResponse struct {
	ClientProblems     int `json:"clientProblems"`
	Requirements       int `json:"requirements"`
	Gotchas            int `json:"gotchas"`
	TimelineEvents     int `json:"timelineEvents"`
	NextSteps          int `json:"nextSteps"`
	AlignmentQuestions int `json:"alignmentQuestions"`
}

// AnalyzeResponse is the outward-facing result of one pipeline run.
type AnalyzeResponse struct {
	AnalysisID  string           `json:"analysisId"`
	FileName    string           `json:"fileName"`
	PageCount   int              `json:"pageCount"`
	SizeBytes   int64            `json:"sizeBytes"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Summary     SummaryResponse  `json:"summary"`
	Analysis    json.RawMessage  `json:"analysis"`
	Report      ArtifactResponse `json:"report"`
	Workbook    ArtifactResponse `json:"workbook"`
}

func toResponse(analysisID string, out Output) AnalyzeResponse {
	base := suggestedBaseName(out.Info.FileName)
	stamp := out.GeneratedAt.Format("20060102_150405")

	return AnalyzeResponse{
		AnalysisID:  analysisID,
		FileName:    out.Info.FileName,
		PageCount:   out.Info.PageCount,
		SizeBytes:   out.Info.SizeBytes,
		GeneratedAt: out.GeneratedAt,
		Summary: SummaryResponse{
			ClientProblems:     out.Result.Count(analysis.KeyClientProblems),
			Requirements:       out.Result.Count(analysis.KeyRequirements),
			Gotchas:            out.Result.Count(analysis.KeyGotchas),
			TimelineEvents:     out.Result.Count(analysis.KeyTimeline),
			NextSteps:          out.Result.Count(analysis.KeyNextSteps),
			AlignmentQuestions: out.Result.Count(analysis.KeyAlignmentQuestions),
		},
		Analysis: out.Result.Raw,
		Report: ArtifactResponse{
			FileName:    base + "_analysis_" + stamp + ".pdf",
			ContentType: mimePDF,
			SizeBytes:   out.Report.Len(),
			Data:        base64.StdEncoding.EncodeToString(out.Report.Bytes()),
		},
		Workbook: ArtifactResponse{
			FileName:    base + "_alignment_" + stamp + ".xlsx",
			ContentType: mimeXLSX,
			SizeBytes:   out.Workbook.Len(),
			Data:        base64.StdEncoding.EncodeToString(out.Workbook.Bytes()),
		},
	}
}

func suggestedBaseName(fileName string) string {
	base := strings.TrimSuffix(fileName, ".pdf")
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" {
		return "rfp"
	}
	return base
}
