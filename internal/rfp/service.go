package rfp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"rfp-backend/internal/analysis"
	"rfp-backend/internal/llm"
	"rfp-backend/internal/report"
	"rfp-backend/internal/upload"
	"rfp-backend/internal/workbook"
)

var (
	// ErrAnalyze marks a transport-level failure talking to the LLM endpoint.
	ErrAnalyze = errors.New("analysis request failed")
	// ErrRender marks a failure while building either artifact.
	ErrRender = errors.New("rendering failed")
)

// Service runs the analysis pipeline: validate, one LLM round-trip,
// recover and validate the result, then render both artifacts. Everything
// is local to one invocation; nothing is cached or shared across requests.
type Service struct {
	LLM           llm.Client
	PromptVersion string
}

// Output is the product of one pipeline run.
type Output struct {
	Info        upload.Info
	Result      analysis.Result
	Report      *bytes.Buffer
	Workbook    *bytes.Buffer
	GeneratedAt time.Time
}

// Process executes the pipeline for one uploaded document.
func (s *Service) Process(ctx context.Context, rs io.ReadSeeker, size int64, fileName string) (Output, error) {
	info, err := upload.Validate(rs, size, fileName)
	if err != nil {
		return Output{}, err
	}

	data, err := io.ReadAll(rs)
	if err != nil {
		return Output{}, fmt.Errorf("%w: read upload: %v", upload.ErrRejected, err)
	}

	reply, err := s.LLM.AnalyzeRFP(ctx, llm.AnalyzeInput{
		PDF:           data,
		FileName:      fileName,
		PromptVersion: s.PromptVersion,
	})
	if err != nil {
		if errors.Is(err, llm.ErrTimeout) {
			return Output{}, err
		}
		return Output{}, fmt.Errorf("%w: %v", ErrAnalyze, err)
	}

	result, err := analysis.Recover(reply)
	if err != nil {
		return Output{}, err
	}
	if err := result.Validate(); err != nil {
		return Output{}, err
	}

	now := time.Now().UTC()
	reportBuf, err := report.Generate(result, info.FileName, now)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrRender, err)
	}
	workbookBuf, err := workbook.Generate(
		result.Items(analysis.KeyNextSteps),
		result.Items(analysis.KeyAlignmentQuestions),
		info.FileName,
		now,
	)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return Output{
		Info:        info,
		Result:      result,
		Report:      reportBuf,
		Workbook:    workbookBuf,
		GeneratedAt: now,
	}, nil
}
