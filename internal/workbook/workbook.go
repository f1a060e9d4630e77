// Package workbook renders next steps and alignment questions into a
// two-tab spreadsheet.
package workbook

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetNextSteps = "Next Steps"
	SheetQuestions = "Alignment Questions"

	headerRow    = 5
	statusFiller = "Pending"
)

type styles struct {
	title  int
	meta   int
	header int
	cell   int
	index  int
	notes  int
}

// Generate builds the two-tab workbook. Empty input lists still produce
// their tab with the header row and zero data rows.
func Generate(nextSteps, questions []string, fileName string, now time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetNextSteps); err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	if _, err := f.NewSheet(SheetQuestions); err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	if err := writeNextStepsSheet(f, st, nextSteps, fileName, now); err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	if err := writeQuestionsSheet(f, st, questions, fileName, now); err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	if st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	}); err != nil {
		return st, err
	}
	if st.meta, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 10},
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2563EB"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return st, err
	}
	if st.cell, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    border,
	}); err != nil {
		return st, err
	}
	if st.index, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
		Border:    border,
	}); err != nil {
		return st, err
	}
	if st.notes, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"F3F4F6"}, Pattern: 1},
		Border:    border,
	}); err != nil {
		return st, err
	}
	return st, nil
}

func writeNextStepsSheet(f *excelize.File, st styles, steps []string, fileName string, now time.Time) error {
	if err := writeSheetHead(f, st, SheetNextSteps, "Next Steps for Proposal Team", fileName, now); err != nil {
		return err
	}
	if err := writeHeaderRow(f, st, SheetNextSteps, "#", "Action Item", "Status"); err != nil {
		return err
	}

	for i, step := range steps {
		row := headerRow + 1 + i
		if err := writeDataRow(f, st, SheetNextSteps, row, i+1, step, statusFiller, st.cell); err != nil {
			return err
		}
	}

	return setColumnWidths(f, SheetNextSteps, 8, 70, 15)
}

func writeQuestionsSheet(f *excelize.File, st styles, questions []string, fileName string, now time.Time) error {
	if err := writeSheetHead(f, st, SheetQuestions, "Strategic Alignment Questions", fileName, now); err != nil {
		return err
	}
	if err := writeHeaderRow(f, st, SheetQuestions, "#", "Question", "Answer / Notes"); err != nil {
		return err
	}

	for i, question := range questions {
		row := headerRow + 1 + i
		// Notes column stays blank with a distinct fill for the team to complete.
		if err := writeDataRow(f, st, SheetQuestions, row, i+1, question, "", st.notes); err != nil {
			return err
		}
	}

	return setColumnWidths(f, SheetQuestions, 8, 50, 50)
}

func writeSheetHead(f *excelize.File, st styles, sheet, title, fileName string, now time.Time) error {
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", "RFP: "+fileName); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A3", "Generated: "+now.Format("2006-01-02 15:04")); err != nil {
		return err
	}
	for row, style := range map[int]int{1: st.title, 2: st.meta, 3: st.meta} {
		ref := fmt.Sprintf("A%d", row)
		if err := f.SetCellStyle(sheet, ref, ref, style); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, ref, fmt.Sprintf("C%d", row)); err != nil {
			return err
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, st styles, sheet string, labels ...string) error {
	for i, label := range labels {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, st.header); err != nil {
			return err
		}
	}
	return nil
}

func writeDataRow(f *excelize.File, st styles, sheet string, row, index int, text, third string, thirdStyle int) error {
	values := []any{index, text, third}
	cellStyles := []int{st.index, st.cell, thirdStyle}
	for col, val := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, cellStyles[col]); err != nil {
			return err
		}
	}
	return nil
}

func setColumnWidths(f *excelize.File, sheet string, a, b, c float64) error {
	if err := f.SetColWidth(sheet, "A", "A", a); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", b); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "C", "C", c)
}
