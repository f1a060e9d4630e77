package workbook

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func openGenerated(t *testing.T, nextSteps, questions []string) *excelize.File {
	t.Helper()
	buf, err := Generate(nextSteps, questions, "client-rfp.pdf", time.Date(2025, time.February, 1, 9, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	val, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("get %s!%s: %v", sheet, cell, err)
	}
	return val
}

func TestGenerateTwoTabs(t *testing.T) {
	f := openGenerated(t, []string{"Schedule kickoff call"}, []string{"What is our differentiator?"})

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SheetNextSteps || sheets[1] != SheetQuestions {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
}

func TestNextStepsSheetContent(t *testing.T) {
	f := openGenerated(t, []string{"Schedule kickoff call", "Draft win themes"}, nil)

	if got := cellValue(t, f, SheetNextSteps, "A1"); got != "Next Steps for Proposal Team" {
		t.Fatalf("unexpected title: %q", got)
	}
	if got := cellValue(t, f, SheetNextSteps, "A2"); got != "RFP: client-rfp.pdf" {
		t.Fatalf("unexpected source line: %q", got)
	}
	if got := cellValue(t, f, SheetNextSteps, "A3"); got != "Generated: 2025-02-01 09:30" {
		t.Fatalf("unexpected timestamp line: %q", got)
	}

	for cell, want := range map[string]string{
		"A5": "#", "B5": "Action Item", "C5": "Status",
		"A6": "1", "B6": "Schedule kickoff call", "C6": "Pending",
		"A7": "2", "B7": "Draft win themes", "C7": "Pending",
	} {
		if got := cellValue(t, f, SheetNextSteps, cell); got != want {
			t.Errorf("%s: got %q want %q", cell, got, want)
		}
	}

	width, err := f.GetColWidth(SheetNextSteps, "B")
	if err != nil {
		t.Fatalf("col width: %v", err)
	}
	if width != 70 {
		t.Fatalf("expected action column width 70, got %v", width)
	}
}

func TestQuestionsSheetContent(t *testing.T) {
	f := openGenerated(t, nil, []string{"What is our differentiator?"})

	if got := cellValue(t, f, SheetQuestions, "A1"); got != "Strategic Alignment Questions" {
		t.Fatalf("unexpected title: %q", got)
	}
	for cell, want := range map[string]string{
		"A5": "#", "B5": "Question", "C5": "Answer / Notes",
		"A6": "1", "B6": "What is our differentiator?", "C6": "",
	} {
		if got := cellValue(t, f, SheetQuestions, cell); got != want {
			t.Errorf("%s: got %q want %q", cell, got, want)
		}
	}
}

func TestEmptyListsStillProduceHeaderRows(t *testing.T) {
	f := openGenerated(t, nil, nil)

	for _, sheet := range []string{SheetNextSteps, SheetQuestions} {
		if got := cellValue(t, f, sheet, "A5"); got != "#" {
			t.Fatalf("%s: expected header row, got %q", sheet, got)
		}
		if got := cellValue(t, f, sheet, "A6"); got != "" {
			t.Fatalf("%s: expected zero data rows, found %q", sheet, got)
		}
	}
}

func TestGenerateIsContentStable(t *testing.T) {
	steps := []string{"a", "b"}
	questions := []string{"q"}
	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

	first, err := Generate(steps, questions, "x.pdf", now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := Generate(steps, questions, "x.pdf", now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fa, err := excelize.OpenReader(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer fa.Close()
	fb, err := excelize.OpenReader(bytes.NewReader(second.Bytes()))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer fb.Close()

	for _, sheet := range []string{SheetNextSteps, SheetQuestions} {
		rowsA, err := fa.GetRows(sheet)
		if err != nil {
			t.Fatalf("rows: %v", err)
		}
		rowsB, err := fb.GetRows(sheet)
		if err != nil {
			t.Fatalf("rows: %v", err)
		}
		if len(rowsA) != len(rowsB) {
			t.Fatalf("%s: row count differs", sheet)
		}
		for i := range rowsA {
			if len(rowsA[i]) != len(rowsB[i]) {
				t.Fatalf("%s row %d: cell count differs", sheet, i)
			}
			for j := range rowsA[i] {
				if rowsA[i][j] != rowsB[i][j] {
					t.Fatalf("%s row %d col %d: %q != %q", sheet, i, j, rowsA[i][j], rowsB[i][j])
				}
			}
		}
	}
}
