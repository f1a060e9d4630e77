// Package report renders an analysis result into a paginated PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"rfp-backend/internal/analysis"
)

const (
	pageMargin  = 72 // 1 inch, in points
	titleText   = "RFP Analysis Report"
	eventColW   = 288 // 4 inches
	dateColW    = 144 // 2 inches
	tableRowH   = 22
	bulletLineH = 14
)

type section struct {
	title string
	intro string
	key   string
}

var bulletSections = []section{
	{"Client Problems & Challenges", "Key issues and challenges the client is trying to resolve:", analysis.KeyClientProblems},
	{"Specific Requirements", "Must-have requirements, deliverables, and constraints:", analysis.KeyRequirements},
	{"Gotchas & Ambiguities", "Red-flag items that need clarification:", analysis.KeyGotchas},
}

// Generate renders the analysis into an in-memory PDF: a title page, three
// bulleted sections, and the timeline table, in fixed order.
func Generate(res analysis.Result, fileName string, now time.Time) (*bytes.Buffer, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	writeTitlePage(doc, tr, fileName, now)

	for _, s := range bulletSections {
		writeBulletSection(doc, tr, s.title, s.intro, res.Items(s.key))
	}
	writeTimelineSection(doc, tr, res.Timeline())

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return &buf, nil
}

func writeTitlePage(doc *fpdf.Fpdf, tr func(string) string, fileName string, now time.Time) {
	doc.AddPage()
	doc.Ln(108)

	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(26, 26, 26)
	doc.CellFormat(0, 30, tr(titleText), "", 1, "C", false, 0, "")
	doc.Ln(22)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(107, 114, 128)
	doc.CellFormat(0, 14, tr("Source: "+fileName), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 14, tr("Generated: "+now.Format("January 2, 2006 at 3:04 PM")), "", 1, "C", false, 0, "")

	doc.AddPage()
}

func writeBulletSection(doc *fpdf.Fpdf, tr func(string) string, title, intro string, items []string) {
	writeSectionHeader(doc, tr, title)
	writeIntro(doc, tr, intro)

	if len(items) == 0 {
		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(26, 26, 26)
		doc.MultiCell(0, bulletLineH, tr("No items identified."), "", "L", false)
		doc.Ln(20)
		return
	}

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(26, 26, 26)
	for _, item := range items {
		doc.SetX(pageMargin + 20)
		doc.MultiCell(0, bulletLineH, tr("• "+item), "", "L", false)
		doc.Ln(4)
	}
	doc.Ln(16)
}

func writeTimelineSection(doc *fpdf.Fpdf, tr func(string) string, timeline []analysis.TimelineEntry) {
	writeSectionHeader(doc, tr, "Timeline & Key Dates")
	writeIntro(doc, tr, "Important milestones and deadlines:")

	if len(timeline) == 0 {
		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(26, 26, 26)
		doc.MultiCell(0, bulletLineH, tr("No timeline information available."), "", "L", false)
		return
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.SetFillColor(37, 99, 235)
	doc.SetTextColor(245, 245, 245)
	doc.SetDrawColor(209, 213, 219)
	doc.CellFormat(eventColW, tableRowH, tr("Event"), "1", 0, "L", true, 0, "")
	doc.CellFormat(dateColW, tableRowH, tr("Date"), "1", 1, "L", true, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(26, 26, 26)
	for i, entry := range timeline {
		if i%2 == 1 {
			doc.SetFillColor(243, 244, 246)
		} else {
			doc.SetFillColor(255, 255, 255)
		}
		x, y := doc.GetXY()
		doc.MultiCell(eventColW, tableRowH, tr(entry.Event), "1", "L", true)
		rowH := doc.GetY() - y
		doc.SetXY(x+eventColW, y)
		doc.CellFormat(dateColW, rowH, tr(entry.Date), "1", 0, "L", true, 0, "")
		doc.SetXY(x, y+rowH)
	}
}

func writeSectionHeader(doc *fpdf.Fpdf, tr func(string) string, title string) {
	doc.Ln(8)
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(37, 99, 235)
	doc.CellFormat(0, 20, tr(title), "", 1, "L", false, 0, "")
	doc.Ln(4)
}

func writeIntro(doc *fpdf.Fpdf, tr func(string) string, intro string) {
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(26, 26, 26)
	doc.CellFormat(0, 14, tr(intro), "", 1, "L", false, 0, "")
	doc.Ln(8)
}
