// Package render — PDF renderer.
// Produces a printable storyboard using gofpdf: one page per slide
// with the slide's type, timing, and content. Slide imagery is
// referenced by URL, not embedded.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/storypress/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the slide sequence as a storyboard PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the document into PDF bytes.
func (r *PDFRenderer) Render(doc *core.StoryDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	// Cover page with the story metadata.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 9, doc.Metadata.Title, "", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	if doc.Metadata.Author != "" {
		pdf.MultiCell(0, 5, "by "+doc.Metadata.Author, "", "L", false)
	}
	pdf.MultiCell(0, 5, doc.Metadata.PublisherName, "", "L", false)
	if doc.Metadata.CanonicalURL != "" {
		pdf.MultiCell(0, 5, "Source: "+doc.Metadata.CanonicalURL, "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)

	for i, s := range doc.Slides {
		pdf.AddPage()
		renderSlidePage(pdf, i+1, s)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderSlidePage(pdf *gofpdf.Fpdf, n int, s core.Slide) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 6, fmt.Sprintf("Slide %d - %s (%.1fs, %s)", n, s.Type, s.Style.Duration, s.Style.Animation), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	switch s.Type {
	case core.SlideTitle:
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, s.Content.Title, "", "L", false)
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, s.Content.Subtitle, "", "L", false)
	case core.SlideQuote:
		pdf.SetFont("Helvetica", "I", 14)
		pdf.MultiCell(0, 7, `"`+s.Content.Quote+`"`, "", "C", false)
		if s.Content.Author != "" {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "-- "+s.Content.Author, "", "C", false)
		}
	case core.SlideImage:
		pdf.SetFont("Courier", "", 9)
		pdf.SetFillColor(245, 245, 245)
		pdf.MultiCell(0, 5, "[image] "+s.Content.Image, "", "L", true)
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, s.Content.Text, "", "L", false)
	case core.SlideCTA:
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, s.Content.Title, "", "C", false)
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, fmt.Sprintf("[%s] → %s", s.Content.ButtonText, s.Content.ButtonURL), "", "C", false)
	default:
		if s.Content.Title != "" {
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(0, 7, s.Content.Title, "", "L", false)
			pdf.Ln(1)
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, s.Content.Text, "", "L", false)
	}

	// Style summary footer.
	pdf.Ln(4)
	pdf.SetFont("Courier", "", 8)
	pdf.SetTextColor(130, 130, 130)
	pdf.MultiCell(0, 4, fmt.Sprintf("bg: %s  text: %s  font: %s  layout: %s",
		s.Style.BackgroundColor, s.Style.TextColor, s.Style.FontFamily, s.Layout), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
}
