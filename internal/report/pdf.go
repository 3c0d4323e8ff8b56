package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/controleponto/ponto/internal/punch"
)

// PeriodLayout is how the range bounds are rendered in the report header.
const PeriodLayout = "02/01/2006"

// pdfEncoder converts UTF-8 to the cp1252 bytes gofpdf's core fonts expect.
// Unmappable runes are replaced rather than failing the encode.
var pdfEncoder = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

func cp1252(s string) string {
	out, err := pdfEncoder.String(s)
	if err != nil {
		return s
	}
	return out
}

// Renderer produces the "Folha Ponto" attendance sheet for one employee.
type Renderer struct {
	CompanyName string
}

// Render builds the attendance sheet PDF for one employee over a date
// range. all is the full record set: the role line comes from the first
// record matching the employee regardless of range, so it stays stable
// across range changes. filtered is the range+employee subset, in original
// order. Returns nil bytes when the employee is empty or nothing matched;
// that is an empty result, not an error.
func (r *Renderer) Render(employee string, start, end time.Time, all, filtered []punch.Punch) ([]byte, error) {
	if employee == "" || len(filtered) == 0 {
		return nil, nil
	}

	cargo := ""
	for _, p := range all {
		if p.Nome == employee {
			cargo = p.Cargo
			break
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(190, 10, cp1252(r.CompanyName), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 10, "Folha Ponto", "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 10, cp1252("Colaborador: "+employee), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 10, cp1252("Função: "+cargo), "", 1, "C", false, 0, "")
	period := fmt.Sprintf("Período: %s a %s", start.Format(PeriodLayout), end.Format(PeriodLayout))
	pdf.CellFormat(190, 10, cp1252(period), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 10, "Data e Hora", "1", 0, "C", true, 0, "")
	pdf.CellFormat(90, 10, "Status", "1", 1, "C", true, 0, "")

	for _, p := range filtered {
		pdf.CellFormat(100, 7, p.Timestamp.Format(DetailTimeLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(90, 7, cp1252(string(p.Status)), "1", 1, "C", false, 0, "")
	}

	return writeThroughTemp(pdf)
}

// writeThroughTemp writes the document to a scoped temp file, reads it back
// and removes it. A delete failure is swallowed: the bytes are already in
// memory at that point.
func writeThroughTemp(pdf *gofpdf.Fpdf) ([]byte, error) {
	name := filepath.Join(os.TempDir(), "folha-ponto-"+uuid.NewString()+".pdf")
	defer os.Remove(name)

	if err := pdf.OutputFileAndClose(name); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read report back: %w", err)
	}
	return data, nil
}
