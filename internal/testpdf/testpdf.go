// Package testpdf writes small, well-formed PDF documents for tests.
//
// Every page carries a Helvetica "Page N" label so content streams are
// never empty. Object offsets and the xref table are computed while
// writing, so the output parses without repair.
package testpdf

import (
	"bytes"
	"fmt"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Page describes one page of a generated document.
type Page struct {
	Width, Height float64
	Rotate        int
	// Annots lists annotation subtypes to attach, e.g. "Text", "Square".
	Annots []string
}

// Doc describes a generated document.
type Doc struct {
	Title  string
	Author string
	Pages  []Page
	// TextField adds an AcroForm with one text field on the first page.
	TextField string
}

// A4 returns n portrait A4 pages.
func A4(n int) []byte {
	return Build(Doc{Pages: Pages(n, 595.28, 841.89)})
}

// Pages returns n pages of the same size.
func Pages(n int, w, h float64) []Page {
	pp := make([]Page, n)
	for i := range pp {
		pp[i] = Page{Width: w, Height: h}
	}
	return pp
}

type writer struct {
	buf     bytes.Buffer
	offsets []int
}

// obj writes object number len(offsets)+1 and returns its number.
func (w *writer) obj(body string) int {
	w.offsets = append(w.offsets, w.buf.Len())
	nr := len(w.offsets)
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", nr, body)
	return nr
}

func (w *writer) stream(content string) int {
	return w.obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
}

// reserve allocates an object number to be written later with fill.
func (w *writer) reserve() int {
	w.offsets = append(w.offsets, -1)
	return len(w.offsets)
}

func (w *writer) fill(nr int, body string) {
	w.offsets[nr-1] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", nr, body)
}

// Build renders d as PDF bytes.
func Build(d Doc) []byte {
	w := &writer{}
	w.buf.WriteString("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

	catalog := w.reserve()
	pagesRoot := w.reserve()
	font := w.obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	info := 0
	if d.Title != "" || d.Author != "" {
		var sb strings.Builder
		sb.WriteString("<<")
		if d.Title != "" {
			fmt.Fprintf(&sb, " /Title (%s)", d.Title)
		}
		if d.Author != "" {
			fmt.Fprintf(&sb, " /Author (%s)", d.Author)
		}
		sb.WriteString(" /Producer (testpdf) >>")
		info = w.obj(sb.String())
	}

	var kids []string
	field := 0
	for i, p := range d.Pages {
		pageNr := w.reserve()
		content := w.stream(fmt.Sprintf("BT /F1 24 Tf 72 72 Td (Page %d) Tj ET", i+1))

		var annots []string
		for _, subtype := range p.Annots {
			a := w.obj(fmt.Sprintf("<< /Type /Annot /Subtype /%s /Rect [10 10 40 40] /Contents (%s) /P %d 0 R >>", subtype, subtype, pageNr))
			annots = append(annots, fmt.Sprintf("%d 0 R", a))
		}
		if i == 0 && d.TextField != "" {
			field = w.obj(fmt.Sprintf("<< /Type /Annot /Subtype /Widget /FT /Tx /T (%s) /Rect [100 700 300 720] /DA (/Helv 0 Tf 0 g) /F 4 /P %d 0 R >>", d.TextField, pageNr))
			annots = append(annots, fmt.Sprintf("%d 0 R", field))
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s]", pagesRoot, num(p.Width), num(p.Height))
		fmt.Fprintf(&sb, " /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R", font, content)
		if p.Rotate != 0 {
			fmt.Fprintf(&sb, " /Rotate %d", p.Rotate)
		}
		if len(annots) > 0 {
			fmt.Fprintf(&sb, " /Annots [%s]", strings.Join(annots, " "))
		}
		sb.WriteString(" >>")
		w.fill(pageNr, sb.String())
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNr))
	}

	w.fill(pagesRoot, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(kids)))
	if field != 0 {
		w.fill(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R /AcroForm << /Fields [%d 0 R] /DA (/Helv 0 Tf 0 g) /DR << /Font << /Helv %d 0 R >> >> >> >>", pagesRoot, field, font))
	} else {
		w.fill(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesRoot))
	}

	xref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n0000000000 65535 f \n", len(w.offsets)+1)
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root %d 0 R", len(w.offsets)+1, catalog)
	if info != 0 {
		fmt.Fprintf(&w.buf, " /Info %d 0 R", info)
	}
	fmt.Fprintf(&w.buf, " >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return w.buf.Bytes()
}

func num(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

// Encrypt protects doc with AES-256, using password as user and owner
// password.
func Encrypt(doc []byte, password string) ([]byte, error) {
	var out bytes.Buffer
	conf := model.NewAESConfiguration(password, password, 256)
	if err := pdfapi.Encrypt(bytes.NewReader(doc), &out, conf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
