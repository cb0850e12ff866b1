package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"go-pdftools/internal/pages"
	"go-pdftools/internal/pdf"
	"go-pdftools/internal/utils"
)

// mergeError is the 422 body naming the inputs that failed to parse.
type mergeError struct {
	ErrorFileIDs []string `json:"errorFileIds"`
	Message      string   `json:"message"`
}

// MergePDFs godoc
// @Summary      Merge PDFs
// @Description  Merges the uploaded PDFs into one, optionally sorted and with one bookmark per input
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput      formData  file    true   "PDF files, in merge order"
// @Param        sortType       formData  string  false  "orderProvided, byFileName or byPDFTitle"
// @Param        generateToc    formData  bool    false  "Add a bookmark per input file"
// @Param        clientFileIds  formData  string  false  "JSON array of client ids, one per file"
// @Param        password       formData  string  false  "Password of encrypted inputs"
// @Success      200  {file}    file        "Merged PDF"
// @Failure      400  {string}  string      "Bad request"
// @Failure      422  {object}  mergeError  "Some inputs are not valid PDFs"
// @Router       /api/v1/general/merge-pdfs [post]
func (h *APIHandler) MergePDFs(w http.ResponseWriter, r *http.Request) {
	const op = "merge PDFs"
	if err := h.parseForm(w, r); err != nil {
		fail(w, r, op, err)
		return
	}
	headers := r.MultipartForm.File["fileInput"]
	if len(headers) == 0 {
		http.Error(w, "No files to merge", http.StatusBadRequest)
		return
	}
	if limit := h.Settings.MaxMergeFiles(); len(headers) > limit {
		http.Error(w, fmt.Sprintf("At most %d files can be merged at once", limit), http.StatusBadRequest)
		return
	}

	srcs := make([]pdf.Source, len(headers))
	for i, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			fail(w, r, op, err)
			return
		}
		defer f.Close()
		srcs[i] = pdf.Source{Name: fh.Filename, R: f}
	}

	opts := options(r)
	docs, invalid := pdf.ReadAll(r.Context(), srcs, opts)
	if len(invalid) > 0 {
		ids := clientFileIDs(r.FormValue("clientFileIds"))
		body := mergeError{Message: "Some of the selected files can't be merged"}
		for _, i := range invalid {
			if i < len(ids) {
				body.ErrorFileIDs = append(body.ErrorFileIDs, ids[i])
			} else {
				body.ErrorFileIDs = append(body.ErrorFileIDs, srcs[i].Name)
			}
		}
		slog.Debug("merge rejected", "invalid", body.ErrorFileIDs)
		writeJSON(w, http.StatusUnprocessableEntity, body)
		return
	}

	order, err := sortOrder(r.FormValue("sortType"), srcs, docs)
	if err != nil {
		fail(w, r, op, err)
		return
	}
	sorted := make([]pdf.Source, len(order))
	counts := make([]int, len(order))
	for i, j := range order {
		sorted[i] = srcs[j]
		counts[i] = docs[j].PageCount()
	}

	out, err := pdf.Merge(sorted, counts, pdf.MergeOptions{Options: opts, GenerateTOC: formBool(r, "generateToc")})
	if err != nil {
		fail(w, r, op, err)
		return
	}
	writePDF(w, utils.GenerateFilename(sorted[0].Name, "_merged.pdf"), out)
}

// clientFileIDs decodes the JSON array sent along with the files. Bad
// input yields no ids.
func clientFileIDs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		slog.Warn("ignoring malformed clientFileIds", "value", raw, "err", err)
		return nil
	}
	return ids
}

// sortOrder returns the merge order as indexes into srcs.
func sortOrder(sortType string, srcs []pdf.Source, docs []*pdf.Document) ([]int, error) {
	order := make([]int, len(srcs))
	for i := range order {
		order[i] = i
	}
	switch sortType {
	case "byFileName":
		slices.SortStableFunc(order, func(a, b int) int { return strings.Compare(srcs[a].Name, srcs[b].Name) })
	case "byPDFTitle":
		slices.SortStableFunc(order, func(a, b int) int { return strings.Compare(docs[a].Title(), docs[b].Title()) })
	case "byDateModified", "byDateCreated":
		// uploads carry no file dates
		return nil, badRequest("unsupported sortType %q", sortType)
	}
	// anything else keeps the upload order
	return order, nil
}

// SplitPages godoc
// @Summary      Split a PDF after given pages
// @Description  Splits the PDF after each selected page and returns the parts as a zip
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/zip
// @Param        fileInput    formData  file    true   "PDF file"
// @Param        pageNumbers  formData  string  true   "Pages to split after, e.g. 1,3-5,2n"
// @Param        password     formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Zip of PDF parts"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/split-pages [post]
func (h *APIHandler) SplitPages(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "split PDF", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		at := pages.ParsePageList(r.FormValue("pageNumbers"), doc.PageCount(), false)
		return h.splitInto(w, in, pages.SplitAfter(doc.PageCount(), at), opts)
	})
}

// SplitByCount godoc
// @Summary      Split a PDF into equal parts
// @Description  Splits the PDF into parts of splitValue pages, or into splitValue documents
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/zip
// @Param        fileInput   formData  file    true   "PDF file"
// @Param        splitType   formData  string  true   "pages (1) or docs (2)"
// @Param        splitValue  formData  int     true   "Pages per part or number of parts"
// @Param        password    formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Zip of PDF parts"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/split-by-count [post]
func (h *APIHandler) SplitByCount(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "split PDF", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		value, err := requiredInt(r, "splitValue")
		if err != nil {
			return err
		}
		var chunks [][]int
		switch strings.ToLower(strings.TrimSpace(r.FormValue("splitType"))) {
		case "pages", "1":
			chunks, err = pages.ChunkByCount(doc.PageCount(), value)
		case "docs", "2":
			chunks, err = pages.ChunkIntoDocs(doc.PageCount(), value)
		default:
			return badRequest("splitType must be pages or docs")
		}
		if err != nil {
			return err
		}
		return h.splitInto(w, in, chunks, opts)
	})
}

func (h *APIHandler) splitInto(w http.ResponseWriter, in *upload, chunks [][]int, opts pdf.Options) error {
	parts, err := pdf.Split(in.File, chunks, opts)
	if err != nil {
		return err
	}
	return writeParts(w, in.Name, parts)
}

func writeParts(w http.ResponseWriter, name string, parts [][]byte) error {
	docs := make([]namedDoc, len(parts))
	for i, p := range parts {
		docs[i] = namedDoc{Name: utils.GenerateFilename(name, fmt.Sprintf("_%d.pdf", i+1)), Data: p}
	}
	return writeZip(w, utils.GenerateFilename(name, "_split.zip"), docs)
}

// SplitSections godoc
// @Summary      Split pages into sections
// @Description  Cuts every page into a grid of sections, each becoming a page
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf,application/zip
// @Param        fileInput            formData  file    true   "PDF file"
// @Param        horizontalDivisions  formData  int     false  "Horizontal cuts per page"
// @Param        verticalDivisions    formData  int     false  "Vertical cuts per page"
// @Param        merge                formData  bool    false  "Return one PDF instead of a zip"
// @Param        password             formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "PDF or zip of sections"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/split-pdf-by-sections [post]
func (h *APIHandler) SplitSections(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "split PDF into sections", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		horizontal, err := formInt(r, "horizontalDivisions", 0)
		if err != nil {
			return err
		}
		vertical, err := formInt(r, "verticalDivisions", 0)
		if err != nil {
			return err
		}
		merge := formBool(r, "merge")
		parts, err := pdf.SplitSections(in.File, horizontal, vertical, merge, opts)
		if err != nil {
			return err
		}
		if merge {
			writePDF(w, utils.GenerateFilename(in.Name, "_split.pdf"), parts[0])
			return nil
		}
		return writeParts(w, in.Name, parts)
	})
}

// SplitChapters godoc
// @Summary      Split a PDF at its bookmarks
// @Description  Splits the PDF into one document per chapter of its outline and returns them as a zip
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/zip
// @Param        fileInput        formData  file    true   "PDF file"
// @Param        bookmarkLevel    formData  int     false  "Deepest outline level that starts a chapter, 0 is the top level"
// @Param        includeMetadata  formData  bool    false  "Copy the document information into every chapter"
// @Param        allowDuplicates  formData  bool    false  "Keep bookmarks sharing a page as chapters of their own"
// @Param        password         formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Zip of chapters"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/split-pdf-by-chapters [post]
func (h *APIHandler) SplitChapters(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "split PDF by chapters", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		level, err := formInt(r, "bookmarkLevel", 0)
		if err != nil {
			return err
		}
		parts, err := pdf.SplitChapters(in.File, pdf.ChapterOptions{
			Options:         opts,
			Level:           level,
			AllowDuplicates: formBool(r, "allowDuplicates"),
			IncludeMetadata: formBool(r, "includeMetadata"),
		})
		if err != nil {
			return err
		}
		width := len(strconv.Itoa(len(parts)))
		docs := make([]namedDoc, len(parts))
		for i, p := range parts {
			docs[i] = namedDoc{Name: fmt.Sprintf("%0*d_%s.pdf", width, i+1, utils.SanitizeFilename(p.Title)), Data: p.PDF}
		}
		slog.Debug("split by chapters", "file", in.Name, "chapters", len(parts))
		return writeZip(w, utils.GenerateFilename(in.Name, "_chapters.zip"), docs)
	})
}

// RotatePDF godoc
// @Summary      Rotate pages
// @Description  Rotates the selected pages, or all pages, clockwise by a multiple of 90 degrees
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput    formData  file    true   "PDF file"
// @Param        angle        formData  int     true   "Multiple of 90"
// @Param        pageNumbers  formData  string  false  "Pages to rotate, all when empty"
// @Param        password     formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Rotated PDF"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/rotate-pdf [post]
func (h *APIHandler) RotatePDF(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "rotate PDF", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		angle, err := requiredInt(r, "angle")
		if err != nil {
			return err
		}
		var selected []int
		if expr := strings.TrimSpace(r.FormValue("pageNumbers")); expr != "" {
			if selected = pages.ParsePageList(expr, doc.PageCount(), false); len(selected) == 0 {
				return badRequest("pageNumbers selects no page")
			}
		}
		out, err := pdf.Rotate(in.File, angle, selected, opts)
		if err != nil {
			return err
		}
		writePDF(w, utils.GenerateFilename(in.Name, "_rotated.pdf"), out)
		return nil
	})
}

// CropPDF godoc
// @Summary      Crop pages
// @Description  Sets the visible area of every page to the given rectangle, in points from the lower-left corner
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        x          formData  number  false  "Left edge"
// @Param        y          formData  number  false  "Bottom edge"
// @Param        width      formData  number  true   "Width"
// @Param        height     formData  number  true   "Height"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Cropped PDF"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/crop [post]
func (h *APIHandler) CropPDF(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "crop PDF", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		var rect pages.Rect
		var err error
		for _, f := range []struct {
			key string
			dst *float64
		}{{"x", &rect.X}, {"y", &rect.Y}, {"width", &rect.Width}, {"height", &rect.Height}} {
			if *f.dst, err = formFloat(r, f.key, 0); err != nil {
				return err
			}
		}
		out, err := pdf.Crop(in.File, rect, opts)
		if err != nil {
			return err
		}
		writePDF(w, utils.GenerateFilename(in.Name, "_cropped.pdf"), out)
		return nil
	})
}

// ScalePages godoc
// @Summary      Scale pages
// @Description  Resizes every page to a standard size and fits its content, or scales content in place with KEEP
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput    formData  file    true   "PDF file"
// @Param        pageSize     formData  string  false  "A0-A6, LETTER, LEGAL, TABLOID or KEEP"
// @Param        scaleFactor  formData  number  false  "Content scale for KEEP"
// @Param        password     formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Scaled PDF"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/scale-pages [post]
func (h *APIHandler) ScalePages(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "scale PDF", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		size := r.FormValue("pageSize")
		if size == "" {
			size = "A4"
		}
		factor, err := formFloat(r, "scaleFactor", 1)
		if err != nil {
			return err
		}
		out, err := pdf.Scale(in.File, size, factor, opts)
		if err != nil {
			return err
		}
		writePDF(w, utils.GenerateFilename(in.Name, "_scaled.pdf"), out)
		return nil
	})
}

// RearrangePages godoc
// @Summary      Rearrange pages
// @Description  Reorders pages by a custom page list or one of the predefined modes
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput    formData  file    true   "PDF file"
// @Param        customMode   formData  string  false  "CUSTOM, REVERSE_ORDER, DUPLEX_SORT, BOOKLET_SORT, SIDE_STITCH_BOOKLET_SORT, ODD_EVEN_SPLIT, ODD_EVEN_MERGE, REMOVE_FIRST, REMOVE_LAST, REMOVE_FIRST_AND_LAST or DUPLICATE"
// @Param        pageNumbers  formData  string  false  "Page order for CUSTOM, copy count for DUPLICATE"
// @Param        password     formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Rearranged PDF"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/rearrange-pages [post]
func (h *APIHandler) RearrangePages(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "rearrange pages", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		order, err := pages.Rearrange(pages.Mode(r.FormValue("customMode")), doc.PageCount(), r.FormValue("pageNumbers"))
		if err != nil {
			return err
		}
		out, err := pdf.SelectPages(in.File, order, opts)
		if err != nil {
			return err
		}
		writePDF(w, utils.GenerateFilename(in.Name, "_rearranged.pdf"), out)
		return nil
	})
}

// RemovePages godoc
// @Summary      Remove pages
// @Description  Deletes the selected pages
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput    formData  file    true   "PDF file"
// @Param        pageNumbers  formData  string  true   "Pages to remove"
// @Param        password     formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "PDF without the removed pages"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/remove-pages [post]
func (h *APIHandler) RemovePages(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "remove pages", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		list := r.FormValue("pageNumbers")
		if strings.TrimSpace(list) == "" {
			return badRequest("pageNumbers is required")
		}
		remove := pages.ParsePageList(list, doc.PageCount(), false)
		keep := pages.RemovePages(doc.PageCount(), remove)
		if len(keep) == 0 {
			return badRequest("cannot remove every page")
		}
		out, err := pdf.SelectPages(in.File, keep, opts)
		if err != nil {
			return err
		}
		writePDF(w, utils.GenerateFilename(in.Name, "_removed_pages.pdf"), out)
		return nil
	})
}

// MultiPageLayout godoc
// @Summary      Put several pages on one sheet
// @Description  Lays out source pages in a grid on A4 sheets
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput      formData  file    true   "PDF file"
// @Param        mode           formData  string  false  "DEFAULT or CUSTOM"
// @Param        pagesPerSheet  formData  int     false  "2, 3 or a perfect square (DEFAULT)"
// @Param        rows           formData  int     false  "Rows (CUSTOM)"
// @Param        cols           formData  int     false  "Columns (CUSTOM)"
// @Param        orientation    formData  string  false  "PORTRAIT or LANDSCAPE"
// @Param        pageOrder      formData  string  false  "LR_TD, RL_TD, TD_LR or TD_RL"
// @Param        addBorder      formData  bool    false  "Frame every cell"
// @Param        password       formData  string  false  "Password of an encrypted input"
// @Success      200  {file}    file    "Laid out PDF"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/multi-page-layout [post]
func (h *APIHandler) MultiPageLayout(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "lay out pages", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		perSheet, err := formInt(r, "pagesPerSheet", 4)
		if err != nil {
			return err
		}
		rows, err := formInt(r, "rows", 0)
		if err != nil {
			return err
		}
		cols, err := formInt(r, "cols", 0)
		if err != nil {
			return err
		}
		grid, err := pages.ResolveGrid(r.FormValue("mode"), perSheet, rows, cols)
		if err != nil {
			return err
		}
		order, err := pages.ParseOrder(r.FormValue("pageOrder"))
		if err != nil {
			return err
		}
		layout, err := pages.NewLayout(grid, order, r.FormValue("orientation"))
		if err != nil {
			return err
		}
		out, err := pdf.MultiPageLayout(in.File, layout, formBool(r, "addBorder"), opts)
		if err != nil {
			return err
		}
		writePDF(w, utils.GenerateFilename(in.Name, "_layoutChanged.pdf"), out)
		return nil
	})
}

// OverlayPDFs godoc
// @Summary      Overlay PDFs
// @Description  Stamps pages of the overlay files onto the base PDF, in front of or behind its content
// @Tags         general
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        fileInput        formData  file    true   "Base PDF"
// @Param        overlayFiles     formData  file    true   "Overlay PDFs"
// @Param        overlayMode      formData  string  false  "SequentialOverlay, InterleavedOverlay or FixedRepeatOverlay"
// @Param        counts           formData  string  false  "Base pages per overlay file (FixedRepeatOverlay)"
// @Param        overlayPosition  formData  string  false  "0 or foreground, 1 or background"
// @Param        password         formData  string  false  "Password of encrypted inputs"
// @Success      200  {file}    file    "Overlaid PDF"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/general/overlay-pdfs [post]
func (h *APIHandler) OverlayPDFs(w http.ResponseWriter, r *http.Request) {
	h.withPDF(w, r, "overlay PDFs", func(in *upload, doc *pdf.Document, opts pdf.Options) error {
		headers := r.MultipartForm.File["overlayFiles"]
		if len(headers) == 0 {
			return badRequest("missing file overlayFiles")
		}
		overlays := make([]io.ReadSeeker, 0, len(headers))
		for _, fh := range headers {
			o, err := openPDF(fh)
			if err != nil {
				return err
			}
			defer o.File.Close()
			overlays = append(overlays, o.File)
		}
		counts, err := formInts(r, "counts")
		if err != nil {
			return err
		}
		var foreground bool
		switch strings.ToLower(strings.TrimSpace(r.FormValue("overlayPosition"))) {
		case "", "0", "foreground":
			foreground = true
		case "1", "background":
		default:
			return badRequest("overlayPosition must be 0 (foreground) or 1 (background)")
		}
		out, err := pdf.Overlay(in.File, overlays, pdf.OverlayOptions{
			Options:    opts,
			Mode:       pages.OverlayMode(r.FormValue("overlayMode")),
			Counts:     counts,
			Foreground: foreground,
		})
		if err != nil {
			return err
		}
		writePDF(w, utils.GenerateFilename(in.Name, "_overlayed.pdf"), out)
		return nil
	})
}

// withPDF parses the form, opens and reads fileInput and runs fn on it.
func (h *APIHandler) withPDF(w http.ResponseWriter, r *http.Request, op string, fn func(*upload, *pdf.Document, pdf.Options) error) {
	if err := h.parseForm(w, r); err != nil {
		fail(w, r, op, err)
		return
	}
	in, err := formPDF(r, "fileInput")
	if err != nil {
		fail(w, r, op, err)
		return
	}
	defer in.File.Close()

	opts := options(r)
	doc, err := pdf.Read(in.File, opts)
	if err != nil {
		fail(w, r, op, err)
		return
	}
	if err := fn(in, doc, opts); err != nil {
		fail(w, r, op, err)
	}
}
