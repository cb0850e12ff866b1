package handlers

import (
	"net/http"

	"go-pdftools/internal/pdf"
)

// inspect answers with the part of the document Info that pick selects.
func (h *APIHandler) inspect(w http.ResponseWriter, r *http.Request, pick func(*pdf.Info) any) {
	const op = "analyse PDF"
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

	info, err := pdf.Inspect(in.File, options(r))
	if err != nil {
		fail(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, pick(info))
}

// PageCount godoc
// @Summary      Count pages
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  map[string]int  "{ pageCount: int }"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/page-count [post]
func (h *APIHandler) PageCount(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any {
		return map[string]int{"pageCount": i.PageCount}
	})
}

// BasicInfo godoc
// @Summary      Page count, version and size
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  map[string]interface{}  "{ pageCount: int, pdfVersion: string, fileSize: int }"
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/basic-info [post]
func (h *APIHandler) BasicInfo(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any {
		return map[string]any{
			"pageCount":  i.PageCount,
			"pdfVersion": i.PDFVersion,
			"fileSize":   i.FileSize,
		}
	})
}

// DocumentProperties godoc
// @Summary      Document information dictionary
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  pdf.Properties
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/document-properties [post]
func (h *APIHandler) DocumentProperties(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any { return i.Properties })
}

// PageDimensions godoc
// @Summary      Size of every page
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {array}   pdf.Dimension
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/page-dimensions [post]
func (h *APIHandler) PageDimensions(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any { return i.Dimensions })
}

// FormFields godoc
// @Summary      Interactive form summary
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  pdf.FormInfo
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/form-fields [post]
func (h *APIHandler) FormFields(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any { return i.Form })
}

// AnnotationInfo godoc
// @Summary      Annotation counts by type
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  pdf.AnnotationInfo
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/annotation-info [post]
func (h *APIHandler) AnnotationInfo(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any { return i.Annotations })
}

// FontInfo godoc
// @Summary      Font resources in use
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  pdf.FontInfo
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/font-info [post]
func (h *APIHandler) FontInfo(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any { return i.Fonts })
}

// SecurityInfo godoc
// @Summary      Encryption and permissions
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  pdf.SecurityInfo
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/security-info [post]
func (h *APIHandler) SecurityInfo(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any { return i.Security })
}

// Info godoc
// @Summary      Everything above in one document
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        fileInput  formData  file    true   "PDF file"
// @Param        password   formData  string  false  "Password of an encrypted input"
// @Success      200  {object}  pdf.Info
// @Failure      400  {string}  string  "Bad request"
// @Router       /api/v1/analysis/info [post]
func (h *APIHandler) Info(w http.ResponseWriter, r *http.Request) {
	h.inspect(w, r, func(i *pdf.Info) any { return i })
}
