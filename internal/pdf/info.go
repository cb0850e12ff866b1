package pdf

import (
	"io"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Dimension is the width and height of one page in points.
type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Properties is the document information dictionary.
type Properties struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	Subject          string `json:"subject"`
	Keywords         string `json:"keywords"`
	Creator          string `json:"creator"`
	Producer         string `json:"producer"`
	CreationDate     string `json:"creationDate"`
	ModificationDate string `json:"modificationDate"`
}

// FormInfo summarises the interactive form.
type FormInfo struct {
	FieldCount        int  `json:"fieldCount"`
	HasXFA            bool `json:"hasXFA"`
	IsSignaturesExist bool `json:"isSignaturesExist"`
}

// AnnotationInfo counts annotations by subtype.
type AnnotationInfo struct {
	AnnotationsCount int            `json:"totalCount"`
	AnnotationTypes  map[string]int `json:"typeBreakdown"`
}

// FontInfo lists the font resource names used by any page.
type FontInfo struct {
	FontCount int      `json:"fontCount"`
	Fonts     []string `json:"fonts"`
}

// SecurityInfo describes the encryption of the input file.
type SecurityInfo struct {
	IsEncrypted bool            `json:"isEncrypted"`
	KeyLength   int             `json:"keyLength,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

// Info is everything the analysis endpoints report about a document.
type Info struct {
	PageCount   int            `json:"pageCount"`
	PDFVersion  string         `json:"pdfVersion"`
	FileSize    int64          `json:"fileSize"`
	Properties  Properties     `json:"properties"`
	Dimensions  []Dimension    `json:"pageDimensions"`
	Form        FormInfo       `json:"formFields"`
	Annotations AnnotationInfo `json:"annotationInfo"`
	Fonts       FontInfo       `json:"fontInfo"`
	Security    SecurityInfo   `json:"securityInfo"`
}

// Inspect reads rs and collects its Info.
func Inspect(rs io.ReadSeeker, opts Options) (*Info, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}

	info := &Info{
		PageCount:  ctx.PageCount,
		PDFVersion: ctx.VersionString(),
		FileSize:   size,
		Security:   securityInfo(ctx),
		Properties: Properties{
			Title:            ctx.Title,
			Author:           ctx.Author,
			Subject:          ctx.Subject,
			Keywords:         ctx.Keywords,
			Creator:          ctx.Creator,
			Producer:         ctx.Producer,
			CreationDate:     ctx.XRefTable.CreationDate,
			ModificationDate: ctx.ModDate,
		},
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, err
	}
	for _, d := range dims {
		info.Dimensions = append(info.Dimensions, Dimension{Width: d.Width, Height: d.Height})
	}

	if info.Form, err = formInfo(ctx); err != nil {
		return nil, err
	}
	if info.Annotations, err = annotationInfo(ctx); err != nil {
		return nil, err
	}
	if info.Fonts, err = fontInfo(ctx); err != nil {
		return nil, err
	}
	return info, nil
}

func formInfo(ctx *model.Context) (FormInfo, error) {
	var fi FormInfo
	root, err := ctx.Catalog()
	if err != nil {
		return fi, err
	}
	obj, found := root.Find("AcroForm")
	if !found {
		return fi, nil
	}
	form, err := ctx.DereferenceDict(obj)
	if err != nil || form == nil {
		return fi, err
	}

	if o, found := form.Find("Fields"); found {
		fields, err := ctx.DereferenceArray(o)
		if err != nil {
			return fi, err
		}
		fi.FieldCount = len(fields)
	}
	_, fi.HasXFA = form.Find("XFA")
	if flags := form.IntEntry("SigFlags"); flags != nil {
		fi.IsSignaturesExist = *flags&1 != 0
	}
	return fi, nil
}

func annotationInfo(ctx *model.Context) (AnnotationInfo, error) {
	ai := AnnotationInfo{AnnotationTypes: map[string]int{}}
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		d, _, _, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return ai, err
		}
		o, found := d.Find("Annots")
		if !found {
			continue
		}
		annots, err := ctx.DereferenceArray(o)
		if err != nil {
			return ai, err
		}
		for _, a := range annots {
			ad, err := ctx.DereferenceDict(a)
			if err != nil || ad == nil {
				continue
			}
			subtype := "Unknown"
			if s := ad.NameEntry("Subtype"); s != nil {
				subtype = *s
			}
			ai.AnnotationsCount++
			ai.AnnotationTypes[subtype]++
		}
	}
	return ai, nil
}

func fontInfo(ctx *model.Context) (FontInfo, error) {
	names := map[string]bool{}
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		_, _, inh, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return FontInfo{}, err
		}
		if inh.Resources == nil {
			continue
		}
		o, found := inh.Resources.Find("Font")
		if !found {
			continue
		}
		fonts, err := ctx.DereferenceDict(o)
		if err != nil {
			return FontInfo{}, err
		}
		for name := range fonts {
			names[name] = true
		}
	}
	fi := FontInfo{Fonts: make([]string, 0, len(names))}
	for name := range names {
		fi.Fonts = append(fi.Fonts, name)
	}
	sort.Strings(fi.Fonts)
	fi.FontCount = len(fi.Fonts)
	return fi, nil
}

// Permission bits of the standard security handler's P entry.
const (
	permPrint       = 1 << 2
	permModify      = 1 << 3
	permExtract     = 1 << 4
	permAnnotations = 1 << 5
)

func securityInfo(ctx *model.Context) SecurityInfo {
	if ctx.Encrypt == nil || ctx.E == nil {
		return SecurityInfo{}
	}
	keyLength := ctx.E.L
	if keyLength == 0 {
		keyLength = 40
	}
	p := ctx.E.P
	return SecurityInfo{
		IsEncrypted: true,
		KeyLength:   keyLength,
		Permissions: map[string]bool{
			"preventPrinting":          p&permPrint == 0,
			"preventModify":            p&permModify == 0,
			"preventExtractContent":    p&permExtract == 0,
			"preventModifyAnnotations": p&permAnnotations == 0,
		},
	}
}
