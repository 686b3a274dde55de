package reader

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/contour/model"
)

// defaultPageHeight is US Letter in points, used when a page carries no
// usable MediaBox.
const defaultPageHeight = 792.0

// ExtractSpans reads a PDF file and returns its text spans in reading
// order (page by page, content-stream order within a page). Span text is
// NFKC-normalized with whitespace collapsed; spans that normalize to
// nothing are dropped. Pages whose content cannot be decoded are skipped
// rather than failing the document.
func ExtractSpans(path string) ([]model.TextSpan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return extractSpans(f)
}

func extractSpans(rs io.ReadSeeker) ([]model.TextSpan, error) {
	ctx, err := api.ReadValidateAndOptimize(rs, pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	heights := pageHeights(ctx)

	var spans []model.TextSpan
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		data := pageContent(ctx, pageNr)
		if len(data) == 0 {
			continue
		}

		h := defaultPageHeight
		if pageNr-1 < len(heights) && heights[pageNr-1] > 0 {
			h = heights[pageNr-1]
		}

		p := newContentParser(pageNr, h, pageFonts(ctx, pageNr))
		for _, s := range p.parse(data) {
			s.Text = Normalize(s.Text)
			if s.Text == "" {
				continue
			}
			spans = append(spans, s)
		}
	}

	return spans, nil
}

// pageContent returns the decoded content stream for one page, or nil if
// it cannot be read.
func pageContent(ctx *pdfmodel.Context, pageNr int) []byte {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil || r == nil {
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return data
}

// pageHeights returns per-page media box heights, best effort.
func pageHeights(ctx *pdfmodel.Context) []float64 {
	dims, err := ctx.PageDims()
	if err != nil {
		return nil
	}
	heights := make([]float64, len(dims))
	for i, d := range dims {
		heights[i] = d.Height
	}
	return heights
}

// pageFonts maps a page's font resource names ("F1") to font info, using
// the optimization tables pdfcpu builds during ReadValidateAndOptimize.
func pageFonts(ctx *pdfmodel.Context, pageNr int) map[string]fontInfo {
	fonts := make(map[string]fontInfo)
	if ctx.Optimize == nil {
		return fonts
	}
	for _, objNr := range pdfcpu.FontObjNrs(ctx, pageNr) {
		fo, ok := ctx.Optimize.FontObjects[objNr]
		if !ok || fo == nil {
			continue
		}
		info := fontInfo{name: fo.FontName, bold: isBoldFont(fo.FontName)}
		for _, res := range fo.ResourceNames {
			fonts[res] = info
		}
	}
	return fonts
}
