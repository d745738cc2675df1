package docrender

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"skill-extraction-backend/pkg/security"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/draw"
)

// maxPageDim caps page image dimensions. Larger pages are downscaled before
// encoding; the model reads text fine at this size and the request stays small.
const maxPageDim = 2048

// Renderer converts an uploaded document into the ordered sequence of PNG
// page images the analysis model consumes. No OCR happens here.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns one PNG per page for PDFs, in page order. Raster uploads
// (png/jpg/jpeg) become a single-page sequence, re-encoded to PNG so the
// downstream request carries one content type.
func (r *Renderer) Render(filePath string) ([][]byte, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch {
	case ext == ".pdf":
		return r.renderPDF(filePath)
	case security.IsImageExtension(ext):
		return r.renderImage(filePath, ext)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

func (r *Renderer) renderPDF(filePath string) ([][]byte, error) {
	doc, err := fitz.New(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	pages := make([][]byte, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", n+1, err)
		}

		data, err := encodePNG(downscale(img))
		if err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", n+1, err)
		}
		pages = append(pages, data)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}
	return pages, nil
}

func (r *Renderer) renderImage(filePath, ext string) ([][]byte, error) {
	// AutoOrientation: phone photos carry EXIF rotation the model won't apply
	img, err := imaging.Open(filePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if ext == ".png" && bounds.Dx() <= maxPageDim && bounds.Dy() <= maxPageDim {
		// Already model-consumable, pass the original bytes through
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		return [][]byte{data}, nil
	}

	data, err := encodePNG(downscale(img))
	if err != nil {
		return nil, err
	}
	return [][]byte{data}, nil
}

// downscale shrinks images exceeding maxPageDim, preserving aspect ratio.
func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxPageDim && h <= maxPageDim {
		return img
	}

	scale := float64(maxPageDim) / float64(w)
	if h > w {
		scale = float64(maxPageDim) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
