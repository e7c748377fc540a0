// Package vector provides shared handles to loaded SVG images and the
// library that loads and reference-counts them.
package vector

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"geowidgets/pkg/geometry"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrEmptyImage is returned when an SVG has neither a usable width and
// height nor a view box.
var ErrEmptyImage = errors.New("vector image has no size")

// rasterCacheSize bounds the pixel sizes kept per image. Resizing a host
// window produces a new size every frame.
const rasterCacheSize = 4

// unitsPerInch converts absolute SVG lengths to panel units. A 128.5mm
// module is 380 units tall.
const unitsPerInch = 75.0

// Image is an immutable, shareable handle to a decoded SVG document.
// Rasterizations are cached per pixel size.
type Image struct {
	name string
	size geometry.Size
	icon *oksvg.SvgIcon

	mu      sync.Mutex
	rasters map[image.Point]*image.RGBA
	recent  []image.Point // least recently used first
}

// Load decodes the SVG file at path.
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open svg: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, file)
}

// Parse decodes an SVG document from r. Unsupported SVG elements are
// skipped rather than treated as errors.
//
// The natural size comes from the root width and height when both are
// given in absolute units (px, mm, cm, in, pt or unitless), and from the
// view box otherwise. The view box is always stretched to fill that size.
func Parse(name string, r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read svg %s: %w", name, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to decode svg %s: %w", name, err)
	}
	size, ok := declaredSize(data)
	if !ok {
		size = geometry.NewSize(icon.ViewBox.W, icon.ViewBox.H)
	}
	if size.IsZero() {
		return nil, fmt.Errorf("svg %s: %w", name, ErrEmptyImage)
	}
	return &Image{
		name:    name,
		size:    size,
		icon:    icon,
		rasters: make(map[image.Point]*image.RGBA),
	}, nil
}

// Name returns the file name the image was loaded from, without extension.
func (img *Image) Name() string {
	if img == nil {
		return ""
	}
	return img.name
}

// Size returns the natural size of the image in panel units.
func (img *Image) Size() geometry.Size {
	if img == nil {
		return geometry.Size{}
	}
	return img.size
}

// Rasterize renders the image scaled by scale and returns the pixels.
// The result is cached and shared; callers must not modify it.
func (img *Image) Rasterize(scale float64) *image.RGBA {
	if img == nil || scale <= 0 {
		return nil
	}
	w := int(math.Ceil(img.size.Width * scale))
	h := int(math.Ceil(img.size.Height * scale))
	if w <= 0 || h <= 0 {
		return nil
	}
	key := image.Pt(w, h)

	img.mu.Lock()
	defer img.mu.Unlock()

	if cached, ok := img.rasters[key]; ok {
		img.touch(key)
		return cached
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	img.icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, out, out.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	img.icon.Draw(dasher, 1.0)

	img.rasters[key] = out
	img.recent = append(img.recent, key)
	if len(img.recent) > rasterCacheSize {
		delete(img.rasters, img.recent[0])
		img.recent = img.recent[1:]
	}
	return out
}

// touch moves key to the most recently used end.
func (img *Image) touch(key image.Point) {
	for i, k := range img.recent {
		if k == key {
			img.recent = append(append(img.recent[:i:i], img.recent[i+1:]...), key)
			return
		}
	}
}

// Rasterized returns how many pixel sizes are currently cached.
func (img *Image) Rasterized() int {
	img.mu.Lock()
	defer img.mu.Unlock()
	return len(img.rasters)
}

// declaredSize reads the width and height attributes of the root element.
func declaredSize(data []byte) (geometry.Size, bool) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return geometry.Size{}, false
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		var w, h string
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "width":
				w = attr.Value
			case "height":
				h = attr.Value
			}
		}
		width, okW := parseLength(w)
		height, okH := parseLength(h)
		if !okW || !okH {
			return geometry.Size{}, false
		}
		return geometry.NewSize(width, height), true
	}
}

// parseLength converts an SVG length to panel units. Relative units are
// rejected.
func parseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	factor := 1.0
	for _, u := range []struct {
		suffix string
		factor float64
	}{
		{"px", 1},
		{"mm", unitsPerInch / 25.4},
		{"cm", unitsPerInch / 2.54},
		{"in", unitsPerInch},
		{"pt", unitsPerInch / 72},
	} {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			factor = u.factor
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * factor, true
}
