package g2p

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/spatial/r3"
)

// MapWindow is the local-frame area an aperture map covers, at depth Z.
type MapWindow struct {
	HalfX, HalfY Real
	Z            Real
}

// SieveWindow covers every hole of s with a 10% margin.
func SieveWindow(s *Sieve) MapWindow {
	hx, hy := s.Extent()
	return MapWindow{HalfX: hx * 1.1, HalfY: hy * 1.1, Z: s.Z()}
}

// RenderAperture rasterises the passable region of s inside w. The picture is
// drawn supersample times larger and scaled down, so hole edges come out
// anti-aliased. Image x follows local y and image rows follow local x
// (top row = +x), the usual sieve view from the target.
func RenderAperture(s Surface, w MapWindow, res, supersample int) (*image.Gray16, error) {
	if res <= 0 || supersample <= 0 {
		return nil, fmt.Errorf("%w: aperture map needs res and supersample > 0, got %d and %d", ErrConfig, res, supersample)
	}
	if !(w.HalfX > 0) || !(w.HalfY > 0) {
		return nil, fmt.Errorf("%w: aperture map window must be non-empty, got %+v", ErrConfig, w)
	}
	// keep the aspect ratio of the window
	nx, ny := res, res
	if w.HalfY > w.HalfX {
		nx = int(Real(res)*w.HalfX/w.HalfY + 0.5)
	} else {
		ny = int(Real(res)*w.HalfY/w.HalfX + 0.5)
	}
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	bigW, bigH := ny*supersample, nx*supersample
	big := image.NewGray16(image.Rect(0, 0, bigW, bigH))

	// Progress print step (~10%).
	step := imax(1, bigH/10)
	for j := 0; j < bigH; j++ {
		if j%step == 0 {
			DebugLog("[MAP] %.2f%%", Real(j)*100/Real(bigH))
		}
		x := w.HalfX - (Real(j)+0.5)/Real(bigH)*2*w.HalfX
		rowOff := j * big.Stride
		for i := 0; i < bigW; i++ {
			y := -w.HalfY + (Real(i)+0.5)/Real(bigW)*2*w.HalfY
			if s.PassableLocal(r3.Vec{X: x, Y: y, Z: w.Z}) {
				big.Pix[rowOff+2*i] = 0xFF
				big.Pix[rowOff+2*i+1] = 0xFF
			}
		}
	}
	if supersample == 1 {
		return big, nil
	}
	out := image.NewGray16(image.Rect(0, 0, ny, nx))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	return out, nil
}

// SaveApertureMap writes img as WebP when path ends in .webp, PNG otherwise.
func SaveApertureMap(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aperture map: create %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		b := img.Bounds()
		rgba := image.NewNRGBA(b)
		draw.Draw(rgba, b, img, b.Min, draw.Src)
		err = nativewebp.Encode(f, rgba, nil)
	default:
		enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
		err = enc.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("aperture map: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("aperture map: write %s: %w", path, err)
	}
	return nil
}
