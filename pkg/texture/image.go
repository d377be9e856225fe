package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image samples a decoded raster image with nearest-texel lookup,
// grounded on the teacher's pkg/material/image_texture.go and
// pkg/loaders/image.go (generalized to also accept BMP/TIFF via the
// blank-imported golang.org/x/image decoders, since scene authoring is an
// external collaborator's concern but the decoder registration itself is
// ambient infrastructure this package owns).
type Image struct {
	Width, Height int
	Pixels        []core.ColorRGB // row-major, Pixels[y*Width+x]
	FlipV         bool
}

func NewImage(width, height int, pixels []core.ColorRGB) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// LoadImage decodes a PNG, JPEG, BMP or TIFF file into an Image texture.
func LoadImage(filename string) (*Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", filename, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.ColorRGB, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r)/65535, float64(g)/65535, float64(b)/65535)
		}
	}
	return &Image{Width: width, Height: height, Pixels: pixels, FlipV: true}, nil
}

func (t *Image) Evaluate(uv core.Vec2, point core.Vec3) core.ColorRGB {
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1
	}
	if v < 0 {
		v += 1
	}
	if t.FlipV {
		v = 1 - v
	}

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return t.Pixels[y*t.Width+x]
}
