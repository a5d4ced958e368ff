package inputmodule

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
)

// Fit scales img to fill w×h, cropping what does not fit around the center.
func Fit(img image.Image, w, h int) image.Image {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	g := gift.New(gift.ResizeToFill(w, h, gift.LinearResampling, gift.CenterAnchor))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// rgb8 drops the alpha channel without premultiplying, so transparent
// pixels keep their colour.
func rgb8(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

func checkSize(img image.Image, w, h int) error {
	if got := img.Bounds().Size(); got.X != w || got.Y != h {
		return &ImageSizeError{Want: image.Pt(w, h), Got: got}
	}
	return nil
}

// BitmapFromImage converts a 9x34 image. Pixels brighter than half are on.
func BitmapFromImage(img image.Image) (Bitmap, error) {
	var bm Bitmap
	if err := checkSize(img, Width, Height); err != nil {
		return bm, err
	}
	min := img.Bounds().Min
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			bm[x][y] = IsLit(rgb8(img.At(min.X+x, min.Y+y)))
		}
	}
	return bm, nil
}

// GreyscaleFromImage converts a 9x34 image with PixelToBrightness.
func GreyscaleFromImage(img image.Image) (Greyscale, error) {
	var g Greyscale
	if err := checkSize(img, Width, Height); err != nil {
		return g, err
	}
	min := img.Bounds().Min
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			g[x][y] = PixelToBrightness(rgb8(img.At(min.X+x, min.Y+y)))
		}
	}
	return g, nil
}

// B1FromImage converts a 300x400 image. Pixels darker than half are black.
func B1FromImage(img image.Image) (B1Bitmap, error) {
	var b B1Bitmap
	if err := checkSize(img, B1Width, B1Height); err != nil {
		return b, err
	}
	min := img.Bounds().Min
	for x := 0; x < B1Width; x++ {
		for y := 0; y < B1Height; y++ {
			if IsBlack(rgb8(img.At(min.X+x, min.Y+y))) {
				b.Set(x, y, true)
			}
		}
	}
	return b, nil
}

// Image returns the greyscale image as it would look on the matrix.
func (g *Greyscale) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			img.SetGray(x, y, color.Gray{Y: g[x][y]})
		}
	}
	return img
}

// Image returns the bitmap with lit LEDs white.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b[x][y] {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return img
}
