package main

import (
	"image/color"

	"github.com/furui/fastnoiselite-go"
	"github.com/hajimehoshi/ebiten/v2"
	. "github.com/quasilyte/gmath"
)

// Backdrop is a faint noise texture drawn behind all layers.
type Backdrop struct {
	Base  color.NRGBA
	Shade color.NRGBA

	noise *fastnoiselite.FastNoiseLite
	image *ebiten.Image
}

func NewBackdrop(seed int32, base, shade color.NRGBA) *Backdrop {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = seed
	noise.Frequency = 0.01

	return &Backdrop{
		Base:  base,
		Shade: shade,
		noise: noise,
	}
}

func (b *Backdrop) Draw(target *ebiten.Image) {
	size := target.Bounds().Size()

	if b.image == nil || b.image.Bounds().Size() != size {
		if b.image != nil {
			b.image.Deallocate()
		}

		b.image = b.render(size.X, size.Y)
	}

	target.DrawImage(b.image, nil)
}

func (b *Backdrop) render(width, height int) *ebiten.Image {
	pixels := make([]uint8, width*height*4)

	var pos int
	for y := range height {
		for x := range width {
			f := b.valueAt(Vec{X: float64(x), Y: float64(y)})

			pixels[pos+0] = lerpChannel(b.Base.R, b.Shade.R, f)
			pixels[pos+1] = lerpChannel(b.Base.G, b.Shade.G, f)
			pixels[pos+2] = lerpChannel(b.Base.B, b.Shade.B, f)
			pixels[pos+3] = 0xff

			pos += 4
		}
	}

	img := ebiten.NewImage(width, height)
	img.WritePixels(pixels)
	return img
}

// valueAt returns the noise in the range 0 to 1.
func (b *Backdrop) valueAt(point Vec) float64 {
	value := b.noise.GetNoise2D(fastnoiselite.FNLfloat(point.X), fastnoiselite.FNLfloat(point.Y))
	return min(max((float64(value)+1)/2, 0), 1)
}

func lerpChannel(from, to uint8, f float64) uint8 {
	return uint8(Lerp(float64(from), float64(to), f))
}
