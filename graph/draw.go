package graph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gmath"
	"golang.org/x/image/font/gofont/goregular"
)

var FontSource = sync.OnceValue(func() *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	return source
})

func FontFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: FontSource(), Size: size}
}

var whiteImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// RGBA converts a 0xRRGGBBAA value to a color.
func RGBA(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

// ParseHexColor parses colors in the form #RRGGBB or #AARRGGBB.
func ParseHexColor(value string) (color.NRGBA, error) {
	digits, ok := strings.CutPrefix(value, "#")
	if !ok || (len(digits) != 6 && len(digits) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
	}

	parsed, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}

	if len(digits) == 6 {
		return RGBA(uint32(parsed)<<8 | 0xff), nil
	}

	// alpha comes first, move it to the end
	argb := uint32(parsed)
	return RGBA(argb<<8 | argb>>24), nil
}

func WithAlpha(c color.Color, alpha uint8) color.NRGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = alpha
	return nrgba
}

func MeasureText(face text.Face, t string) gmath.Vec {
	width, height := text.Measure(t, face, 0)
	return gmath.Vec{X: width, Y: height}
}

func DrawText(target *ebiten.Image, msg string, face text.Face, pos gmath.Vec, c color.Color, primaryAlign, secondaryAlign text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = primaryAlign
	op.SecondaryAlign = secondaryAlign
	op.ColorScale.ScaleWithColor(c)
	text.Draw(target, msg, face, op)
}

func DrawTextCenter(target *ebiten.Image, msg string, face text.Face, pos gmath.Vec, c color.Color) {
	DrawText(target, msg, face, pos, c, text.AlignCenter, text.AlignCenter)
}

var circleVertices []ebiten.Vertex
var circleIndices []uint16

var circleScratch []ebiten.Vertex

func DrawFillCircle(target *ebiten.Image, center gmath.Vec, radius float64, c color.Color) {
	if circleVertices == nil {
		var path vector.Path
		path.Arc(0, 0, 100, 0, 2*math.Pi, vector.Clockwise)
		circleVertices, circleIndices = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	var tr ebiten.GeoM
	tr.Scale(0.01*radius, 0.01*radius)
	tr.Translate(center.X, center.Y)

	vertices := transformVertices(tr, circleVertices, &circleScratch)
	applyColorToVertices(vertices, c)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, circleIndices, whiteImage(), op)
}

var rrVertices []ebiten.Vertex
var rrIndices []uint16

func DrawRoundRect(target *ebiten.Image, pos gmath.Vec, size gmath.Vec, radius float64, c color.Color) {
	r := float32(min(radius, size.X/2, size.Y/2))
	p := pos.AsVec32()
	s := size.AsVec32()

	var path vector.Path

	c0 := p
	c1 := p.Add(gmath.Vec32{X: s.X})
	c2 := p.Add(gmath.Vec32{Y: s.Y})
	c3 := p.Add(s)

	path.MoveTo(c0.X+r, c0.Y)
	path.ArcTo(c1.X, c1.Y, c3.X, c3.Y, r)
	path.ArcTo(c3.X, c3.Y, c2.X, c2.Y, r)
	path.ArcTo(c2.X, c2.Y, c0.X, c0.Y, r)
	path.ArcTo(c0.X, c0.Y, c1.X, c1.Y, r)

	rrVertices, rrIndices = path.AppendVerticesAndIndicesForFilling(rrVertices[:0], rrIndices[:0])
	applyColorToVertices(rrVertices, c)

	target.DrawTriangles(rrVertices, rrIndices, whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func transformVertices(tr ebiten.GeoM, vertices []ebiten.Vertex, reuse *[]ebiten.Vertex) []ebiten.Vertex {
	trVertices := (*reuse)[:0]

	for _, vertex := range vertices {
		x, y := tr.Apply(float64(vertex.DstX), float64(vertex.DstY))
		vertex.DstX, vertex.DstY = float32(x), float32(y)
		trVertices = append(trVertices, vertex)
	}

	*reuse = trVertices[:0]
	return trVertices
}

func applyColorToVertices(vertices []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()

	for idx := range vertices {
		vertices[idx].SrcX = 1.5
		vertices[idx].SrcY = 1.5
		vertices[idx].ColorR = float32(r) / 0xffff
		vertices[idx].ColorG = float32(g) / 0xffff
		vertices[idx].ColorB = float32(b) / 0xffff
		vertices[idx].ColorA = float32(a) / 0xffff
	}
}

func splatVec(val float64) gmath.Vec {
	return gmath.Vec{X: val, Y: val}
}
