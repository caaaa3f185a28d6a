package core

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type TextVertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]float32
}

// ScreenLabel is a label placed in pixels. X is the horizontal center of the
// box, Y its top edge.
type ScreenLabel struct {
	Text  string
	X, Y  float32
	Scale float32
	Color [4]float32
}

type GlyphInfo struct {
	UVMin [2]float32
	UVMax [2]float32
	Size  [2]float32
	Off   [2]float32
	Adv   float32
}

// TextAtlas holds the rasterised label font. The 2x2 texel block at the
// origin is fully opaque and backs the label boxes.
type TextAtlas struct {
	AtlasImage *image.Alpha
	Glyphs     map[rune]GlyphInfo
	Face       font.Face
	Padding    float32
	BoxColor   [4]float32
	solidUV    [2]float32
}

const atlasSize = 256

// NewTextAtlas rasterises printable ASCII and the degree sign from the
// built-in 7x13 face.
func NewTextAtlas() *TextAtlas {
	face := basicfont.Face7x13
	atlas := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(atlas, image.Rect(0, 0, 2, 2), image.Opaque, image.Point{}, draw.Src)
	glyphs := make(map[rune]GlyphInfo)

	runes := make([]rune, 0, 96)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, '°')

	x, y := 4, 2
	rowHeight := 0

	for _, r := range runes {
		bounds, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		w := bounds.Dx()
		h := bounds.Dy()

		if x+w >= atlasSize {
			x = 2
			y += rowHeight + 4
			rowHeight = 0
		}

		if y+h >= atlasSize {
			break
		}

		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), mask, maskp, draw.Src)

		glyphs[r] = GlyphInfo{
			UVMin: [2]float32{float32(x) / atlasSize, float32(y) / atlasSize},
			UVMax: [2]float32{float32(x+w) / atlasSize, float32(y+h) / atlasSize},
			Size:  [2]float32{float32(w), float32(h)},
			Off:   [2]float32{float32(bounds.Min.X), float32(bounds.Min.Y)},
			Adv:   float32(adv) / 64.0,
		}

		x += w + 4
		if h > rowHeight {
			rowHeight = h
		}
	}

	return &TextAtlas{
		AtlasImage: atlas,
		Glyphs:     glyphs,
		Face:       face,
		Padding:    4,
		BoxColor:   [4]float32{0.08, 0.08, 0.08, 0.85},
		solidUV:    [2]float32{1.0 / atlasSize, 1.0 / atlasSize},
	}
}

func (ta *TextAtlas) LineHeight(scale float32) float32 {
	return float32(ta.Face.Metrics().Height.Ceil()) * scale
}

// Measure returns the width of the widest line and the total height.
func (ta *TextAtlas) Measure(text string, scale float32) (float32, float32) {
	maxW := float32(0)
	currentW := float32(0)
	lines := 1

	for _, r := range text {
		if r == '\n' {
			if currentW > maxW {
				maxW = currentW
			}
			currentW = 0
			lines++
			continue
		}

		g, ok := ta.Glyphs[r]
		if !ok {
			continue
		}
		currentW += g.Adv * scale
	}

	if currentW > maxW {
		maxW = currentW
	}

	return maxW, ta.LineHeight(scale) * float32(lines)
}

// BuildQuads emits, per label, a background box followed by its glyphs, in
// normalized device coordinates.
func (ta *TextAtlas) BuildQuads(items []ScreenLabel, screenW, screenH int) []TextVertex {
	vertices := make([]TextVertex, 0, len(items)*64)

	sw := float32(screenW)
	sh := float32(screenH)
	toNDC := func(px, py float32) [2]float32 {
		return [2]float32{px/sw*2.0 - 1.0, 1.0 - py/sh*2.0}
	}
	quad := func(x0, y0, x1, y1 float32, uv0, uv1 [2]float32, color [4]float32) {
		a, b := toNDC(x0, y0), toNDC(x1, y0)
		c, d := toNDC(x0, y1), toNDC(x1, y1)
		vertices = append(vertices,
			TextVertex{Pos: a, UV: uv0, Color: color},
			TextVertex{Pos: b, UV: [2]float32{uv1[0], uv0[1]}, Color: color},
			TextVertex{Pos: c, UV: [2]float32{uv0[0], uv1[1]}, Color: color},
			TextVertex{Pos: b, UV: [2]float32{uv1[0], uv0[1]}, Color: color},
			TextVertex{Pos: d, UV: uv1, Color: color},
			TextVertex{Pos: c, UV: [2]float32{uv0[0], uv1[1]}, Color: color},
		)
	}

	ascent := float32(ta.Face.Metrics().Ascent.Ceil())

	for _, item := range items {
		scale := item.Scale
		if scale == 0 {
			scale = 1
		}
		w, h := ta.Measure(item.Text, scale)
		pad := ta.Padding * scale
		left := item.X - w/2
		quad(left-pad, item.Y-pad, left+w+pad, item.Y+h+pad, ta.solidUV, ta.solidUV, ta.BoxColor)

		posX := left
		posY := item.Y + ascent*scale
		for _, r := range item.Text {
			if r == '\n' {
				posX = left
				posY += ta.LineHeight(scale)
				continue
			}

			g, ok := ta.Glyphs[r]
			if !ok {
				continue
			}

			x0 := posX + g.Off[0]*scale
			y0 := posY + g.Off[1]*scale
			x1 := x0 + g.Size[0]*scale
			y1 := y0 + g.Size[1]*scale
			quad(x0, y0, x1, y1, g.UVMin, g.UVMax, item.Color)

			posX += g.Adv * scale
		}
	}

	return vertices
}
