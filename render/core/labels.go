package core

// LabelGap is the pixel distance between a label box and its anchor.
const LabelGap = 6

// PlaceLabels projects world-anchored labels to the screen. Each box is
// centered horizontally on its anchor and sits just above it. Labels whose
// anchor is outside the view are dropped.
func PlaceLabels(cam *CameraState, atlas *TextAtlas, labels []LabelItem, width, height int, color [4]float32) []ScreenLabel {
	out := make([]ScreenLabel, 0, len(labels))
	for _, l := range labels {
		x, y, ok := cam.WorldToScreen(l.World, width, height)
		if !ok {
			continue
		}
		_, h := atlas.Measure(l.Text, 1)
		out = append(out, ScreenLabel{
			Text:  l.Text,
			X:     x,
			Y:     y - h - atlas.Padding - LabelGap,
			Scale: 1,
			Color: color,
		})
	}
	return out
}
