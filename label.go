package holo

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// FormatVec3 formats v with one decimal per component: "(1.0, 2.5, -3.0)".
func FormatVec3(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X(), v.Y(), v.Z())
}

// formatScalar prints f the shortest way that round-trips, so radii and
// angles read back exactly as the caller wrote them.
func formatScalar(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func formatOneDecimal(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 1, 32)
}

func BoxLabel(class BoxClass, position, size mgl32.Vec3) string {
	switch class {
	case BoxSquare:
		// The two nonzero extents are equal; x is one of them unless it is the flat axis.
		side := size.X()
		if side == 0 {
			side = size.Y()
		}
		side = abs32(side)
		return fmt.Sprintf("Pos: %s\nSize: (%sm^2)", FormatVec3(position), formatOneDecimal(side))
	case BoxCube:
		return fmt.Sprintf("Pos: %s\nSize: (%sm^3)", FormatVec3(position), formatOneDecimal(abs32(size.Y())))
	default:
		return fmt.Sprintf("Pos: %s\nSize: %s", FormatVec3(position), FormatVec3(size))
	}
}

func SphereLabel(position mgl32.Vec3, radius float32) string {
	return fmt.Sprintf("r = %s\n %s", formatScalar(radius), FormatVec3(position))
}

func MeshLabel(vertexCount int, position, scale mgl32.Vec3) string {
	return fmt.Sprintf("Vertices: %d\nPos: %s\nSize: %s", vertexCount, FormatVec3(position), FormatVec3(scale))
}

// PlacementLabel is shared by the cylinder, diamond and hex pyramid.
func PlacementLabel(position, size mgl32.Vec3) string {
	return fmt.Sprintf("Pos: %s\nSize: %s", FormatVec3(position), FormatVec3(size))
}

// fullTurnLimit is where an arc label switches to the turns form.
const fullTurnLimit = 360.01

// ArcLabel describes an arc sweep. Sweeps of more than one turn are shown as
// whole turns plus the remaining degrees.
func ArcLabel(angle, radius float32) string {
	if angle < fullTurnLimit {
		return fmt.Sprintf("%s°\nr = %s", formatScalar(angle), formatScalar(radius))
	}
	turns, rest := ArcTurns(angle)
	return fmt.Sprintf("%dx %s°\nr = %s", turns, formatScalar(rest), formatScalar(radius))
}

// ArcTurns splits angle into whole turns and the degrees left over. The
// quotient comes from the truncated angle; the remainder keeps the fraction.
func ArcTurns(angle float32) (turns int, rest float32) {
	turns = int(angle) / 360
	return turns, angle - float32(360*turns)
}

func ViewArcLabel(angle, radius float32) string {
	return fmt.Sprintf("%s°\nr = %s", formatScalar(angle), formatScalar(radius))
}

func ArcTooSmallLabel(angle float32) string {
	return fmt.Sprintf("The angle is too small (%s°)", formatScalar(angle))
}

func ViewArcTooSmallLabel(angle float32) string {
	return fmt.Sprintf("The angle is too small (%s° / 360°)", formatScalar(angle))
}

func ViewArcTooBigLabel(angle float32) string {
	return fmt.Sprintf("The angle is too big (%s° / 360°)", formatScalar(angle))
}

// LinePointLabel labels the start (index 1) or end (index 2) of a line.
func LinePointLabel(name string, index int, p mgl32.Vec3) string {
	return fmt.Sprintf("%s %d\n%s", name, index, FormatVec3(p))
}

func MidpointLabel(p mgl32.Vec3) string {
	return fmt.Sprintf("(Middle Point)\n%s", FormatVec3(p))
}

// MultiLinePointLabel labels point i (zero based) of a polyline. The point
// name is left out when empty.
func MultiLinePointLabel(name string, i int, pointName string, p mgl32.Vec3) string {
	if pointName == "" {
		return fmt.Sprintf("%s %d\n%s", name, i+1, FormatVec3(p))
	}
	return fmt.Sprintf("%s %d (%s)\n%s", name, i+1, pointName, FormatVec3(p))
}
