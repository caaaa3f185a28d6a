package holo

import "github.com/go-gl/mathgl/mgl32"

// Alpha returns a pointer for the optional Alpha field of the shapes.
func Alpha(a float32) *float32 {
	return &a
}

// Box is an axis-aligned box. With Transform set, only its position is used.
type Box struct {
	Position  mgl32.Vec3
	Size      mgl32.Vec3
	Transform *Transform
	Color     Color
	Alpha     *float32
	ShowLabel bool
}

// Sphere is centered on Position, or on the Transform's position when set.
type Sphere struct {
	Position  mgl32.Vec3
	Radius    float32
	Transform *Transform
	Color     Color
	Alpha     *float32
	ShowLabel bool
}

// MeshShape draws an arbitrary mesh. Transform replaces position, rotation
// and scale.
type MeshShape struct {
	Mesh      *Mesh
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Scale     mgl32.Vec3
	Transform *Transform
	Color     Color
	Alpha     *float32
	ShowLabel bool
}

// Arc sweeps Angle degrees from From around Up. Transform supplies the
// center, Up and From (its forward axis).
type Arc struct {
	Center    mgl32.Vec3
	Up        mgl32.Vec3
	From      mgl32.Vec3
	Angle     float32
	Radius    float32
	Transform *Transform
	Color     Color
	Alpha     *float32
	ShowLabel bool
}

// ViewArc is a field of view of Angle degrees centered on Forward.
type ViewArc struct {
	Center    mgl32.Vec3
	Forward   mgl32.Vec3
	Angle     float32
	Radius    float32
	Color     Color
	Alpha     *float32
	ShowLabel bool
}

// Line joins Start and End. StartTransform and EndTransform, when set,
// replace the explicit points. Labels need both Name and ShowLabel.
type Line struct {
	Start          mgl32.Vec3
	End            mgl32.Vec3
	StartTransform *Transform
	EndTransform   *Transform
	Color          Color
	Name           string
	ShowLabel      bool
}

// MultiLine joins consecutive points, optionally closing the loop. With
// Transforms set, their positions are the points and, unless Names is
// given, their names label the points. Labelled Points need one name each.
type MultiLine struct {
	Points     []mgl32.Vec3
	Transforms []*Transform
	Color      Color
	Loop       bool
	Name       string
	Names      []string
	ShowLabel  bool
}

// Cylinder draws the built-in cylinder mesh scaled by Size. Transform
// supplies position and scale.
type Cylinder struct {
	Position  mgl32.Vec3
	Size      mgl32.Vec3
	Transform *Transform
	Color     Color
	Alpha     *float32
	ShowLabel bool
}

// Diamond draws the octahedron. Size wins over SizeUniform when nonzero.
// Rotation is accepted for symmetry with the other shapes but the diamond
// is always drawn unrotated.
type Diamond struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Quat
	Size        mgl32.Vec3
	SizeUniform float32
	Transform   *Transform
	Color       Color
	Alpha       *float32
	ShowLabel   bool
}

type HexPyramidShape struct {
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Size      mgl32.Vec3
	Transform *Transform
	Color     Color
	Alpha     *float32
	ShowLabel bool
}
