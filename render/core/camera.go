package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraState orbits Target at Distance. Y is up.
type CameraState struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
	FovY     float32 // degrees
	Near     float32
	Far      float32
}

func NewCameraState() *CameraState {
	return &CameraState{
		Target:   mgl32.Vec3{0, 0, 0},
		Distance: 14,
		Yaw:      0.6,
		Pitch:    0.45,
		FovY:     60,
		Near:     0.1,
		Far:      500,
	}
}

func (c *CameraState) Position() mgl32.Vec3 {
	cp := math.Cos(float64(c.Pitch))
	offset := mgl32.Vec3{
		float32(cp * math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		float32(cp * math.Cos(float64(c.Yaw))),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

func (c *CameraState) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *CameraState) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

func (c *CameraState) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.GetProjectionMatrix(aspect).Mul4(c.GetViewMatrix())
}

// ExtractFrustum extracts the 6 planes of the frustum from the view-projection matrix.
// Returns planes in order: Left, Right, Bottom, Top, Near, Far.
// Plane is Ax + By + Cz + D = 0.
func (c *CameraState) ExtractFrustum(vp mgl32.Mat4) [6]mgl32.Vec4 {
	var planes [6]mgl32.Vec4
	for i := 0; i < 3; i++ {
		planes[i*2] = mgl32.Vec4{
			vp.At(3, 0) + vp.At(i, 0),
			vp.At(3, 1) + vp.At(i, 1),
			vp.At(3, 2) + vp.At(i, 2),
			vp.At(3, 3) + vp.At(i, 3),
		}
		planes[i*2+1] = mgl32.Vec4{
			vp.At(3, 0) - vp.At(i, 0),
			vp.At(3, 1) - vp.At(i, 1),
			vp.At(3, 2) - vp.At(i, 2),
			vp.At(3, 3) - vp.At(i, 3),
		}
	}

	for i := 0; i < 6; i++ {
		length := float32(math.Sqrt(float64(planes[i][0]*planes[i][0] + planes[i][1]*planes[i][1] + planes[i][2]*planes[i][2])))
		if length > 0 {
			planes[i] = planes[i].Mul(1.0 / length)
		}
	}

	return planes
}

// PointInFrustum reports whether p is on the inner side of all six planes.
func PointInFrustum(planes [6]mgl32.Vec4, p mgl32.Vec3) bool {
	for _, pl := range planes {
		if pl.X()*p.X()+pl.Y()*p.Y()+pl.Z()*p.Z()+pl.W() < 0 {
			return false
		}
	}
	return true
}

// WorldToScreen projects p into pixel coordinates, origin top-left. ok is
// false for points outside the view frustum.
func (c *CameraState) WorldToScreen(p mgl32.Vec3, width, height int) (x, y float32, ok bool) {
	vp := c.ViewProjection(float32(width) / float32(height))
	if !PointInFrustum(c.ExtractFrustum(vp), p) {
		return 0, 0, false
	}
	clip := vp.Mul4x1(p.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) * 0.5 * float32(width)
	y = (1 - ndc.Y()) * 0.5 * float32(height)
	return x, y, true
}
