package main

import (
	"errors"
	"math"

	"github.com/gekko3d/holo"
	"github.com/go-gl/mathgl/mgl32"
)

// demoScene lays out one of each gizmo along the X axis.
type demoScene struct {
	wedge   holo.AssetId
	assets  *holo.AssetServer
	orbit   []*holo.Transform
	pointer *holo.Transform
}

func newDemoScene(assets *holo.AssetServer) *demoScene {
	s := &demoScene{
		assets:  assets,
		wedge:   assets.RegisterMesh("Wedge", holo.HexPyramidMeshes().Solid),
		pointer: holo.NewTransform("Pointer"),
	}
	for _, name := range []string{"North", "East", "South", "West"} {
		s.orbit = append(s.orbit, holo.NewTransform(name))
	}
	return s
}

// draw issues every command for the frame at time t seconds.
func (s *demoScene) draw(d *holo.Drawer, t float32) error {
	var errs []error

	d.DrawBox(holo.Box{Position: mgl32.Vec3{-9, 0.5, 0}, Size: mgl32.Vec3{1, 1, 1}, Color: holo.Cyan, ShowLabel: true})
	d.DrawBox(holo.Box{Position: mgl32.Vec3{-9, 0, 4}, Size: mgl32.Vec3{2, 0, 2}, Color: holo.Green, ShowLabel: true})
	d.DrawSphere(holo.Sphere{Position: mgl32.Vec3{-6, 1, 0}, Radius: 1, Color: holo.Magenta, ShowLabel: true})

	wedge, err := s.assets.Mesh(s.wedge)
	if err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, d.DrawMesh(holo.MeshShape{
		Mesh:      wedge,
		Position:  mgl32.Vec3{-3, 1, 0},
		Rotation:  mgl32.QuatRotate(t, holo.AxisUp),
		Scale:     mgl32.Vec3{1.5, 1.5, 1.5},
		Color:     holo.Yellow,
		ShowLabel: true,
	}))

	sweep := float32(math.Mod(float64(t)*60, 450))
	d.DrawArc(holo.Arc{Center: mgl32.Vec3{0, 0, 0}, Up: holo.AxisUp, From: holo.AxisForward, Angle: sweep, Radius: 2, Color: holo.Red, ShowLabel: true})
	d.DrawViewArc(holo.ViewArc{Center: mgl32.Vec3{4, 0, 0}, Forward: holo.AxisForward, Angle: 90, Radius: 2, Color: holo.Blue, ShowLabel: true})

	s.pointer.Position = mgl32.Vec3{8, 1 + float32(math.Sin(float64(t))), 2}
	d.DrawLine(holo.Line{Start: mgl32.Vec3{8, 0, -2}, EndTransform: s.pointer, Color: holo.White, Name: "Ray", ShowLabel: true})

	for i, tr := range s.orbit {
		a := float64(t)*0.5 + float64(i)*math.Pi/2
		tr.Position = mgl32.Vec3{float32(math.Cos(a)) * 2.5, 0, 8 + float32(math.Sin(a))*2.5}
	}
	errs = append(errs, d.DrawMultiLine(holo.MultiLine{Transforms: s.orbit, Color: holo.Yellow, Loop: true, Name: "Orbit", ShowLabel: true}))

	errs = append(errs, d.DrawCylinder(holo.Cylinder{Position: mgl32.Vec3{11, 1, 0}, Size: mgl32.Vec3{1, 1, 1}, Color: holo.Green, ShowLabel: true}))
	d.DrawDiamond(holo.Diamond{Position: mgl32.Vec3{14, 1, 0}, SizeUniform: 2, Color: holo.Cyan, ShowLabel: true})
	d.DrawHexPyramid(holo.HexPyramidShape{
		Position:  mgl32.Vec3{17, 1, 0},
		Rotation:  mgl32.QuatRotate(-t, holo.AxisUp),
		Size:      mgl32.Vec3{2, 2, 2},
		Color:     holo.Magenta,
		ShowLabel: true,
	})

	return errors.Join(errs...)
}
