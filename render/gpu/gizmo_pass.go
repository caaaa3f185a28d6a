package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/holo/render/core"
	"github.com/gekko3d/holo/render/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraUniformSize matches CameraData in gizmo.wgsl.
const cameraUniformSize = 256

// GizmoRenderPass draws a tessellated core.Batch: the translucent
// triangles first, then the outlines on top.
type GizmoRenderPass struct {
	CameraLayout     *wgpu.BindGroupLayout
	PipelineLayout   *wgpu.PipelineLayout
	TrianglePipeline *wgpu.RenderPipeline
	LinePipeline     *wgpu.RenderPipeline
	CameraBuffer     *wgpu.Buffer
	CameraBindGroup  *wgpu.BindGroup

	TriangleBuffer *wgpu.Buffer
	TriangleCount  uint32
	LineBuffer     *wgpu.Buffer
	LineCount      uint32

	Device *wgpu.Device
}

// NewGizmoRenderPass builds both pipelines and the camera uniform. On error
// everything created so far is released.
func NewGizmoRenderPass(device *wgpu.Device, format wgpu.TextureFormat) (*GizmoRenderPass, error) {
	p := &GizmoRenderPass{Device: device}
	if err := p.init(format); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func (p *GizmoRenderPass) init(format wgpu.TextureFormat) error {
	device := p.Device
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "GizmoShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.GizmoWGSL},
	})
	if err != nil {
		return fmt.Errorf("failed to create gizmo shader module: %w", err)
	}
	defer shaderModule.Release()

	// Camera (Group 0)
	p.CameraLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "GizmoCameraBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraUniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create gizmo bind group layout: %w", err)
	}

	p.PipelineLayout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "GizmoPipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{p.CameraLayout},
	})
	if err != nil {
		return fmt.Errorf("failed to create gizmo pipeline layout: %w", err)
	}

	p.TrianglePipeline, err = createGizmoPipeline(device, p.PipelineLayout, shaderModule, format, "GizmoTrianglePipeline", wgpu.PrimitiveTopologyTriangleList)
	if err != nil {
		return err
	}
	p.LinePipeline, err = createGizmoPipeline(device, p.PipelineLayout, shaderModule, format, "GizmoLinePipeline", wgpu.PrimitiveTopologyLineList)
	if err != nil {
		return err
	}

	p.CameraBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "GizmoCameraBuffer",
		Size:  cameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create gizmo camera buffer: %w", err)
	}

	p.CameraBindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "GizmoCameraBG",
		Layout: p.CameraLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  p.CameraBuffer,
				Size:    cameraUniformSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create gizmo camera bind group: %w", err)
	}

	return nil
}

func createGizmoPipeline(device *wgpu.Device, layout *wgpu.PipelineLayout, module *wgpu.ShaderModule, format wgpu.TextureFormat, label string, topology wgpu.PrimitiveTopology) (*wgpu.RenderPipeline, error) {
	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(core.Vertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil, // Gizmos draw over everything
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", label, err)
	}
	return pipeline, nil
}

// UpdateCamera uploads the view-projection matrix.
func (p *GizmoRenderPass) UpdateCamera(queue *wgpu.Queue, viewProj mgl32.Mat4) {
	var data [cameraUniformSize]byte
	copy(data[:], unsafe.Slice((*byte)(unsafe.Pointer(&viewProj[0])), unsafe.Sizeof(viewProj)))
	queue.WriteBuffer(p.CameraBuffer, 0, data[:])
}

// Update uploads the geometry of b, growing the vertex buffers when needed.
func (p *GizmoRenderPass) Update(queue *wgpu.Queue, b *core.Batch) error {
	var err error
	p.TriangleBuffer, p.TriangleCount, err = p.upload(queue, p.TriangleBuffer, b.Triangles, "GizmoTriangleBuffer")
	if err != nil {
		return err
	}
	p.LineBuffer, p.LineCount, err = p.upload(queue, p.LineBuffer, b.Lines, "GizmoLineBuffer")
	return err
}

func (p *GizmoRenderPass) upload(queue *wgpu.Queue, buf *wgpu.Buffer, vertices []core.Vertex, label string) (*wgpu.Buffer, uint32, error) {
	if len(vertices) == 0 {
		return buf, 0, nil
	}

	stride := uint64(unsafe.Sizeof(core.Vertex{}))
	sizeBytes := uint64(len(vertices)) * stride

	if buf == nil || buf.GetSize() < sizeBytes {
		if buf != nil {
			buf.Release()
		}
		var err error
		buf, err = p.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label,
			Size:  sizeBytes + 1024*stride, // Margin
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create %s: %w", label, err)
		}
	}

	queue.WriteBuffer(buf, 0, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), sizeBytes))
	return buf, uint32(len(vertices)), nil
}

func (p *GizmoRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.TriangleCount > 0 {
		pass.SetPipeline(p.TrianglePipeline)
		pass.SetBindGroup(0, p.CameraBindGroup, nil)
		pass.SetVertexBuffer(0, p.TriangleBuffer, 0, p.TriangleBuffer.GetSize())
		pass.Draw(p.TriangleCount, 1, 0, 0)
	}
	if p.LineCount > 0 {
		pass.SetPipeline(p.LinePipeline)
		pass.SetBindGroup(0, p.CameraBindGroup, nil)
		pass.SetVertexBuffer(0, p.LineBuffer, 0, p.LineBuffer.GetSize())
		pass.Draw(p.LineCount, 1, 0, 0)
	}
}

// Release frees every resource the pass holds. It is safe on a partially
// built pass and on repeated calls.
func (p *GizmoRenderPass) Release() {
	for _, b := range []*wgpu.Buffer{p.TriangleBuffer, p.LineBuffer, p.CameraBuffer} {
		if b != nil {
			b.Release()
		}
	}
	p.TriangleBuffer, p.LineBuffer, p.CameraBuffer = nil, nil, nil
	p.TriangleCount, p.LineCount = 0, 0
	if p.CameraBindGroup != nil {
		p.CameraBindGroup.Release()
		p.CameraBindGroup = nil
	}
	for _, pl := range []*wgpu.RenderPipeline{p.TrianglePipeline, p.LinePipeline} {
		if pl != nil {
			pl.Release()
		}
	}
	p.TrianglePipeline, p.LinePipeline = nil, nil
	if p.PipelineLayout != nil {
		p.PipelineLayout.Release()
		p.PipelineLayout = nil
	}
	if p.CameraLayout != nil {
		p.CameraLayout.Release()
		p.CameraLayout = nil
	}
}
