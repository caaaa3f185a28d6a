package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/holo/render/core"
	"github.com/gekko3d/holo/render/shaders"
)

// TextRenderPass draws screen-space label quads sampled from a TextAtlas.
type TextRenderPass struct {
	Pipeline     *wgpu.RenderPipeline
	AtlasTexture *wgpu.Texture
	AtlasView    *wgpu.TextureView
	Sampler      *wgpu.Sampler
	BindGroup    *wgpu.BindGroup
	VertexBuffer *wgpu.Buffer
	VertexCount  uint32

	Device *wgpu.Device
}

// NewTextRenderPass uploads the atlas and builds the text pipeline. On error
// everything created so far is released.
func NewTextRenderPass(device *wgpu.Device, queue *wgpu.Queue, format wgpu.TextureFormat, atlas *core.TextAtlas) (_ *TextRenderPass, err error) {
	p := &TextRenderPass{Device: device}
	defer func() {
		if err != nil {
			p.Release()
		}
	}()

	w, h := atlas.AtlasImage.Bounds().Dx(), atlas.AtlasImage.Bounds().Dy()
	p.AtlasTexture, err = device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Text Atlas",
		Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		Format:        wgpu.TextureFormatR8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text atlas texture: %w", err)
	}
	queue.WriteTexture(p.AtlasTexture.AsImageCopy(), atlas.AtlasImage.Pix, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(atlas.AtlasImage.Stride),
		RowsPerImage: uint32(h),
	}, &wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1})

	p.AtlasView, err = p.AtlasTexture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create text atlas view: %w", err)
	}

	p.Sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text sampler: %w", err)
	}

	textMod, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Text Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.TextWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text shader module: %w", err)
	}
	defer textMod.Release()

	p.Pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Text Pipeline",
		Vertex: wgpu.VertexState{
			Module:     textMod,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: uint64(unsafe.Sizeof(core.TextVertex{})),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     textMod,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOne,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text render pipeline: %w", err)
	}

	p.BindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: p.Pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: p.AtlasView},
			{Binding: 1, Sampler: p.Sampler},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text bind group: %w", err)
	}

	return p, nil
}

// Update uploads this frame's label quads.
func (p *TextRenderPass) Update(queue *wgpu.Queue, vertices []core.TextVertex) error {
	p.VertexCount = 0
	if len(vertices) == 0 {
		return nil
	}

	vSize := uint64(len(vertices) * int(unsafe.Sizeof(core.TextVertex{})))
	if p.VertexBuffer == nil || p.VertexBuffer.GetSize() < vSize {
		if p.VertexBuffer != nil {
			p.VertexBuffer.Release()
		}
		var err error
		p.VertexBuffer, err = p.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Text VB",
			Size:  vSize,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("failed to create text vertex buffer: %w", err)
		}
	}
	queue.WriteBuffer(p.VertexBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), vSize))
	p.VertexCount = uint32(len(vertices))
	return nil
}

func (p *TextRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.VertexCount == 0 {
		return
	}
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, p.VertexBuffer.GetSize())
	pass.Draw(p.VertexCount, 1, 0, 0)
}

// Release frees every resource the pass holds. It is safe on a partially
// built pass and on repeated calls.
func (p *TextRenderPass) Release() {
	if p.VertexBuffer != nil {
		p.VertexBuffer.Release()
		p.VertexBuffer = nil
	}
	p.VertexCount = 0
	if p.BindGroup != nil {
		p.BindGroup.Release()
		p.BindGroup = nil
	}
	if p.Pipeline != nil {
		p.Pipeline.Release()
		p.Pipeline = nil
	}
	if p.Sampler != nil {
		p.Sampler.Release()
		p.Sampler = nil
	}
	if p.AtlasView != nil {
		p.AtlasView.Release()
		p.AtlasView = nil
	}
	if p.AtlasTexture != nil {
		p.AtlasTexture.Release()
		p.AtlasTexture = nil
	}
}
