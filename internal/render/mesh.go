package render

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scenedemos/internal/scene"
)

// gpuGeometry is an uploaded geometry: one raylib mesh per material group. The Go slices
// backing each mesh are kept so raylib can tell indexed meshes apart when drawing.
type gpuGeometry struct {
	parts []rl.Mesh
	data  []meshData
}

type meshData struct {
	positions, normals, uvs []float32
	indices                 []uint16
}

// ensureGeometry uploads g on first use.
func (r *Renderer) ensureGeometry(g *scene.Geometry) *gpuGeometry {
	if gg, ok := r.meshes[g]; ok {
		return gg
	}
	gg := &gpuGeometry{}
	groups := g.Groups
	if len(groups) == 0 {
		groups = []scene.GeometryGroup{{Start: 0, Count: len(g.Indices)}}
	}
	for _, grp := range groups {
		d := meshData{
			positions: g.Positions,
			normals:   g.Normals,
			uvs:       g.UVs,
			indices:   append([]uint16(nil), g.Indices[grp.Start:grp.Start+grp.Count]...),
		}
		mesh := rl.Mesh{
			VertexCount:   int32(g.VertexCount()),
			TriangleCount: int32(len(d.indices) / 3),
			Vertices:      &d.positions[0],
			Normals:       &d.normals[0],
			Indices:       &d.indices[0],
		}
		if len(d.uvs) > 0 {
			mesh.Texcoords = &d.uvs[0]
		}
		rl.UploadMesh(&mesh, false)
		gg.parts = append(gg.parts, mesh)
		gg.data = append(gg.data, d)
	}
	r.meshes[g] = gg
	return gg
}

func (gg *gpuGeometry) unload() {
	for i := range gg.parts {
		rl.UnloadMesh(&gg.parts[i])
	}
	gg.parts = nil
	gg.data = nil
}

// gpuTexture tracks the uploaded version of a scene texture.
type gpuTexture struct {
	tex     rl.Texture2D
	version int
	loaded  bool
}

// ensureTexture uploads the texture's image the first frame it is available, and again
// whenever a newer image is published. It reports false while nothing has loaded.
func (r *Renderer) ensureTexture(t *scene.Texture) (rl.Texture2D, bool) {
	gt, ok := r.textures[t]
	if !ok {
		gt = &gpuTexture{}
		r.textures[t] = gt
	}
	img, version := t.Image()
	if img == nil {
		return rl.Texture2D{}, false
	}
	if gt.loaded && gt.version == version {
		return gt.tex, true
	}
	if gt.loaded {
		rl.UnloadTexture(gt.tex)
	}
	gt.tex = uploadImage(img)
	gt.version = version
	gt.loaded = true
	return gt.tex, true
}

// uploadImage flips img so its first row lands at v = 1, then uploads it with mipmaps.
func uploadImage(img image.Image) rl.Texture2D {
	flipped := transform.FlipV(img)
	b := flipped.Bounds()
	rlImg := rl.NewImage(flipped.Pix, int32(b.Dx()), int32(b.Dy()), 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex
}
