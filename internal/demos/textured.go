package demos

import (
	"scenedemos/internal/config"
	"scenedemos/internal/scene"
)

// Textured maps two remote textures onto a plane and a cube; the cube casts a shadow on the
// plane.
func Textured(o Options) *Demo {
	d := newDemo(o, "Textures and shadows", scene.V3(0, 1, 3))
	d.Orbit = true
	d.Stats = true
	d.ShadowMapEnabled = true

	maple := scene.NewTexture(textureURL(o, config.TextureMaple))
	stone := scene.NewTexture(textureURL(o, config.TextureStone))
	d.Textures = []*scene.Texture{maple, stone}

	floorMat := scene.NewStandardMaterial(0xffffff, maple)
	floorMat.Side = scene.DoubleSide
	floor := scene.NewMesh(scene.NewPlaneGeometry(4, 4), floorMat)
	floor.Name = "floor"
	floor.Rotation.X = -1.5
	floor.ReceiveShadow = true

	m1 := scene.NewStandardMaterial(0xffffff, maple)
	m2 := scene.NewStandardMaterial(0xffffff, stone)
	cube := scene.NewMesh(scene.NewBoxGeometry(1, 1, 1), m1, m2, m1, m2, m1, m2)
	cube.Name = "cube"
	cube.Position.Y = 0.51
	cube.Rotation.X = -1.5
	cube.CastShadow = true

	sun := scene.NewDirectionalLight(0xffffff, 1)
	sun.Position.Set(1, 1, 1)
	sun.CastShadow = true
	sun.Shadow.MapWidth, sun.Shadow.MapHeight = 2048, 2048
	sun.Shadow.Near, sun.Shadow.Far = 0.5, 500

	d.Scene.Add(floor, cube, scene.NewAmbientLight(0xffffff, 0.2), sun)
	return d
}

func textureURL(o Options, name string) string {
	if u, ok := o.TextureURLs[name]; ok && u != "" {
		return u
	}
	return config.Default().Textures.URLs[name]
}
