package material

import (
	"math/rand"

	"github.com/davawen/go-raytracing/pkg/core"
)

// Metal represents a perfect mirror with a tinted albedo
type Metal struct {
	Albedo    core.Vec3
	Texture   *Texture
	NormalMap *Texture
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3) *Metal {
	return &Metal{Albedo: albedo}
}

// Scatter reflects the incoming ray about the shading normal
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	normal := shadingNormal(hit, m.NormalMap)
	reflected := rayIn.Direction.Reflect(normal)

	attenuation := m.Albedo.MultiplyVec(textureColor(m.Texture, hit.UV))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: attenuation,
	}, true
}
