package material

import (
	"math/rand"

	"github.com/davawen/go-raytracing/pkg/core"
)

// Lambertian represents a diffuse material. The optional texture
// modulates the albedo; the optional normal map perturbs the shading
// normal.
type Lambertian struct {
	Albedo    core.Vec3
	Texture   *Texture
	NormalMap *Texture
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewTexturedLambertian creates a lambertian material with an albedo texture
func NewTexturedLambertian(albedo core.Vec3, texture *Texture) *Lambertian {
	return &Lambertian{Albedo: albedo, Texture: texture}
}

// Scatter bounces the ray into the hemisphere around the shading normal,
// sampled uniformly over solid angle, and attenuates by albedo, texture
// color and the cosine of the outgoing angle.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	normal := shadingNormal(hit, l.NormalMap)

	direction := core.SampleHemisphere(normal, random)
	cosine := max(0, direction.Dot(normal))

	attenuation := l.Albedo.
		MultiplyVec(textureColor(l.Texture, hit.UV)).
		Multiply(cosine)

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}
