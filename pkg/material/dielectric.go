package material

import (
	"math"
	"math/rand"

	"github.com/davawen/go-raytracing/pkg/core"
)

// Dielectric represents a transparent material like glass that both
// reflects and refracts. Attenuation is always white: clear glass
// absorbs nothing.
type Dielectric struct {
	RefractionIndex float64
	NormalMap       *Texture
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter refracts or reflects the incoming ray. Reflection is chosen on
// total internal reflection, or at random with the Schlick-approximated
// Fresnel probability.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	normal := shadingNormal(hit, d.NormalMap)

	// Entering the material crosses from air into it, exiting the reverse
	var mu float64
	if hit.FrontFace {
		mu = 1.0 / d.RefractionIndex
	} else {
		mu = d.RefractionIndex
	}

	cosTheta := math.Min(rayIn.Direction.Negate().Dot(normal), 1.0)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	// Snell's law has no solution when mu*sin(theta) > 1: total internal reflection
	cannotRefract := mu*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, mu) > random.Float64() {
		direction = rayIn.Direction.Reflect(normal)
	} else {
		direction = refract(rayIn.Direction, normal, cosTheta, mu)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: white,
	}, true
}

// refract bends the unit direction through a surface with the given
// ratio of refraction indices
func refract(dir, normal core.Vec3, cosTheta, mu float64) core.Vec3 {
	outPerp := dir.Add(normal.Multiply(cosTheta)).Multiply(mu)
	outParallel := normal.Multiply(-math.Sqrt(math.Abs(1 - outPerp.LengthSquared())))
	return outPerp.Add(outParallel).Normalize()
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, mu float64) float64 {
	r0 := (1 - mu) / (1 + mu)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
