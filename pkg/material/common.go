package material

import (
	"github.com/davawen/go-raytracing/pkg/core"
)

// white is the attenuation of an untextured surface
var white = core.NewVec3(1, 1, 1)

// textureColor samples the albedo texture at the hit's surface
// coordinates, defaulting to white when no texture is bound
func textureColor(tex *Texture, uv core.Vec2) core.Vec3 {
	if tex == nil {
		return white
	}
	return tex.Sample(uv.X, uv.Y)
}

// shadingNormal returns the normal used for shading at a hit. Without a
// normal map it is the geometric normal. With one, the map is sampled at
// the hit's UV, remapped from [0,1] to [-1,1], interpreted as a
// tangent-space vector with the map's z axis along the surface normal,
// and rotated into world space through the hit's tangent frame.
func shadingNormal(hit HitRecord, normalMap *Texture) core.Vec3 {
	if normalMap == nil {
		return hit.Normal
	}

	sample := normalMap.Sample(hit.UV.X, hit.UV.Y).
		Multiply(2).
		Subtract(white)

	frame := core.NewTangentFrame(hit.Normal)
	return frame.ToWorld(core.NewVec3(sample.X, sample.Z, sample.Y)).Normalize()
}
