package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
	"github.com/davawen/go-raytracing/pkg/loaders"
	"github.com/davawen/go-raytracing/pkg/material"
)

// sceneFile is the yaml scene description. Vectors are 3-element
// sequences; angles are given in degrees and converted on load.
type sceneFile struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Samples  int        `yaml:"samples"`
	MaxDepth int        `yaml:"max-depth"`
	Sun      [3]float64 `yaml:"sun"`

	Camera struct {
		Position [3]float64 `yaml:"position"`
		Rotation [3]float64 `yaml:"rotation"` // Euler XYZ, degrees
		Fov      float64    `yaml:"fov"`      // Vertical, degrees
	} `yaml:"camera"`

	Textures map[string]struct {
		File string `yaml:"file"`
		Wrap string `yaml:"wrap"`
	} `yaml:"textures"`

	Materials map[string]struct {
		Type      string     `yaml:"type"`
		Albedo    [3]float64 `yaml:"albedo"`
		Texture   string     `yaml:"texture"`
		NormalMap string     `yaml:"normal-map"`
		Ior       float64    `yaml:"ior"`
	} `yaml:"materials"`

	Shapes []struct {
		Type     string        `yaml:"type"`
		Material string        `yaml:"material"`
		Center   [3]float64    `yaml:"center"`   // sphere
		Radius   float64       `yaml:"radius"`   // sphere
		Point    [3]float64    `yaml:"point"`    // plane
		Normal   [3]float64    `yaml:"normal"`   // plane
		Vertices [3][3]float64 `yaml:"vertices"` // triangle
		UVs      [3][2]float64 `yaml:"uvs"`      // triangle, optional
		File     string        `yaml:"file"`     // mesh
		Scale    float64       `yaml:"scale"`    // mesh, default 1
		Position [3]float64    `yaml:"position"` // mesh translation
	} `yaml:"shapes"`
}

// LoadYAML reads a yaml scene description. Texture and mesh paths are
// resolved relative to the scene file; textures decode in parallel.
func LoadYAML(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var cfg sceneFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scene %q: yaml %w", filename, err)
	}

	dir := filepath.Dir(filename)

	textures, err := loadTextures(dir, cfg)
	if err != nil {
		return nil, err
	}

	materials, err := buildMaterials(cfg, textures)
	if err != nil {
		return nil, err
	}

	scene := &Scene{
		Sun:      vec3(cfg.Sun),
		Width:    cfg.Width,
		Height:   cfg.Height,
		Samples:  cfg.Samples,
		MaxDepth: cfg.MaxDepth,
		Camera: CameraConfig{
			Position:    vec3(cfg.Camera.Position),
			Orientation: core.QuatFromEuler(vec3(cfg.Camera.Rotation).Multiply(math.Pi / 180)),
			Fov:         cfg.Camera.Fov * math.Pi / 180,
		},
	}

	for i, sh := range cfg.Shapes {
		mat, ok := materials[sh.Material]
		if !ok {
			return nil, fmt.Errorf("scene %q: shape %d references unknown material %q", filename, i, sh.Material)
		}

		switch sh.Type {
		case "sphere":
			scene.Add(geometry.NewSphere(vec3(sh.Center), sh.Radius, mat))
		case "plane":
			scene.Add(geometry.NewPlane(vec3(sh.Point), vec3(sh.Normal), mat))
		case "triangle":
			scene.Add(geometry.NewTriangle(
				geometry.Vertex{Position: vec3(sh.Vertices[0]), UV: vec2(sh.UVs[0])},
				geometry.Vertex{Position: vec3(sh.Vertices[1]), UV: vec2(sh.UVs[1])},
				geometry.Vertex{Position: vec3(sh.Vertices[2]), UV: vec2(sh.UVs[2])},
				mat,
			))
		case "mesh":
			triangles, err := loadMesh(filepath.Join(dir, sh.File))
			if err != nil {
				return nil, fmt.Errorf("scene %q: shape %d: %w", filename, i, err)
			}
			scale := sh.Scale
			if scale == 0 {
				scale = 1
			}
			scene.AddMesh(triangles, mat, scale, vec3(sh.Position))
		default:
			return nil, fmt.Errorf("scene %q: shape %d has unknown type %q", filename, i, sh.Type)
		}
	}

	return scene, nil
}

// loadTextures decodes every referenced texture concurrently
func loadTextures(dir string, cfg sceneFile) (map[string]*material.Texture, error) {
	textures := make(map[string]*material.Texture, len(cfg.Textures))
	var mu sync.Mutex
	var group errgroup.Group

	for name, tex := range cfg.Textures {
		name, tex := name, tex
		wrap, err := parseWrap(tex.Wrap)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}

		group.Go(func() error {
			loaded, err := loaders.LoadTexture(filepath.Join(dir, tex.File), wrap)
			if err != nil {
				return fmt.Errorf("texture %q: %w", name, err)
			}
			mu.Lock()
			textures[name] = loaded
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return textures, nil
}

func buildMaterials(cfg sceneFile, textures map[string]*material.Texture) (map[string]material.Material, error) {
	lookup := func(owner, name string) (*material.Texture, error) {
		if name == "" {
			return nil, nil
		}
		tex, ok := textures[name]
		if !ok {
			return nil, fmt.Errorf("material %q references unknown texture %q", owner, name)
		}
		return tex, nil
	}

	materials := make(map[string]material.Material, len(cfg.Materials))
	for name, m := range cfg.Materials {
		tex, err := lookup(name, m.Texture)
		if err != nil {
			return nil, err
		}
		normalMap, err := lookup(name, m.NormalMap)
		if err != nil {
			return nil, err
		}

		switch m.Type {
		case "lambertian":
			materials[name] = &material.Lambertian{Albedo: vec3(m.Albedo), Texture: tex, NormalMap: normalMap}
		case "metal":
			materials[name] = &material.Metal{Albedo: vec3(m.Albedo), Texture: tex, NormalMap: normalMap}
		case "dielectric":
			materials[name] = &material.Dielectric{RefractionIndex: m.Ior, NormalMap: normalMap}
		default:
			return nil, fmt.Errorf("material %q has unknown type %q", name, m.Type)
		}
	}

	return materials, nil
}

// loadMesh picks the loader from the file extension
func loadMesh(path string) ([]loaders.MeshTriangle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return loaders.LoadSTL(path)
	case ".gltf", ".glb":
		return loaders.LoadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
	}
}

func parseWrap(s string) (material.TextureWrapping, error) {
	switch s {
	case "", "repeat":
		return material.Repeat, nil
	case "mirror", "mirrored-repeat":
		return material.MirroredRepeat, nil
	case "clamp", "clamp-to-edge":
		return material.ClampToEdge, nil
	default:
		return material.Repeat, fmt.Errorf("unknown wrap mode %q", s)
	}
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func vec2(v [2]float64) core.Vec2 {
	return core.NewVec2(v[0], v[1])
}
