package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sauerbraten/jsonfile"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var logger = log.New("loaders")

// Vec is a JSON [x, y, z] triple
type Vec [3]float64

func (v Vec) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// SceneFile is the JSON scene description. Line comments starting with //
// are allowed anywhere outside of strings.
type SceneFile struct {
	Name       string          `json:"name"`
	Camera     *CameraSpec     `json:"camera"`
	Background *BackgroundSpec `json:"background"`
	Render     *RenderSpec     `json:"render"`
	Materials  []MaterialSpec  `json:"materials"`
	Shapes     []ShapeSpec     `json:"shapes"`
}

// CameraSpec describes the look-at camera
type CameraSpec struct {
	Eye           *Vec    `json:"eye"`
	LookAt        *Vec    `json:"lookAt"`
	Up            *Vec    `json:"up"`   // Defaults to +Y
	VFov          float64 `json:"vfov"` // Degrees, defaults to 90
	Aperture      float64 `json:"aperture"`
	FocusDistance float64 `json:"focusDistance"` // 0 = distance to lookAt
}

// BackgroundSpec overrides the sky gradient
type BackgroundSpec struct {
	Top    *Vec `json:"top"`
	Bottom *Vec `json:"bottom"`
}

// RenderSpec overrides the default sampling config; zero fields keep the default
type RenderSpec struct {
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	Samples  int  `json:"samples"`
	MaxDepth *int `json:"maxDepth"`
}

// MaterialSpec is a named material
type MaterialSpec struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"` // lambert, metal or dielectric
	Albedo *Vec    `json:"albedo"`
	Fuzz   float64 `json:"fuzz"`
	IOR    float64 `json:"ior"`
}

// ShapeSpec is a primitive referring to a material by name
type ShapeSpec struct {
	Type     string  `json:"type"` // sphere, plane, bounded-plane or box
	Material string  `json:"material"`
	Center   *Vec    `json:"center"`
	Radius   float64 `json:"radius"`
	Origin   *Vec    `json:"origin"`
	Normal   *Vec    `json:"normal"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Depth    float64 `json:"depth"`
}

// LoadSceneFile reads and builds a scene from a JSON scene file
func LoadSceneFile(filename string) (*scene.Scene, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}

	var file SceneFile
	if err := jsonfile.ParseFile(filename, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", filename, err)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	sc, err := BuildScene(&file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Infof("Loaded scene %q from %s: %d shapes, %d materials", sc.Name, filename, len(sc.Shapes), len(sc.Materials))
	return sc, nil
}

// BuildScene converts a parsed scene description into a renderable scene
func BuildScene(file *SceneFile) (*scene.Scene, error) {
	sc := scene.New(file.Name)

	if file.Render != nil {
		applyRenderSpec(&sc.SamplingConfig, file.Render)
	}

	if file.Background != nil {
		if file.Background.Top != nil {
			sc.TopColor = file.Background.Top.toVec3()
		}
		if file.Background.Bottom != nil {
			sc.BottomColor = file.Background.Bottom.toVec3()
		}
	}

	materials := make(map[string]core.MaterialID, len(file.Materials))
	for i, spec := range file.Materials {
		if spec.Name == "" {
			return nil, fmt.Errorf("material %d has no name: %w", i, ErrInvalidParameter)
		}
		if _, exists := materials[spec.Name]; exists {
			return nil, fmt.Errorf("material %q: %w", spec.Name, ErrDuplicateMaterial)
		}

		m, err := buildMaterial(spec)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", spec.Name, err)
		}
		materials[spec.Name] = sc.AddMaterial(m)
	}

	for i, spec := range file.Shapes {
		id, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("shape %d (%s) uses %q: %w", i, spec.Type, spec.Material, ErrMissingMaterial)
		}

		shape, err := buildShape(spec, id)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, spec.Type, err)
		}
		sc.Add(shape)
	}

	if file.Camera == nil {
		return nil, scene.ErrNoCamera
	}
	config, err := buildCamera(file.Camera)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	sc.SetCamera(config)

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func applyRenderSpec(config *scene.SamplingConfig, spec *RenderSpec) {
	if spec.Width > 0 {
		config.Width = spec.Width
	}
	if spec.Height > 0 {
		config.Height = spec.Height
	}
	if spec.Samples > 0 {
		config.SamplesPerPixel = spec.Samples
	}
	if spec.MaxDepth != nil {
		config.MaxDepth = *spec.MaxDepth
	}
}

func buildMaterial(spec MaterialSpec) (material.Material, error) {
	switch spec.Type {
	case "lambert", "lambertian":
		if spec.Albedo == nil {
			return nil, fmt.Errorf("lambert needs an albedo: %w", ErrInvalidParameter)
		}
		return material.NewLambertian(spec.Albedo.toVec3()), nil
	case "metal":
		if spec.Albedo == nil {
			return nil, fmt.Errorf("metal needs an albedo: %w", ErrInvalidParameter)
		}
		return material.NewMetal(spec.Albedo.toVec3(), spec.Fuzz), nil
	case "dielectric":
		if spec.IOR <= 0 {
			return nil, fmt.Errorf("ior %g must be positive: %w", spec.IOR, ErrInvalidParameter)
		}
		return material.NewDielectric(spec.IOR), nil
	default:
		return nil, fmt.Errorf("%q: %w", spec.Type, ErrUnknownMaterialType)
	}
}

func buildShape(spec ShapeSpec, id core.MaterialID) (geometry.Shape, error) {
	switch spec.Type {
	case "sphere":
		if spec.Center == nil || spec.Radius == 0 {
			return nil, fmt.Errorf("sphere needs a center and a non-zero radius: %w", ErrInvalidParameter)
		}
		return geometry.NewSphere(spec.Center.toVec3(), spec.Radius, id), nil
	case "plane", "bounded-plane":
		if spec.Origin == nil || spec.Normal == nil || spec.Normal.toVec3().LengthSquared() == 0 {
			return nil, fmt.Errorf("plane needs an origin and a non-zero normal: %w", ErrInvalidParameter)
		}
		if spec.Type == "plane" {
			return geometry.NewPlane(spec.Origin.toVec3(), spec.Normal.toVec3(), id), nil
		}
		if spec.Width <= 0 || spec.Depth <= 0 {
			return nil, fmt.Errorf("bounded plane needs positive width and depth: %w", ErrInvalidParameter)
		}
		return geometry.NewBoundedPlane(spec.Origin.toVec3(), spec.Normal.toVec3(), spec.Width, spec.Depth, id), nil
	case "box":
		if spec.Origin == nil || spec.Width <= 0 || spec.Height <= 0 || spec.Depth <= 0 {
			return nil, fmt.Errorf("box needs an origin and positive extents: %w", ErrInvalidParameter)
		}
		return geometry.NewBox(spec.Origin.toVec3(), spec.Width, spec.Height, spec.Depth, id), nil
	default:
		return nil, fmt.Errorf("%q: %w", spec.Type, ErrUnknownShapeType)
	}
}

func buildCamera(spec *CameraSpec) (geometry.CameraConfig, error) {
	if spec.Eye == nil || spec.LookAt == nil {
		return geometry.CameraConfig{}, fmt.Errorf("eye and lookAt are required: %w", ErrInvalidParameter)
	}
	if *spec.Eye == *spec.LookAt {
		return geometry.CameraConfig{}, fmt.Errorf("eye and lookAt coincide: %w", ErrInvalidParameter)
	}

	up := core.NewVec3(0, 1, 0)
	if spec.Up != nil {
		up = spec.Up.toVec3()
	}

	if up.Cross(spec.Eye.toVec3().Subtract(spec.LookAt.toVec3())).LengthSquared() == 0 {
		return geometry.CameraConfig{}, fmt.Errorf("up is parallel to the view direction: %w", ErrInvalidParameter)
	}

	vfov := spec.VFov
	if vfov == 0 {
		vfov = 90
	}
	if vfov < 0 || vfov >= 180 {
		return geometry.CameraConfig{}, fmt.Errorf("vfov %g outside (0, 180): %w", vfov, ErrInvalidParameter)
	}
	if spec.Aperture < 0 || spec.FocusDistance < 0 {
		return geometry.CameraConfig{}, fmt.Errorf("aperture and focus distance must not be negative: %w", ErrInvalidParameter)
	}

	return geometry.CameraConfig{
		Center:        spec.Eye.toVec3(),
		LookAt:        spec.LookAt.toVec3(),
		Up:            up,
		VFov:          vfov,
		Aperture:      spec.Aperture,
		FocusDistance: spec.FocusDistance,
	}, nil
}
