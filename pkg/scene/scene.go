package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene must not be modified once rendering has started; it is shared
// read-only between render workers.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []geometry.Shape    // Objects in the scene, in insertion order
	Materials      []material.Material // Indexed by core.MaterialID
	TopColor       core.Vec3           // Background color straight up
	BottomColor    core.Vec3           // Background color straight down
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the scene's recommended render settings
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 200,
		MaxDepth:        100,
	}
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// New creates an empty scene with the default sky gradient
func New(name string) *Scene {
	return &Scene{
		Name:           name,
		Shapes:         make([]geometry.Shape, 0),
		Materials:      make([]material.Material, 0),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// AddMaterial registers a material and returns the id shapes use to refer to it
func (s *Scene) AddMaterial(m material.Material) core.MaterialID {
	s.Materials = append(s.Materials, m)
	return core.MaterialID(len(s.Materials) - 1)
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// SetCamera builds the scene camera. A zero aspect ratio is taken from the
// sampling config's image dimensions.
func (s *Scene) SetCamera(config geometry.CameraConfig) {
	if config.AspectRatio <= 0 {
		config.AspectRatio = s.SamplingConfig.AspectRatio()
	}
	s.CameraConfig = config
	s.Camera = geometry.NewCamera(config)
}

// Resize changes the output dimensions and rebuilds the camera to match
func (s *Scene) Resize(width, height int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = height
	if s.Camera != nil {
		config := s.CameraConfig
		config.AspectRatio = 0
		s.SetCamera(config)
	}
}

// Material resolves a material id from a hit record produced by this scene
func (s *Scene) Material(id core.MaterialID) material.Material {
	return s.Materials[id]
}

// Hit returns the intersection closest to the ray origin.
// Every shape is tested over (HitEpsilon, +Inf); ties keep the shape added first.
func (s *Scene) Hit(ray core.Ray) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestDistance := math.MaxFloat64

	for _, shape := range s.Shapes {
		hit, isHit := shape.Hit(ray, core.HitEpsilon, math.Inf(1))
		if !isHit {
			continue
		}

		distance := hit.Point.Subtract(ray.Origin).Length()
		if distance < closestDistance {
			closestDistance = distance
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}

	for i, shape := range s.Shapes {
		id := shape.MaterialIndex()
		if id < 0 || int(id) >= len(s.Materials) {
			return fmt.Errorf("shape %d (%T) uses material %d of %d: %w", i, shape, id, len(s.Materials), ErrUnknownMaterial)
		}
	}

	return nil
}
