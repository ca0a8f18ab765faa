package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/towerdefense/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() common.Vec3 {
	return common.V3(v.X, v.Y, v.Z)
}

type CameraSpec struct {
	Name        string   `yaml:"name"`
	Position    Vec3Spec `yaml:"position"`
	LookAt      Vec3Spec `yaml:"look_at"`
	FOVDegrees  float64  `yaml:"fov_degrees"`
	MoveSpeed   float64  `yaml:"move_speed"`
	ZoomSpeed   float64  `yaml:"zoom_speed"`
	Sensitivity float64  `yaml:"sensitivity"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TargetSpec struct {
	Name      string        `yaml:"name"`
	Spawn     Vec3Spec      `yaml:"spawn"`
	Yaw       float64       `yaml:"yaw"`
	Scale     float64       `yaml:"scale"`
	Speed     float64       `yaml:"speed"`
	Health    float64       `yaml:"health"`
	HitRadius float64       `yaml:"hit_radius"`
	ExitX     float64       `yaml:"exit_x"`
	Walk      WalkSpec      `yaml:"walk"`
	HealthBar HealthBarSpec `yaml:"health_bar"`
	Color     *YAMLColor    `yaml:"color"`
}

type WalkSpec struct {
	Rate      float64 `yaml:"rate"`
	Amplitude float64 `yaml:"amplitude"`
}

type HealthBarSpec struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
}

func LoadTargetSpec() (*TargetSpec, error) {
	spec, err := LoadSpec[TargetSpec]("target.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BloodSpec struct {
	Name     string     `yaml:"name"`
	Lifetime float64    `yaml:"lifetime"`
	MinScale float64    `yaml:"min_scale"`
	MaxScale float64    `yaml:"max_scale"`
	Lift     float64    `yaml:"lift"`
	Blobs    int        `yaml:"blobs"`
	Color    *YAMLColor `yaml:"color"`
}

func LoadBloodSpec() (*BloodSpec, error) {
	spec, err := LoadSpec[BloodSpec]("blood.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WorldSpec struct {
	Lives        int              `yaml:"lives"`
	Intermission float64          `yaml:"intermission"`
	Ground       GroundSpec       `yaml:"ground"`
	Light        LightSpec        `yaml:"light"`
	Towers       []TowerPlacement `yaml:"towers"`
}

type GroundSpec struct {
	Size         float64    `yaml:"size"`
	Subdivisions int        `yaml:"subdivisions"`
	Color        *YAMLColor `yaml:"color"`
}

type LightSpec struct {
	Intensity float64 `yaml:"intensity"`
}

// TowerPlacement puts a catalog tower in the world when a session starts.
type TowerPlacement struct {
	Tower string  `yaml:"tower"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ColorOr returns the spec color, or fallback when none was set.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
