package common

import "math"

const (
	maxPitch = 89 * math.Pi / 180
	nearClip = 0.05
)

// View is a perspective camera looking along -Z at yaw 0, pitch 0.
type View struct {
	Position Vec3
	Yaw      float64
	Pitch    float64
	FOV      float64
	Width    float64
	Height   float64
}

// LookAt returns the yaw and pitch that point a camera at from towards to.
func LookAt(from, to Vec3) (yaw, pitch float64) {
	d := to.Sub(from)
	yaw = math.Atan2(-d.X, -d.Z)
	pitch = math.Atan2(d.Y, math.Hypot(d.X, d.Z))
	return yaw, ClampPitch(pitch)
}

func ClampPitch(p float64) float64 {
	return Clamp(p, -maxPitch, maxPitch)
}

func (v View) Forward() Vec3 {
	sy, cy := math.Sincos(v.Yaw)
	sp, cp := math.Sincos(v.Pitch)
	return Vec3{X: -sy * cp, Y: sp, Z: -cy * cp}
}

func (v View) Right() Vec3 {
	sy, cy := math.Sincos(v.Yaw)
	return Vec3{X: cy, Z: -sy}
}

func (v View) Up() Vec3 {
	return v.Right().Cross(v.Forward())
}

func (v View) focal() float64 {
	fov := v.FOV
	if fov <= 0 {
		fov = math.Pi / 3
	}
	return (v.Height / 2) / math.Tan(fov/2)
}

// Project maps a world point to screen pixels. ok is false for points behind the near plane.
func (v View) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	d := p.Sub(v.Position)
	z := d.Dot(v.Forward())
	if z < nearClip {
		return 0, 0, z, false
	}
	f := v.focal()
	x := d.Dot(v.Right())
	y := d.Dot(v.Up())
	return v.Width/2 + x*f/z, v.Height/2 - y*f/z, z, true
}

// PixelScale returns how many pixels one world unit spans at the given depth.
func (v View) PixelScale(depth float64) float64 {
	if depth < nearClip {
		depth = nearClip
	}
	return v.focal() / depth
}

// Ray returns the world-space direction through a screen pixel.
func (v View) Ray(sx, sy float64) Vec3 {
	f := v.focal()
	x := (sx - v.Width/2) / f
	y := (v.Height/2 - sy) / f
	return v.Forward().Add(v.Right().Scale(x)).Add(v.Up().Scale(y)).Normalize()
}

// GroundPick intersects the ray through a screen pixel with the Y=0 plane.
func (v View) GroundPick(sx, sy float64) (Vec3, bool) {
	dir := v.Ray(sx, sy)
	if dir.Y >= 0 {
		return Vec3{}, false
	}
	t := -v.Position.Y / dir.Y
	if t < 0 {
		return Vec3{}, false
	}
	return v.Position.Add(dir.Scale(t)), true
}
