package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/resource"
)

var (
	skyColor        = color.NRGBA{R: 0x9c, G: 0xc4, B: 0xe4, A: 0xff}
	groundColor     = color.NRGBA{R: 0x3b, G: 0x5d, B: 0x38, A: 0xff}
	gridColor       = color.NRGBA{R: 0x2c, G: 0x47, B: 0x2a, A: 0xff}
	targetColor     = color.NRGBA{R: 0x4f, G: 0x8f, B: 0x3a, A: 0xff}
	bloodColor      = color.NRGBA{R: 0x8a, G: 0x0b, B: 0x0b, A: 0xff}
	projectileColor = color.NRGBA{R: 0x30, G: 0x2a, B: 0x22, A: 0xff}
	barBackColor    = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xc0}
	barFillColor    = color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
)

const (
	clipNear         = 0.06
	towerHeight      = 0.6
	towerWidth       = 0.35
	barrelLength     = 0.35
	defaultBarHeight = 1.1
	defaultBarWidth  = 0.6
	barThickness     = 0.07
	minProjectileR   = 0.03
)

// RenderSystem draws the world through the first camera: ground, decals, then
// towers, targets and projectiles back to front.
type RenderSystem struct {
	drawables []drawable
	white     *ebiten.Image
}

type drawable struct {
	depth float64
	draw  func(screen *ebiten.Image)
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(skyColor)
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	b := screen.Bounds()
	view, ok := entity.CameraView(w, float64(b.Dx()), float64(b.Dy()))
	if !ok {
		return
	}
	specs, _ := ecs.Resource(w, resource.SpecsResource)
	light := lightIntensity(w)

	r.drawGround(w, screen, view, specs, light)
	r.drawBlood(w, screen, view, specs)

	r.drawables = r.drawables[:0]
	r.collectTowers(w, view, light)
	r.collectTargets(w, view, specs, light)
	r.collectProjectiles(w, view)

	sort.SliceStable(r.drawables, func(i, j int) bool {
		return r.drawables[i].depth > r.drawables[j].depth
	})
	for _, d := range r.drawables {
		d.draw(screen)
	}
}

func lightIntensity(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.LightComponent.Kind())
	if !ok {
		return 1
	}
	l, _ := ecs.Get(w, e, component.LightComponent.Kind())
	return common.Clamp(l.Intensity, 0.2, 1.5)
}

func (r *RenderSystem) drawGround(w *ecs.World, screen *ebiten.Image, view common.View, specs *resource.Specs, light float64) {
	e, ok := ecs.First(w, component.GroundComponent.Kind())
	if !ok {
		return
	}
	ground, _ := ecs.Get(w, e, component.GroundComponent.Kind())

	fill := groundColor
	if specs != nil && specs.World != nil {
		fill = toNRGBA(specs.World.Ground.Color.ColorOr(groundColor))
	}
	fill = shade(fill, light)

	half := ground.Size / 2
	step := ground.Size / float64(ground.Subdivisions)
	for i := 0; i < ground.Subdivisions; i++ {
		for j := 0; j < ground.Subdivisions; j++ {
			x0 := -half + float64(i)*step
			z0 := -half + float64(j)*step
			fillQuad(screen, r.white, view, fill,
				common.V3(x0, 0, z0), common.V3(x0+step, 0, z0),
				common.V3(x0+step, 0, z0+step), common.V3(x0, 0, z0+step))
		}
	}
	for i := 0; i <= ground.Subdivisions; i++ {
		o := -half + float64(i)*step
		strokeWorldLine(screen, view, common.V3(o, 0, -half), common.V3(o, 0, half), 1, gridColor)
		strokeWorldLine(screen, view, common.V3(-half, 0, o), common.V3(half, 0, o), 1, gridColor)
	}
}

func (r *RenderSystem) drawBlood(w *ecs.World, screen *ebiten.Image, view common.View, specs *resource.Specs) {
	base := bloodColor
	if specs != nil && specs.Blood != nil {
		base = toNRGBA(specs.Blood.Color.ColorOr(bloodColor))
	}
	ecs.ForEach2(w, component.BloodSplashComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, splash *component.BloodSplash, transform *component.Transform) {
		c := base
		c.A = uint8(float64(c.A) * common.Clamp(splash.Alpha, 0, 1))
		for _, blob := range splash.Blobs {
			offset := common.V3(blob.X, 0, blob.Z).Scale(splash.Scale).RotateY(splash.Rotation)
			sx, sy, depth, ok := view.Project(transform.Position.Add(offset))
			if !ok {
				continue
			}
			radius := blob.Y * splash.Scale * view.PixelScale(depth)
			vector.FillCircle(screen, float32(sx), float32(sy), float32(radius), c, true)
		}
	})
}

func (r *RenderSystem) collectTowers(w *ecs.World, view common.View, light float64) {
	db, _ := ecs.Resource(w, resource.TowerDBResource)
	ecs.ForEach2(w, component.TowerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tower *component.Tower, transform *component.Transform) {
		_, _, depth, ok := view.Project(transform.Position)
		if !ok {
			return
		}
		c := color.NRGBA{R: 0x8a, G: 0x94, B: 0xa6, A: 0xff}
		height := towerHeight
		if def, found := db.Get(tower.DefID); found {
			c = def.Color
			if def.Offset.Y > 0 {
				height = def.Offset.Y
			}
		}
		c = shade(c, light)
		base := transform.Position
		top := base.Add(common.V3(0, height, 0))
		muzzle := top.Add(common.V3(0, 0, -barrelLength).RotateY(transform.Yaw))
		width := towerWidth * transform.Scale * view.PixelScale(depth)

		r.drawables = append(r.drawables, drawable{depth: depth, draw: func(screen *ebiten.Image) {
			strokeWorldLine(screen, view, base, top, width, c)
			strokeWorldLine(screen, view, top, muzzle, width*0.35, shade(c, 0.6))
			if sx, sy, d, ok := view.Project(top); ok {
				vector.FillCircle(screen, float32(sx), float32(sy), float32(towerWidth*0.6*view.PixelScale(d)), shade(c, 1.15), true)
			}
		}})
	})
}

func (r *RenderSystem) collectTargets(w *ecs.World, view common.View, specs *resource.Specs, light float64) {
	body := targetColor
	barHeight, barWidth := defaultBarHeight, defaultBarWidth
	if specs != nil && specs.Target != nil {
		body = toNRGBA(specs.Target.Color.ColorOr(targetColor))
		if specs.Target.HealthBar.Height > 0 {
			barHeight = specs.Target.HealthBar.Height
		}
		if specs.Target.HealthBar.Width > 0 {
			barWidth = specs.Target.HealthBar.Width
		}
	}
	body = shade(body, light)

	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Target, transform *component.Transform) {
		_, _, depth, ok := view.Project(transform.Position)
		if !ok {
			return
		}
		height := transform.Scale * targetHeightPerScale
		bob := 0.0
		if anim, ok := ecs.Get(w, e, component.WalkAnimationComponent.Kind()); ok {
			bob = anim.Amplitude * math.Abs(math.Sin(anim.Phase))
		}
		bar, hasBar := ecs.Get(w, e, component.HealthBarComponent.Kind())
		var fill, offsetX float64
		if hasBar {
			fill, offsetX = bar.Fill, bar.OffsetX
		}
		pos := transform.Position

		r.drawables = append(r.drawables, drawable{depth: depth, draw: func(screen *ebiten.Image) {
			scale := view.PixelScale(depth)
			if sx, sy, _, ok := view.Project(pos.Add(common.V3(0, height*0.45+bob, 0))); ok {
				vector.FillCircle(screen, float32(sx), float32(sy), float32(height*0.3*scale), body, true)
			}
			if sx, sy, _, ok := view.Project(pos.Add(common.V3(0, height*0.88+bob, 0))); ok {
				vector.FillCircle(screen, float32(sx), float32(sy), float32(height*0.16*scale), shade(body, 1.2), true)
			}
			if !hasBar {
				return
			}
			cx, cy, d, ok := view.Project(pos.Add(common.V3(0, barHeight, 0)))
			if !ok {
				return
			}
			px := view.PixelScale(d)
			barPx := barWidth * px
			thick := float32(barThickness * px)
			vector.FillRect(screen, float32(cx-barPx/2), float32(cy)-thick/2, float32(barPx), thick, barBackColor, false)
			fillCenter := cx + offsetX/(2*healthBarWidth)*barPx
			fillPx := fill * barPx
			vector.FillRect(screen, float32(fillCenter-fillPx/2), float32(cy)-thick/2, float32(fillPx), thick, barFillColor, false)
		}})
	})
}

func (r *RenderSystem) collectProjectiles(w *ecs.World, view common.View) {
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, transform *component.Transform) {
		sx, sy, depth, ok := view.Project(transform.Position)
		if !ok {
			return
		}
		radius := p.Scale
		if radius < minProjectileR {
			radius = minProjectileR
		}
		px := radius * view.PixelScale(depth)
		r.drawables = append(r.drawables, drawable{depth: depth, draw: func(screen *ebiten.Image) {
			vector.FillCircle(screen, float32(sx), float32(sy), float32(px), projectileColor, true)
		}})
	})
}

// clipSegment trims a world segment to the part in front of the near plane.
func clipSegment(view common.View, a, b common.Vec3) (common.Vec3, common.Vec3, bool) {
	fwd := view.Forward()
	da := a.Sub(view.Position).Dot(fwd)
	db := b.Sub(view.Position).Dot(fwd)
	if da < clipNear && db < clipNear {
		return a, b, false
	}
	if da < clipNear {
		a = a.Add(b.Sub(a).Scale((clipNear - da) / (db - da)))
	} else if db < clipNear {
		b = b.Add(a.Sub(b).Scale((clipNear - db) / (da - db)))
	}
	return a, b, true
}

func strokeWorldLine(screen *ebiten.Image, view common.View, a, b common.Vec3, width float64, c color.Color) {
	a, b, ok := clipSegment(view, a, b)
	if !ok {
		return
	}
	ax, ay, _, okA := view.Project(a)
	bx, by, _, okB := view.Project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), float32(width), c, true)
}

// fillQuad draws a world quad when all four corners are in front of the camera.
func fillQuad(screen, src *ebiten.Image, view common.View, c color.NRGBA, corners ...common.Vec3) {
	vs := make([]ebiten.Vertex, 0, len(corners))
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for _, p := range corners {
		sx, sy, _, ok := view.Project(p)
		if !ok {
			return
		}
		vs = append(vs, ebiten.Vertex{
			DstX: float32(sx), DstY: float32(sy),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, src, &ebiten.DrawTrianglesOptions{})
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		return uint8(common.Clamp(float64(v)*f, 0, 255))
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
