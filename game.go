package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/app"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
	"go.uber.org/zap"
)

// Game hosts the app in Ebiten and owns the menus. It is also the plugin that
// opens and closes them on state changes.
type Game struct {
	app *app.App
	kit *uiKit
	log *zap.Logger

	menu  *ebitenui.UI
	pause *ebitenui.UI
	build *buildUI
}

func NewGame(a *app.App) *Game {
	return &Game{app: a, kit: newUIKit(a.World), log: a.Log.Named("ui")}
}

func (g *Game) Build(a *app.App) error {
	appState := ecs.MustResource(a.World, resource.AppStateResource)
	appState.OnEnter(resource.AppMenu, ecs.SystemFunc(g.openMenu))
	appState.OnExit(resource.AppMenu, ecs.SystemFunc(func(*ecs.World) { g.menu = nil }))
	appState.OnEnter(resource.AppPaused, ecs.SystemFunc(g.openPause))
	appState.OnExit(resource.AppPaused, ecs.SystemFunc(func(*ecs.World) { g.pause = nil }))

	player := ecs.MustResource(a.World, resource.PlayerStateResource)
	player.OnEnter(resource.PlayerBuild, ecs.SystemFunc(g.openBuild))
	player.OnExit(resource.PlayerBuild, ecs.SystemFunc(func(*ecs.World) { g.build = nil }))
	return nil
}

func (g *Game) openMenu(w *ecs.World) {
	g.menu = NewMenuUI(g.kit,
		func() { ecs.SetState(w, resource.AppStateResource, resource.AppInGame) },
		func() {
			g.log.Info("exit requested from menu")
			g.app.RequestExit()
		},
	)
}

func (g *Game) openPause(w *ecs.World) {
	g.pause = NewPauseUI(g.kit,
		func() { ecs.SetState(w, resource.AppStateResource, resource.AppInGame) },
		func() { ecs.SetState(w, resource.AppStateResource, resource.AppMenu) },
	)
}

func (g *Game) openBuild(w *ecs.World) {
	var ids []string
	if db, ok := ecs.Resource(w, resource.TowerDBResource); ok {
		ids = db.IDs()
	}
	session := ecs.MustResource(w, resource.SessionResource)
	if session.SelectedTower == "" && len(ids) > 0 {
		session.SelectedTower = ids[0]
	}
	g.build = NewBuildUI(g.kit, ids, session.SelectedTower, func(id string) {
		session.SelectedTower = id
		g.log.Debug("tower selected", zap.String("tower", id))
	})
}

func (g *Game) state() resource.AppState {
	s, _ := ecs.CurrentState(g.app.World, resource.AppStateResource)
	return s
}

// activeUIs returns the menus visible this frame, bottom first.
func (g *Game) activeUIs() []*ebitenui.UI {
	var uis []*ebitenui.UI
	switch g.state() {
	case resource.AppMenu:
		if g.menu != nil {
			uis = append(uis, g.menu)
		}
	case resource.AppPaused:
		if g.pause != nil {
			uis = append(uis, g.pause)
		}
	case resource.AppInGame:
		if g.build != nil {
			uis = append(uis, g.build.ui)
		}
	}
	return uis
}

func (g *Game) Update() error {
	w := g.app.World
	in := ecs.MustResource(w, resource.InputResource)
	in.ScreenWidth, in.ScreenHeight = common.BaseWidth, common.BaseHeight

	for _, ui := range g.activeUIs() {
		ui.Update()
	}
	in.PointerOverUI = false
	if g.build != nil && g.state() == resource.AppInGame {
		in.PointerOverUI = g.build.Contains(ebiten.CursorPosition())
	}

	g.app.Update()
	if g.app.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.app.Draw(screen)
	if g.state() != resource.AppMenu {
		drawHUD(screen, g.app.World, g.kit.face)
	}
	for _, ui := range g.activeUIs() {
		ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
