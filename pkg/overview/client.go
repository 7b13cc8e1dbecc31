// pkg/overview/client.go
package overview

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	game "go-garden-defense/internal/app"
	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/interfaces"
	"go-garden-defense/internal/types"
	"go-garden-defense/pkg/render"
)

// Client — вид сверху на ту же симуляцию, реализует ebiten.Game.
type Client struct {
	game           *game.Game
	store          interfaces.LayoutStore
	proj           render.Projection
	renderer       *Renderer
	panel          *InfoPanel
	logger         zerolog.Logger
	lastUpdateTime time.Time
	status         string
}

var buildKeys = map[ebiten.Key]defs.TowerKind{
	ebiten.Key1: defs.TowerTomato,
	ebiten.Key2: defs.TowerPotato,
	ebiten.Key3: defs.TowerCabbage,
}

func NewClient(g *game.Game, store interfaces.LayoutStore, logger zerolog.Logger) *Client {
	colors := &render.MapColors{
		BackgroundColor:  config.BackgroundColor,
		GroundColor:      config.GroundColor,
		PadColor:         config.PadColor,
		SelectedPadColor: config.SelectedPadColor,
		HoveredPadColor:  config.HoveredPadColor,
		TargetColor:      config.TargetColor,
		BulletColor:      config.BulletColor,
		TextLightColor:   config.TextLightColor,
		TextDarkColor:    config.TextDarkColor,
		TowerStrokeColor: config.TowerStrokeColor,
		TowerColors:      config.TowerColors,
		StrokeWidth:      float32(config.StrokeWidth),
	}
	proj := render.NewProjection(config.OverviewScale, config.ScreenWidth, config.ScreenHeight, -20, 40, -2, 10)
	return &Client{
		game:           g,
		store:          store,
		proj:           proj,
		renderer:       NewRenderer(g.ECS, proj, colors),
		panel:          NewInfoPanel(basicfont.Face7x13, config.ScreenWidth, config.ScreenHeight),
		logger:         logger.With().Str("client", "overview").Logger(),
		lastUpdateTime: time.Now(),
	}
}

func (c *Client) Update() error {
	now := time.Now()
	deltaTime := now.Sub(c.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	c.lastUpdateTime = now

	c.handleKeys()
	x, y := ebiten.CursorPosition()
	if c.panel.Contains(x, y) {
		c.game.SetHovered(types.NoEntity)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if kind, ok := c.panel.ButtonAt(x, y); ok {
				c.game.ClickBuildButton(kind)
			}
		}
	} else {
		c.handleMapPointer(x, y)
	}

	c.game.Update(deltaTime)
	c.panel.Update(c.game.ECS)
	return nil
}

func (c *Client) handleKeys() {
	for key, kind := range buildKeys {
		if inpututil.IsKeyJustPressed(key) {
			c.game.ClickBuildButton(kind)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		c.game.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		c.game.CycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		c.game.ClearSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		c.status = "Layout saved"
		if err := c.store.SaveLayout(); err != nil {
			c.logger.Warn().Err(err).Msg("save failed")
			c.status = "Save failed"
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF8):
		ok, err := c.store.LoadLayout()
		switch {
		case err != nil:
			c.logger.Warn().Err(err).Msg("load failed")
			c.status = "Load failed"
		case !ok:
			c.status = "No saved layout"
		default:
			c.status = "Layout loaded"
		}
	}
}

// handleMapPointer выбирает площадку под курсором. Shift добавляет к выбору.
func (c *Client) handleMapPointer(x, y int) {
	wx, wz := c.proj.ScreenToWorld(float64(x), float64(y))
	pad, hit := c.game.PadNearXZ(wx, wz)
	c.game.SetHovered(pad)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	switch {
	case hit && ebiten.IsKeyPressed(ebiten.KeyShift):
		c.game.ToggleSelect(pad)
	case hit:
		c.game.Select(pad)
	default:
		c.game.ClearSelection()
	}
}

func (c *Client) Draw(screen *ebiten.Image) {
	c.renderer.Draw(screen, c.game.GetGameTime())
	c.panel.Draw(screen, c.game.ECS, len(c.game.SelectedPads()))

	state := "running"
	if c.game.IsPaused() {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Time: %.1fs  Speed: x%.0f  %s  Towers: %d  Pads: %d\nClick pad, Shift add, 1/2/3 build, Space pause, Tab speed, F5/F8 save/load\n%s",
		c.game.GetGameTime(), c.game.Speed(), state, len(c.game.ECS.Towers), len(c.game.ECS.Pads), c.status,
	))
}

func (c *Client) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
