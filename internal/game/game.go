package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// countStep is how many particles the +/- keys add or remove.
const countStep = 10

// Game mounts a particle field on a themed page and lets the user browse
// pages and tune the field from the keyboard.
type Game struct {
	host       *Host
	field      *field.Renderer
	themes     config.Themes
	base       config.Config
	background config.RGB
	page       string
	log        *slog.Logger

	// count is the particle count chosen with +/- on the current page.
	count *int

	lastErr error
}

// NewGame builds a game showing the page named in s. s.Field is the
// configuration every theme is layered over.
func NewGame(host *Host, s config.Settings, themes config.Themes, log *slog.Logger) *Game {
	return &Game{
		host:       host,
		field:      field.New(host, field.WithLogger(log)),
		themes:     themes,
		base:       s.Field,
		background: s.Background,
		page:       s.Page,
		log:        log,
	}
}

// Start mounts the field for the current page.
func (g *Game) Start() error {
	if err := g.field.Initialize(g.pageOverride()); err != nil {
		return fmt.Errorf("start particle field: %w", err)
	}
	g.logPage()
	return nil
}

// Close tears the field down and releases the host.
func (g *Game) Close() {
	g.field.Teardown()
	g.host.Close()
}

func (g *Game) Update() error {
	g.host.pointerAt(ebiten.CursorPosition())

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.setErr(g.showPage(g.themes.NextPage(g.page)))
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.setErr(g.adjustCount(countStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.setErr(g.adjustCount(-countStep))
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.setErr(g.toggle())
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.setErr(g.openThemeFileDialog())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background.NRGBA(1))

	g.host.runFrames()
	g.host.composite(screen)

	st := g.field.Status()
	state := "running"
	if !st.Running {
		state = "stopped"
	}
	theme, _ := g.themes.ForPage(g.page)
	status := fmt.Sprintf("%s (%s) | %s | %d particles", g.page, theme, state, st.ParticleCount)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "Tab: page  +/-: particles  Space: start/stop  O: open themes  Esc/Q: quit", 12, 28)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.setViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// pageConfig is the configuration for the current page: the base, then the
// page's theme, then any count picked with +/-.
func (g *Game) pageConfig() config.Config {
	_, theme := g.themes.ForPage(g.page)
	c := g.base.Apply(theme.Field)
	if g.count != nil {
		c.ParticleCount = *g.count
	}
	return c
}

func (g *Game) pageOverride() config.Override {
	return g.pageConfig().Override()
}

func (g *Game) showPage(page string) error {
	prev, prevCount := g.page, g.count
	g.page, g.count = page, nil
	if err := g.field.UpdateConfiguration(g.pageOverride()); err != nil {
		g.page, g.count = prev, prevCount
		return fmt.Errorf("show page %q: %w", page, err)
	}
	g.logPage()
	return nil
}

func (g *Game) logPage() {
	key, theme := g.themes.ForPage(g.page)
	g.log.Info("page shown", "page", g.page, "theme", key, "name", theme.Name)
}

// adjustCount changes the particle count for the current page. While the
// field is stopped the count is kept for the next Start.
func (g *Game) adjustCount(delta int) error {
	n := max(g.pageConfig().ParticleCount+delta, 0)
	if err := g.field.UpdateConfiguration(config.Override{ParticleCount: config.Int(n)}); err != nil {
		return err
	}
	g.count = &n
	return nil
}

func (g *Game) toggle() error {
	if g.field.Status().Running {
		g.field.Teardown()
		return nil
	}
	return g.Start()
}

func (g *Game) openThemeFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Theme File"),
		zenity.FileFilters{{
			Name:     "Themes",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.useThemes(filename)
}

func (g *Game) useThemes(path string) error {
	themes, err := config.LoadThemes(path)
	if err != nil {
		return err
	}
	g.themes = themes
	g.log.Info("themes loaded", "path", path, "themes", len(themes.Themes), "pages", len(themes.Pages))
	return g.showPage(g.page)
}

func (g *Game) setErr(err error) {
	if err != nil {
		g.log.Error("action failed", "err", err)
	}
	g.lastErr = err
}
