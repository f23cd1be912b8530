// Command fourierscope opens a window that plays a waveform preset, draws
// the first 5 ms of it and shows the estimated Fourier coefficients.
//
// Click a button or press 1-4 to switch presets.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/internal/playback"
	"github.com/cwbudde/algo-fourier/internal/scope"
	"github.com/cwbudde/algo-fourier/internal/session"
)

var (
	bgColor     = color.RGBA{255, 255, 255, 255}
	waveColor   = color.RGBA{0, 0, 255, 255}
	buttonColor = color.RGBA{64, 64, 64, 255}
	activeColor = color.RGBA{0, 0, 128, 255}
	playColor   = color.RGBA{0, 128, 64, 255}
	labelBg     = color.RGBA{24, 24, 32, 255}
)

var presetKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

type game struct {
	sess    *session.Session
	player  *playback.Player
	view    scope.Viewport
	presets []session.Preset
	buttons []scope.Button
	grid    []scope.Line

	wave   []scope.Line
	text   []string
	active int
}

func newGame(sess *session.Session, player *playback.Player) *game {
	view := scope.DefaultViewport()
	presets := session.Presets()
	labels := make([]string, len(presets))
	for i, p := range presets {
		labels[i] = p.Label()
	}

	return &game{
		sess:    sess,
		player:  player,
		view:    view,
		presets: presets,
		buttons: view.Buttons(labels...),
		grid:    view.Grid(),
		text:    []string{"a0: ", "a[]: ", "b[]: "},
		active:  -1,
	}
}

func (g *game) Update() error {
	for i, k := range presetKeys {
		if i < len(g.presets) && inpututil.IsKeyJustPressed(k) {
			g.trigger(i)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if i := scope.HitButton(g.buttons, mx, my); i >= 0 {
			g.trigger(i)
		}
	}
	return nil
}

// trigger runs preset i. A failed run leaves the previous display and sound.
func (g *game) trigger(i int) {
	res, err := g.sess.Run(g.presets[i])
	if err != nil {
		log.Printf("fourierscope: %v", err)
		return
	}

	g.active = i
	g.wave = g.view.Waveform(res.Samples, res.SampleRate)
	g.text = scope.CoefficientLines(res.Coefficients)

	if g.player != nil {
		if err := g.player.Play(res.Samples); err != nil {
			log.Printf("fourierscope: %v", err)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	for _, l := range g.grid {
		c := uint8(l.Shade)
		ebitenutil.DrawLine(screen, l.X0, l.Y0, l.X1, l.Y1, color.RGBA{c, c, c, 255})
	}
	for _, l := range g.wave {
		ebitenutil.DrawLine(screen, l.X0, l.Y0, l.X1, l.Y1, waveColor)
	}

	for i, line := range g.text {
		y := 16 + i*26
		ebitenutil.DrawRect(screen, 16, float64(y-2), float64(len(line)*6+8), 18, labelBg)
		ebitenutil.DebugPrintAt(screen, line, 20, y)
	}

	playing := g.player != nil && g.player.IsPlaying()
	for i, b := range g.buttons {
		c := buttonColor
		switch {
		case i == g.active && playing:
			c = playColor
		case i == g.active:
			c = activeColor
		}
		r := b.Rect
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
		ebitenutil.DebugPrintAt(screen, b.Label, r.Min.X+8, r.Min.Y+4)
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.view.Width, g.view.Height
}

func main() {
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	harmonics := flag.Int("harmonics", 5, "number of harmonics to estimate")
	mute := flag.Bool("mute", false, "do not play audio")
	flag.Parse()

	sess, err := session.New(session.WithConfig(core.ApplyOptions(
		core.WithSampleRate(*rate),
		core.WithHarmonicCount(*harmonics),
	)))
	if err != nil {
		log.Fatal(err)
	}

	var player *playback.Player
	if !*mute {
		player, err = playback.New(*rate)
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = player.Stop() }()
	}

	g := newGame(sess, player)
	ebiten.SetWindowSize(g.view.Width*2, g.view.Height*2)
	ebiten.SetWindowTitle("fourierscope")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
