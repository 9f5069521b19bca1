//go:build ebiten

package gui

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/mobinyousefi-cs/dice-roller/internal/services/roll"
)

const (
	screenWidth  = 420
	screenHeight = 360

	minCount = 1
	maxCount = 12

	// frames of face cycling before the real result appears
	animationFrames = 10
)

// app runs the dice simulator window and adapts it to ebiten.Game
type app struct {
	cfg *Config

	// current service, rebuilt lazily when the seed entry changes
	svc       roll.Service
	seedDirty bool

	painter *FacePainter

	seedText string
	count    int
	sumMode  bool

	faceIndex int
	animLeft  int

	lastValues []int
	result     string
	status     string
}

// Run opens the simulator window and blocks until it is closed
func Run(cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	a := &app{
		cfg:       cfg,
		seedDirty: true,
		painter:   NewFacePainter(),
		count:     minCount,
		result:    "—",
		status:    "Ready",
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Dice Rolling Simulator")

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("failed to run GUI: %w", err)
	}

	return nil
}

// ensureService rebuilds the roll service from the seed entry
func (a *app) ensureService() error {
	if a.svc != nil && !a.seedDirty {
		return nil
	}

	seed, seeded := ParseSeed(a.seedText)
	svc, err := a.cfg.ServiceFactory(a.cfg.Die, seed, seeded)
	if err != nil {
		return err
	}

	a.svc = svc
	a.seedDirty = false
	return nil
}

// Update handles input, drives the roll animation and performs the
// roll once the animation finishes
func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	a.handleSeedEntry()

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && a.count < maxCount {
		a.count++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && a.count > minCount {
		a.count--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.sumMode = !a.sumMode
	}

	if a.animLeft > 0 {
		// spin: cycle through the faces before settling
		a.faceIndex = (a.faceIndex + 1) % a.cfg.Die.Sides()
		a.animLeft--
		if a.animLeft == 0 {
			if err := a.performRoll(); err != nil {
				a.result = "—"
				a.status = err.Error()
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := a.ensureService(); err != nil {
			a.status = err.Error()
			return nil
		}
		a.status = "Rolling…"
		a.animLeft = animationFrames
	}

	return nil
}

// handleSeedEntry edits the seed field from typed characters. Any edit
// marks the service dirty so the next roll uses the new seed.
func (a *app) handleSeedEntry() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			a.seedText += string(r)
			a.seedDirty = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && a.seedText != "" {
		a.seedText = a.seedText[:len(a.seedText)-1]
		a.seedDirty = true
	}
}

// performRoll asks the service for the real result once the spin ends
func (a *app) performRoll() error {
	output, err := a.svc.PerformRoll(context.Background(), &roll.PerformRollInput{
		Times:   a.count,
		SumMode: a.sumMode,
	})
	if err != nil {
		return err
	}

	a.lastValues = output.Values

	// settle the big face on the last die rolled
	last := output.Values[len(output.Values)-1]
	for i := 0; i < a.cfg.Die.Sides(); i++ {
		if a.cfg.Die.ValueFor(i) == last {
			a.faceIndex = i
			break
		}
	}

	a.result = formatResult(output)
	a.status = "Ready"
	return nil
}

// formatResult renders the result line: the sum breakdown in sum mode,
// the single value for one die, the value list otherwise
func formatResult(output *roll.PerformRollOutput) string {
	values := output.Values

	if output.SumMode && len(values) > 1 {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		return fmt.Sprintf("%s = %d", strings.Join(parts, " + "), output.Sum)
	}

	if len(values) == 1 {
		return strconv.Itoa(values[0])
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Draw renders the die face, the control values and the result line
func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})

	die := a.cfg.Die
	a.painter.DrawFace(screen, die.ValueFor(a.faceIndex), die.FaceFor(a.faceIndex), (screenWidth-faceSize)/2, 40)

	face := basicfont.Face7x13

	seed := a.seedText
	if seed == "" {
		seed = "(none)"
	}

	text.Draw(screen, "Dice Rolling Simulator", face, 16, 24, color.White)
	text.Draw(screen, fmt.Sprintf("Seed: %s", seed), face, 16, 220, color.White)
	text.Draw(screen, fmt.Sprintf("Dice: %d  (up/down)", a.count), face, 16, 240, color.White)
	text.Draw(screen, fmt.Sprintf("Show sum: %t  (s)", a.sumMode), face, 16, 260, color.White)
	text.Draw(screen, "Roll: space/enter    Quit: esc", face, 16, 280, color.White)
	text.Draw(screen, fmt.Sprintf("Result: %s", a.result), face, 16, 310, color.White)
	text.Draw(screen, a.status, face, 16, 340, color.RGBA{R: 160, G: 160, B: 160, A: 255})
}

// Layout returns the fixed logical screen size
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
