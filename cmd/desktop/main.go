package main

import (
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"gocalc/pkg/calc"
	"gocalc/pkg/grid"
	"gocalc/pkg/history"
	"gocalc/pkg/utils"
)

const (
	screenWidth  = 644
	screenHeight = 390
	charWidth    = 7 // basicfont.Face7x13 advance
	lineHeight   = 13
	cols         = screenWidth / charWidth
	rows         = screenHeight / lineHeight

	prompt = "> "
)

var errorColor = color.RGBA{0xff, 0x70, 0x70, 0xff}

// scrollLine is one row of output; failed lines are drawn in errorColor.
type scrollLine struct {
	text   string
	failed bool
}

type Game struct {
	journal    *history.Journal
	opts       calc.Options
	input      []rune
	scrollback []scrollLine
	face       text.Face
}

func newGame(journal *history.Journal, opts calc.Options) *Game {
	g := &Game{
		journal: journal,
		opts:    opts,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	// Replay the tail of a loaded history so the window opens where the last
	// session left off.
	if journal != nil {
		for _, e := range journal.Last(rows / 2) {
			g.push(e.Input, e.Output, e.Failed)
		}
	}
	return g
}

// push appends an evaluated line and its outcome. Failures are shown with the
// same "error: " prefix the console uses.
func (g *Game) push(input, output string, failed bool) {
	if failed {
		output = "error: " + output
	}
	g.scrollback = append(g.scrollback,
		scrollLine{text: prompt + input},
		scrollLine{text: output, failed: failed},
	)
	// Only what fits on screen is ever drawn.
	if extra := len(g.scrollback) - rows*2; extra > 0 {
		g.scrollback = g.scrollback[extra:]
	}
}

// submit evaluates the current input line and appends it to the scrollback.
func (g *Game) submit() {
	line := string(g.input)
	g.input = g.input[:0]
	if strings.TrimSpace(line) == "" {
		return
	}

	v, err := calc.EvaluateOptions(line, g.opts)
	if err != nil {
		g.push(line, err.Error(), true)
	} else {
		g.push(line, v.String(), false)
	}

	if g.journal != nil {
		if jerr := g.journal.Record(line, v, err); jerr != nil {
			log.Printf("history: %v", jerr)
		}
	}
}

func (g *Game) backspace() {
	if n := len(g.input); n > 0 {
		g.input = g.input[:n-1]
	}
}

// repeatingKeyPressed reports a held key once immediately and then at a
// fixed rate after an initial delay.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) Update() error {
	g.input = ebiten.AppendInputChars(g.input)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.submit()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.input = g.input[:0]
	case repeatingKeyPressed(ebiten.KeyBackspace):
		g.backspace()
	}
	return nil
}

// visibleRows lays the scrollback and the input line out on the character
// grid. The input row carries one spare cell for the caret.
func (g *Game) visibleRows() (lines []scrollLine, caretX int) {
	editing := prompt + string(g.input)
	n := len([]rune(editing))
	caretX, _ = grid.GetGridCoords(n, cols)

	for _, l := range g.scrollback {
		for _, row := range grid.Wrap(l.text, cols) {
			lines = append(lines, scrollLine{text: row, failed: l.failed})
		}
	}
	for _, row := range grid.Wrap(editing+" ", cols) {
		lines = append(lines, scrollLine{text: row})
	}
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	return lines, caretX
}

func (g *Game) Draw(screen *ebiten.Image) {
	lines, caretX := g.visibleRows()
	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(0, float64(i*lineHeight))
		if l.failed {
			op.ColorScale.ScaleWithColor(errorColor)
		}
		text.Draw(screen, l.text, g.face, op)
	}

	// Blinking caret on the last row.
	if time.Now().UnixMilli()/500%2 == 0 {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(caretX*charWidth), float64((len(lines)-1)*lineHeight))
		text.Draw(screen, "_", g.face, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	var journal *history.Journal
	var historyPath string
	if len(os.Args) > 1 {
		fullPath, _, err := utils.GetPathInfo(os.Args[1])
		if err != nil {
			log.Fatalf("Bad history path: %v", err)
		}
		historyPath = fullPath
		journal = history.NewJournal()
		if err := journal.LoadFrom(historyPath); err != nil {
			log.Fatalf("Failed to load history: %v", err)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("GoCalc")

	// Start background syncer (flushes dirty history to host every 3 s)
	stopSyncer := make(chan struct{})
	if journal != nil {
		go journal.StartSyncer(historyPath, 3*time.Second, stopSyncer)
	}

	game := newGame(journal, calc.Options{})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	// Graceful shutdown: stop syncer and do a final flush
	close(stopSyncer)
	if journal != nil {
		if err := journal.PersistTo(historyPath); err != nil {
			log.Printf("Failed to persist history: %v", err)
		}
	}
}
