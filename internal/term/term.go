// SPDX-License-Identifier: Unlicense OR MIT

// Package term draws progress circles in the terminal using Braille
// characters.
package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kratorius/circleprogress/circle"
	"github.com/kratorius/circleprogress/raster"
)

// Each Braille cell covers 2 dot columns and 4 dot rows. Virtual pixels
// are sampled in blocks of dotSize.
const dotSize = 4

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Screen is a circle.Canvas rendering arcs to Braille cells. Labels are
// drawn as plain text over the cells.
type Screen struct {
	rows, cols int
	img        *image.RGBA
	raster     *raster.Canvas

	arcColor   color.NRGBA
	label      string
	labelRow   int
	labelColor color.NRGBA
}

// NewScreen returns a screen of the given number of text rows. Its
// virtual pixel size is returned by Bounds.
func NewScreen(rows int) *Screen {
	if rows < 1 {
		rows = 1
	}
	s := &Screen{rows: rows, cols: rows * 2}
	s.img = image.NewRGBA(image.Rect(0, 0, s.cols*2*dotSize, rows*4*dotSize))
	s.raster = raster.NewCanvas(s.img)
	return s
}

// Bounds returns the content box to draw circles in.
func (s *Screen) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Reset clears the screen.
func (s *Screen) Reset() {
	for i := range s.img.Pix {
		s.img.Pix[i] = 0
	}
	s.label = ""
}

// StrokeArc implements circle.Canvas.
func (s *Screen) StrokeArc(oval image.Rectangle, startAngle, sweep, width int, c color.NRGBA) {
	s.arcColor = c
	s.raster.StrokeArc(oval, startAngle, sweep, width, c)
}

// DrawText implements circle.Canvas.
func (s *Screen) DrawText(txt string, center image.Point, _ int, c color.NRGBA) {
	s.label, s.labelColor = txt, c
	s.labelRow = center.Y / (4 * dotSize)
}

func (s *Screen) dot(x, y int) bool {
	var sum int
	for dy := 0; dy < dotSize; dy++ {
		for dx := 0; dx < dotSize; dx++ {
			sum += int(s.img.RGBAAt(x*dotSize+dx, y*dotSize+dy).A)
		}
	}
	return sum >= dotSize*dotSize*0x80
}

// Lines returns the Braille rows without styling.
func (s *Screen) Lines() []string {
	lines := make([]string, s.rows)
	for row := range lines {
		lines[row] = string(s.cells(row))
	}
	if s.label != "" && s.labelRow >= 0 && s.labelRow < s.rows {
		pre, lbl, post := s.splitLabel(s.cells(s.labelRow))
		lines[s.labelRow] = string(pre) + lbl + string(post)
	}
	return lines
}

func (s *Screen) cells(row int) []rune {
	line := make([]rune, s.cols)
	for col := range line {
		var pattern uint
		for dx := 0; dx < 2; dx++ {
			for dy := 0; dy < 4; dy++ {
				if s.dot(col*2+dx, row*4+dy) {
					pattern |= 1 << brailleBits[dx][dy]
				}
			}
		}
		line[col] = rune(0x2800 + pattern)
	}
	return line
}

func (s *Screen) splitLabel(line []rune) (pre []rune, label string, post []rune) {
	lbl := []rune(s.label)
	if len(lbl) > len(line) {
		lbl = lbl[:len(line)]
	}
	at := (len(line) - len(lbl)) / 2
	return line[:at], string(lbl), line[at+len(lbl):]
}

// View renders the screen with Lip Gloss styles.
func (s *Screen) View() string {
	arcStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(s.arcColor)))
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex(s.labelColor)))
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		line := s.cells(row)
		if row == s.labelRow && s.label != "" {
			pre, lbl, post := s.splitLabel(line)
			b.WriteString(arcStyle.Render(string(pre)))
			b.WriteString(labelStyle.Render(lbl))
			b.WriteString(arcStyle.Render(string(post)))
		} else {
			b.WriteString(arcStyle.Render(string(line)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// tickMsg is a frame tick of the tick chain started for circle
// generation gen.
type tickMsg struct {
	gen int
	t   time.Time
}

const frameInterval = time.Second / 30

func tick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, t: t}
	})
}

// Model is a Bubble Tea model showing a single circle. The + and - keys
// change the value, r replays the start animation and q quits.
type Model struct {
	build  func() (*circle.ProgressCircle, error)
	circle *circle.ProgressCircle
	screen *Screen
	err    error
	// gen counts circle rebuilds. Ticks of older chains are dropped.
	gen int
}

// New returns a model showing circles created by build, rows text rows
// high.
func New(rows int, build func() (*circle.ProgressCircle, error)) *Model {
	m := &Model{build: build, screen: NewScreen(rows)}
	m.circle, m.err = build()
	return m
}

// Circle returns the circle shown.
func (m *Model) Circle() *circle.ProgressCircle {
	return m.circle
}

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tick(m.gen)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=", "up", "right":
			m.step(5)
		case "-", "down", "left":
			m.step(-5)
		case "r":
			c, err := m.build()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.circle = c
			m.gen++
			return m, tick(m.gen)
		}
	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		now := msg.t
		var err error
		if !m.circle.Attached() {
			err = m.circle.Attach(now)
		} else {
			_, err = m.circle.Advance(now)
		}
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.circle.Animating() {
			return m, tick(m.gen)
		}
	}
	return m, nil
}

// step changes the value by delta, clamped to the valid range.
func (m *Model) step(delta int) {
	v := m.circle.Value() + delta
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}
	m.circle.SetValue(v)
}

func (m *Model) View() string {
	if m.err != nil {
		return m.err.Error() + "\n"
	}
	m.screen.Reset()
	m.circle.Draw(m.screen, m.screen.Bounds())
	return m.screen.View() + "\n+/- value · r replay · q quit\n"
}
