package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orbarena/internal/config"
	"github.com/vovakirdan/orbarena/internal/core"
	"github.com/vovakirdan/orbarena/internal/match"
)

// Pickup glyphs by kind.
var pickupGlyphs = map[string]rune{
	"heal":   '+',
	"weapon": '†',
	"shield": 'o',
	"bomb":   '*',
}

const (
	agentFill   = '▒'
	weaponGlyph = '✦'
	maxEventLog = 4
	hudRows     = 5 // title row + one bar row per agent is added on top of this
)

// eventFeed collects presentation callbacks into a rolling text log.
type eventFeed struct {
	lines []string
}

func (f *eventFeed) push(line string) {
	f.lines = append(f.lines, line)
	if len(f.lines) > maxEventLog {
		f.lines = f.lines[len(f.lines)-maxEventLog:]
	}
}

// Model is the Bubble Tea model spectating one match.
type Model struct {
	match         *match.Match
	canvas        *Canvas
	bars          map[string]progress.Model
	feed          *eventFeed
	ticksPerFrame int
	width, height int
	quitting      bool
}

// NewModel builds a spectator for a fresh match with the given seed.
func NewModel(cfg config.MatchConfig, seed int64, width, height int) (Model, error) {
	feed := &eventFeed{}
	events := match.Events{
		OnAgentDamaged: func(agent string, amount, hp int) {
			feed.push(fmt.Sprintf("%s takes %d damage (%d HP left)", agent, amount, hp))
		},
		OnAgentHealed: func(agent string, amount, hp int) {
			feed.push(fmt.Sprintf("%s heals %d (%d HP)", agent, amount, hp))
		},
		OnShieldBroken: func(agent string) {
			feed.push(fmt.Sprintf("%s's shield shatters", agent))
		},
		OnWeaponEquipped: func(agent string) {
			feed.push(fmt.Sprintf("%s picks up a weapon", agent))
		},
		OnBombExploded: func(_ core.Vec2, hit []string) {
			feed.push(fmt.Sprintf("bomb catches %s", strings.Join(hit, ", ")))
		},
		OnMatchWon: func(winner string, _ int) {
			feed.push(fmt.Sprintf("%s is the last one standing", winner))
		},
	}
	m, err := match.New(cfg, seed, events)
	if err != nil {
		return Model{}, err
	}

	ticksPerFrame := cfg.Timing.TickRate / frameRate
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	bars := make(map[string]progress.Model, len(cfg.Agents))
	for _, a := range cfg.Agents {
		bars[a.Name] = progress.New(
			progress.WithSolidFill(fillFor(a.OutlineColor)),
			progress.WithWidth(24),
			progress.WithoutPercentage(),
		)
	}

	rows := height - hudRows - len(cfg.Agents)
	if rows < 4 {
		rows = 4
	}
	return Model{
		match:         m,
		canvas:        NewCanvas(width, rows, cfg.Arena.Width, cfg.Arena.Height),
		bars:          bars,
		feed:          feed,
		ticksPerFrame: ticksPerFrame,
		width:         width,
		height:        height,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := msg.Height - hudRows - len(m.match.Snapshot().Agents)
		if rows < 4 {
			rows = 4
		}
		m.canvas.Resize(msg.Width, rows)
	case TickMsg:
		if !m.match.Done() {
			for range m.ticksPerFrame {
				m.match.Step()
				if m.match.Done() {
					break
				}
			}
		}
		return m, tickCmd()
	}
	return m, nil
}

// View renders the HUD, HP bars, and the arena.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.match.Snapshot()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(" %s  t=%05.1fs  tick=%d\n",
		m.match.Config().Title, snap.Elapsed, snap.Tick))

	for _, a := range snap.Agents {
		bar := m.bars[a.Name]
		frac := float64(a.HP) / float64(a.MaxHP)
		flags := ""
		if a.Shield {
			flags += " [shield]"
		}
		if a.Armed {
			flags += " [armed]"
		}
		if !a.Alive {
			flags = " [down]"
		}
		name := styleFor(a.OutlineColor).Render(fmt.Sprintf("%-10s", a.Name))
		sb.WriteString(fmt.Sprintf(" %s %s %d/%d%s\n", name, bar.ViewAs(frac), a.HP, a.MaxHP, flags))
	}

	m.drawArena(snap)
	sb.WriteString(RenderCanvas(m.canvas))
	sb.WriteRune('\n')

	for _, line := range m.feed.lines {
		sb.WriteString(" " + line + "\n")
	}

	if snap.Done {
		if snap.Winner != "" {
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render(
				fmt.Sprintf(" %s wins after %.1fs - press q to exit", snap.Winner, snap.Elapsed)))
		} else {
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render(
				" Time limit reached, no winner - press q to exit"))
		}
	} else {
		sb.WriteString(" q: quit")
	}
	return sb.String()
}

// drawArena plots the snapshot onto the canvas.
func (m Model) drawArena(snap match.Snapshot) {
	m.canvas.Clear()
	m.canvas.DrawBorder()

	for _, p := range snap.Pickups {
		glyph, ok := pickupGlyphs[p.Kind]
		if !ok {
			glyph = '?'
		}
		m.canvas.DrawPoint(p.X, p.Y, glyph, "")
	}
	for _, a := range snap.Agents {
		if !a.Alive {
			continue
		}
		m.canvas.DrawCircle(a.X, a.Y, a.Radius, agentFill, a.OutlineColor)
		initial := ' '
		if len(a.Name) > 0 {
			initial = rune(a.Name[0])
		}
		m.canvas.DrawPoint(a.X, a.Y, initial, a.OutlineColor)
	}
	for _, w := range snap.Weapons {
		m.canvas.DrawPoint(w.X, w.Y, weaponGlyph, "")
	}
}
