package display

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/engine"
)

var _ engine.Observer = (*Progress)(nil)

// Progress shows a live spinner per pack while a batch runs.
//
// Call [NewProgress], hand it to the engine as an observer, start the
// batch in another goroutine, then call [Progress.Run] (blocking). Call
// [Progress.Finish] when the batch returns so Run exits.
type Progress struct {
	program *tea.Program
}

// NewProgress creates the view for the given packs. cancel is called if
// the user interrupts with ctrl+c.
func NewProgress(packs []domain.Pack, cancel context.CancelFunc, opts ...tea.ProgramOption) *Progress {
	return &Progress{program: tea.NewProgram(newModel(packs, cancel), opts...)}
}

// Run starts the Bubble Tea event loop. Blocks until Finish or ctrl+c.
func (p *Progress) Run() error {
	_, err := p.program.Run()
	return err
}

// PackStarted implements engine.Observer.
func (p *Progress) PackStarted(pk domain.Pack) {
	p.program.Send(startedMsg{key: pk.Key})
}

// PackFinished implements engine.Observer.
func (p *Progress) PackFinished(r engine.Result) {
	p.program.Send(finishedMsg{result: r})
}

// Finish ends the view after the final render.
func (p *Progress) Finish() {
	p.program.Send(doneMsg{})
}

// ── Bubble Tea model ─────────────────────────────────────────────

type rowState int

const (
	rowPending rowState = iota
	rowRunning
	rowDone
)

type row struct {
	key    string
	title  string
	state  rowState
	result engine.Result
}

type model struct {
	spinner spinner.Model
	rows    []row
	index   map[string]int
	cancel  context.CancelFunc
	done    bool
}

// Messages.
type (
	startedMsg  struct{ key string }
	finishedMsg struct{ result engine.Result }
	doneMsg     struct{}
)

func newModel(packs []domain.Pack, cancel context.CancelFunc) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := model{
		spinner: s,
		rows:    make([]row, len(packs)),
		index:   make(map[string]int, len(packs)),
		cancel:  cancel,
	}
	for i, p := range packs {
		m.rows[i] = row{key: p.Key, title: p.Title}
		m.index[p.Key] = i
	}
	return m
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case startedMsg:
		if i, ok := m.index[msg.key]; ok {
			m.rows[i].state = rowRunning
		}
		return m, nil

	case finishedMsg:
		if i, ok := m.index[msg.result.PackKey]; ok {
			m.rows[i].state = rowDone
			m.rows[i].result = msg.result
		}
		return m, nil

	case doneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	for _, r := range m.rows {
		switch r.state {
		case rowPending:
			b.WriteString(secondaryStyle.Render("  · " + r.key))
		case rowRunning:
			b.WriteString("  " + m.spinner.View() + " " + keyStyle.Render(r.key) + secondaryStyle.Render("  "+r.title))
		case rowDone:
			b.WriteString(resultLine(r.result))
		}
		b.WriteByte('\n')
	}
	if !m.done {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %d/%d packs", m.finished(), len(m.rows))))
		b.WriteByte('\n')
	}
	return b.String()
}

// finished counts rows that have a result.
func (m model) finished() int {
	n := 0
	for _, r := range m.rows {
		if r.state == rowDone {
			n++
		}
	}
	return n
}
