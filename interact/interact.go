package interact

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdginn/go-reflector-puzzle/puzzle"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	arrival puzzle.Arrival
}

func (i item) Title() string {
	return fmt.Sprintf("%.0f px, %d reflections", i.arrival.Distance, i.arrival.Reflections)
}

func (i item) Description() string {
	return fmt.Sprintf("hit at (%.0f, %.0f)", i.arrival.HitPosition.X, i.arrival.HitPosition.Y)
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list    list.Model
	geom    puzzle.LevelGeometry
	mirrors []puzzle.Mirror
	view    puzzle.View
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if selected, ok := m.list.SelectedItem().(item); ok {
		arrival := selected.arrival
		m.view.SavePNG("selected.png", m.geom, m.mirrors, &arrival)
	}
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Interact opens a browser over traced arrivals; selecting one renders its
// path to selected.png.
func Interact(geom puzzle.LevelGeometry, mirrors []puzzle.Mirror, arrivals []puzzle.Arrival, view puzzle.View) error {
	items := make([]list.Item, len(arrivals))
	for i, arrival := range arrivals {
		items[i] = item{arrival: arrival}
	}

	m := model{list: list.New(items, list.NewDefaultDelegate(), 0, 0), geom: geom, mirrors: mirrors, view: view}
	m.list.Title = "Traced arrivals"

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
	return nil
}
