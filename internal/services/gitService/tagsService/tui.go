package tagsService

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	t "github.com/evertras/bubble-table/table"

	gitservice "github.com/redjax/kstable/internal/services/gitService"
)

const (
	colTag     = "tag"
	colCreated = "created"
	colType    = "type"
	colTagger  = "tagger"
	colHash    = "hash"
)

type browserModel struct {
	line  string
	table t.Model
}

func newBrowserModel(line string, tags []gitservice.TagInfo) browserModel {
	cols := []t.Column{
		t.NewColumn(colTag, "Tag", 14),
		t.NewColumn(colCreated, "Created", 18),
		t.NewColumn(colType, "Type", 12),
		t.NewColumn(colTagger, "Tagger", 24),
		t.NewColumn(colHash, "Hash", 10),
	}

	var rows []t.Row
	for _, tag := range tags {
		rows = append(rows, t.NewRow(t.RowData{
			colTag:     tag.Name,
			colCreated: tag.Created.Format("2006-01-02 15:04"),
			colType:    tag.Type,
			colTagger:  tag.Tagger,
			colHash:    tag.Hash,
		}))
	}

	return browserModel{
		line: line,
		table: t.New(cols).
			WithRows(rows).
			WithPageSize(15).
			Focused(true),
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m browserModel) View() string {
	return fmt.Sprintf("Stable tags for the %s line (q to quit)\n\n%s\n", m.line, m.table.View())
}

func runTagsBrowser(line string, tags []gitservice.TagInfo) error {
	p := tea.NewProgram(newBrowserModel(line, tags))

	_, err := p.Run()

	return err
}
