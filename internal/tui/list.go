package tui

import (
	"fmt"
	"strings"

	"github.com/bestreads/bestreads/models"
)

const maxTitleWidth = 60

type listModel struct {
	collection string
	entries    []models.CatalogEntry
	idx        int
	loading    bool
	status     string
}

func newListModel(collection string) listModel {
	return listModel{collection: collection, loading: true}
}

func (m listModel) current() (models.CatalogEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.CatalogEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *listModel) setEntries(entries []models.CatalogEntry) {
	m.loading = false
	m.entries = entries
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.entries)-1 {
		m.idx++
	}
}

func (m listModel) View(spinnerView string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(spinnerView + " Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("The catalog is empty\n")
	default:
		for i, entry := range m.entries {
			line := fmt.Sprintf("%s  %s", fitText(entry.Title, maxTitleWidth), helpStyle.Render("#"+entry.ItemID))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> ") + line + "\n")
				continue
			}
			b.WriteString("  " + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	title := "BestReads"
	if m.collection != "" {
		title += " · " + m.collection
	}
	return renderPage(title, b.String(), "↑/↓ move  enter open  y copy id  r reload  v about  q quit")
}
