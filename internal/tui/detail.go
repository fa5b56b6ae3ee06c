package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bestreads/bestreads/models"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chrome is the number of terminal rows taken by the page title, dividers,
// hotkeys and padding around the viewport.
const (
	chrome = 8

	defaultWidth  = 80
	defaultHeight = 24
)

type detailModel struct {
	itemID   string
	item     models.ItemDetail
	loading  bool
	status   string
	viewport viewport.Model
}

// newDetailModel falls back to an 80x24 terminal until the first
// tea.WindowSizeMsg arrives.
func newDetailModel(itemID string, width, height int) detailModel {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	vp := viewport.New(width, max(height-chrome, 1))
	return detailModel{itemID: itemID, loading: true, viewport: vp}
}

func (m *detailModel) setItem(item models.ItemDetail) {
	m.loading = false
	m.item = item
	m.viewport.SetContent(renderItem(item))
	m.viewport.GotoTop()
}

func (m *detailModel) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 1)
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View(spinnerView string) string {
	if m.loading {
		return renderPage("#"+m.itemID, spinnerView+" Loading...", "esc back  q quit")
	}

	body := m.viewport.View()
	if m.status != "" {
		body += "\n\n" + m.status
	}
	return renderPage(m.item.Info.Title, body, "↑/↓ scroll  y copy id  esc back  q quit")
}

func renderItem(item models.ItemDetail) string {
	var b strings.Builder

	if item.Info.Author != nil {
		b.WriteString(authorStyle.Render("by "+*item.Info.Author) + "\n\n")
	}

	b.WriteString(strings.TrimRight(item.Description, "\r\n"))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render(fmt.Sprintf("Reviews (%d)", len(item.Reviews))))
	b.WriteString("\n")
	if len(item.Reviews) == 0 {
		b.WriteString("No reviews yet\n")
	}
	for _, review := range item.Reviews {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(review.Name))
		b.WriteString("  ")
		b.WriteString(ratingStyle.Render(renderRating(review.Rating)))
		b.WriteString("\n")
		b.WriteString(valueOrDash(review.Text))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRating shows numeric ratings from 1 to 5 as stars and anything else
// verbatim.
func renderRating(rating *string) string {
	if rating == nil {
		return "-"
	}

	stars, err := strconv.Atoi(strings.TrimSpace(*rating))
	if err != nil || stars < 1 || stars > 5 {
		return *rating
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}
