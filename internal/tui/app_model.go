package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/bestreads/bestreads/internal/adapter"
	"github.com/bestreads/bestreads/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// copyToClipboard is swapped in tests, where no clipboard is available.
var copyToClipboard = clipboard.WriteAll

type screen int

const (
	screenList screen = iota
	screenDetail
)

type appModel struct {
	ctx           context.Context
	client        adapter.CatalogClient
	currentScreen screen

	list    listModel
	detail  detailModel
	spinner spinner.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	showError    bool
	errorOverlay errorOverlayModel

	width  int
	height int
}

func newAppModel(ctx context.Context, client adapter.CatalogClient, collection string, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		client:    client,
		list:      newListModel(collection),
		spinner:   s,
		buildInfo: buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadCatalog())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.list.loading = false
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.setEntries(msg.entries)
		return m, nil
	case itemLoadedMsg:
		if m.currentScreen != screenDetail || msg.item.ItemID != m.detail.itemID {
			return m, nil
		}
		if msg.err != nil {
			m.currentScreen = screenList
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail.setItem(msg.item)
		return m, nil
	case copiedMsg:
		status := fmt.Sprintf("Copied %s!", msg.itemID)
		m.list.status = status
		m.detail.status = status
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.resize(msg.Width, msg.Height)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.showError = false
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.about) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m appModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.list.moveDown()
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.currentScreen = screenDetail
		m.detail = newDetailModel(entry.ItemID, m.width, m.height)
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadItem(entry.ItemID))
	case key.Matches(keyMsg, keys.copy):
		if entry, ok := m.list.current(); ok {
			return m, cmdCopyToClipboard(entry.ItemID)
		}
	case key.Matches(keyMsg, keys.reload):
		m.list.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCatalog())
	case key.Matches(keyMsg, keys.about):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.itemID)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(keyMsg)
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case m.currentScreen == screenDetail:
		body = m.detail.View(m.spinner.View())
	default:
		body = m.list.View(m.spinner.View())
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) cmdLoadCatalog() tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		entries, err := client.ListCatalog(ctx)
		return catalogLoadedMsg{entries: entries, err: err}
	}
}

// cmdLoadItem fetches the three parts of an item. A missing review set is
// reported by the server like a missing item, so it is shown as no reviews.
func (m appModel) cmdLoadItem(itemID string) tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		item := models.ItemDetail{ItemID: itemID}

		info, err := client.GetInfo(ctx, itemID)
		if err != nil {
			return itemLoadedMsg{item: item, err: err}
		}
		item.Info = info

		description, err := client.GetDescription(ctx, itemID)
		if err != nil {
			return itemLoadedMsg{item: item, err: err}
		}
		item.Description = description

		reviews, err := client.GetReviews(ctx, itemID)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return itemLoadedMsg{item: item, err: err}
		}
		item.Reviews = reviews

		return itemLoadedMsg{item: item}
	}
}

func cmdCopyToClipboard(itemID string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(itemID); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{itemID: itemID}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
