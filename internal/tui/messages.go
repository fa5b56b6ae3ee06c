package tui

import "github.com/bestreads/bestreads/models"

type catalogLoadedMsg struct {
	entries []models.CatalogEntry
	err     error
}

type itemLoadedMsg struct {
	item models.ItemDetail
	err  error
}

type copiedMsg struct {
	itemID string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
