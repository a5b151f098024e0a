// Package controller owns all UI-visible state for the catalog view: filter
// state, view state, the tasting ledger, and the chat transcript. Widgets
// read through derived accessors and write through named intents; every
// derived view is recomputed here on state change.
package controller

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cellar/internal/catalog"
	"cellar/internal/common"
	"cellar/internal/export"
	"cellar/internal/model"
	"cellar/internal/service"
	"cellar/internal/sommelier"
	"cellar/internal/telemetry"
)

// ViewMode selects how the catalog page is rendered.
type ViewMode string

const (
	// ModeGrid shows full wine cards.
	ModeGrid ViewMode = "grid"
	// ModeCondensed shows one-line rows.
	ModeCondensed ViewMode = "condensed"
)

// Controller is the single source of truth for the catalog view.
type Controller struct {
	store    *catalog.Store
	storage  service.Storage
	recorder telemetry.Recorder

	filter   catalog.FilterState
	filtered []model.Wine
	page     int
	pageSize int
	viewMode ViewMode
	selected *model.Wine

	ledger model.Ledger

	transcript []model.ChatMessage
	awaiting   bool

	showWelcome bool
}

// New builds a controller over the given catalog, loading the persisted
// tasting ledger and welcome flag. Persistence failures degrade to defaults.
func New(ctx context.Context, store *catalog.Store, storage service.Storage, recorder telemetry.Recorder) *Controller {
	if recorder == nil {
		recorder = telemetry.Nop()
	}

	hide := false
	if value, err := storage.GetSetting(ctx, service.SettingHideWelcome); err == nil {
		hide = value == "true"
	}

	c := &Controller{
		store:    store,
		storage:  storage,
		recorder: recorder,
		filter:   catalog.NewFilterState(),
		page:     1,
		pageSize: catalog.DefaultPageSize,
		viewMode: ModeGrid,
		ledger:   storage.LoadLedger(ctx),
		transcript: []model.ChatMessage{
			{Role: model.RoleAssistant, Content: sommelier.Greeting},
		},
		showWelcome: !hide,
	}
	c.filtered = catalog.Filter(store.Wines(), c.filter)

	recorder.Emit(ctx, telemetry.Event{Name: telemetry.EventPageView})
	return c
}

// Store returns the underlying catalog.
func (c *Controller) Store() *catalog.Store { return c.store }

// Filter returns the current filter state.
func (c *Controller) Filter() catalog.FilterState { return c.filter }

// Filtered returns the wines matching the current filter, catalog order.
func (c *Controller) Filtered() []model.Wine { return c.filtered }

// SetSearch updates the search text. Any filter change resets the view to
// page 1 so the list can never be left on a now-out-of-range page.
func (c *Controller) SetSearch(ctx context.Context, search string) {
	if c.filter.Search == search {
		return
	}
	c.filter.Search = search
	c.applyFilter()
	if search != "" {
		c.recorder.Emit(ctx, telemetry.Event{
			Name: telemetry.EventSearch,
			Fields: map[string]any{
				"search_term":   search,
				"results_count": len(c.filtered),
			},
		})
	}
}

// SetType updates the selected type chip.
func (c *Controller) SetType(ctx context.Context, wineType string) {
	if c.filter.Type == wineType {
		return
	}
	c.filter.Type = wineType
	c.applyFilter()
	c.recorder.Emit(ctx, telemetry.Event{
		Name:   telemetry.EventFilterWines,
		Fields: map[string]any{"filter_type": "type", "filter_value": wineType},
	})
}

// SetCountry updates the selected country chip.
func (c *Controller) SetCountry(ctx context.Context, country string) {
	if c.filter.Country == country {
		return
	}
	c.filter.Country = country
	c.applyFilter()
	c.recorder.Emit(ctx, telemetry.Event{
		Name:   telemetry.EventFilterWines,
		Fields: map[string]any{"filter_type": "country", "filter_value": country},
	})
}

func (c *Controller) applyFilter() {
	c.filtered = catalog.Filter(c.store.Wines(), c.filter)
	c.page = 1
}

// PageNumber returns the current 1-based page.
func (c *Controller) PageNumber() int { return c.page }

// TotalPages returns the page count for the current filtered list.
func (c *Controller) TotalPages() int {
	return catalog.TotalPages(len(c.filtered), c.pageSize)
}

// CurrentPage returns the wines on the current page.
func (c *Controller) CurrentPage() []model.Wine {
	return catalog.Page(c.filtered, c.page, c.pageSize)
}

// SetPage moves to the given page. Out-of-range requests are ignored.
func (c *Controller) SetPage(ctx context.Context, page int) {
	if page < 1 || page > c.TotalPages() || page == c.page {
		return
	}
	c.page = page
	c.recorder.Emit(ctx, telemetry.Event{
		Name:   telemetry.EventPaginationUsed,
		Fields: map[string]any{"page": page},
	})
}

// NextPage and PrevPage step through pages, saturating at the ends.
func (c *Controller) NextPage(ctx context.Context) { c.SetPage(ctx, c.page+1) }

// PrevPage steps back one page.
func (c *Controller) PrevPage(ctx context.Context) { c.SetPage(ctx, c.page-1) }

// ViewMode returns the current rendering mode.
func (c *Controller) ViewMode() ViewMode { return c.viewMode }

// SetViewMode switches between grid and condensed rendering.
func (c *Controller) SetViewMode(ctx context.Context, mode ViewMode) {
	if mode == c.viewMode {
		return
	}
	c.viewMode = mode
	c.recorder.Emit(ctx, telemetry.Event{
		Name:   telemetry.EventViewModeChanged,
		Fields: map[string]any{"mode": string(mode)},
	})
}

// Selected returns the wine shown in the detail view, if any.
func (c *Controller) Selected() (model.Wine, bool) {
	if c.selected == nil {
		return model.Wine{}, false
	}
	return *c.selected, true
}

// SelectWine opens the detail view for the given wine.
func (c *Controller) SelectWine(ctx context.Context, id int) {
	w, ok := c.store.ByID(id)
	if !ok {
		return
	}
	c.selected = &w
	c.recorder.Emit(ctx, telemetry.Event{
		Name: telemetry.EventViewItem,
		Fields: map[string]any{
			"item_id":   w.ID,
			"item_name": w.Name,
			"price":     w.Price,
		},
	})
}

// ClearSelection dismisses the detail view.
func (c *Controller) ClearSelection() {
	c.selected = nil
}

// Ledger returns the current tasting ledger value.
func (c *Controller) Ledger() model.Ledger { return c.ledger }

// Counts reports the tasted and want-to-taste totals.
func (c *Controller) Counts() (tasted, want int) { return c.ledger.Counts() }

// CanExport reports whether there is anything to export. The export control
// is hidden for an empty ledger.
func (c *Controller) CanExport() bool { return len(c.ledger) > 0 }

// Export encodes the tasting ledger in the given format and emits the
// export event. Returns the payload and its dated filename; an empty
// ledger refuses with ErrEmptyLedger (callers hide the control instead).
func (c *Controller) Export(ctx context.Context, format export.Format) ([]byte, string, error) {
	if !c.CanExport() {
		return nil, "", common.ErrEmptyLedger
	}

	payload, err := export.Encode(c.ledger, c.store, format)
	if err != nil {
		return nil, "", err
	}

	c.recorder.Emit(ctx, telemetry.Event{
		Name: telemetry.EventExportList,
		Fields: map[string]any{
			"format": string(format),
			"items":  len(c.ledger),
		},
	})

	return payload, export.Filename(format, time.Now()), nil
}

// ToggleStatus applies the checkbox policy for a wine and status: requesting
// the recorded status clears it, anything else sets it. The full ledger is
// persisted after every mutation; save failures are logged, never surfaced.
func (c *Controller) ToggleStatus(ctx context.Context, wineID int, status model.TastingStatus) {
	if !status.Valid() {
		return
	}
	if _, ok := c.store.ByID(wineID); !ok {
		return
	}

	setting := c.ledger.Status(wineID) != status
	c.ledger = c.ledger.Toggle(wineID, status)

	if err := c.storage.SaveLedger(ctx, c.ledger); err != nil {
		slog.Warn("Failed to persist tasting ledger", "error", err)
	}

	if setting {
		c.recorder.Emit(ctx, telemetry.Event{
			Name: telemetry.EventTastingAction,
			Fields: map[string]any{
				"wine_id": wineID,
				"action":  string(status),
			},
		})
	}
}

// ShowWelcome reports whether the one-time welcome overlay should be shown.
func (c *Controller) ShowWelcome() bool { return c.showWelcome }

// DismissWelcome closes the overlay, optionally persisting the opt-out flag.
func (c *Controller) DismissWelcome(ctx context.Context, dontShowAgain bool) {
	c.showWelcome = false
	if dontShowAgain {
		if err := c.storage.SetSetting(ctx, service.SettingHideWelcome, "true"); err != nil {
			slog.Warn("Failed to persist welcome flag", "error", err)
		}
	}
}

// Transcript returns the chat transcript, oldest first.
func (c *Controller) Transcript() []model.ChatMessage { return c.transcript }

// Awaiting reports whether a sommelier request is outstanding.
func (c *Controller) Awaiting() bool { return c.awaiting }

// BeginSend starts a chat turn: it appends the user message, marks a request
// in flight, and returns the prompt to send. Empty input is ignored, and so
// is a send while a prior request is outstanding (drop, not queue: at most
// one request is ever in flight, which is what keeps the transcript ordered).
func (c *Controller) BeginSend(ctx context.Context, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" || c.awaiting {
		return "", false
	}

	c.transcript = append(c.transcript, model.ChatMessage{Role: model.RoleUser, Content: input})
	c.awaiting = true

	c.recorder.Emit(ctx, telemetry.Event{
		Name:   telemetry.EventChatMessage,
		Fields: map[string]any{"message_type": "user"},
	})

	return sommelier.BuildPrompt(c.store.Wines(), c.transcript, input), true
}

// CompleteSend finishes the in-flight chat turn. On error the fixed apology
// is appended and the cause is only logged; the reply (or apology) always
// directly follows its user message.
func (c *Controller) CompleteSend(ctx context.Context, reply string, err error) {
	if !c.awaiting {
		return
	}
	c.awaiting = false

	if err != nil {
		common.LogError(err, "Sommelier request failed", nil)
		c.transcript = append(c.transcript, model.ChatMessage{
			Role:    model.RoleAssistant,
			Content: sommelier.FallbackReply,
		})
		return
	}

	c.transcript = append(c.transcript, model.ChatMessage{Role: model.RoleAssistant, Content: reply})
	c.recorder.Emit(ctx, telemetry.Event{
		Name:   telemetry.EventChatMessage,
		Fields: map[string]any{"message_type": "assistant"},
	})
}
