package controller

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellar/internal/catalog"
	"cellar/internal/common"
	"cellar/internal/export"
	"cellar/internal/model"
	"cellar/internal/service"
	"cellar/internal/sommelier"
	"cellar/internal/telemetry"
)

// fakeStorage is an in-memory service.Storage for controller tests.
type fakeStorage struct {
	settings  map[string]string
	saveErr   error
	saveCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{settings: make(map[string]string)}
}

func (f *fakeStorage) SaveWines(context.Context, []model.Wine) error { return nil }
func (f *fakeStorage) GetWines(context.Context) ([]model.Wine, error) {
	return nil, nil
}
func (f *fakeStorage) CountWines(context.Context) (int, error) { return 0, nil }

func (f *fakeStorage) GetSetting(_ context.Context, key string) (string, error) {
	v, ok := f.settings[key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func (f *fakeStorage) SetSetting(_ context.Context, key, value string) error {
	f.settings[key] = value
	return nil
}

func (f *fakeStorage) LoadLedger(ctx context.Context) model.Ledger {
	value, err := f.GetSetting(ctx, service.SettingTastingLedger)
	if err != nil {
		return model.Ledger{}
	}
	var ledger model.Ledger
	if err := json.Unmarshal([]byte(value), &ledger); err != nil {
		return model.Ledger{}
	}
	return ledger
}

func (f *fakeStorage) SaveLedger(ctx context.Context, ledger model.Ledger) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	payload, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	return f.SetSetting(ctx, service.SettingTastingLedger, string(payload))
}

func (f *fakeStorage) Migrate(context.Context) error { return nil }
func (f *fakeStorage) Close() error                  { return nil }

func testStore() *catalog.Store {
	wines := make([]model.Wine, 0, 30)
	for i := 1; i <= 30; i++ {
		wineType := "Red"
		country := "France"
		if i%3 == 0 {
			wineType = "White"
			country = "Italy"
		}
		wines = append(wines, model.Wine{
			ID:      i,
			Rank:    i,
			Name:    "Wine " + string(rune('A'+(i-1)%26)),
			Winery:  "Winery",
			Type:    wineType,
			Country: country,
		})
	}
	return catalog.NewStore(wines)
}

func newTestController(t *testing.T) (*Controller, *fakeStorage) {
	t.Helper()
	storage := newFakeStorage()
	c := New(context.Background(), testStore(), storage, telemetry.Nop())
	return c, storage
}

func TestNew_Defaults(t *testing.T) {
	c, _ := newTestController(t)

	assert.Equal(t, 1, c.PageNumber())
	assert.Equal(t, ModeGrid, c.ViewMode())
	assert.Equal(t, catalog.NewFilterState(), c.Filter())
	assert.Empty(t, c.Ledger())
	assert.True(t, c.ShowWelcome())
	assert.False(t, c.CanExport())

	// Transcript opens with the assistant greeting.
	require.Len(t, c.Transcript(), 1)
	assert.Equal(t, model.RoleAssistant, c.Transcript()[0].Role)
}

func TestFilterChangeResetsPage(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	c.SetPage(ctx, 2)
	require.Equal(t, 2, c.PageNumber())

	c.SetType(ctx, "White")
	assert.Equal(t, 1, c.PageNumber(), "type change must reset page")

	c.SetPage(ctx, 1)
	c.SetSearch(ctx, "wine")
	assert.Equal(t, 1, c.PageNumber(), "search change must reset page")

	c.SetCountry(ctx, "Italy")
	assert.Equal(t, 1, c.PageNumber(), "country change must reset page")
}

func TestSetPage_OutOfRangeIgnored(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	total := c.TotalPages()
	require.Greater(t, total, 1)

	c.SetPage(ctx, total+1)
	assert.Equal(t, 1, c.PageNumber())

	c.SetPage(ctx, 0)
	assert.Equal(t, 1, c.PageNumber())

	c.NextPage(ctx)
	assert.Equal(t, 2, c.PageNumber())

	c.PrevPage(ctx)
	c.PrevPage(ctx)
	assert.Equal(t, 1, c.PageNumber())
}

func TestCurrentPage_SlicesFiltered(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	page := c.CurrentPage()
	assert.Len(t, page, catalog.DefaultPageSize)

	c.SetType(ctx, "White")
	for _, w := range c.Filtered() {
		assert.Equal(t, "White", w.Type)
	}
}

func TestSelection(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	_, ok := c.Selected()
	assert.False(t, ok)

	c.SelectWine(ctx, 5)
	w, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, 5, w.ID)

	// Selecting an unknown wine is a no-op, not a transition.
	c.SelectWine(ctx, 999)
	w, ok = c.Selected()
	require.True(t, ok)
	assert.Equal(t, 5, w.ID)

	c.ClearSelection()
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestToggleStatus_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	c, storage := newTestController(t)

	c.ToggleStatus(ctx, 1, model.StatusTasted)
	assert.Equal(t, model.StatusTasted, c.Ledger().Status(1))
	assert.Equal(t, 1, storage.saveCalls)
	assert.True(t, c.CanExport())

	// Same status toggles off and persists again.
	c.ToggleStatus(ctx, 1, model.StatusTasted)
	assert.Empty(t, c.Ledger())
	assert.Equal(t, 2, storage.saveCalls)

	// Different status overwrites.
	c.ToggleStatus(ctx, 1, model.StatusTasted)
	c.ToggleStatus(ctx, 1, model.StatusWant)
	assert.Equal(t, model.StatusWant, c.Ledger().Status(1))
}

func TestToggleStatus_SaveFailureDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	c, storage := newTestController(t)
	storage.saveErr = errors.New("disk full")

	c.ToggleStatus(ctx, 1, model.StatusTasted)
	assert.Equal(t, model.StatusTasted, c.Ledger().Status(1), "in-memory state still updates")
}

func TestToggleStatus_InvalidInputsIgnored(t *testing.T) {
	ctx := context.Background()
	c, storage := newTestController(t)

	c.ToggleStatus(ctx, 999, model.StatusTasted)
	c.ToggleStatus(ctx, 1, model.TastingStatus("bogus"))
	assert.Empty(t, c.Ledger())
	assert.Zero(t, storage.saveCalls)
}

func TestLedger_LoadedAtConstruction(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	require.NoError(t, storage.SaveLedger(ctx, model.Ledger{3: model.StatusWant}))

	c := New(ctx, testStore(), storage, telemetry.Nop())
	assert.Equal(t, model.StatusWant, c.Ledger().Status(3))
}

func TestWelcomeFlag(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()

	c := New(ctx, testStore(), storage, telemetry.Nop())
	require.True(t, c.ShowWelcome())

	c.DismissWelcome(ctx, true)
	assert.False(t, c.ShowWelcome())
	assert.Equal(t, "true", storage.settings[service.SettingHideWelcome])

	// A fresh controller respects the persisted opt-out.
	c2 := New(ctx, testStore(), storage, telemetry.Nop())
	assert.False(t, c2.ShowWelcome())
}

func TestChat_SingleInFlightRequest(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	prompt, ok := c.BeginSend(ctx, "What pairs with steak?")
	require.True(t, ok)
	assert.Contains(t, prompt, "What pairs with steak?")
	assert.True(t, c.Awaiting())
	transcriptLen := len(c.Transcript())

	// A second send while awaiting is dropped, not queued.
	_, ok = c.BeginSend(ctx, "another question")
	assert.False(t, ok)
	assert.Len(t, c.Transcript(), transcriptLen)

	c.CompleteSend(ctx, "Try a Bordeaux.", nil)
	assert.False(t, c.Awaiting())

	transcript := c.Transcript()
	require.Len(t, transcript, transcriptLen+1)
	assert.Equal(t, model.RoleUser, transcript[transcriptLen-1].Role)
	assert.Equal(t, model.RoleAssistant, transcript[transcriptLen].Role)
	assert.Equal(t, "Try a Bordeaux.", transcript[transcriptLen].Content)
}

func TestChat_EmptyInputIgnored(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	_, ok := c.BeginSend(ctx, "   ")
	assert.False(t, ok)
	assert.False(t, c.Awaiting())
}

func TestChat_ErrorSubstitutesApology(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	_, ok := c.BeginSend(ctx, "hello")
	require.True(t, ok)

	c.CompleteSend(ctx, "", errors.New("network down"))
	assert.False(t, c.Awaiting())

	transcript := c.Transcript()
	last := transcript[len(transcript)-1]
	assert.Equal(t, model.RoleAssistant, last.Role)
	assert.Equal(t, sommelier.FallbackReply, last.Content)
}

func TestChat_CompleteWithoutBeginIsNoOp(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	before := len(c.Transcript())
	c.CompleteSend(ctx, "stray reply", nil)
	assert.Len(t, c.Transcript(), before)
}

// spyRecorder captures emitted events for assertions.
type spyRecorder struct {
	events []telemetry.Event
}

func (s *spyRecorder) Emit(_ context.Context, event telemetry.Event) {
	s.events = append(s.events, event)
}

func (s *spyRecorder) named(name string) []telemetry.Event {
	var out []telemetry.Event
	for _, e := range s.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func TestExport_EmitsExportEvent(t *testing.T) {
	ctx := context.Background()
	recorder := &spyRecorder{}
	c := New(ctx, testStore(), newFakeStorage(), recorder)

	c.ToggleStatus(ctx, 1, model.StatusTasted)
	c.ToggleStatus(ctx, 2, model.StatusWant)

	payload, name, err := c.Export(ctx, export.FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"Tasted"`)
	assert.Contains(t, name, "wine-tasting-list-")
	assert.Contains(t, name, ".csv")

	events := recorder.named(telemetry.EventExportList)
	require.Len(t, events, 1)
	assert.Equal(t, "csv", events[0].Fields["format"])
	assert.Equal(t, 2, events[0].Fields["items"])
}

func TestExport_EmptyLedgerRefused(t *testing.T) {
	c, _ := newTestController(t)

	_, _, err := c.Export(context.Background(), export.FormatJSON)
	require.ErrorIs(t, err, common.ErrEmptyLedger)
	assert.False(t, c.CanExport())
}
