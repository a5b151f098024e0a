package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Toggle(t *testing.T) {
	tests := []struct {
		name    string
		start   Ledger
		wineID  int
		status  TastingStatus
		want    Ledger
	}{
		{
			name:   "set on empty ledger",
			start:  Ledger{},
			wineID: 1,
			status: StatusTasted,
			want:   Ledger{1: StatusTasted},
		},
		{
			name:   "same status toggles off",
			start:  Ledger{1: StatusTasted},
			wineID: 1,
			status: StatusTasted,
			want:   Ledger{},
		},
		{
			name:   "different status overwrites",
			start:  Ledger{1: StatusTasted},
			wineID: 1,
			status: StatusWant,
			want:   Ledger{1: StatusWant},
		},
		{
			name:   "other entries untouched",
			start:  Ledger{1: StatusTasted, 2: StatusWant},
			wineID: 2,
			status: StatusWant,
			want:   Ledger{1: StatusTasted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Toggle(tt.wineID, tt.status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_ToggleTwiceClears(t *testing.T) {
	for _, status := range []TastingStatus{StatusTasted, StatusWant} {
		ledger := Ledger{}.Toggle(42, status).Toggle(42, status)
		_, ok := ledger[42]
		assert.False(t, ok, "status %q should toggle off", status)
	}
}

func TestLedger_WithStatusValueSemantics(t *testing.T) {
	original := Ledger{1: StatusTasted}
	updated := original.WithStatus(2, StatusWant)

	require.Len(t, original, 1, "original ledger must not be mutated")
	assert.Equal(t, Ledger{1: StatusTasted, 2: StatusWant}, updated)

	cleared := updated.WithStatus(1, "")
	assert.Equal(t, Ledger{1: StatusTasted, 2: StatusWant}, updated)
	assert.Equal(t, Ledger{2: StatusWant}, cleared)
}

func TestLedger_Counts(t *testing.T) {
	ledger := Ledger{
		1: StatusTasted,
		2: StatusWant,
		3: StatusTasted,
	}
	tasted, want := ledger.Counts()
	assert.Equal(t, 2, tasted)
	assert.Equal(t, 1, want)
}

func TestTastingStatus_Label(t *testing.T) {
	assert.Equal(t, "Tasted", StatusTasted.Label())
	assert.Equal(t, "Want to Taste", StatusWant.Label())
}
