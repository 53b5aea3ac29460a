package beer

import (
	"strings"
	"testing"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBeer(t *testing.T) {
	t.Run("creates beer with valid inputs", func(t *testing.T) {
		b, err := NewBeer("Galaxy Cat", StylePaleAle, "0631234200036", decimal.NewFromFloat(12.99))
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.Equal(t, "Galaxy Cat", b.Name)
		assert.Equal(t, StylePaleAle, b.Style)
		assert.Equal(t, "0631234200036", b.UPC)
		assert.True(t, b.Price.Equal(decimal.NewFromFloat(12.99)))
		assert.Nil(t, b.QuantityOnHand)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, 1, b.GetVersion())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewBeer("", StyleIPA, "12345", decimal.NewFromInt(10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewBeer(strings.Repeat("x", 101), StyleIPA, "12345", decimal.NewFromInt(10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 100 characters")
	})

	t.Run("fails with unknown style", func(t *testing.T) {
		_, err := NewBeer("Galaxy Cat", Style("MALT_LIQUOR"), "12345", decimal.NewFromInt(10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown beer style")
	})

	t.Run("fails with empty UPC", func(t *testing.T) {
		_, err := NewBeer("Galaxy Cat", StyleIPA, "", decimal.NewFromInt(10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UPC cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewBeer("Galaxy Cat", StyleIPA, "12345", decimal.NewFromInt(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Price cannot be negative")
	})
}

func TestBeerUpdate(t *testing.T) {
	t.Run("replaces fields and bumps version", func(t *testing.T) {
		b, err := NewBeer("Galaxy Cat", StylePaleAle, "0631234200036", decimal.NewFromFloat(12.99))
		require.NoError(t, err)

		err = b.Update("Crank", StyleIPA, "0631234300019", decimal.NewFromFloat(11.99))
		require.NoError(t, err)

		assert.Equal(t, "Crank", b.Name)
		assert.Equal(t, StyleIPA, b.Style)
		assert.Equal(t, "0631234300019", b.UPC)
		assert.True(t, b.Price.Equal(decimal.NewFromFloat(11.99)))
		assert.Equal(t, 2, b.GetVersion())
	})

	t.Run("rejects invalid replacement", func(t *testing.T) {
		b, err := NewBeer("Galaxy Cat", StylePaleAle, "0631234200036", decimal.NewFromFloat(12.99))
		require.NoError(t, err)

		err = b.Update("", StyleIPA, "0631234300019", decimal.NewFromFloat(11.99))
		require.Error(t, err)
		assert.Equal(t, "Galaxy Cat", b.Name)
		assert.Equal(t, 1, b.GetVersion())
	})
}

func TestBeerSetQuantityOnHand(t *testing.T) {
	b, err := NewBeer("Galaxy Cat", StylePaleAle, "0631234200036", decimal.NewFromFloat(12.99))
	require.NoError(t, err)

	require.NoError(t, b.SetQuantityOnHand(122))
	require.NotNil(t, b.QuantityOnHand)
	assert.Equal(t, 122, *b.QuantityOnHand)

	err = b.SetQuantityOnHand(-1)
	require.Error(t, err)
	assert.Equal(t, 122, *b.QuantityOnHand)
}

func TestStyleIsValid(t *testing.T) {
	for _, s := range Styles() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, Style("SHANDY").IsValid())
	assert.False(t, Style("").IsValid())
}

func TestSnapshotOf(t *testing.T) {
	b, err := NewBeer("Mango Bobs", StyleAle, "0631234200036", decimal.NewFromFloat(8.49))
	require.NoError(t, err)
	require.NoError(t, b.SetQuantityOnHand(44))

	snap := SnapshotOf(b)
	assert.Equal(t, b.ID, snap.BeerID)
	assert.Equal(t, b.Name, snap.Name)
	assert.Equal(t, b.Style, snap.Style)
	assert.Equal(t, b.UPC, snap.UPC)
	assert.True(t, snap.Price.Equal(b.Price))
	require.NotNil(t, snap.QuantityOnHand)
	assert.Equal(t, 44, *snap.QuantityOnHand)

	// snapshot must not alias the aggregate's quantity
	*b.QuantityOnHand = 0
	assert.Equal(t, 44, *snap.QuantityOnHand)
}

func TestBeerEvents(t *testing.T) {
	b, err := NewBeer("Galaxy Cat", StylePaleAle, "0631234200036", decimal.NewFromFloat(12.99))
	require.NoError(t, err)

	principal := shared.NewPrincipal("alice")

	tests := []struct {
		name      string
		event     Event
		eventType string
	}{
		{"created", NewCreatedEvent(b, principal), EventTypeBeerCreated},
		{"updated", NewUpdatedEvent(b, principal), EventTypeBeerUpdated},
		{"patched", NewPatchedEvent(b, principal), EventTypeBeerPatched},
		{"deleted", NewDeletedEvent(b, principal), EventTypeBeerDeleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.eventType, tt.event.EventType())
			assert.Equal(t, AggregateTypeBeer, tt.event.AggregateType())
			assert.Equal(t, b.ID, tt.event.AggregateID())
			assert.Equal(t, b.ID, tt.event.BeerSnapshot().BeerID)
			assert.Equal(t, "alice", tt.event.ActingPrincipal().Name)
			assert.NotEmpty(t, tt.event.EventID())
		})
	}
}
