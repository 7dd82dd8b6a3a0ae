package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedacted(t *testing.T) {
	tests := []struct {
		name       string
		good       Good
		wantVendor string
		wantPrice  float64
	}{
		{
			name:       "raw loses price, keeps vendor",
			good:       Good{Type: TypeRaw, Vendor: "Acme", Price: 9.99},
			wantVendor: "Acme",
			wantPrice:  0,
		},
		{
			name:       "semi-finished loses price and vendor",
			good:       Good{Type: TypeSemiFinished, Vendor: "Acme", Price: 9.99},
			wantVendor: "",
			wantPrice:  0,
		},
		{
			name:       "finished loses vendor, keeps price",
			good:       Good{Type: TypeFinished, Vendor: "Acme", Price: 9.99},
			wantVendor: "",
			wantPrice:  9.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redacted := tt.good.Redacted()
			assert.Equal(t, tt.wantVendor, redacted.Vendor)
			assert.Equal(t, tt.wantPrice, redacted.Price)
		})
	}
}

func TestRedactedIsIdempotent(t *testing.T) {
	good := Good{Type: TypeSemiFinished, Name: "Frame", Vendor: "Acme", Price: 3}

	once := good.Redacted()
	twice := once.Redacted()

	assert.Equal(t, once, twice)
}

func TestRedactedDoesNotMutateOriginal(t *testing.T) {
	good := Good{Type: TypeRaw, Name: "Steel", Vendor: "Acme", Price: 5}

	_ = good.Redacted()

	assert.Equal(t, 5.0, good.Price)
}

func TestRedactAllPreservesOrder(t *testing.T) {
	goods := []Good{
		{ID: 1, Type: TypeRaw, Vendor: "Acme", Price: 1},
		{ID: 2, Type: TypeFinished, Vendor: "Acme", Price: 2},
		{ID: 3, Type: TypeSemiFinished, Vendor: "Acme", Price: 3},
	}

	redacted := RedactAll(goods)

	assert.Len(t, redacted, 3)
	assert.Equal(t, 1, redacted[0].ID)
	assert.Equal(t, 2, redacted[1].ID)
	assert.Equal(t, 3, redacted[2].ID)
	assert.Zero(t, redacted[0].Price)
	assert.Empty(t, redacted[1].Vendor)
	assert.Empty(t, redacted[2].Vendor)
	assert.Zero(t, redacted[2].Price)
}
