package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
)

func validRaw() *models.Good {
	return &models.Good{
		Name:        "Steel Rod",
		Type:        models.TypeRaw,
		Cost:        5,
		ProcessTime: 1,
		Vendor:      "Acme",
	}
}

func TestValidateGood(t *testing.T) {
	tests := []struct {
		name string
		good *models.Good
		want bool
	}{
		{
			name: "valid raw good",
			good: validRaw(),
			want: true,
		},
		{
			name: "valid semi-finished good",
			good: &models.Good{Name: "Frame", Type: models.TypeSemiFinished, Cost: 3, ProcessTime: 2},
			want: true,
		},
		{
			name: "valid finished good",
			good: &models.Good{Name: "Bike", Type: models.TypeFinished, Cost: 50, ProcessTime: 4, Price: 120},
			want: true,
		},
		{
			name: "nil candidate",
			good: nil,
			want: false,
		},
		{
			name: "empty name",
			good: &models.Good{Type: models.TypeSemiFinished, Cost: 1, ProcessTime: 1},
			want: false,
		},
		{
			name: "unknown type",
			good: &models.Good{Name: "Thing", Type: "virtual", Cost: 1, ProcessTime: 1},
			want: false,
		},
		{
			name: "zero cost",
			good: &models.Good{Name: "Frame", Type: models.TypeSemiFinished, Cost: 0, ProcessTime: 1},
			want: false,
		},
		{
			name: "negative process time",
			good: &models.Good{Name: "Frame", Type: models.TypeSemiFinished, Cost: 1, ProcessTime: -1},
			want: false,
		},
		{
			name: "raw without vendor",
			good: &models.Good{Name: "Steel", Type: models.TypeRaw, Cost: 1, ProcessTime: 1},
			want: false,
		},
		{
			name: "finished without price",
			good: &models.Good{Name: "Bike", Type: models.TypeFinished, Cost: 1, ProcessTime: 1},
			want: false,
		},
		{
			name: "finished with negative price",
			good: &models.Good{Name: "Bike", Type: models.TypeFinished, Cost: 1, ProcessTime: 1, Price: -5},
			want: false,
		},
		{
			name: "component with non-positive id",
			good: &models.Good{
				Name: "Frame", Type: models.TypeSemiFinished, Cost: 1, ProcessTime: 1,
				Components: []models.ComponentRef{{ID: 0, Quantity: 2}},
			},
			want: false,
		},
		{
			name: "component with non-positive quantity",
			good: &models.Good{
				Name: "Frame", Type: models.TypeSemiFinished, Cost: 1, ProcessTime: 1,
				Components: []models.ComponentRef{{ID: 7, Quantity: 0}},
			},
			want: false,
		},
		{
			name: "bad component among good ones still rejects",
			good: &models.Good{
				Name: "Frame", Type: models.TypeSemiFinished, Cost: 1, ProcessTime: 1,
				Components: []models.ComponentRef{
					{ID: 1, Quantity: 1},
					{ID: -2, Quantity: 1},
					{ID: 3, Quantity: 1},
				},
			},
			want: false,
		},
		{
			name: "valid components accepted",
			good: &models.Good{
				Name: "Frame", Type: models.TypeSemiFinished, Cost: 1, ProcessTime: 1,
				Components: []models.ComponentRef{{ID: 7, Quantity: 2.5}},
			},
			want: true,
		},
		{
			name: "properties are not range checked",
			good: &models.Good{
				Name: "Frame", Type: models.TypeSemiFinished, Cost: 1, ProcessTime: 1,
				Properties: []models.Property{{Name: "", Value: ""}},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateGood(tt.good))
		})
	}
}
