package models

import "time"

// GoodEvent is the row shape of the goods_log ClickHouse table.
type GoodEvent struct {
	ID        int       `json:"Id"`
	Name      string    `json:"Name"`
	Type      string    `json:"Type"`
	Cost      float64   `json:"Cost"`
	Archived  bool      `json:"Archived"`
	EventTime time.Time `json:"EventTime"`
}

func NewGoodEvent(good *Good) *GoodEvent {
	return &GoodEvent{
		ID:        good.ID,
		Name:      good.Name,
		Type:      string(good.Type),
		Cost:      good.Cost,
		Archived:  good.Archived,
		EventTime: time.Now(),
	}
}
