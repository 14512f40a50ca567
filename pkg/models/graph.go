package models

import "time"

// Graph is a saved curve. Data is kept opaque: it is whatever point records
// the client chose to save.
type Graph struct {
	ID            string           `json:"id" doc:"Graph unique identifier"`
	Kind          string           `json:"kind,omitempty" doc:"Kind of curve stored (dpv, eis, nyquist, bode)"`
	Concentration string           `json:"concentration,omitempty" doc:"Concentration label the scan was taken at"`
	Data          []map[string]any `json:"data" doc:"Saved point sequence"`
	Timestamp     string           `json:"timestamp" doc:"Client supplied save time"`
	CreatedAt     time.Time        `json:"created_at" doc:"When the graph was stored"`
}

// ConcentrationRecord is a user-added concentration label.
type ConcentrationRecord struct {
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
