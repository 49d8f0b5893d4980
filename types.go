package main

import (
	"encoding/json"
	"time"

	"skylens/models"
	"skylens/synth"
)

// Request/response DTOs. Keep them minimal and explicit.

type sessionResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type demoAnalysisReq struct {
	// Geometry accepts a WKT string, a GeoJSON geometry/Feature, or a nested
	// coordinate array. Absent means "no area drawn".
	Geometry json.RawMessage `json:"geometry,omitempty"`

	AnalysisType string `json:"analysisType"`

	// Either concrete dates (YYYY-MM-DD) or whole years.
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	StartYear int    `json:"startYear,omitempty"`
	EndYear   int    `json:"endYear,omitempty"`

	Satellite            string   `json:"satellite,omitempty"`
	ObservationsPerMonth int      `json:"observationsPerMonth,omitempty"`
	MaxCloudCover        *float64 `json:"maxCloudCover,omitempty"`
	CloudMasking         bool     `json:"cloudMasking,omitempty"`
	MaskingStrictness    string   `json:"maskingStrictness,omitempty"`

	// Seed makes the run reproducible; the CSV endpoint relies on it to
	// regenerate the exact bundle the chart showed.
	Seed *int64 `json:"seed,omitempty"`
}

type demoAnalysisResp struct {
	*models.ResultBundle
	Chart map[models.AnalysisVariable][]synth.ChartPoint `json:"chart"`
}
