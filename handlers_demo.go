package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"skylens/models"
	"skylens/synth"
)

// handleDemoSession issues a short-lived anonymous session token for the demo
// flow. No credentials involved; the token only scopes and expires the sandbox.
func (a *App) handleDemoSession(w http.ResponseWriter, r *http.Request) {
	tok, exp, err := signDemoSession(a.cfg.JWTSecret, a.cfg.SessionTTL)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(sessionResp{Token: tok, ExpiresAt: exp})
}

// handleDemoAnalysis runs the synthetic pipeline and returns the result bundle
// plus chart-shaped series.
func (a *App) handleDemoAnalysis(w http.ResponseWriter, r *http.Request) {
	var req demoAnalysisReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	in, gen, err := a.buildRun(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !a.simulateLatency(r) {
		return
	}

	log.Printf("demo analysis: session=%s type=%s", sessionID(r), in.AnalysisType)
	bundle := gen.Generate(in)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(demoAnalysisResp{
		ResultBundle: bundle,
		Chart:        synth.ChartSeries(bundle),
	})
}

// handleDemoAnalysisCSV runs the same pipeline and streams the CSV export.
// With the same seed it reproduces the analysis response byte-for-byte.
func (a *App) handleDemoAnalysisCSV(w http.ResponseWriter, r *http.Request) {
	var req demoAnalysisReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	in, gen, err := a.buildRun(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bundle := gen.Generate(in)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "skylens_demo_"+string(in.AnalysisType)+".csv"))
	if err := synth.WriteCSV(w, bundle); err != nil {
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
}

// buildRun validates the form payload into a pipeline request and picks the
// generator: the app's time-seeded one, or a fresh seeded one when the client
// asked for reproducibility.
func (a *App) buildRun(req demoAnalysisReq) (models.AnalysisRequest, *synth.Generator, error) {
	at := models.AnalysisType(req.AnalysisType)
	if at == "" {
		at = models.AnalysisNDVI
	}
	if !at.Valid() {
		return models.AnalysisRequest{}, nil, fmt.Errorf("unsupported analysisType %q", req.AnalysisType)
	}

	start, end, err := resolveDateRange(req)
	if err != nil {
		return models.AnalysisRequest{}, nil, err
	}

	maxCloud := 100.0
	if req.MaxCloudCover != nil {
		maxCloud = *req.MaxCloudCover
	}

	in := models.AnalysisRequest{
		Geometry:             req.Geometry,
		AnalysisType:         at,
		Start:                start,
		End:                  end,
		Satellite:            req.Satellite,
		ObservationsPerMonth: req.ObservationsPerMonth,
		MaxCloudCoverPct:     maxCloud,
		CloudMasking:         req.CloudMasking,
		MaskingStrictness:    req.MaskingStrictness,
	}

	gen := a.gen
	if req.Seed != nil {
		gen = synth.New(*req.Seed)
	}
	return in, gen, nil
}

// resolveDateRange accepts explicit dates or whole years, defaulting to the
// last twelve months.
func resolveDateRange(req demoAnalysisReq) (time.Time, time.Time, error) {
	if req.StartDate != "" || req.EndDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad startDate %q", req.StartDate)
		}
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad endDate %q", req.EndDate)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("endDate before startDate")
		}
		return start, end, nil
	}
	if req.StartYear != 0 {
		endYear := req.EndYear
		if endYear == 0 {
			endYear = req.StartYear
		}
		if endYear < req.StartYear {
			return time.Time{}, time.Time{}, fmt.Errorf("endYear before startYear")
		}
		start := time.Date(req.StartYear, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)
		return start, end, nil
	}
	now := time.Now().UTC()
	return now.AddDate(-1, 0, 0), now, nil
}

// simulateLatency sleeps the configured cosmetic delay so the demo UI gets a
// believable loading state. Returns false if the client went away meanwhile.
func (a *App) simulateLatency(r *http.Request) bool {
	if a.cfg.DemoLatency <= 0 {
		return true
	}
	select {
	case <-time.After(a.cfg.DemoLatency):
		return true
	case <-r.Context().Done():
		return false
	}
}
