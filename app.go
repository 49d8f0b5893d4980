package main

import (
	"skylens/synth"
)

type App struct {
	cfg Config
	gen *synth.Generator
}

func newApp(cfg Config) *App {
	return &App{
		cfg: cfg,
		gen: synth.NewRandom(),
	}
}
