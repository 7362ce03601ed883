package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetramino/game"
)

type Report struct {
	// Configuration
	Games          int
	Seed           uint64
	MaxFrames      int
	TPS            int
	GCPauseMetrics bool

	// Results
	Finished   int
	Frames     int64
	Pieces     int
	Lines      int
	BestLines  int
	Sounds     [game.SoundCount]int
	TotalTime  time.Duration
	UpdateTime Stats

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func (r *Report) add(s game.Stats) {
	if !s.Active {
		r.Finished++
	}
	r.Frames += s.Frames
	r.Pieces += s.Pieces
	r.Lines += s.Lines
	r.BestLines = max(r.BestLines, s.Lines)
}

// SoundCounts pairs each sound name with its count, in declaration order.
func (r *Report) SoundCounts() []SoundCount {
	out := make([]SoundCount, 0, len(r.Sounds))
	for i, n := range r.Sounds {
		out = append(out, SoundCount{Name: game.Sound(i).String(), Count: n})
	}
	return out
}

type SoundCount struct {
	Name  string
	Count int
}

// Stats aggregates update durations without keeping the samples.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int64
	total time.Duration
}

func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	s.Max = max(s.Max, d)
	s.total += d
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.Count)
}

const reportTemplate = `
# Tetramino Soak Report

## Configuration
- **Games:** {{.Games}}
- **Seed:** {{.Seed}}
- **Frame Limit:** {{.MaxFrames}}
- **Simulated TPS:** {{.TPS}}

## Games
- **Finished:** {{.Finished}} of {{.Games}}
- **Frames:** {{.Frames}} ({{simtime .Frames .TPS}} of play)
- **Pieces:** {{.Pieces}}
- **Lines:** {{.Lines}} (best game: {{.BestLines}})
{{range .SoundCounts}}- {{.Name}}: {{.Count}}
{{end}}
## Update Time (Frame)
- **Avg:** {{.UpdateTime.Avg}}
- **Min:** {{.UpdateTime.Min}}
- **Max:** {{.UpdateTime.Max}}
- **Wall Time:** {{.TotalTime}}

## Memory Usage (MiB)
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Sys Memory:  {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mb": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/1024/1024)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
	"simtime": func(frames int64, tps int) string {
		return (time.Duration(frames) * time.Second / time.Duration(tps)).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
