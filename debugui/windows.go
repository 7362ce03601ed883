package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetramino/game"
)

var (
	activeColor   = imgui.NewVec4(0.0, 1.0, 0.0, 1.0)
	gameOverColor = imgui.NewVec4(1.0, 0.3, 0.2, 1.0)
)

// AddSessionWindows registers the standard diagnostics for s: session
// counters with the upcoming queue, per-system timings and frame times.
func (o *Overlay) AddSessionWindows(s *game.Session) {
	o.Add("session", SessionWindow(s))
	o.Add("systems", SystemsWindow(s))
	o.Add("performance", PerformanceWindow(s, NewFrameTimer(), NewFrameHistory(120)))
}

func SessionWindow(s *game.Session) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(240, 220), imgui.CondOnce)

		if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		snap := s.Snapshot()
		if snap.Active {
			imgui.TextColored(activeColor, "RUNNING")
		} else {
			imgui.TextColored(gameOverColor, "GAME OVER")
			imgui.SameLine()
			if imgui.Button("Restart") {
				s.Restart()
			}
		}

		imgui.Separator()
		imgui.Text(fmt.Sprintf("Frames: %d", snap.Stats.Frames))
		imgui.Text(fmt.Sprintf("Pieces: %d", snap.Stats.Pieces))
		imgui.Text(fmt.Sprintf("Lines: %d", snap.Stats.Lines))
		imgui.Text(fmt.Sprintf("Filled cells: %d", snap.Stats.Filled))
		imgui.Text(fmt.Sprintf("Piece: %v", snap.Tiles))

		if imgui.TreeNodeStr("Queue") {
			for i, d := range snap.Next {
				imgui.BulletText(fmt.Sprintf("%d: %s %s", i+1, d.Shape, d.Color))
			}
			imgui.TreePop()
		}

		imgui.End()
	}
}

func SystemsWindow(s *game.Session) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(360, 200), imgui.CondOnce)

		if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		stats := s.SchedulerStats()
		imgui.Text(fmt.Sprintf("Systems: %d  Frames: %d", stats.SystemCount, stats.Frames))
		imgui.Separator()

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
		if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Min (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000.0))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
			}
			imgui.EndTable()
		}

		imgui.End()
	}
}

// PerformanceWindow records one frame time per call, so it must be added
// to exactly one overlay.
func PerformanceWindow(s *game.Session, timer *FrameTimer, history *FrameHistory) func() {
	return func() {
		history.Record(timer.Tick())

		imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(300, 220), imgui.CondOnce)

		if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		avg := history.Average()
		fps := float32(0)
		if avg > 0 {
			fps = 1000 / avg
		}
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
		imgui.Text(fmt.Sprintf("Worst Frame: %.2f ms", history.Max()))

		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		if values := history.Values(); len(values) > 0 {
			imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))
		}

		storage := s.StorageStats()
		if imgui.TreeNodeStr(fmt.Sprintf("Singletons (%d)", storage.SingletonCount)) {
			for _, name := range storage.SingletonTypes {
				imgui.BulletText(name)
			}
			imgui.TreePop()
		}

		imgui.End()
	}
}
