package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetramino/ecs"
)

// Overlay owns the ImGui backend and a scheduler of its own, separate from
// the game's, so diagnostics never show up in the game's system timings.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	items *ecs.Singleton[Items]
	input *ecs.Singleton[ImguiInputState]
}

// NewOverlay creates the ImGui context and the ebiten window it draws into.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	storage := ecs.NewStorage()
	o := &Overlay{
		backend: backend,
		storage: storage,
		items:   ecs.NewSingleton[Items](storage),
		input:   ecs.NewSingleton[ImguiInputState](storage),
	}

	o.scheduler = ecs.NewScheduler(storage)
	o.scheduler.Register(&ImguiSystem{})
	return o
}

// Add appends a window. Windows draw in the order they were added.
func (o *Overlay) Add(name string, render func()) {
	items := o.items.Get()
	items.List = append(items.List, ImguiItem{Name: name, Render: render})
}

// Update builds one ImGui frame.
func (o *Overlay) Update(dt float64) {
	o.backend.BeginFrame()
	o.scheduler.Once(dt)
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// WantsKeyboard reports whether a focused ImGui widget is taking key input.
func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}

// WantsMouse reports whether the pointer is over an ImGui window.
func (o *Overlay) WantsMouse() bool {
	return o.input.Get().WantCaptureMouse
}
