// Package debugui draws Dear ImGui diagnostics windows over the ebiten
// frontend. Windows are plain render funcs collected in an ecs singleton
// and flushed by ImguiSystem at the end of each overlay frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetramino/ecs"
)

// ImguiItem holds one Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Items is the singleton list of windows drawn every frame.
type Items struct {
	List []ImguiItem
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every item's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      ecs.Singleton[Items]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	state := i.InputState.Get()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items.Get().List {
		frame.Commands.Defer(item.Render)
	}
}
