package ecs

// System is one step of a frame. Systems may declare Singleton fields, which
// the Scheduler binds on Register, and keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to System. It has no Singleton fields
// to bind.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
