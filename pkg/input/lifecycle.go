package input

// Phase is the component's lifecycle position. Transitions only move forward:
// Unmounted -> Mounted -> Disposed, with Unmounted -> Disposed allowed for
// components thrown away before their first render.
type Phase int

const (
	PhaseUnmounted Phase = iota
	PhaseMounted
	PhaseDisposed
)

func (p Phase) String() string {
	switch p {
	case PhaseUnmounted:
		return "unmounted"
	case PhaseMounted:
		return "mounted"
	case PhaseDisposed:
		return "disposed"
	}
	return "unknown"
}
