package driver

// Stage identifies a step of the per-file formatting pipeline, reported to
// an optional event sink (the progress UI).
type Stage uint8

const (
	StageRead Stage = iota
	StageRender
	StageWrite
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageRender:
		return "render"
	case StageWrite:
		return "write"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event reports pipeline progress for a single file.
type Event struct {
	Path   string
	Stage  Stage
	Cached bool
	Err    error
}

func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
