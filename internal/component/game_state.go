package component

// GameState — режим симуляции
type GameState int

const (
	RunningState GameState = iota
	PausedState
)

func (s GameState) String() string {
	if s == PausedState {
		return "paused"
	}
	return "running"
}
