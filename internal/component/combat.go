package component

// Health is carried by targets. Nothing in the game deals damage yet.
type Health struct {
	Value int
}
