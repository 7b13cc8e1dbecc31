package component

// Pad is a buildable site that has not been turned into a tower yet.
type Pad struct {
	PickRadius float64 // Radius of the picking sphere around the pad origin
}

// Selection is owned by the picking layer; gameplay systems only read it.
type Selection struct {
	Selected bool
}

// Interaction carries pointer state for a clickable UI element. Clicked is an
// edge flag: it is raised for exactly one tick.
type Interaction struct {
	Hovered bool
	Clicked bool
}
