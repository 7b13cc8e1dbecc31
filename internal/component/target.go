package component

// Target is an entity the towers shoot at. It walks along +x at Speed.
type Target struct {
	Speed float64
}
