package component

// Transform is the top-left world position of an entity.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
