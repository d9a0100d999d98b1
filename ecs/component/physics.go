package component

import "github.com/jakecoffman/cp"

// PhysicsBody holds collider configuration plus the Chipmunk runtime
// objects once the physics system has created them.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Static   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
