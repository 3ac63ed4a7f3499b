package core

// Collider is implemented by anything that can be moved by an Entity.
// HasNoCollisions must be total: it is consulted on every move.
type Collider interface {
	HasNoCollisions(newX, newY float64) bool
	DoCollisionBehaviour()
}

// Entity holds what every moving object shares: a center position,
// a direction vector and a scalar speed in canvas units per frame.
type Entity struct {
	X, Y                   float64
	XDirection, YDirection float64
	Speed                  float64
}

func (e *Entity) SetDirection(xDir, yDir float64) {
	e.XDirection = xDir
	e.YDirection = yDir
}

// HasNoCollisions is the default predicate: nothing to hit.
func (e *Entity) HasNoCollisions(newX, newY float64) bool {
	return true
}

// DoCollisionBehaviour does nothing by default, the entity just stays put.
func (e *Entity) DoCollisionBehaviour() {}

// MoveWith advances e by direction*speed unless c reports a collision at the
// candidate position, in which case the position is kept and c resolves it.
func (e *Entity) MoveWith(c Collider) {
	newX := e.X + e.XDirection*e.Speed
	newY := e.Y + e.YDirection*e.Speed

	if c.HasNoCollisions(newX, newY) {
		e.X = newX
		e.Y = newY
		return
	}
	c.DoCollisionBehaviour()
}

func (e *Entity) Position() (float64, float64) {
	return e.X, e.Y
}
