package physics

// Integrate applies drag, clamps speed to maxSpeed and computes the predicted
// position of a single entity. Inactive entities predict their current position.
func Integrate(e *Entity, maxSpeed float64) {
	if !e.Active {
		e.PredictedPos = e.Pos
		return
	}
	e.Velocity = e.Velocity.Scale(e.Drag).ClampMagnitude(maxSpeed)
	e.PredictedPos = e.Pos.Add(e.Velocity)
}

// IntegrateAll runs Integrate over every entity in the arena.
func IntegrateAll(a *Arena, maxSpeed float64) {
	a.Each(func(_ ID, e *Entity) {
		Integrate(e, maxSpeed)
	})
}
