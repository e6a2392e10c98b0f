package physics

import (
	"testing"

	"github.com/jstraceski/BreakJoe/internal/vecmath"
)

func TestArenaAddGet(t *testing.T) {
	a := NewArena()
	pid := a.Add(NewPaddle(vecmath.Vec2(10, 10), 20, 4, 0.95))
	bid := a.Add(NewBall(vecmath.Vec2(10, 20), 2, 1, true))

	if pid == bid {
		t.Fatal("IDs should be unique")
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", a.Len())
	}
	if a.Get(pid).Role != RolePaddle || a.Get(bid).Role != RoleBall {
		t.Error("Get returned wrong entity")
	}
	if a.Get(ID(99)) != nil {
		t.Error("Get of unknown ID should return nil")
	}
	if id, ok := a.First(RoleBall); !ok || id != bid {
		t.Errorf("First(RoleBall) = %d, %v", id, ok)
	}
	if _, ok := a.First(RoleBrick); ok {
		t.Error("First(RoleBrick) should fail on arena without bricks")
	}
}

func TestArenaCompactKeepsIDs(t *testing.T) {
	a := NewArena()
	pid := a.Add(NewPaddle(vecmath.Vec2(10, 10), 20, 4, 0.95))
	b1 := a.Add(NewBrick(vecmath.Vec2(0, 50), 10, 5, 1, 0.95))
	b2 := a.Add(NewBrick(vecmath.Vec2(20, 50), 10, 5, 2, 0.95))
	b3 := a.Add(NewBrick(vecmath.Vec2(40, 50), 10, 5, 1, 0.95))
	bid := a.Add(NewBall(vecmath.Vec2(10, 20), 2, 1, true))

	a.Get(b1).Active = false
	a.Get(b3).Active = false

	if removed := a.Compact(); removed != 2 {
		t.Errorf("Compact() removed %d, expected 2", removed)
	}
	if a.Get(b1) != nil || a.Get(b3) != nil {
		t.Error("inactive bricks should be gone")
	}
	if a.Get(b2) == nil || a.Get(b2).Hits != 2 {
		t.Error("active brick lost after compact")
	}
	if a.Get(pid).Role != RolePaddle || a.Get(bid).Role != RoleBall {
		t.Error("IDs no longer resolve to the same entities")
	}

	ids := a.IDs()
	expected := []ID{pid, b2, bid}
	if len(ids) != len(expected) {
		t.Fatalf("IDs() = %v, expected %v", ids, expected)
	}
	for i := range ids {
		if ids[i] != expected[i] {
			t.Errorf("IDs()[%d] = %d, expected %d", i, ids[i], expected[i])
		}
	}

	if next := a.Add(NewBrick(vecmath.Vec2(0, 0), 1, 1, 1, 0.95)); next == b1 || next == b3 {
		t.Error("IDs must not be reused")
	}
}

func TestArenaCompactKeepsInactiveNonBricks(t *testing.T) {
	a := NewArena()
	pid := a.Add(NewPaddle(vecmath.Vec2(10, 10), 20, 4, 0.95))
	a.Get(pid).Active = false
	if removed := a.Compact(); removed != 0 {
		t.Errorf("Compact() removed %d, expected 0", removed)
	}
}

func TestArenaRemove(t *testing.T) {
	a := NewArena()
	pid := a.Add(NewPaddle(vecmath.Vec2(10, 10), 20, 4, 0.95))
	for i := range 3 {
		a.Add(NewBrick(vecmath.Vec2(float64(i)*10, 50), 10, 5, 1, 0.95))
	}
	bid := a.Add(NewBall(vecmath.Vec2(10, 20), 2, 1, true))

	if n := a.RemoveRole(RoleBrick); n != 3 {
		t.Errorf("RemoveRole(RoleBrick) = %d, expected 3", n)
	}
	if a.Count(RoleBrick) != 0 || a.ActiveBricks() != 0 {
		t.Error("bricks remain after RemoveRole")
	}
	if !a.Remove(pid) || a.Remove(pid) {
		t.Error("Remove should succeed once")
	}
	if a.Get(bid) == nil {
		t.Error("ball should survive removal of other entities")
	}
}

func TestEntityValidate(t *testing.T) {
	tests := []struct {
		name    string
		entity  Entity
		wantErr bool
	}{
		{"paddle", NewPaddle(vecmath.Zero, 10, 2, 0.95), false},
		{"ball", NewBall(vecmath.Zero, 1, 1, true), false},
		{"zero radius", NewBall(vecmath.Zero, 0, 1, true), true},
		{"negative height", NewPaddle(vecmath.Zero, 10, -1, 0.95), true},
		{"zero drag", NewBall(vecmath.Zero, 1, 0, true), true},
		{"drag above one", NewBall(vecmath.Zero, 1, 1.5, true), true},
		{"no shape", Entity{Drag: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
