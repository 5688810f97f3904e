package core

import "testing"

func TestInputStateSceneCoordinates(t *testing.T) {
	s := NewInputState(800, 600, nil)

	tests := []struct {
		x, y   float64
		sx, sy float32
	}{
		{400, 300, 0, 0},
		{0, 0, -400, 300},
		{800, 600, 400, -300},
		{500, 200, 100, 100},
	}
	for _, tt := range tests {
		s.ProcessMouseMove(tt.x, tt.y)
		pos := s.Pos()
		if pos.X != tt.sx || pos.Y != tt.sy {
			t.Errorf("(%v,%v) -> (%v,%v), want (%v,%v)", tt.x, tt.y, pos.X, pos.Y, tt.sx, tt.sy)
		}
	}
}

func TestInputStateKeys(t *testing.T) {
	s := NewInputState(100, 100, nil)
	s.ProcessKey(KEY_W, true)
	if !s.IsPressed(KEY_W) || !s.JustPressed(KEY_W) {
		t.Fatal("W should be pressed and just pressed")
	}
	s.Update()
	if !s.IsPressed(KEY_W) || s.JustPressed(KEY_W) || !s.WasKeyDown(KEY_W) {
		t.Fatal("W should be held after Update")
	}
	s.ProcessKey(KEY_W, false)
	if s.IsPressed(KEY_W) || !s.IsKeyUp(KEY_W) {
		t.Fatal("W should be released")
	}
}

func TestInputStateFiresClick(t *testing.T) {
	bus := NewEventBus()
	s := NewInputState(200, 200, bus)

	var clicks []MouseEvent
	bus.Register(EVENT_CODE_BUTTON_PRESSED, t, func(ctx EventContext) bool {
		clicks = append(clicks, *ctx.Data.(*MouseEvent))
		return true
	})

	s.ProcessMouseMove(150, 50)
	s.ProcessButton(BUTTON_LEFT, true)
	// Repeated state is not a new press.
	s.ProcessButton(BUTTON_LEFT, true)
	s.ProcessButton(BUTTON_LEFT, false)

	if len(clicks) != 1 {
		t.Fatalf("got %d clicks, want 1", len(clicks))
	}
	if clicks[0].X != 50 || clicks[0].Y != 50 {
		t.Fatalf("click at (%v,%v), want (50,50)", clicks[0].X, clicks[0].Y)
	}
}

func TestInputStateSceneSizeSurvivesResize(t *testing.T) {
	s := NewInputState(800, 600, nil)
	s.SetSceneSize(800, 600)
	s.Resize(1600, 1200)

	tests := []struct {
		x, y   float64
		sx, sy float32
	}{
		{800, 600, 0, 0},
		{800, 300, 0, 150},
		{0, 0, -400, 300},
		{1600, 1200, 400, -300},
		{1200, 900, 200, -150},
	}
	for _, tt := range tests {
		sx, sy := s.ToScene(tt.x, tt.y)
		if diff(sx, tt.sx) > 1e-3 || diff(sy, tt.sy) > 1e-3 {
			t.Errorf("(%v,%v) -> (%v,%v), want (%v,%v)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
		}
	}

	// a non-uniform stretch scales each axis on its own
	s.Resize(400, 600)
	if sx, sy := s.ToScene(300, 150); diff(sx, 200) > 1e-3 || diff(sy, 150) > 1e-3 {
		t.Errorf("stretched -> (%v,%v), want (200,150)", sx, sy)
	}
}

func diff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}
