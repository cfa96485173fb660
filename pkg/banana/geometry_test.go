package banana

import "testing"

func TestDirectionArithmetic(t *testing.T) {
	if got := ACROSS.Orthogonal(); got != DOWN {
		t.Errorf("ACROSS.Orthogonal() = %v, want %v", got, DOWN)
	}
	if got := DOWN.Orthogonal(); got != ACROSS {
		t.Errorf("DOWN.Orthogonal() = %v, want %v", got, ACROSS)
	}
	if got := ACROSS.Negate(); got != (Direction{DX: -1, DY: 0}) {
		t.Errorf("ACROSS.Negate() = %v", got)
	}
	if got := ACROSS.Scale(3); got != (Offset{DX: 3, DY: 0}) {
		t.Errorf("ACROSS.Scale(3) = %v", got)
	}
}

func TestNewDirectionValidation(t *testing.T) {
	cases := []struct {
		dx, dy  int
		wantErr bool
	}{
		{1, 0, false},
		{0, 1, false},
		{-1, 0, false},
		{0, -1, false},
		{1, 1, true},
		{0, 0, true},
		{2, 0, true},
	}
	for _, c := range cases {
		_, err := NewDirection(c.dx, c.dy)
		if (err != nil) != c.wantErr {
			t.Errorf("NewDirection(%d, %d) error = %v, wantErr %v", c.dx, c.dy, err, c.wantErr)
		}
	}
}

func TestPositionTranslation(t *testing.T) {
	p := Position{X: 2, Y: 3}
	if got := p.Add(ACROSS); got != (Position{X: 3, Y: 3}) {
		t.Errorf("p.Add(ACROSS) = %v", got)
	}
	if got := p.Sub(DOWN); got != (Position{X: 2, Y: 2}) {
		t.Errorf("p.Sub(DOWN) = %v", got)
	}
	if got := p.AddOffset(Offset{DX: -2, DY: 5}); got != (Position{X: 0, Y: 8}) {
		t.Errorf("p.AddOffset(...) = %v", got)
	}
}
