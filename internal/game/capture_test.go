package game

import (
	"testing"

	"github.com/vovakirdan/cube-chase/internal/config"
)

func TestGrowOnLife(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name      string
		size      float64
		wantSize  float64
		wantDelta float64
		applied   bool
	}{
		{"from start", 10, 11, -1, true},
		{"mid", 100, 110, -10, true},
		{"clamped at max", 290, 300, -29, true},
		{"at max", 300, 300, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowOnLife(tt.size, cfg.Cube, cfg.Capture)
			if got.Applied != tt.applied {
				t.Errorf("Applied = %v, want %v", got.Applied, tt.applied)
			}
			if !approx(got.Size, tt.wantSize) {
				t.Errorf("Size = %v, want %v", got.Size, tt.wantSize)
			}
			if !approx(got.PointDelta, tt.wantDelta) {
				t.Errorf("PointDelta = %v, want %v", got.PointDelta, tt.wantDelta)
			}
		})
	}
}

func TestShrinkOnEnemy(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name      string
		size      float64
		wantSize  float64
		wantDelta float64
		applied   bool
	}{
		{"large", 100, 80, 20, true},
		{"at max", 300, 240, 60, true},
		{"clamped at min", 10, 10, 2, true},
		{"below min", 9, 9, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShrinkOnEnemy(tt.size, cfg.Cube, cfg.Capture)
			if got.Applied != tt.applied {
				t.Errorf("Applied = %v, want %v", got.Applied, tt.applied)
			}
			if !approx(got.Size, tt.wantSize) {
				t.Errorf("Size = %v, want %v", got.Size, tt.wantSize)
			}
			if !approx(got.PointDelta, tt.wantDelta) {
				t.Errorf("PointDelta = %v, want %v", got.PointDelta, tt.wantDelta)
			}
		})
	}
}

func TestCaptureApply(t *testing.T) {
	cfg := config.DefaultGameConfig()
	c := NewCube(cfg.Cube)

	c.apply(GrowOnLife(c.Size(), cfg.Cube, cfg.Capture))
	if !approx(c.Size(), 11) || !approx(c.Point(), 299) {
		t.Fatalf("after life: size/point = %v/%v, want 11/299", c.Size(), c.Point())
	}

	c.apply(ShrinkOnEnemy(c.Size(), cfg.Cube, cfg.Capture))
	// 11 * 0.8 = 8.8, clamped to 10; the 2.2 lost is credited
	if !approx(c.Size(), 10) || !approx(c.Point(), 301.2) {
		t.Errorf("after enemy: size/point = %v/%v, want 10/301.2", c.Size(), c.Point())
	}

	c.apply(Capture{Size: 1, PointDelta: 100})
	if !approx(c.Size(), 10) || !approx(c.Point(), 301.2) {
		t.Errorf("unapplied capture changed cube: %v/%v", c.Size(), c.Point())
	}
}
