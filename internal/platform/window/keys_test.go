package window

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/cube-chase/internal/core"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		closing  bool
		want     []core.Event
	}{
		{"nothing", nil, nil, false, nil},
		{
			"press and release",
			[]ebiten.Key{ebiten.KeyArrowLeft},
			[]ebiten.Key{ebiten.KeyArrowUp},
			false,
			[]core.Event{core.KeyDownEvent(core.KeyLeft), core.KeyUpEvent(core.KeyUp)},
		},
		{
			"unmapped keys dropped",
			[]ebiten.Key{ebiten.KeySpace, ebiten.KeyR},
			[]ebiten.Key{ebiten.KeyA},
			false,
			[]core.Event{core.KeyDownEvent(core.KeyR)},
		},
		{
			"window close last",
			[]ebiten.Key{ebiten.KeyEscape},
			nil,
			true,
			[]core.Event{core.KeyDownEvent(core.KeyEscape), core.QuitEvent()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.pressed, tt.released, tt.closing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("translate() = %v, want %v", got, tt.want)
			}
		})
	}
}
