package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/cube-chase/internal/game"
)

type stubDriver struct {
	id, title string
}

func (d stubDriver) ID() string    { return d.id }
func (d stubDriver) Title() string { return d.title }

func (d stubDriver) Run(context.Context, *game.Controller, Options) error {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Driver { return stubDriver{"zz-stub", "Stub"} })
	Register("aa-stub", func() Driver { return stubDriver{"aa-stub", "Another"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("registered drivers not found")
	}

	d, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID() != "zz-stub" || d.Title() != "Stub" {
		t.Errorf("created %q/%q", d.ID(), d.Title())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if first, last := ids[0], ids[len(ids)-1]; first != "aa-stub" || last != "zz-stub" {
		t.Errorf("List not sorted: %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if !strings.Contains(err.Error(), `"missing"`) {
		t.Errorf("error %q does not name the driver", err)
	}
	if Exists("missing") {
		t.Error("Exists reported an unregistered driver")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Driver { return stubDriver{"dup-stub", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup-stub", func() Driver { return stubDriver{"dup-stub", "Dup"} })
}
