package provider

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fabrica-go/fabrica/core/factory"
	"github.com/fabrica-go/fabrica/core/instance"
	"github.com/fabrica-go/fabrica/core/object"
)

func widgetFactory(t *testing.T, name string, tags ...string) *factory.Factory[object.Object] {
	t.Helper()
	f := factory.New[object.Object](name)
	for _, tag := range tags {
		if err := f.Register(tag, func() (object.Object, error) {
			return object.NewBase(""), nil
		}); err != nil {
			t.Fatalf("register %s: %v", tag, err)
		}
	}
	return f
}

func newTestGroup(t *testing.T) *Group {
	t.Helper()
	g := NewGroup()
	if err := g.Add(widgetFactory(t, "Widgets", "Button", "Label")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := g.Add(widgetFactory(t, "Layouts", "Grid")); err != nil {
		t.Fatalf("add: %v", err)
	}
	return g
}

func TestGroupProvidedFactories(t *testing.T) {
	g := newTestGroup(t)
	if got := g.ProvidedFactories(); !reflect.DeepEqual(got, []string{"Layouts", "Widgets"}) {
		t.Fatalf("factories = %v", got)
	}
	if err := g.Add(widgetFactory(t, "Widgets")); err == nil {
		t.Fatal("expected duplicate factory error")
	}
}

func TestGroupProvidedFactoryTags(t *testing.T) {
	g := newTestGroup(t)
	if got := g.ProvidedFactoryTags("Widgets"); !reflect.DeepEqual(got, []string{"Button", "Label"}) {
		t.Fatalf("tags = %v", got)
	}
	got := g.ProvidedFactoryTags("nonexistent")
	if got == nil || len(got) != 0 {
		t.Fatalf("unknown factory must yield an empty slice, got %v", got)
	}
}

func TestGroupCreateInstance(t *testing.T) {
	g := newTestGroup(t)
	obj, err := g.CreateInstance(instance.NewNamed("Widgets", "Button", "okButton"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if obj.ObjectName() != "okButton" {
		t.Fatalf("object name = %q, want okButton", obj.ObjectName())
	}

	if _, err := g.CreateInstance(instance.New("Widgets", "Slider")); err == nil {
		t.Fatal("expected unknown tag error")
	}
	if _, err := g.CreateInstance(instance.FactoryInfo{InstanceTag: "Button"}); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

// A group registered in the registry under an alias still receives records
// whose FactoryTag is the alias, not one of its own factory names. The tag
// scan keeps those constructible.
func TestGroupCreateInstanceAliasedFactory(t *testing.T) {
	g := newTestGroup(t)
	obj, err := g.CreateInstance(instance.New("LegacyWidgets", "Grid"))
	if err != nil {
		t.Fatalf("create via alias: %v", err)
	}
	if obj == nil {
		t.Fatal("nil object")
	}
}
