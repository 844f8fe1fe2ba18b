// Package object defines the handle contract for instances produced by
// factory providers. Providers return an Object; everything else about the
// concrete type stays with the provider that built it.
package object

import "github.com/google/uuid"

// Object is the minimal surface of a factory-constructed instance: a
// mutable object name, assigned from the record that requested construction.
type Object interface {
	ObjectName() string
	SetObjectName(name string)
}

// Base is a ready-made Object implementation for providers that do not need
// anything richer. Every Base gets a unique ID so anonymous instances stay
// distinguishable in logs and bookkeeping.
type Base struct {
	id   string
	name string
}

// NewBase returns a Base with the given object name and a fresh ID.
func NewBase(name string) *Base {
	return &Base{id: uuid.NewString(), name: name}
}

// ID returns the generated identifier, stable for the object's lifetime.
func (b *Base) ID() string { return b.id }

func (b *Base) ObjectName() string        { return b.name }
func (b *Base) SetObjectName(name string) { b.name = name }
