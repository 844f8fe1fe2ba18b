// Package factory provides a small generic registry representing one named
// factory. Variants are keyed by instance tag and built on demand by
// registered constructors. Providers bundle one or more factories and expose
// them through the provider package.
//
// Example usage:
//
//	f := factory.New[object.Object]("Widgets")
//	f.Register("Button", func() (object.Object, error) {
//	    return object.NewBase(""), nil
//	})
//	obj, err := f.Create("Button")
package factory
