package plugins

import (
	"fmt"

	"github.com/fabrica-go/fabrica/core/factory"
	"github.com/fabrica-go/fabrica/core/object"
	"github.com/fabrica-go/fabrica/core/provider"
)

// staticConf declares factories and their constructible tags directly in
// configuration. Every tag builds a plain named object.
type staticConf struct {
	Factories map[string][]string `json:"factories"`
}

func init() {
	RegisterProvider("static", func(name string, conf map[string]any) (provider.FactoryProvider, error) {
		var c staticConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if len(c.Factories) == 0 {
			return nil, fmt.Errorf("static provider %s: no factories configured", name)
		}
		group := provider.NewGroup()
		for factoryName, tags := range c.Factories {
			f := factory.New[object.Object](factoryName)
			for _, tag := range tags {
				if err := f.Register(tag, func() (object.Object, error) {
					return object.NewBase(""), nil
				}); err != nil {
					return nil, err
				}
			}
			if err := group.Add(f); err != nil {
				return nil, err
			}
		}
		return group, nil
	})
}
