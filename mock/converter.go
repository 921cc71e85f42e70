package mock

import "github.com/fwojciec/mdarchive"

var (
	_ mdarchive.Converter = (*Converter)(nil)
	_ mdarchive.Prober    = (*Converter)(nil)
)

// Converter is a mock implementation of mdarchive.Converter.
// A nil ProbeFn reports the converter as available.
type Converter struct {
	ConvertFn func(root *mdarchive.Node) (string, error)
	ProbeFn   func() bool
}

func (c *Converter) Convert(root *mdarchive.Node) (string, error) {
	return c.ConvertFn(root)
}

func (c *Converter) Probe() bool {
	if c.ProbeFn == nil {
		return true
	}
	return c.ProbeFn()
}

var _ mdarchive.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of mdarchive.Inspector.
type Inspector struct {
	InspectFn func(markdown string) (*mdarchive.Structure, error)
}

func (i *Inspector) Inspect(markdown string) (*mdarchive.Structure, error) {
	return i.InspectFn(markdown)
}
