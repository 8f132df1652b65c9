package decorate

import (
	"fmt"

	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/panelkit/pkg/errors"
)

// Builder collects the layers for one component kind.
type Builder struct {
	name   string
	base   components.Kind
	layers []Layer
}

// New starts a definition around base. Layers are added outermost first.
func New(base components.Kind) *Builder {
	b := &Builder{base: base}
	if base != nil {
		b.name = base.Name()
	}
	return b
}

// Named overrides the name used in errors and logs.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// With appends layers in the order given.
func (b *Builder) With(layers ...Layer) *Builder {
	b.layers = append(b.layers, layers...)
	return b
}

func (b *Builder) Pure() *Builder       { return b.With(Pure) }
func (b *Builder) Toggleable() *Builder { return b.With(Toggleable) }
func (b *Builder) Spottable() *Builder  { return b.With(Spottable) }
func (b *Builder) Skinnable() *Builder  { return b.With(Skinnable) }

// Build validates the chain. Layers must appear at most once and strictly
// outer to inner: Pure, Toggleable, Spottable, Skinnable. Bases that need
// something from their layers are checked here too.
func (b *Builder) Build() (*Definition, error) {
	if b.base == nil {
		return nil, apperrors.NewCompositionError(b.name, "", "base component is required")
	}

	var comp components.Composition
	for i, layer := range b.layers {
		if !layer.valid() {
			return nil, apperrors.NewCompositionError(b.name, layer.String(), "unknown layer")
		}
		for _, earlier := range b.layers[:i] {
			if earlier == layer {
				return nil, apperrors.NewCompositionError(b.name, layer.String(), "layer applied more than once")
			}
		}
		if i > 0 && b.layers[i-1] > layer {
			return nil, apperrors.NewCompositionError(b.name, layer.String(),
				fmt.Sprintf("must wrap %s, not be wrapped by it", b.layers[i-1]))
		}
		switch layer {
		case Pure:
			comp.Pure = true
		case Toggleable:
			comp.Toggleable = true
		case Spottable:
			comp.Spottable = true
		case Skinnable:
			comp.Skinnable = true
		}
	}

	if checker, ok := b.base.(components.CompositionChecker); ok {
		if err := checker.CheckComposition(comp); err != nil {
			return nil, &apperrors.CompositionError{
				Component: b.name,
				Message:   err.Error(),
				Err:       err,
			}
		}
	}

	layers := make([]Layer, len(b.layers))
	copy(layers, b.layers)
	return &Definition{name: b.name, base: b.base, layers: layers, composition: comp}, nil
}

// Must panics when err is non-nil. Package-level definitions use it so a bad
// composition stops the program at initialization.
func Must(def *Definition, err error) *Definition {
	if err != nil {
		panic(err)
	}
	return def
}
