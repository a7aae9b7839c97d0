package figure

// Abstraction is what the client works with. It never sees Color or
// Material directly.
type Abstraction interface {
	Operation() string
}

// Figure combines a color and a material.
type Figure struct {
	color    Color
	material Material
}

func NewFigure(color Color, material Material) *Figure {
	return &Figure{
		color:    color,
		material: material,
	}
}

func (f *Figure) Operation() string {
	return "Color:\n" + f.color.Render() + "\n" +
		"Material:\n" + f.material.Render()
}

// ExtendedAbstraction keeps both implementations but renders the color only.
type ExtendedAbstraction struct {
	Figure
}

func NewExtendedAbstraction(color Color, material Material) *ExtendedAbstraction {
	return &ExtendedAbstraction{
		Figure: Figure{
			color:    color,
			material: material,
		},
	}
}

func (e *ExtendedAbstraction) Operation() string {
	return "ExtendedAbstraction: Extended operation with:\n" + e.color.Render()
}
