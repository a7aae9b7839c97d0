package figure

// Color is the implementation side of the bridge that renders a color.
type Color interface {
	Render() string
}

// Material is the implementation side of the bridge that renders a material.
type Material interface {
	Render() string
}

type Green struct {
}

func (Green) Render() string {
	return "Green.\n"
}

type Wood struct {
}

func (Wood) Render() string {
	return "Wood.\n"
}
