package prism

import "github.com/oliverbestmann/prism/glm"

// Color is a straight rgba color value with alpha, in linear rgb color space.
type Color = glm.Vec4f

var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorTransparent = Color{0, 0, 0, 0}
)
