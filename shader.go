package bounce

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// logoShaderSrc draws the texture with inverted colors over an opaque
// background. The vertex color is the bounce tint: its alpha blends the
// logo's covered pixels toward the tint's RGB, so a zero alpha leaves the
// plain inverted texture.
const logoShaderSrc = `//kage:unit pixels
package main

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	inv := vec3(1) - c.rgb
	return vec4(mix(inv, color.rgb, c.a*color.a), 1)
}
`

// compileLogoShader builds the logo pipeline. A failure here carries the Kage
// compiler diagnostic.
func compileLogoShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader([]byte(logoShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile logo shader: %w", err)
	}
	return s, nil
}
