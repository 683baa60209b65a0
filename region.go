package fractal

import (
	"fmt"
	"sort"
	"strings"
)

// Region is a rectangle of the complex plane without output dimensions.
type Region struct {
	ReMin, ReMax float64
	ImMin, ImMax float64
}

// Viewport pairs the region with an output image size.
func (r Region) Viewport(width, height int) Viewport {
	return Viewport{
		ReMin:  r.ReMin,
		ReMax:  r.ReMax,
		ImMin:  r.ImMin,
		ImMax:  r.ImMax,
		Width:  width,
		Height: height,
	}
}

// Classic regions / landmarks
var (
	// Full Mandelbrot set
	FullMandelbrot = Region{
		ReMin: -2.0,
		ReMax: 1.0,
		ImMin: -1.5,
		ImMax: 1.5,
	}

	// Full Julia set, symmetric around the origin
	FullJulia = Region{
		ReMin: -2.0,
		ReMax: 2.0,
		ImMin: -1.5,
		ImMax: 1.5,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		ReMin: -0.8,
		ReMax: -0.7,
		ImMin: 0.05,
		ImMax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		ReMin: 0.25,
		ReMax: 0.35,
		ImMin: -0.05,
		ImMax: 0.05,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		ReMin: -0.7435,
		ReMax: -0.7420,
		ImMin: 0.1310,
		ImMax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		ReMin: -0.7480,
		ReMax: -0.7450,
		ImMin: 0.0950,
		ImMax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		ReMin: -0.7400,
		ReMax: -0.7350,
		ImMin: 0.1800,
		ImMax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		ReMin: -1.7390,
		ReMax: -1.7375,
		ImMin: -0.0235,
		ImMax: -0.0220,
	}
)

var regions = map[string]Region{
	"mandelbrot":      FullMandelbrot,
	"julia":           FullJulia,
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral":          SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"minibrot-spiral": MinibrotInMiniSpiral,
}

// LookupRegion returns the landmark region registered under name.
func LookupRegion(name string) (Region, error) {
	r, ok := regions[strings.ToLower(name)]
	if !ok {
		return Region{}, fmt.Errorf("unknown region %q (known: %s)", name, strings.Join(RegionNames(), ", "))
	}
	return r, nil
}

// RegionNames lists the registered landmark names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for n := range regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
