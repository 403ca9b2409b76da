package source

import (
	"image"
	"math"
	"sort"

	"github.com/scheerer/shade-pendulum/internal/color"
)

// Sampler reduces an image to a single color, reading every
// pixelGridSize-th pixel in both directions.
type Sampler func(img *image.RGBA, pixelGridSize int) color.RGB

var samplers = map[string]Sampler{
	"AVERAGE":         AverageColor,
	"SQUARED_AVERAGE": SquaredAverageColor,
	"MEDIAN":          MedianColor,
	"MODE":            ModeColor,
}

func forEachSample(img *image.RGBA, pixelGridSize int, fn func(r, g, b uint8)) {
	if pixelGridSize < 1 {
		pixelGridSize = 1
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += pixelGridSize {
		for x := bounds.Min.X; x < bounds.Max.X; x += pixelGridSize {
			c := img.RGBAAt(x, y)
			fn(c.R, c.G, c.B)
		}
	}
}

func AverageColor(img *image.RGBA, pixelGridSize int) color.RGB {
	var sumR, sumG, sumB, totalPixels uint64
	forEachSample(img, pixelGridSize, func(r, g, b uint8) {
		totalPixels++
		sumR += uint64(r)
		sumG += uint64(g)
		sumB += uint64(b)
	})
	if totalPixels == 0 {
		return color.RGB{}
	}

	return color.RGB{
		R: uint8(sumR / totalPixels),
		G: uint8(sumG / totalPixels),
		B: uint8(sumB / totalPixels),
	}
}

// SquaredAverageColor averages the squared channels and takes the root,
// which weights bright pixels more than AverageColor does.
func SquaredAverageColor(img *image.RGBA, pixelGridSize int) color.RGB {
	var sumR, sumG, sumB, totalPixels uint64
	forEachSample(img, pixelGridSize, func(r, g, b uint8) {
		totalPixels++
		sumR += uint64(r) * uint64(r)
		sumG += uint64(g) * uint64(g)
		sumB += uint64(b) * uint64(b)
	})
	if totalPixels == 0 {
		return color.RGB{}
	}

	root := func(sum uint64) uint8 {
		return uint8(math.Sqrt(float64(sum) / float64(totalPixels)))
	}
	return color.RGB{R: root(sumR), G: root(sumG), B: root(sumB)}
}

// MedianColor takes the median of each channel independently.
func MedianColor(img *image.RGBA, pixelGridSize int) color.RGB {
	var reds, greens, blues []uint8
	forEachSample(img, pixelGridSize, func(r, g, b uint8) {
		reds = append(reds, r)
		greens = append(greens, g)
		blues = append(blues, b)
	})
	if len(reds) == 0 {
		return color.RGB{}
	}

	median := func(values []uint8) uint8 {
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
		n := len(values)
		if n%2 == 0 {
			return uint8((int(values[n/2-1]) + int(values[n/2])) / 2)
		}
		return values[n/2]
	}

	return color.RGB{
		R: median(reds),
		G: median(greens),
		B: median(blues),
	}
}

// ModeColor returns the most frequent sampled color. Ties go to the color
// seen first.
func ModeColor(img *image.RGBA, pixelGridSize int) color.RGB {
	colorCount := make(map[color.RGB]int)
	var modeColor color.RGB
	maxCount := 0
	forEachSample(img, pixelGridSize, func(r, g, b uint8) {
		c := color.RGB{R: r, G: g, B: b}
		colorCount[c]++
		if colorCount[c] > maxCount {
			maxCount = colorCount[c]
			modeColor = c
		}
	})

	return modeColor
}
