// Command colorconv converts a color between RGB and HSB and prints both
// views next to a terminal swatch.
//
//	colorconv rgb 255 128 0
//	colorconv hsb 30 100 100
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/scheerer/shade-pendulum/internal/color"
)

const usage = `usage:
  colorconv rgb <red 0-255> <green 0-255> <blue 0-255>
  colorconv hsb <hue 0-360> <saturation 0-100> <brightness 0-100>`

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(5)
	swatchText = "        "
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) != 4 {
		return errors.Errorf("expected 4 arguments, got %d", len(args))
	}

	nums := make([]float64, 3)
	for i, arg := range args[1:] {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "argument %d", i+1)
		}
		nums[i] = f
	}

	v := color.NewValue()
	switch args[0] {
	case "rgb":
		v.SetRGBInts(int(nums[0]), int(nums[1]), int(nums[2]))
	case "hsb":
		v.SetHSB(nums[0], nums[1], nums[2])
	default:
		return errors.Errorf("unknown color model %q", args[0])
	}

	printColor(w, v)
	return nil
}

func printColor(w io.Writer, v *color.Value) {
	rgb := v.RGB()
	hue, sat, bri := v.HSB().Rounded()
	hex := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}.Hex()
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(swatchText)

	fmt.Fprintf(w, "%s red: %d green: %d blue: %d\n", labelStyle.Render("rgb"), rgb.R, rgb.G, rgb.B)
	fmt.Fprintf(w, "%s hue: %d sat: %d val: %d\n", labelStyle.Render("hsb"), hue, sat, bri)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("hex"), hex)
	fmt.Fprintln(w, swatch)
}
