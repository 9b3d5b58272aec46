// Package main demonstrates delay embedding on a Lorenz trajectory:
// standardizing the series, building Hankel train/test matrices, and
// saving a 3D projection plot of the attractor.
package main

import (
	"fmt"
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/godelay/hankel"
	"github.com/sartorproj/godelay/timeseries"
	"github.com/sartorproj/godelay/viz"
)

// lorenz integrates the Lorenz system with a fixed-step RK4 scheme and
// returns n samples of the trajectory after discarding a transient.
func lorenz(n int, dt float64) [][]float64 {
	const (
		sigma     = 10.0
		rho       = 28.0
		beta      = 8.0 / 3.0
		transient = 1000
	)
	deriv := func(s [3]float64) [3]float64 {
		return [3]float64{
			sigma * (s[1] - s[0]),
			s[0]*(rho-s[2]) - s[1],
			s[0]*s[1] - beta*s[2],
		}
	}
	step := func(s [3]float64) [3]float64 {
		k1 := deriv(s)
		k2 := deriv(add(s, scale(k1, dt/2)))
		k3 := deriv(add(s, scale(k2, dt/2)))
		k4 := deriv(add(s, scale(k3, dt)))
		for i := 0; i < 3; i++ {
			s[i] += dt / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
		}
		return s
	}

	state := [3]float64{1, 1, 1}
	for i := 0; i < transient; i++ {
		state = step(state)
	}
	out := make([][]float64, n)
	for i := range out {
		state = step(state)
		out[i] = []float64{state[0], state[1], state[2]}
	}
	return out
}

func add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale(a [3]float64, f float64) [3]float64 {
	return [3]float64{a[0] * f, a[1] * f, a[2] * f}
}

func main() {
	fmt.Println("=== Delay embedding of the Lorenz attractor ===")

	series, err := timeseries.NewMulti(lorenz(2000, 0.01))
	if err != nil {
		log.Fatal(err)
	}
	norm := series.Standardize(1.0)
	fmt.Printf("Series: %d samples, %d channels (standardized)\n", norm.Len(), norm.Channels())

	// Full multichannel embedding.
	hm, err := hankel.New(norm, 16, 0)
	if err != nil {
		log.Fatal(err)
	}
	p, q, d := hm.Dims()
	fmt.Printf("Embedding: %d x %d x %d, mean=%.4f, std=%.4f\n", p, q, d, hm.Mean(), hm.Std())

	// Standardized train/test pair from the x coordinate.
	train, test, err := hankel.TrainTest(norm.Channel(0), 800, 16, nil)
	if err != nil {
		log.Fatal(err)
	}
	tp, tq, _ := train.Dims()
	sp, sq, _ := test.Dims()
	fmt.Printf("Train: %d x %d (mean=%.4f, std=%.4f)\n", tp, tq, train.Mean(), train.Std())
	fmt.Printf("Test:  %d x %d (mean=%.4f, std=%.4f)\n", sp, sq, test.Mean(), test.Std())

	// Projection plot of the attractor with coordinate-plane shadows.
	pl := plot.New()
	pl.Title.Text = "Lorenz attractor"
	opts := viz.DefaultProjOptions()
	opts.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	if err := viz.Plot3DProj(pl, norm.Channel(0), norm.Channel(1), norm.Channel(2), opts); err != nil {
		log.Fatal(err)
	}
	if err := viz.FixedAspectRatio(pl, 1.0); err != nil {
		log.Fatal(err)
	}
	if err := pl.Save(7*vg.Inch, 7*vg.Inch, "lorenz.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Saved projection plot to lorenz.png")
}
