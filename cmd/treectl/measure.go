package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/urfave/cli/v2"
)

// workload adds n random values, erases the first m of them, then looks up
// every added value and m random ones.
func workload(mk func() (tree, error), all []int, m int, r *rand.Rand) func(b *testing.B) {
	return func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			t, err := mk()
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
			for _, v := range all {
				t.Add(v)
			}
			for _, v := range all[:m] {
				t.Erase(v)
			}
			for _, v := range all {
				t.Contains(v)
			}
			for range m {
				t.Contains(r.Int())
			}
		}
	}
}

// meanStd of xs.
func meanStd(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	avg := sum / float64(len(xs))
	sum = 0
	for _, x := range xs {
		d := x - avg
		sum += d * d
	}
	return avg, math.Sqrt(sum / float64(len(xs)))
}

func runMeasure(cctx *cli.Context) error {
	n, steps := cctx.Int("n"), cctx.Int("steps")
	if n <= 0 || steps <= 0 {
		return fmt.Errorf("n and steps must be positive, got %d and %d", n, steps)
	}
	kind, reverse, degree, opts := cctx.String("kind"), cctx.Bool("reverse"), cctx.Int("degree"), options(cctx)
	mk := func() (tree, error) {
		return newTree(kind, reverse, degree, opts)
	}
	if _, err := mk(); err != nil {
		return err
	}
	r := rand.New(rand.NewSource(cctx.Int64("seed")))
	all := make([]int, n)
	for i := range all {
		all[i] = r.Int()
	}
	testing.Init()
	out := cctx.App.Writer
	var cs []float64
	for i := 1; i <= steps; i++ {
		m := n / steps * i
		br := testing.Benchmark(workload(mk, all, m, r))
		d := time.Duration(br.NsPerOp())
		cs = append(cs, float64(d.Microseconds())/1000)
		fmt.Fprintf(out, "step %d: erase %d, %v/op\n", i, m, d)
	}
	avg, std := meanStd(cs)
	fmt.Fprintf(out, "average: %fms/op\n", avg)
	fmt.Fprintf(out, "stddev: %fms/op\n", std)
	return nil
}
