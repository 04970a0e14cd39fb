package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// kindFlags returns a fresh set of the flags choosing the tree to build.
// Flags keep values read from the environment, so commands don't share them.
func kindFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "kind",
			Usage:   "tree to build: bst, avl, splay or btree",
			Value:   "avl",
			EnvVars: []string{"TREECTL_KIND"},
		},
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "order values with the reversed comparator",
		},
		&cli.IntFlag{
			Name:    "degree",
			Usage:   "minimum degree of btree",
			Value:   2,
			EnvVars: []string{"TREECTL_DEGREE"},
		},
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "treectl",
		Usage: "build, dump and measure ordered trees",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log tree events to stderr",
				EnvVars: []string{"TREECTL_VERBOSE"},
			},
		},
		Before: func(cctx *cli.Context) error {
			if !cctx.Bool("verbose") {
				return nil
			}
			zl, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			cctx.App.Metadata["options"] = []Go_Collections.Option{Go_Collections.WithLogger(logger.NewZap(zl))}
			return nil
		},
		Metadata: map[string]interface{}{},
	}
	app.Commands = []*cli.Command{
		{
			Name:      "dump",
			Usage:     "insert the arguments in order and print the structure of the tree",
			ArgsUsage: "<value>...",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "pretty",
					Usage: "also print one node per line",
				},
				&cli.StringSliceFlag{
					Name:  "erase",
					Usage: "values to erase after inserting",
				},
			}, kindFlags()...),
			Action: runDump,
		},
		{
			Name:  "measure",
			Usage: "benchmark an add, erase and find workload over growing erase counts",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "n",
					Usage: "values added per run",
					Value: 100000,
				},
				&cli.IntFlag{
					Name:  "steps",
					Usage: "number of erase counts to measure",
					Value: 10,
				},
				&cli.Int64Flag{
					Name:  "seed",
					Usage: "seed of the value generator",
				},
			}, kindFlags()...),
			Action: runMeasure,
		},
	}
	return app
}

func options(cctx *cli.Context) []Go_Collections.Option {
	if o, ok := cctx.App.Metadata["options"].([]Go_Collections.Option); ok {
		return o
	}
	return nil
}

func parseInts(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", a, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func runDump(cctx *cli.Context) error {
	vs, err := parseInts(cctx.Args().Slice())
	if err != nil {
		return err
	}
	es, err := parseInts(cctx.StringSlice("erase"))
	if err != nil {
		return err
	}
	t, err := newTree(cctx.String("kind"), cctx.Bool("reverse"), cctx.Int("degree"), options(cctx))
	if err != nil {
		return err
	}
	for _, v := range vs {
		t.Add(v)
	}
	for _, v := range es {
		t.Erase(v)
	}
	out := cctx.App.Writer
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "size: %d, height: %d\n", t.Size(), t.Height())
	if cctx.Bool("pretty") {
		fmt.Fprint(out, t.Pretty())
	}
	return nil
}
