package main

import (
	"fmt"
	"os"
	"time"

	"github.com/larioandr/pycsmaca/desim"
	"github.com/larioandr/pycsmaca/sampler"
	"github.com/larioandr/pycsmaca/topology"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// wiredsim — discrete-event wired-line network runner
// ---------------------------------------------------------------------------
// Drives topology.WiredLineNetwork to stimeLimit and prints a final report:
// packets sent/delivered per station, mean end-to-end delay, queue drops,
// and transceiver busy ratios.
// ---------------------------------------------------------------------------

type presetConfig struct {
	numStations   int
	activeSources []int
	interval      float64
	payloadSize   float64
}

var presets = map[string]presetConfig{
	"steady": {numStations: 2, activeSources: []int{0}, interval: 1.0, payloadSize: 100},
	"burst":  {numStations: 4, activeSources: []int{0, 1, 2}, interval: 0.5, payloadSize: 150},
	"duplex": {numStations: 2, activeSources: []int{0}, interval: 0.1, payloadSize: 80},
}

func main() {
	fmt.Println("\033[1;36m╔══════════════════════════════════════════╗\033[0m")
	fmt.Println("\033[1;36m║  wiredsim — wired-line packet simulator   ║\033[0m")
	fmt.Println("\033[1;36m╚══════════════════════════════════════════╝\033[0m")

	app := &cli.App{
		Name:  "wiredsim",
		Usage: "run a discrete-event wired-line network simulation",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run a simulation and print a final report",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "preset", Value: "steady", Usage: "steady|burst|duplex"},
					&cli.IntFlag{Name: "stations", Value: 0, Usage: "override preset station count"},
					&cli.Float64Flag{Name: "bitrate", Value: 500},
					&cli.IntFlag{Name: "header-size", Value: 10},
					&cli.Float64Flag{Name: "preamble", Value: 0},
					&cli.Float64Flag{Name: "ifs", Value: 0.05},
					&cli.Float64Flag{Name: "distance", Value: 500},
					&cli.Float64Flag{Name: "speed-of-light", Value: 10000},
					&cli.Float64Flag{Name: "stime-limit", Value: 1000},
				},
				Action: runSimulation,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "wiredsim:", err)
		os.Exit(1)
	}
}

func runSimulation(c *cli.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	preset, ok := presets[c.String("preset")]
	if !ok {
		return errors.Errorf("unknown preset %q (want steady, burst, or duplex)", c.String("preset"))
	}
	numStations := preset.numStations
	if n := c.Int("stations"); n > 0 {
		numStations = n
	}

	params := topology.LineParams{
		NumStations:   numStations,
		Bitrate:       c.Float64("bitrate"),
		HeaderSize:    c.Int("header-size"),
		Preamble:      c.Float64("preamble"),
		IFS:           c.Float64("ifs"),
		Distance:      c.Float64("distance"),
		SpeedOfLight:  c.Float64("speed-of-light"),
		DataSize:      sampler.Constant(preset.payloadSize),
		Interval:      sampler.Constant(preset.interval),
		ActiveSources: preset.activeSources,
	}

	sugar.Infow("starting run",
		"preset", c.String("preset"), "stations", numStations, "stimeLimit", c.Float64("stime-limit"))

	started := time.Now()
	var net *topology.WiredLineNetwork
	result := desim.Simulate(func(sim *desim.Scheduler) desim.Module {
		net = topology.NewWiredLineNetwork(sim, params)
		return net
	}, c.Float64("stime-limit"), params, sugar)

	sugar.Infow("run complete", "wallClock", time.Since(started), "stime", result.Stime)

	printFinalReport(net)
	return nil
}

func printFinalReport(net *topology.WiredLineNetwork) {
	fmt.Println()
	fmt.Println("\033[1;33m── final report ──────────────────────────\033[0m")
	for i, sta := range net.Stations {
		if sta.Source != nil {
			fmt.Printf("  station %d: sent=%d mean_interval=%.3fs mean_size=%.1f\n",
				i, sta.Source.NumPacketsSent(), sta.Source.ArrivalIntervals().Mean(), sta.Source.DataSizeStat().Mean())
		}
		if sta.Sink.NumPacketsReceived() > 0 {
			fmt.Printf("  station %d: received=%d mean_delay=%s\n",
				i, sta.Sink.NumPacketsReceived(), fmtDuration(sta.Sink.DelayVector().Mean()))
		}
		if i+1 < len(net.Stations) {
			q := sta.GetQueueTo(net.Stations[i+1])
			ifc := sta.GetInterfaceTo(net.Stations[i+1])
			fmt.Printf("    link->%d: dropped=%d queue_timeavg=%.3f tx_busy_ratio=%.3f\n",
				i+1, q.NumDropped(), q.SizeTrace().TimeAvg(), ifc.TxBusyTrace().TimeAvg())
		}
	}
	fmt.Println("\033[1;33m───────────────────────────────────────────\033[0m")
}

func fmtDuration(seconds float64) string {
	return fmt.Sprintf("%.4fs", seconds)
}
