package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"calcpad/app"
	"calcpad/hal"
)

func main() {
	var hcfg hal.HeadlessConfig
	var wcfg hal.WindowConfig
	var acfg app.Config
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Update rate.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until -keys is typed or forever).")
	flag.StringVar(&hcfg.Keys, "keys", "", "Keys to type in headless mode, one per tick (e.g. \"12+3=\").")
	flag.IntVar(&wcfg.Scale, "scale", 2, "Window zoom factor.")
	flag.BoolVar(&acfg.Quiet, "quiet", false, "Do not log the startup banner.")
	flag.Parse()
	wcfg.Hz = hcfg.Hz

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(wcfg, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
