package main

import (
	"os"
	"runtime/pprof"

	"github.com/zhupengjia/g2psim/cmd/g2psim/commands"
	"github.com/zhupengjia/g2psim/internal/g2p"
)

func main() {
	os.Exit(run())
}

func run() int {
	g2p.Debug = os.Getenv("DEBUG") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if err := commands.Execute(); err != nil {
		return 1
	}
	return 0
}
