package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhupengjia/g2psim/internal/g2p"
)

var (
	cfgPath string
	seed    int64
	setup   *g2p.Setup
)

// Execute runs the g2psim command line. Errors are printed once here.
func Execute() error {
	root := newRoot()
	err := root.Execute()
	if setup != nil {
		setup.Close()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	return err
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "g2psim",
		Short:         "Spectrometer transport core: frames, sieve aperture and material sampling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g2p.ReadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			setup, err = g2p.NewSetup(cfg)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "JSON configuration file (default: built-in g2p setup)")
	root.PersistentFlags().Int64Var(&seed, "seed", g2p.DefaultSeed, "random seed")

	root.AddCommand(sieveCmd(), materialCmd(), frameCmd(), targetCmd())
	return root
}
