package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhupengjia/g2psim/internal/g2p"
)

func materialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Inspect materials and sample their energy loss and scattering",
	}
	cmd.AddCommand(materialListCmd(), materialSampleCmd(), materialDumpCmd())
	return cmd
}

func materialListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range setup.Registry.All() {
				fmt.Printf("%-10s Z=%-4g A=%-5g X0=%-8g g/cm^2 density=%-10g g/cm^3\n", m.Name, m.Z, m.A, m.X0, m.Density)
			}
			return nil
		},
	}
}

func materialSampleCmd() *cobra.Command {
	var (
		energy, length float64
		n, workers     int
	)
	cmd := &cobra.Command{
		Use:   "sample NAME",
		Short: "Summarise energy-loss and scattering-angle draws",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := setup.Material(args[0])
			if err != nil {
				return err
			}
			s := g2p.Summarize(m, energy, length, n, workers, setup.Config.Seed)
			fmt.Printf("%s: E=%g GeV l=%g cm n=%d workers=%d\n", m.Name, s.Energy, s.PathLength, s.N, s.Workers)
			fmt.Printf("  dE    mean=%.6g std=%.6g min=%.6g max=%.6g GeV (no loss: %d)\n", s.LossMean, s.LossStd, s.LossMin, s.LossMax, s.ZeroLoss)
			fmt.Printf("  theta mean=%.6g std=%.6g min=%.6g max=%.6g rad\n", s.AngleMean, s.AngleStd, s.AngleMin, s.AngleMax)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&energy, "energy", "e", 2.254, "electron energy in GeV")
	cmd.Flags().Float64VarP(&length, "length", "l", 1, "path length in cm")
	cmd.Flags().IntVarP(&n, "draws", "n", g2p.SummaryDraws, "number of draws")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default: NumCPU)")
	return cmd
}

func materialDumpCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write material fields as a field-list configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := g2p.NewConfStore()
			for _, m := range setup.Registry.All() {
				if err := m.Configure(st, g2p.ConfWrite); err != nil {
					return err
				}
			}
			if err := st.Save(out); err != nil {
				return err
			}
			fmt.Printf("Saved %d keys: %s\n", st.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "materials.json", "output file")
	return cmd
}
