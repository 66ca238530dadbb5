package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhupengjia/g2psim/internal/g2p"
)

func targetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target [Z A]",
		Short: "Print the configured target, or the mass of nucleus Z A",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or Z and A, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t := setup.Target
			if len(args) == 2 {
				var z, a int
				if _, err := fmt.Sscan(args[0], &z); err != nil {
					return fmt.Errorf("Z: %w", err)
				}
				if _, err := fmt.Sscan(args[1], &a); err != nil {
					return fmt.Errorf("A: %w", err)
				}
				t = g2p.NewTarget()
				t.SetTarget(z, a)
			}
			fmt.Printf("target Z=%d A=%d mass=%.6f MeV pid=%d pars=%v\n", t.Z, t.A, t.TargetMass, t.PID, t.Pars)
			return nil
		},
	}
}
