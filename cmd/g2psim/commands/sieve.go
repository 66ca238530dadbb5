package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zhupengjia/g2psim/internal/g2p"
)

func sieveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sieve",
		Short: "Inspect the sieve aperture",
	}
	cmd.AddCommand(sieveHolesCmd(), sieveCheckCmd(), sieveMapCmd())
	return cmd
}

func sieveHolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holes",
		Short: "List hole centres and radii",
		RunE: func(cmd *cobra.Command, args []string) error {
			sv := setup.Sieve
			fmt.Printf("Sieve %dx%d at z=%.6g m\n", sv.Rows(), sv.Cols(), sv.Z())
			for id := 0; id < sv.NumHoles(); id++ {
				c, err := sv.HoleCenter(id)
				if err != nil {
					return err
				}
				mark := ""
				if sv.IsLargeHole(id) {
					mark = " large"
				}
				fmt.Printf("%3d  row=%d col=%d  x=%+.6f y=%+.6f  r=%.6f%s\n",
					id, id/sv.Cols(), id%sv.Cols(), c.X, c.Y, sv.HoleRadius(id), mark)
			}
			return nil
		},
	}
}

func sieveCheckCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "check X Y Z",
		Short: "Check whether a lab (or --local) point passes the sieve",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseVec(args)
			if err != nil {
				return err
			}
			geo := p
			if !local {
				geo = setup.Frame.ToGeometry(p)
			}
			id, ok := setup.Sieve.Pass(geo)
			if local {
				fmt.Printf("local=%+v pass=%v hole=%d\n", geo, ok, id)
				return nil
			}
			fmt.Printf("lab=%+v local=%+v pass=%v hole=%d boundary=%v\n",
				p, geo, ok, id, setup.Frame.TouchesBoundary(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "point is already in the sieve frame")
	return cmd
}

func sieveMapCmd() *cobra.Command {
	var out string
	var res, ss int
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render the passable region of the sieve to PNG or WebP",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := setup.Config.Render
			if out == "" {
				out = rc.Out
			}
			if res <= 0 {
				res = rc.Res
			}
			if ss <= 0 {
				ss = rc.Supersample
			}
			img, err := g2p.RenderAperture(setup.Sieve, g2p.SieveWindow(setup.Sieve), res, ss)
			if err != nil {
				return err
			}
			if err := g2p.SaveApertureMap(img, out); err != nil {
				return err
			}
			fmt.Printf("Saved aperture map: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.png or .webp)")
	cmd.Flags().IntVar(&res, "res", 0, "output resolution of the longer side")
	cmd.Flags().IntVar(&ss, "supersample", 0, "supersampling factor")
	return cmd
}

func parseVec(args []string) (r3.Vec, error) {
	var v [3]float64
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		v[i] = x
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
