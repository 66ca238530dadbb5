package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func frameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Convert points between the lab and the sieve frame",
	}
	cmd.AddCommand(frameInfoCmd(), frameConvertCmd())
	return cmd
}

func frameInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the frozen sieve frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.Frame
			fmt.Printf("frame %q: status=%s mode=%s transport=%v\n", f.Name, f.Status(), f.Mode(), f.UsesTransport())
			fmt.Printf("  origin=%+v euler=%+v\n", f.Origin(), f.EulerAngles())
			if f.UsesRotation() {
				R := f.RotationMatrix()
				for r := 0; r < 3; r++ {
					fmt.Printf("  [% .6f % .6f % .6f]\n", R.M[r][0], R.M[r][1], R.M[r][2])
				}
			}
			return nil
		},
	}
}

func frameConvertCmd() *cobra.Command {
	var toLab bool
	cmd := &cobra.Command{
		Use:   "convert X Y Z",
		Short: "Map a lab point to the sieve frame (or back with --to-lab)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseVec(args)
			if err != nil {
				return err
			}
			if toLab {
				fmt.Printf("geo=%+v -> lab=%+v\n", p, setup.Frame.ToLab(p))
				return nil
			}
			fmt.Printf("lab=%+v -> geo=%+v\n", p, setup.Frame.ToGeometry(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&toLab, "to-lab", false, "convert from the sieve frame to the lab")
	return cmd
}
