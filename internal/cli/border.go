package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shockbase/levelborder/internal/services/border"
	"github.com/shockbase/levelborder/internal/services/playerconfig"
)

func newBorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "border",
		Short: "Border commands",
	}

	cmd.AddCommand(newBorderSizeCmd())

	return cmd
}

func newBorderSizeCmd() *cobra.Command {
	var (
		level     int
		minRadius int
		remote    bool
	)

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute the border size for a level",
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 0 {
				return fmt.Errorf("--level must not be negative")
			}

			result := BorderSize{
				Level:     level,
				MinRadius: minRadius,
				Size:      border.Size(level, minRadius),
			}

			if remote {
				query := url.Values{}
				query.Set("level", strconv.Itoa(level))
				if cmd.Flags().Changed("min-radius") {
					query.Set("min_radius", strconv.Itoa(minRadius))
				}
				if err := client.Get("/api/v1/border/size?"+query.Encode(), &result); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "Experience level")
	cmd.Flags().IntVar(&minRadius, "min-radius", playerconfig.DefaultMinBorderRadius, "Minimum border radius")
	cmd.Flags().BoolVar(&remote, "remote", false, "Ask the server, using its configured min radius by default")

	return cmd
}
