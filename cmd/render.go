package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/spandanakunder/portfolio/internal/ambient"
	"github.com/spandanakunder/portfolio/internal/config"
	"github.com/spandanakunder/portfolio/internal/page"
	"github.com/spandanakunder/portfolio/internal/viewport"
)

var (
	renderOutput string
	renderWidth  float64
	renderHeight float64
	renderSeed   uint64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the portfolio page to a static HTML file",
	Long: `Renders the page once, drawing the ambient field inside the given
window size. A fixed --seed makes the output reproducible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		profile, err := loadProfile(cfg)
		if err != nil {
			return err
		}

		tracker := viewport.NewTracker()
		tracker.Mount(viewport.Static{Width: renderWidth, Height: renderHeight})
		defer tracker.Unmount()

		rng := ambient.Seeded(renderSeed)
		if !cmd.Flags().Changed("seed") {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		field := ambient.Generate(tracker.Size(), rng)

		data, err := page.Build(profile, field, cfg.Ambient.Color, page.Motion(cfg.Scroll))
		if err != nil {
			return err
		}

		renderer, err := page.NewRenderer()
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if renderOutput != "" && renderOutput != "-" {
			f, err := os.Create(renderOutput)
			if err != nil {
				return fmt.Errorf("creating %s: %w", renderOutput, err)
			}
			defer f.Close()
			out = f
		}

		if err := renderer.Render(out, data); err != nil {
			return err
		}
		if renderOutput != "" && renderOutput != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", renderOutput)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "-", "output file, - for stdout")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 1280, "window width in pixels")
	renderCmd.Flags().Float64Var(&renderHeight, "height", 800, "window height in pixels")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", 0, "particle field seed")
	rootCmd.AddCommand(renderCmd)
}
