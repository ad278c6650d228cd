package main

import (
	"fmt"
	"io"
	"os"

	"github.com/anirudh-pedro/Aniru-AI/message"
	"github.com/anirudh-pedro/Aniru-AI/render"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		format      string
		targetBlank bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Format a reply read from a file or stdin",
		Long: `Format a reply read from a file or stdin and print it.

Formats: ansi (default), html, text, json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("cannot read reply: %w", err)
			}

			out := cmd.OutOrStdout()

			engine := render.NewEngine(render.Options{
				TargetBlank: targetBlank,
				Terminal:    out,
			})

			rendered, err := engine.Render(f, message.Format(string(raw)))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatANSI), "output format: ansi, html, text, json")
	cmd.Flags().BoolVar(&targetBlank, "target-blank", false, "open html links in a new tab")

	return cmd
}
