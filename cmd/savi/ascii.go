// Package main provides the entry point for the savi CLI.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/savi-dev/savi/internal/asciiart"
	"github.com/savi-dev/savi/internal/output"
)

// newASCIICmd creates the ascii command.
func newASCIICmd() *cobra.Command {
	var fontFlag string
	var listFonts bool

	cmd := &cobra.Command{
		Use:   "ascii [TEXT]",
		Short: "Render text as ASCII block art",
		Long: `Render text as fixed-height ASCII block glyphs.

Text comes from the argument or, when absent, from stdin. Characters the
font does not cover render as blanks.

Examples:
  savi ascii "HELLO"
  savi ascii "WORLD" --font standard
  echo "HELLO WORLD" | savi ascii
  savi ascii --list-fonts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runASCII(cmd, args, fontFlag, listFonts)
		},
	}

	cmd.Flags().StringVarP(&fontFlag, "font", "f", "standard", "Font to use")
	cmd.Flags().BoolVarP(&listFonts, "list-fonts", "l", false, "List available fonts")
	return cmd
}

// runASCII executes the ascii command.
func runASCII(cmd *cobra.Command, args []string, fontName string, listFonts bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	if listFonts {
		if printer.IsJSON() {
			return printer.Success(map[string]any{"fonts": asciiart.Fonts()})
		}
		printer.Println("Available fonts:")
		for _, name := range asciiart.Fonts() {
			printer.Print("  %s\n", name)
		}
		return nil
	}

	text, err := resolveText(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	art, renderErr := asciiart.Render(text, fontName)
	if renderErr != nil {
		err := output.NewUserError(renderErr.Error())
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"art":   art,
			"lines": asciiart.Rows,
			"font":  fontName,
		})
	}

	printer.Println(art)
	return nil
}

// resolveText picks the input text from the argument or stdin.
// An interactive terminal with no argument is a usage error, as is empty
// input from either source.
func resolveText(cmd *cobra.Command, args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		in := cmd.InOrStdin()
		if file, ok := in.(*os.File); ok {
			if stat, err := file.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
				return "", output.NewUserError("no text provided: pass TEXT as an argument or pipe it via stdin")
			}
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", output.NewUserErrorWithCause("reading stdin", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", output.NewUserError("empty text provided")
	}
	return text, nil
}
