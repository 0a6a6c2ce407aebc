package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ytget/vegascon/internal/config"
	"github.com/ytget/vegascon/internal/convert"
	"github.com/ytget/vegascon/internal/model"
	"github.com/ytget/vegascon/internal/platform"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a project file to another application version",
	Long: `Convert runs the msvpvf converter on a single project file and waits for it.
The format is taken from --format, or from the input extension when omitted.
The command exits with status 0 only when the converter does.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		format, _ := cmd.Flags().GetString("format")
		target, _ := cmd.Flags().GetInt("version")

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		return runConvert(ctx, cmd.OutOrStdout(), loadOptions(), input, format, target)
	},
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "project file to convert (.veg or .vf)")
	convertCmd.Flags().StringP("format", "f", "", "project format: veg or vf (default: from the input extension)")
	convertCmd.Flags().IntP("version", "v", 0, "target application version")

	rootCmd.AddCommand(convertCmd)
}

// runConvert builds a request from the flag values and converts synchronously
func runConvert(ctx context.Context, out io.Writer, opts config.Options, input, formatName string, target int) error {
	if input == "" {
		return model.ErrMissingInput
	}
	if target == 0 {
		return model.ErrMissingVersion
	}

	format, err := resolveFormat(input, formatName)
	if err != nil {
		return err
	}

	req, err := model.NewConversionRequestForVersion(input, format, target)
	if err != nil {
		return err
	}

	svc := convert.NewService(platform.ResolveConverter(opts.Converter), opts.Timeout)
	result, err := svc.Convert(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Converted %s to %s in %s\n", req.InputPath, req.TargetLabel(), result.Duration())
	fmt.Fprintf(out, "Output: %s\n", req.OutputPath)
	return nil
}

// resolveFormat parses formatName, falling back to the input's extension
func resolveFormat(input, formatName string) (model.ProjectFormat, error) {
	if formatName != "" {
		return model.ParseFormat(formatName)
	}
	return model.FormatForPath(input)
}
