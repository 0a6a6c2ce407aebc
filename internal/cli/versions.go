package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ytget/vegascon/internal/model"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the application versions a project can be converted to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		return writeVersions(cmd.OutOrStdout(), format, output)
	},
}

func init() {
	versionsCmd.Flags().StringP("format", "f", "", "only list one format: veg or vf")
	versionsCmd.Flags().StringP("output", "o", "text", "output format: text or yaml")

	rootCmd.AddCommand(versionsCmd)
}

// catalogListing is the yaml shape of one format's catalog
type catalogListing struct {
	Format   string         `yaml:"format"`
	Type     string         `yaml:"type"`
	Versions []versionEntry `yaml:"versions"`
}

type versionEntry struct {
	Version int    `yaml:"version"`
	Label   string `yaml:"label"`
	Icon    string `yaml:"icon"`
}

// writeVersions prints the catalogs of the selected formats
func writeVersions(out io.Writer, formatName, output string) error {
	formats := model.Formats()
	if formatName != "" {
		format, err := model.ParseFormat(formatName)
		if err != nil {
			return err
		}
		formats = []model.ProjectFormat{format}
	}

	listings := make([]catalogListing, 0, len(formats))
	for _, format := range formats {
		listing := catalogListing{Format: format.DisplayName(), Type: format.OutputType()}
		for _, e := range model.Catalog(format) {
			listing.Versions = append(listing.Versions, versionEntry{Version: e.Version, Label: e.Label, Icon: e.IconPath})
		}
		listings = append(listings, listing)
	}

	switch output {
	case "", "text":
		for i, listing := range listings {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, listing.Format)
			for _, v := range listing.Versions {
				fmt.Fprintf(out, "  %2d  %s\n", v.Version, v.Label)
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(listings); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", output)
	}
}
