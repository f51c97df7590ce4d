package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/provenlab/provhash/pkg/document"
	"github.com/provenlab/provhash/pkg/log"
	"github.com/provenlab/provhash/pkg/provhash"
	"github.com/spf13/cobra"
)

func newHashCmd(deps *Deps) *cobra.Command {
	var (
		format      string
		orderedMaps bool
	)

	cmd := &cobra.Command{
		Use:   "hash [file]",
		Short: "Fingerprint a JSON or YAML document",
		Long: `hash decodes a JSON or YAML document from a file or stdin and prints its
canonical digest. Value-equivalent documents produce the same digest
regardless of key order or formatting. With --ordered-maps, YAML mapping
order becomes significant.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			name := ""
			if len(args) == 1 {
				name = args[0]
				f, err := os.Open(name)
				if err != nil {
					return fmt.Errorf("open document: %w", err)
				}
				defer f.Close()
				in = f
			}

			v, err := decodeDocument(in, name, format, orderedMaps)
			if err != nil {
				return err
			}

			hex, err := provhash.HashHex(v, deps.hashOptions()...)
			if err != nil {
				return err
			}

			log.FromContext(cmd.Context()).Debug("hashed document",
				"source", sourceName(name), "digest", hex)
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "",
		"document format: json or yaml (default: by file extension, json for stdin)")
	cmd.Flags().BoolVar(&orderedMaps, "ordered-maps", false,
		"treat YAML mapping order as significant")

	return cmd
}

func decodeDocument(r io.Reader, name, format string, orderedMaps bool) (any, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	switch format {
	case "json":
		return document.DecodeJSON(r)
	case "yaml":
		return document.DecodeYAML(r, document.YAMLOptions{OrderedMaps: orderedMaps})
	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func sourceName(name string) string {
	if name == "" {
		return "stdin"
	}
	return name
}
