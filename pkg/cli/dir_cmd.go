package cli

import (
	"fmt"

	"github.com/provenlab/provhash/pkg/log"
	"github.com/provenlab/provhash/pkg/provhash"
	"github.com/spf13/cobra"
)

func newDirCmd(deps *Deps) *cobra.Command {
	var ignore []string

	cmd := &cobra.Command{
		Use:   "dir <path>",
		Short: "Fingerprint a directory tree by content",
		Long: `dir hashes the contents of a directory tree: file names, file bytes, and
structure, visited in sorted order. The directory's own name and location
never contribute, so the digest survives renames and moves of the tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := provhash.HashHex(
				provhash.Folder{Path: args[0]},
				deps.hashOptions(ignore...)...,
			)
			if err != nil {
				return err
			}

			log.FromContext(cmd.Context()).Debug("hashed directory",
				"path", args[0], "digest", hex)
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ignore, "ignore", nil,
		"entry name to exclude from hashing (repeatable)")

	return cmd
}
