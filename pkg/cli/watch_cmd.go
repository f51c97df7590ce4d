package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/provenlab/provhash/pkg/log"
	"github.com/provenlab/provhash/pkg/provhash"
	"github.com/spf13/cobra"
)

func newWatchCmd(deps *Deps) *cobra.Command {
	var ignore []string

	cmd := &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-fingerprint a directory tree whenever it changes",
		Long: `watch hashes a directory tree, prints the digest, and then re-hashes on
every filesystem change, printing each new digest. Useful for driving a
cache invalidation loop during development. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			lg := log.FromContext(cmd.Context())
			opts := deps.hashOptions(ignore...)

			allIgnore := ignore
			if deps.Config != nil {
				allIgnore = append(slices.Clone(deps.Config.IgnoreNames), ignore...)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer watcher.Close()

			if err := watchTree(watcher, root, allIgnore); err != nil {
				return err
			}

			last, err := provhash.HashHex(provhash.Folder{Path: root}, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), last)

			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if slices.Contains(allIgnore, filepath.Base(ev.Name)) {
						continue
					}
					lg.Debug("fs event", "op", ev.Op.String(), "name", ev.Name)

					// new subdirectories need their own watches
					if ev.Op.Has(fsnotify.Create) {
						// ignore errors: the entry may already be gone
						_ = watchTree(watcher, ev.Name, allIgnore)
					}

					hex, err := provhash.HashHex(provhash.Folder{Path: root}, opts...)
					if err != nil {
						// transient states (half-written files, removed
						// entries) resolve on the next event
						lg.Warn("hash failed, waiting for next change", "err", err)
						continue
					}
					if hex != last {
						last = hex
						lg.Info("tree changed", "digest", hex)
						fmt.Fprintln(cmd.OutOrStdout(), hex)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					lg.Warn("watch error", "err", err)
				}
			}
		},
	}

	cmd.Flags().StringSliceVar(&ignore, "ignore", nil,
		"entry name to exclude from hashing and watching (repeatable)")

	return cmd
}

// watchTree adds watches for path and every directory below it, skipping
// ignored names. fsnotify watches are not recursive.
func watchTree(watcher *fsnotify.Watcher, path string, ignore []string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if slices.Contains(ignore, d.Name()) && p != path {
			return filepath.SkipDir
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}
