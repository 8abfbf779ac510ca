package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/filesift/filesift/internal/finder"
	"github.com/filesift/filesift/internal/watcher"
)

// runWatch prints the initial matches, then streams new ones until
// interrupted.
func runWatch(cmd *cobra.Command, f *finder.Finder, root string) error {
	out := cmd.OutOrStdout()

	paths, err := f.FindAll(root)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintln(out, path)
	}

	w, err := watcher.New(f, root, 0)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx, func(paths []string) {
		for _, path := range paths {
			fmt.Fprintln(out, path)
		}
	}); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
