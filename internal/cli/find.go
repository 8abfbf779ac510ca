package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/filesift/filesift/internal/config"
	"github.com/filesift/filesift/internal/finder"
)

func runFind(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	flags := cmd.Flags()

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	opts := searchOptions(flags, cfg)
	f, err := finder.New(opts, diagnostics(flags, cfg))
	if err != nil {
		return err
	}

	if watch, _ := flags.GetBool("watch"); watch {
		return runWatch(cmd, f, root)
	}
	if long, _ := flags.GetBool("long"); long {
		return printEntries(cmd, f, root)
	}
	return printPaths(cmd, f, root)
}

func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	if cfgFile, _ := flags.GetString("config"); cfgFile != "" {
		return config.NewFileLoader(cfgFile).Load()
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.NewLoader(cwd).Load()
}

// searchOptions merges config defaults with the flags the user set
// explicitly. Flags win over config; exclude patterns accumulate.
func searchOptions(flags *pflag.FlagSet, cfg *config.Config) finder.Options {
	opts := finder.Options{
		Pattern:       cfg.Search.Pattern,
		UseRegex:      cfg.Search.Regex,
		MaxDepth:      cfg.Search.MaxDepth,
		IgnoreCase:    cfg.Search.IgnoreCase,
		IncludeHidden: cfg.Search.IncludeHidden,
		Exclude:       append([]string(nil), cfg.Search.Exclude...),
	}
	if flags.Changed("pattern") {
		opts.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("regex") {
		opts.UseRegex, _ = flags.GetBool("regex")
	}
	if flags.Changed("max-depth") {
		opts.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("ignore-case") {
		opts.IgnoreCase, _ = flags.GetBool("ignore-case")
	}
	if flags.Changed("hidden") {
		opts.IncludeHidden, _ = flags.GetBool("hidden")
	}
	extra, _ := flags.GetStringArray("exclude")
	opts.Exclude = append(opts.Exclude, extra...)
	return opts
}

// diagnostics builds the sink non-fatal scan failures are reported to.
func diagnostics(flags *pflag.FlagSet, cfg *config.Config) finder.Diagnostics {
	quiet, _ := flags.GetBool("quiet")
	verbose, _ := flags.GetBool("verbose")

	if (quiet || cfg.Output.Quiet) && !verbose {
		return finder.NopDiagnostics{}
	}

	level := zerolog.WarnLevel
	if parsed, err := zerolog.ParseLevel(cfg.Output.LogLevel); err == nil && cfg.Output.LogLevel != "" {
		level = parsed
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()
	return finder.NewLogDiagnostics(log)
}

func printPaths(cmd *cobra.Command, f *finder.Finder, root string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	res := awaitScan(f.FindAllAsync(root), quiet)
	if res.Err != nil {
		return res.Err
	}

	out := cmd.OutOrStdout()
	if count, _ := cmd.Flags().GetBool("count"); count {
		fmt.Fprintln(out, len(res.Paths))
		return nil
	}
	for _, path := range res.Paths {
		fmt.Fprintln(out, path)
	}
	return nil
}

func printEntries(cmd *cobra.Command, f *finder.Finder, root string) error {
	entries, err := f.FindFiles(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if count, _ := cmd.Flags().GetBool("count"); count {
		fmt.Fprintln(out, len(entries))
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s %10d %s %s\n",
			e.Mode, e.Size, e.ModTime.Format("2006-01-02 15:04"), e.Path)
	}
	return nil
}

// awaitScan waits for an asynchronous scan, spinning on stderr while the
// filesystem works unless quiet is set.
func awaitScan(ch <-chan finder.Result, quiet bool) finder.Result {
	if quiet {
		return <-ch
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case res := <-ch:
			return res
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}
