package finder

// Options configures a search. The zero value matches every non-hidden
// file directly inside the root.
type Options struct {
	// MaxDepth limits how many directory levels below the root are
	// visited: -1 means unlimited, 0 means the root's direct contents
	// only, n>0 descends n levels below the root.
	MaxDepth int

	// Pattern is matched against base file names, never full paths.
	// With UseRegex false it is a glob where * matches any run of
	// characters and ? matches exactly one character; every other
	// character is literal and the whole name must match. With UseRegex
	// true it is a Go regular expression matched as a search (any
	// substring of the name), not anchored. An empty glob matches
	// everything.
	Pattern string

	// UseRegex selects regular-expression interpretation of Pattern
	// instead of glob.
	UseRegex bool

	// IgnoreCase makes matching case-insensitive in both modes.
	IgnoreCase bool

	// IncludeHidden includes hidden files and directories in results.
	// When false a hidden directory is never descended into, pruning its
	// entire subtree no matter what it contains.
	IncludeHidden bool

	// Exclude holds glob patterns applied to slash-separated paths
	// relative to the root. A matching file is skipped; a matching
	// directory is pruned entirely. "node_modules/**" and plain
	// "node_modules" both prune the node_modules tree.
	Exclude []string
}
