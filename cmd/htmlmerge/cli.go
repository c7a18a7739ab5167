package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root        string `short:"r" default:"." env:"HTMLMERGE_ROOT" help:"Root directory to scan"`
	Output      string `short:"o" default:"html/merged.html" env:"HTMLMERGE_OUTPUT" help:"Output file, relative to the root unless absolute"`
	Title       string `default:"Merged List" env:"HTMLMERGE_TITLE" help:"Page title"`
	IconSize    int    `default:"24" env:"HTMLMERGE_ICON_SIZE" help:"Icon size in pixels for rasterized SVGs"`
	NoRasterize bool   `env:"HTMLMERGE_NO_RASTERIZE" help:"Skip SVG rasterization; SVG icons use the placeholder"`
	Verbose     bool   `short:"v" env:"HTMLMERGE_VERBOSE" help:"Enable debug logging"`
}
