// emoji-caverns generates cavern floors and shows them in a terminal
// preview, or dumps them as text with -dump.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"emoji-caverns/internal/game"
	"emoji-caverns/internal/locale"
	"emoji-caverns/internal/render"
	"emoji-caverns/internal/terminal"
)

type cliConfig struct {
	seed   int64
	floor  int
	opts   game.Options
	dump   bool
	color  bool
	locale string
	lang   string
}

func parseFlags(args []string) (cliConfig, error) {
	cfg := cliConfig{opts: game.DefaultOptions()}
	fs := flag.NewFlagSet("emoji-caverns", flag.ContinueOnError)
	fs.Int64Var(&cfg.seed, "seed", 0, "Random seed (0 uses the current time)")
	fs.IntVar(&cfg.floor, "floor", 1, "Floor to show (1-10)")
	fs.IntVar(&cfg.opts.Width, "width", 0, "Override map width (0 keeps the floor default, minimum 3)")
	fs.IntVar(&cfg.opts.Height, "height", 0, "Override map height (0 keeps the floor default, minimum 3)")
	fs.IntVar(&cfg.opts.WallPercent, "wall", -1, "Override initial wall percent 0-100 (-1 keeps the floor default)")
	fs.IntVar(&cfg.opts.Smoothing, "smooth", -1, "Override smoothing passes (-1 keeps the floor default)")
	fs.BoolVar(&cfg.opts.VerifyConnectivity, "verify", false, "Re-check connectivity after bridging regions")
	fs.BoolVar(&cfg.dump, "dump", false, "Print the floor as text instead of opening the viewer")
	fs.BoolVar(&cfg.color, "color", true, "Colorize -dump output")
	fs.StringVar(&cfg.locale, "locale", "", "Directory holding <lang>/LC_MESSAGES/default.po catalogs")
	fs.StringVar(&cfg.lang, "lang", "en", "Catalog language used with -locale")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.opts.Validate(); err != nil {
		return cfg, err
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, out *os.File) error {
	if err := locale.Load(cfg.locale, cfg.lang); err != nil {
		return err
	}
	d, err := game.NewDungeon(cfg.seed, cfg.opts)
	if err != nil {
		return err
	}
	if cfg.dump {
		width, _ := terminal.GetSize(out)
		color := cfg.color && terminal.IsTerminal(out)
		return dump(out, d, cfg.floor, width, color)
	}

	v, err := game.NewViewer(d)
	if err != nil {
		return err
	}
	if err := v.Goto(cfg.floor); err != nil {
		return err
	}
	v.Run()
	return nil
}

// dump writes the summary, the map and the legend for floor.
func dump(w io.Writer, d *game.Dungeon, floor, width int, color bool) error {
	lvl, err := d.Enter(floor)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, game.Summary(d, lvl))
	fmt.Fprintln(w, locale.T("START", lvl.Start.X, lvl.Start.Y))
	opts := render.TextOptions{Color: color, MaxWidth: width}
	if err := render.WriteText(w, lvl.Scene(), opts); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	_, err = fmt.Fprintln(w, locale.T("LEGEND"))
	return err
}
