package cli

import (
	"fmt"
)

// ItemsCmd loads word files into the trie and writes out every key/value
// pair it ends up holding.
type ItemsCmd struct {
	LoadFlags
	Format string `help:"Output format" enum:"csv,json" default:"csv"`
	Out    string `help:"Output file, defaults to items.<format>" default:""`
}

// Run executes the items command.
func (cmd *ItemsCmd) Run(ctx *Context) error {
	stats := &Stats{}
	if err := loadFiles(ctx, &cmd.LoadFlags, stats); err != nil {
		return err
	}
	fmt.Println(stats.String())

	out := cmd.Out
	if out == "" {
		out = "items." + cmd.Format
	}

	var err error
	if cmd.Format == "json" {
		err = writeJsonItems(ctx.Trie, out, cmd.KeyKey, cmd.ValueKey)
	} else {
		err = writeCsvItems(ctx.Trie, out, cmd.KeyKey, cmd.ValueKey)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
