package cli

import (
	"fmt"
	"os"

	"github.com/khalid-nowaf/triemap/pkg/alphabet"
)

// DrawCmd loads word files into the trie and renders it as a Graphviz DOT
// file.
type DrawCmd struct {
	LoadFlags
	Out string `help:"Output DOT file" default:"trie.dot"`
}

// Run executes the draw command.
func (cmd *DrawCmd) Run(ctx *Context) error {
	fmt.Printf("alphabet: %s\n", string(alphabet.Runes(ctx.Trie.Alphabet())))

	stats := &Stats{}
	if err := loadFiles(ctx, &cmd.LoadFlags, stats); err != nil {
		return err
	}
	fmt.Println(stats.String())

	file, err := os.Create(cmd.Out)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := ctx.Trie.Draw(file); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cmd.Out)
	return nil
}
