package cli

import (
	"github.com/khalid-nowaf/triemap/pkg/alphabet"
	"github.com/khalid-nowaf/triemap/pkg/trie"
)

// CLI is the command tree parsed by kong in cmd/triemap.
var CLI struct {
	Alphabet string   `help:"Alphabet keys are validated against: lower, digits, binary, or a literal set of symbols" default:"lower"`
	Draw     DrawCmd  `cmd:"" help:"Load word files and render the trie as a Graphviz DOT file"`
	Items    ItemsCmd `cmd:"" help:"Load word files and write out every key/value pair"`
}

// Context carries the trie the selected command operates on.
type Context struct {
	Trie *trie.Trie[string]
}

// NewContext builds the run context for the chosen alphabet.
func NewContext(name string) *Context {
	return &Context{Trie: trie.New[string](pickAlphabet(name))}
}

// pickAlphabet maps the --alphabet flag to a policy. Anything other than
// the stock names is treated as a literal symbol set.
func pickAlphabet(name string) alphabet.Alphabet {
	switch name {
	case "lower":
		return alphabet.Lower()
	case "digits":
		return alphabet.Digits()
	case "binary":
		return alphabet.Binary()
	default:
		return alphabet.New(name)
	}
}
