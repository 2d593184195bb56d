package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/config"
	"github.com/suzu-editor/suzu/internal/output"
)

// maxCellWidth bounds the VALUE column of the table.
const maxCellWidth = 60

var listCmd = &cobra.Command{
	Use:     "list [pointer]",
	Aliases: []string{"ls"},
	Short:   "List the entries below a pointer",
	Long: `List the direct children of an object or array, one row each.

Examples:
  suzu list
  suzu ls /editor
  suzu list /recent --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type listItem struct {
	Pointer string       `json:"pointer"`
	Kind    string       `json:"kind"`
	Value   config.Value `json:"value"`
}

func runList(cmd *cobra.Command, args []string) error {
	base := ""
	if len(args) > 0 {
		base = args[0]
		if err := validatePointer(base); err != nil {
			return err
		}
	}

	store := openStore()
	parent := store.GetValue(base)
	if parent.IsDiscarded() {
		return fmt.Errorf("no value at %s", base)
	}

	items, err := childItems(store, base, parent)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		if jsonOutput {
			return output.JSON([]listItem{})
		}
		output.Info("No entries")
		return nil
	}

	if jsonOutput {
		return output.JSON(items)
	}

	headers := []string{"POINTER", "KIND", "VALUE"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Pointer, item.Kind, output.Truncate(item.Value.String(), maxCellWidth)})
	}

	output.Table(headers, rows)
	return nil
}

// childItems lists the children of parent in key or index order. A scalar
// lists itself.
func childItems(store *config.Store, base string, parent config.Value) ([]listItem, error) {
	var tokens []string
	switch parent.Kind() {
	case config.KindObject:
		tokens = parent.Keys()
	case config.KindArray:
		tokens = make([]string, parent.Len())
		for i := range tokens {
			tokens[i] = strconv.Itoa(i)
		}
	default:
		return []listItem{{Pointer: base, Kind: parent.Kind().String(), Value: parent}}, nil
	}

	items := make([]listItem, 0, len(tokens))
	for _, token := range tokens {
		ptr, err := config.JoinPointer(base, token)
		if err != nil {
			return nil, err
		}
		child := store.GetValue(ptr)
		if child.IsDiscarded() {
			// the document may change between reads
			continue
		}
		items = append(items, listItem{Pointer: ptr, Kind: child.Kind().String(), Value: child})
	}
	return items, nil
}
