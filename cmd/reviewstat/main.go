// Command reviewstat summarises a backcheck input or review output file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"photo-compare/internal/review"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: reviewstat <file.csv>")
		os.Exit(1)
	}

	c, err := review.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Println(renderSummary(c))
	if ids := c.ExcludedIDs(); len(ids) > 0 {
		fmt.Printf("\nExcluded case ids (not exactly two rows):\n")
		for _, id := range ids {
			fmt.Printf("  %s\n", id)
		}
	}
}

func renderSummary(c *review.Collection) string {
	correct, wrong := c.Counts()
	pending := c.Len() - correct - wrong

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Measure", "Count"})
	tw.AppendRows([]table.Row{
		{"Pairs", strconv.Itoa(c.Len())},
		{"Correct", strconv.Itoa(correct)},
		{"Wrong", strconv.Itoa(wrong)},
		{"Pending", strconv.Itoa(pending)},
		{"Excluded cases", strconv.Itoa(len(c.ExcludedIDs()))},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render()
}
