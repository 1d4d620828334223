package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PricedOptions []*PricedOptionDTO

func (rows PricedOptions) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetHeader([]string{"Method", "Type", "Price"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, row := range rows {
		price := fmt.Sprintf("$%s", p.Sprintf("%.4f", row.Price))
		table.Append([]string{row.Method, row.OptionType, price})
	}

	table.Render()
	return display.String()
}
