package main

import (
	"fmt"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/samber/lo"

	"github.com/pescuma/bdcrime/lib/aggregates"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/utils"
)

type ShowCmd struct {
	cmdWithSelection

	All bool `help:"Show every crime type instead of only the selected one."`
}

func (c *ShowCmd) Run(ctx *context) error {
	dash, state, err := c.load(ctx)
	if err != nil {
		return err
	}

	in, err := dash.Input(state)
	if err != nil {
		return err
	}

	types := []model.CrimeType{in.Encoding.CrimeType}
	if c.All {
		types = model.AllCrimeTypes
	}

	columns := append([]string{model.ColumnArea}, lo.Map(types, func(t model.CrimeType, _ int) string { return t.String() })...)
	columns = append(columns, model.ColumnTotalCrimes)

	rows := make([][]string, 0, in.View.Len())
	for _, r := range in.View.Rows {
		row := []string{truncate.Truncate(r.Area, 30, "…", truncate.PositionEnd)}
		for _, t := range types {
			row = append(row, humanize.Comma(int64(r.Counts[t])))
		}
		row = append(row, humanize.Comma(int64(r.TotalCrimes)))

		rows = append(rows, row)
	}

	fmt.Printf("%v - %v\n\n", dash.Dataset().Name, in.Year)
	printTable(columns, rows)

	totals := aggregates.TotalsByArea(in.View)
	total := lo.SumBy(totals, func(at *aggregates.AreaTotal) int { return at.Total })
	selected := lo.Sum(in.Encoding.Values(in.View))

	pc := pluralize.NewClient()
	fmt.Printf("\nTotal: %v %v in %v, %v of them %v\n",
		humanize.Comma(int64(total)), pc.Pluralize("crime", total, false),
		pc.Pluralize("area", len(totals), true),
		humanize.Comma(int64(selected)), strings.ToLower(in.Encoding.Column))

	return nil
}

func printTable(columns []string, rows [][]string) {
	widths := lo.Map(columns, func(c string, _ int) int { return len([]rune(c)) })
	for _, row := range rows {
		for i, v := range row {
			widths[i] = utils.Max(widths[i], len([]rune(v)))
		}
	}

	printRow := func(row []string) {
		var sb strings.Builder
		for i, v := range row {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%-*v", widths[i], v))
			} else {
				sb.WriteString(fmt.Sprintf("  %*v", widths[i], v))
			}
		}
		fmt.Println(strings.TrimRight(sb.String(), " "))
	}

	printRow(columns)
	printRow(lo.Map(widths, func(w int, _ int) string { return strings.Repeat("-", w) }))
	for _, row := range rows {
		printRow(row)
	}
}
