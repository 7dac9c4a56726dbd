package main

import (
	"github.com/urfave/cli/v2"

	"github.com/stratametrics/strata/internal/output"
	"github.com/stratametrics/strata/pkg/analyzer"
)

func languagesCmd() *cli.Command {
	return &cli.Command{
		Name:   "languages",
		Usage:  "List the languages strata can analyze",
		Action: runLanguagesCmd,
	}
}

func runLanguagesCmd(c *cli.Context) error {
	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	langs := analyzer.SupportedLanguages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = string(l)
	}

	if formatter.Format() == output.FormatJSON || formatter.Format() == output.FormatTOON {
		return formatter.Output(struct {
			Languages []string `json:"languages" toon:"languages"`
		}{Languages: names})
	}

	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{name}
	}
	return formatter.Output(output.NewTable("Supported Languages", []string{"Language"}, rows, nil, names))
}
