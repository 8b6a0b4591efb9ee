package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"deskorg/internal/preflight"
	"deskorg/internal/rules"
)

func newRulesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the active category tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			tables, err := rules.FromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build rules: %w", err)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			renderRules(out, tables, colorize)
			fmt.Fprintln(out, renderCheckLine(preflight.CheckExtraction(cfg.Extraction), colorize))
			return nil
		},
	}
}

func renderRules(out io.Writer, tables rules.Tables, colorize bool) {
	title := cases.Title(language.English)

	for _, line := range renderSectionHeader("Extension rules", colorize) {
		fmt.Fprintln(out, line)
	}
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedRounded)
	for _, rule := range tables.Extension {
		lw.AppendItem(fmt.Sprintf("%s  %s", title.String(rule.Category), strings.Join(rule.Extensions, " ")))
		if len(rule.SubRules) == 0 {
			continue
		}
		lw.Indent()
		for _, sub := range rule.SubRules {
			target := sub.Subcategory
			if sub.Primary != "" {
				target = sub.Primary + " / " + sub.Subcategory
			}
			lw.AppendItem(fmt.Sprintf("%s: %s", target, sub.When.Description))
		}
		lw.UnIndent()
	}
	fmt.Fprintln(out, lw.Render())
	fmt.Fprintln(out)

	for _, line := range renderSectionHeader("Content rules (ties go to the earlier rule)", colorize) {
		fmt.Fprintln(out, line)
	}
	lw = list.NewWriter()
	lw.SetStyle(list.StyleConnectedRounded)
	for _, rule := range tables.Content {
		lw.AppendItem(fmt.Sprintf("%s  %d keywords", title.String(rule.Category), len(rule.Keywords)))
		if len(rule.Tiers) == 0 {
			continue
		}
		lw.Indent()
		for _, tier := range rule.Tiers {
			labels := make([]string, 0, len(tier.Sets))
			for _, set := range tier.Sets {
				labels = append(labels, set.Label)
			}
			if tier.NameLeaf {
				lw.AppendItem(fmt.Sprintf("%s: %s", tier.Subcategory, strings.Join(labels, ", ")))
			} else {
				lw.AppendItem(tier.Subcategory)
			}
		}
		lw.UnIndent()
	}
	lw.AppendItem(title.String(tables.Uncategorized) + "  no rule matched")
	fmt.Fprintln(out, lw.Render())
	fmt.Fprintf(out, "%sDocuments scored by content: %s\n\n", statusIndent, strings.Join(tables.Documents, " "))
}
