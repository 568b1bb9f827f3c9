package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nff/analysis"
	"github.com/npillmayer/nff/grammar"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// resultTable creates one row per non-terminal, in order of appearance.
func resultTable(ga *analysis.Analysis, sorted bool) pterm.TableData {
	td := pterm.TableData{{"Non-terminal", "Nullable", "First", "Follow"}}
	for _, N := range ga.RuleTable().Nonterminals() {
		td = append(td, []string{
			string(N),
			fmt.Sprintf("%v", ga.Nullable(N)),
			setString(ga.First(N), sorted),
			setString(ga.Follow(N), sorted),
		})
	}
	return td
}

func printResults(ga *analysis.Analysis, sorted bool) {
	pterm.DefaultTable.WithHasHeader().WithData(resultTable(ga, sorted)).Render()
}

func setString(ts *analysis.TermSet, sorted bool) string {
	if !sorted {
		return ts.String()
	}
	terms := ts.Sorted()
	s := make([]string, len(terms))
	for i, t := range terms {
		s[i] = string(t)
	}
	return "{" + strings.Join(s, ", ") + "}"
}

// ruleList lists the rules grouped by non-terminal, for display as a tree.
func ruleList(rt *grammar.RuleTable) pterm.LeveledList {
	ll := pterm.LeveledList{}
	rt.EachNonterminal(func(N rune, rules []*grammar.Rule) interface{} {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: string(N)})
		for _, r := range rules {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("%v   (line %d)", r, r.Line),
			})
		}
		return nil
	})
	return ll
}

func printRules(rt *grammar.RuleTable) {
	pterm.Println(rt.Name)
	root := pterm.NewTreeFromLeveledList(ruleList(rt))
	pterm.DefaultTree.WithRoot(root).Render()
}
