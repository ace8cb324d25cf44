package commands

import (
	"fmt"
	"os"

	"codstats-backend/lib/cod/platform"
	"codstats-backend/lib/cod/titles"
	"codstats-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func init() {
	rootCmd.AddCommand(matchesCmd)
}

var matchesCmd = &cobra.Command{
	Use:   "matches <title> <handle> [platform]",
	Short: "Prints recent matches for a player.",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		title, ok := titles.Lookup(args[0])
		if !ok {
			serviceutil.Fatal("unknown title", fmt.Errorf("%q", args[0]))
		}
		tag := platform.Tag("")
		if len(args) == 3 {
			tag = platform.Tag(args[2])
		}

		sess := newSession(cmd.Context(), title.NumericIDOnly)
		client := titles.NewClient(newDispatch())

		raw, err := client.CombatHistory(cmd.Context(), sess, title, args[1], tag)
		if err != nil {
			serviceutil.Fatal("failed to fetch matches", err)
		}

		matches := gjson.GetBytes(raw, "data.matches")
		if !matches.Exists() {
			matches = gjson.GetBytes(raw, "matches")
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Match", "Map", "Mode", "Kills", "Deaths"})
		matches.ForEach(func(_, m gjson.Result) bool {
			t.AppendRow(table.Row{
				m.Get("matchID").String(),
				m.Get("map").String(),
				m.Get("mode").String(),
				m.Get("playerStats.kills").String(),
				m.Get("playerStats.deaths").String(),
			})
			return true
		})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
