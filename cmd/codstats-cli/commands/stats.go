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
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <title> <handle> [platform]",
	Short: "Prints lifetime stats for a player.",
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

		raw, err := client.FullStats(cmd.Context(), sess, title, args[1], tag)
		if err != nil {
			serviceutil.Fatal("failed to fetch stats", err)
		}

		props := gjson.GetBytes(raw, "data.lifetime.all.properties")
		if !props.Exists() {
			// telescope payloads have no stable shape worth
			// tabulating, dump them as is
			fmt.Println(gjson.ParseBytes(raw).Get("@pretty").String())
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Stat", "Value"})
		for _, key := range []string{
			"kills", "deaths", "kdRatio", "wins", "losses",
			"timePlayedTotal", "gamesPlayed",
		} {
			if v := props.Get(key); v.Exists() {
				t.AppendRow(table.Row{key, v.String()})
			}
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
