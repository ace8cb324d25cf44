package commands

import (
	"os"

	"codstats-backend/lib/cod/platform"
	"codstats-backend/lib/cod/titles"
	"codstats-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func init() {
	searchCmd.Flags().String("platform", "all", "Platform to search on.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <handle>",
	Short: "Fuzzy-searches usernames across platforms.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tag, _ := cmd.Flags().GetString("platform")

		sess := newSession(cmd.Context(), false)
		search := titles.NewSearch(newDispatch())

		raw, err := search.FuzzySearch(cmd.Context(), sess, args[0], platform.Tag(tag))
		if err != nil {
			serviceutil.Fatal("search failed", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Username", "Platform", "Account ID"})
		gjson.GetBytes(raw, "data").ForEach(func(_, m gjson.Result) bool {
			t.AppendRow(table.Row{
				m.Get("username").String(),
				m.Get("platform").String(),
				m.Get("accountId").String(),
			})
			return true
		})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
