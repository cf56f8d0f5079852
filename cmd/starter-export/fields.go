// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/starter-export/internal/schema"
	"github.com/pdiddy/starter-export/internal/wos"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List searchable field tags, or the workbook columns with --columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		columns, _ := cmd.Flags().GetBool("columns")
		if !columns {
			fmt.Fprintln(out, strings.Join(wos.AllowedFields, ", "))
			return nil
		}

		subset := map[string]bool{}
		for _, h := range schema.SubsetHeaders() {
			subset[h] = true
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "COLUMN\tSOURCE\tPATH\tSUBSET")
		for _, f := range schema.Core() {
			path := string(f.Path)
			if path == "" {
				path = "-"
			}
			inSubset := ""
			if subset[f.Header] {
				inSubset = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Header, f.Kind, path, inSubset)
		}
		return tw.Flush()
	},
}

func init() {
	fieldsCmd.Flags().Bool("columns", false, "list Core export columns and how each is sourced")
	rootCmd.AddCommand(fieldsCmd)
}
