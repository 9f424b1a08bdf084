package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print every site with its region, neighbours and hull as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildDiagram(cfg, log)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(describe(v))
	},
}
