package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/promptmenu/pkg/domain"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Print the completion tree of the menu",
	Long:  `Prints the nested command/label structure that line editors can use for autocompletion.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := openMenu(cmd, domain.Hooks{})
		if err != nil {
			return err
		}
		tree := m.CompletionTree()
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(tree)
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(tree)
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	completeCmd.Flags().Bool("json", false, "Print JSON instead of YAML")
}
