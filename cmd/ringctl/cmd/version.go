package cmd

import (
	"github.com/spf13/cobra"
	"github.com/treeverse/ringview/pkg/version"
)

const versionTemplate = `Version: {{.Version}}
Release: {{ if .Release }}{{ "yes" | green }}{{ else }}{{ "no" | yellow }}{{ end }}
Go: {{.GoVersion}}
Platform: {{.Platform}}
`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display ringctl version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		switch output {
		case outputJSON:
			Write("{{ . | json }}\n", version.Current())
		case outputYAML:
			Write("{{ . | yaml }}", version.Current())
		default:
			Write(versionTemplate, version.Current())
		}
	},
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringP("output", "o", outputText, "output format: text, json or yaml")
}
