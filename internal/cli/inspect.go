package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openlego/internal/app"
)

type inspectOptions struct {
	InputXML  string
	OutputXML string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the parameters declared by XML templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.InputXML, "input", "", "Input template path")
	cmd.Flags().StringVar(&opts.OutputXML, "output", "", "Output template path")
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := app.NewService()
	result, err := service.Inspect(app.InspectRequest{
		InputXML:  resolveString(cmd, opts.InputXML, "input", "input"),
		OutputXML: resolveString(cmd, opts.OutputXML, "output", "output"),
	})
	if err != nil {
		return err
	}
	for _, variable := range result.Variables {
		fmt.Printf("%-7s %-10s size=%-4d %s = %s\n",
			variable.Side, variable.Kind, variable.Size, variable.Name, variable.Template)
	}
	return nil
}
