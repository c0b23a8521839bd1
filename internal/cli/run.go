package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openlego/internal/app"
)

type runOptions struct {
	SpecPath  string
	Tool      []string
	KeepFiles bool
}

func newRunCommand() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a component spec once against an external tool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.SpecPath, "spec", "", "Component spec path")
	cmd.Flags().StringSliceVar(&opts.Tool, "tool", nil, "Tool command and arguments")
	cmd.Flags().BoolVar(&opts.KeepFiles, "keep-files", false, "Retain generated XML files")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("keep_files", cmd.Flags().Lookup("keep-files"))
	return cmd
}

func runRun(cmd *cobra.Command, opts runOptions) error {
	service := app.NewService()
	result, err := service.Run(cmd.Context(), app.RunRequest{
		SpecPath:  resolveString(cmd, opts.SpecPath, "spec", "spec"),
		Tool:      opts.Tool,
		KeepFiles: resolveBool(cmd, opts.KeepFiles, "keep_files", "keep-files"),
	})
	if err != nil {
		return err
	}
	for _, output := range result.Outputs {
		fmt.Printf("%s = %v\n", output.Name, output.Value.Floats)
	}
	for _, output := range result.DiscreteOutputs {
		fmt.Printf("%s = %s\n", output.Name, output.Value.Raw)
	}
	return nil
}
