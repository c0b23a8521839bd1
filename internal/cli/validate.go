package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openlego/internal/app"
)

type validateOptions struct {
	InputXML    string
	OutputXML   string
	PartialsXML string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Resolve input/output name collisions for a template pair",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.InputXML, "input", "", "Input template path")
	cmd.Flags().StringVar(&opts.OutputXML, "output", "", "Output template path")
	cmd.Flags().StringVar(&opts.PartialsXML, "partials", "", "Partials template path")
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("partials", cmd.Flags().Lookup("partials"))
	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	service := app.NewService()
	result, err := service.Validate(cmd.Context(), app.ValidateRequest{
		InputXML:    resolveString(cmd, opts.InputXML, "input", "input"),
		OutputXML:   resolveString(cmd, opts.OutputXML, "output", "output"),
		PartialsXML: resolveString(cmd, opts.PartialsXML, "partials", "partials"),
	})
	if err != nil {
		return err
	}
	if len(result.Renames) == 0 {
		fmt.Println("no collisions")
	}
	for _, entry := range result.Renames {
		fmt.Printf("renamed: %s -> %s (ref=%g)\n", entry.Original, entry.Renamed, entry.Ref)
	}
	if result.PartialPairs > 0 {
		fmt.Printf("partial pairs: %d\n", result.PartialPairs)
	}
	return nil
}
