package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gaschu95/MachineLearningSets/pkg"

	"github.com/spf13/cobra"
)

func ConvertCommand() *cobra.Command {

	var params pkg.ConvertParameters

	var cmd = &cobra.Command{
		Use:   "convert -i dataFile -s schemaFile [-o outputStem]",
		Short: "Converts a tabular file into input and target matrices following the provided feature schema",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pkg.Convert(params)
		},
	}

	cmd.Flags().StringVarP(&params.DataFile, "input", "i", "", "name of the tabular data file")
	cmd.Flags().StringVarP(&params.SchemaFile, "schema", "s", "", "name of the feature schema file")
	cmd.Flags().StringVarP(&params.OutputStem, "output", "o", "", "stem of the output files; writes <stem>.input.csv and <stem>.target.csv")
	cmd.Flags().StringVarP(&params.NaNPolicy, "nan-policy", "", "ignore", "handling of missing values: ignore or delete_row")
	cmd.Flags().StringVarP(&params.ContextIn, "context-in", "", "", "context file of a previous conversion whose codes and scaling should be reused")
	cmd.Flags().StringVarP(&params.ContextOut, "context-out", "", "", "name of the file to save the conversion context to")
	cmd.Flags().IntVarP(&params.PreviewRows, "preview", "p", 0, "number of encoded rows to print as a table")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

var logLevel string
var logFormat string

func RootCommand() *cobra.Command {
	root := &cobra.Command{Use: "mlsets", PersistentPreRunE: setupLogging}

	root.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: info error or debug")
	root.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty or json")

	root.AddCommand(ConvertCommand())

	return root
}

func main() {
	if err := RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {

	switch logLevel {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		return fmt.Errorf("invalid log level %q", logLevel)
	}

	switch logFormat {
	case "pretty":
		setupPrettyLogging()
	case "json":
	default:
		return fmt.Errorf("invalid log format %q", logFormat)
	}

	return nil
}

func setupPrettyLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	writer.FormatFieldValue = func(i interface{}) string {
		switch v := i.(type) {
		case json.Number:
			val, _ := v.Float64()
			return fmt.Sprintf("%.3f", val)
		default:
			return fmt.Sprintf("%s", i)
		}

	}
	log.Logger = log.Output(writer)

}
