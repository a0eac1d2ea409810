// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2fb2/internal/convert"
	"github.com/pdiddy/pdf2fb2/internal/extract"
	"github.com/pdiddy/pdf2fb2/internal/logging"
	"github.com/pdiddy/pdf2fb2/pkg/types"
)

const (
	keyBackend  = "backend"
	keyLogLevel = "log_level"
)

// newRootCmd builds the pdf2fb2 command with its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pdf2fb2 <input.pdf>",
		Short: "Convert PDF files to FB2 format",
		Long: `pdf2fb2 extracts the text layer of a PDF page by page and writes a minimal
FictionBook 2.0 document: one section per non-empty page, one paragraph per
blank-line separated block. Author, date and language are placeholders.`,
		Example: `  pdf2fb2 book.pdf
  pdf2fb2 book.pdf -o custom_name.fb2
  pdf2fb2 book.pdf -t "Book Title"
  pdf2fb2 book.pdf -o custom.fb2 -t "Custom Title"`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return initConfig(v, cfgFile, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, v)
		},
	}
	cmd.SetVersionTemplate(versionTemplate)
	// Declared before cobra's default so no -v shorthand is added.
	cmd.Flags().Bool("version", false, "print the version and exit")

	cmd.Flags().StringP("output", "o", "", "path to output FB2 file (default: same name as PDF with .fb2 extension)")
	cmd.Flags().StringP("title", "t", "", "book title in FB2 (default: derived from the file name)")
	cmd.Flags().String("backend", "", "extraction backend: ledongthuc or pdfcpu (default ledongthuc)")
	cmd.Flags().String("report", "", "write a YAML conversion report to this path")
	cmd.Flags().String("log-level", "", "diagnostic log level: trace, debug, info, warn, or error (default warn)")
	cmd.Flags().String("config", "", "config file (default: ./pdf2fb2.yaml or ~/.config/pdf2fb2/pdf2fb2.yaml)")

	v.SetDefault(keyBackend, string(types.BackendLedongthuc))
	v.SetDefault(keyLogLevel, logging.DefaultLevel)
	_ = v.BindPFlag(keyBackend, cmd.Flags().Lookup("backend"))
	_ = v.BindPFlag(keyLogLevel, cmd.Flags().Lookup("log-level"))

	return cmd
}

// initConfig wires the config file and PDF2FB2_* environment variables into v.
// A missing default config file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pdf2fb2")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pdf2fb2"))
		}
	}

	v.SetEnvPrefix("PDF2FB2")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}

func runConvert(cmd *cobra.Command, args []string, v *viper.Viper) error {
	logger, err := logging.New(cmd.ErrOrStderr(), v.GetString(keyLogLevel))
	if err != nil {
		return err
	}

	backend, err := extract.NewBackend(types.ExtractionBackend(v.GetString(keyBackend)))
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	title, _ := cmd.Flags().GetString("title")
	report, _ := cmd.Flags().GetString("report")

	cfg := types.ConversionConfig{
		InputPath:  args[0],
		OutputPath: output,
		Title:      title,
		Backend:    backend.Name(),
		ReportPath: report,
	}

	_, err = convert.New(backend, cmd.OutOrStdout(), logger).Convert(cfg)
	return err
}
