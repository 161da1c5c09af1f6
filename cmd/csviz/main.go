// Package main provides the CLI entry point for csviz-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/csviz/csviz-go/pkg/csviz"
	"github.com/csviz/csviz-go/pkg/csviz/output"
	"github.com/csviz/csviz-go/pkg/dashboard"
)

var (
	outputPath     string
	pretty         bool
	asFigure       bool
	parseDelimiter string
	sheet          string

	addr           string
	configPath     string
	staticDir      string
	serveDelimiter string
	cacheTTL       time.Duration
	logJSON        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csviz",
		Short: "Turn directive-headed data files into chart specifications",
		Long: `csviz-go parses delimiter-separated dataset files whose first five lines
are a directive header (title, axes, chart types, column titles) and emits
declarative chart specifications or plotly figure documents.`,
	}
	rootCmd.AddCommand(newParseCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [dataset]",
		Short: "Parse one dataset file and print its chart specification",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&asFigure, "figure", false, "Emit a plotly figure document instead of the raw specification")
	cmd.Flags().StringVar(&parseDelimiter, "delimiter", csviz.DefaultDelimiter, "Field delimiter")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for xlsx datasets (default: first sheet)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	spec, err := csviz.Load(inputPath, csviz.Options{Delimiter: parseDelimiter, Sheet: sheet})
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	var jsonData []byte
	if asFigure {
		jsonData, err = output.FigureToJSON(output.ToFigure(spec), pretty)
	} else {
		jsonData, err = output.ToJSON(spec, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [dataset-dir]",
		Short: "Serve chart specifications for a directory of dataset files",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: :8050)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&staticDir, "static", "", "Directory of static assets served at /")
	cmd.Flags().StringVar(&serveDelimiter, "delimiter", "", "Field delimiter (default: ,)")
	cmd.Flags().DurationVar(&cacheTTL, "ttl", 0, "Result cache TTL (default: 30s)")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := dashboard.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = dashboard.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if len(args) == 1 {
		cfg.DataDir = args[0]
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if staticDir != "" {
		cfg.StaticDir = staticDir
	}
	if serveDelimiter != "" {
		cfg.Delimiter = serveDelimiter
	}
	if cacheTTL > 0 {
		cfg.CacheTTL = dashboard.Duration(cacheTTL)
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	log := slog.New(handler)

	srv, err := dashboard.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}
