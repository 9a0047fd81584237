// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogo/fxstats/config"
	"github.com/biogo/fxstats/logging"
	"github.com/biogo/fxstats/metrics"
	"github.com/biogo/fxstats/nxplot"
	"github.com/biogo/fxstats/report"
	"github.com/biogo/fxstats/summary"
)

var version = "dev"

// options holds the flags that are not configuration keys.
type options struct {
	config   string
	files    []string
	rename   string
	csv      bool
	parsable bool
}

func newRootCommand() *cobra.Command {
	var o options
	v := config.New()

	cmd := &cobra.Command{
		Use:   "fxstats -f FILE [-f FILE]...",
		Short: "Compute statistics of FASTA and FASTQ files, gzipped or not",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), v, o)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&o.config, "config", "", "config file (default .fxstats.yaml in the working or home directory)")
	f.StringArrayVarP(&o.files, "files", "f", nil, "sequence file to process, may be given more than once; - reads stdin")
	f.StringVarP(&o.rename, "rename", "r", "", "comma-separated display names to use instead of file base names")
	f.BoolVarP(&o.csv, "csv", "c", false, "write CSV with metrics as rows")
	f.BoolVarP(&o.parsable, "parsable", "p", false, "write CSV with metrics as columns")
	f.IntP("min-size", "m", 0, "skip sequences shorter than this")
	f.Int64P("genome-size", "g", 0, "estimated genome size for NGx metrics (bases)")
	f.IntP("quality", "q", config.DefaultQualityOffset, "Phred quality offset, usually 33 or 64")
	f.String("output-format", "", "(--parsable only) comma-separated list of metrics to write")
	f.Bool("no-header", false, "(--parsable only) do not write a header")
	f.String("per-seq", "", "write per-sequence metrics to this file; GC counts upper case bases only")
	f.String("plot", "", "save an Nx plot to this file (png, svg or pdf)")
	f.Bool("debug", false, "enable debug logging")
	f.Bool("human-log", false, "write logs for humans instead of JSON")
	cmd.MarkFlagRequired("files")
	cmd.MarkFlagsMutuallyExclusive("csv", "parsable")

	for key, flag := range map[string]string{
		"min_size":         "min-size",
		"genome_size":      "genome-size",
		"quality_offset":   "quality",
		"output.fields":    "output-format",
		"output.no_header": "no-header",
		"per_seq":          "per-seq",
		"plot":             "plot",
		"log.debug":        "debug",
		"log.human":        "human-log",
	} {
		v.BindPFlag(key, f.Lookup(flag))
	}

	cmd.AddCommand(newFieldsCommand(), newVersionCommand())
	return cmd
}

func run(out io.Writer, v *viper.Viper, o options) error {
	switch {
	case o.csv:
		v.Set("output.mode", config.ModeCSV)
	case o.parsable:
		v.Set("output.mode", config.ModeParsable)
	}
	cfg, err := config.Load(v, o.config)
	if err != nil {
		return err
	}
	logging.Init(cfg.Log.Debug, cfg.Log.Human)

	fields, err := cfg.Fields()
	if err != nil {
		return err
	}
	var names []string
	if o.rename != "" {
		names = strings.Split(o.rename, ",")
		if len(names) != len(o.files) {
			return fmt.Errorf("%w: %d names for %d files", summary.ErrNames, len(names), len(o.files))
		}
	}

	opts := summary.Options{
		MinSize:       cfg.MinSize,
		GenomeSize:    cfg.GenomeSize,
		QualityOffset: byte(cfg.QualityOffset),
	}
	var perSeq *report.PerSeq
	if cfg.PerSeq != "" {
		f, err := os.Create(cfg.PerSeq)
		if err != nil {
			return err
		}
		defer f.Close()
		perSeq = report.NewPerSeq(f)
		opts.PerSeq = perSeq
	}

	aggs, err := summary.Files(o.files, names, opts)
	if perSeq != nil {
		if ferr := perSeq.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}
	if err != nil {
		return err
	}

	switch cfg.Output.Mode {
	case config.ModeCSV:
		err = report.CSV(out, aggs)
	case config.ModeParsable:
		err = report.Parsable(out, aggs, fields, cfg.Output.NoHeader)
	default:
		err = report.Table(out, aggs)
	}
	if err != nil {
		return err
	}

	if cfg.Plot != "" {
		if err := nxplot.Save(cfg.Plot, aggs); err != nil {
			return fmt.Errorf("save plot: %w", err)
		}
		logging.L().Info().Str("path", cfg.Plot).Msg("saved Nx plot")
	}
	return nil
}

func newFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the metrics accepted by --output-format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range metrics.Fields() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fxstats %s\n", version)
		},
	}
}
