// Command capparse decodes CAP alert documents and prints them as JSON
// or YAML.
package main

import (
	"encoding/json"
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/andaru/cap/alert"
	"github.com/andaru/cap/caperr"
	"github.com/andaru/cap/internal/config"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("capparse: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   "capparse [flags] [file ...]",
		Short: "Decode Common Alerting Protocol documents",
		Long: `Decodes each CAP 1.0, 1.1 or 1.2 alert document named on the command
line (or standard input when none is given, or for "-") and prints the
decoded alerts. A document that fails to decode is reported with its
error kind, and the command exits non-zero after all inputs are read.`,

		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its settings from the go flag set
			return goflag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", config.FormatJSON, "Output format (json, yaml)")
	flags.Int("indent", 2, "Output indentation")
	flags.Bool("namespace-scan", false, "Select the CAP version by scanning the document text for a namespace")
	flags.Bool("strict-references", false, "Fail on malformed references instead of dropping them")
	flags.String("point", "", "Report whether each alert's areas contain this lat,lon position")
	for key, name := range map[string]string{
		"format":            "format",
		"indent":            "indent",
		"namespace_scan":    "namespace-scan",
		"strict_references": "strict-references",
		"point":             "point",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", name, err))
		}
	}
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	return cmd
}

// result is the printed outcome of decoding one input
type result struct {
	File     string        `json:"file" yaml:"file"`
	Alert    *alert.Alert  `json:"alert,omitempty" yaml:"alert,omitempty"`
	Contains *bool         `json:"contains,omitempty" yaml:"contains,omitempty"`
	Error    *caperr.Error `json:"error,omitempty" yaml:"error,omitempty"`
}

func run(cfg *config.Config, files []string, stdin io.Reader, stdout io.Writer) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	enc := newEncoder(cfg, stdout)
	failed := 0
	for _, file := range files {
		res := decodeFile(cfg, file, stdin)
		if res.Error != nil {
			failed++
			glog.Errorf("%s: %v", file, res.Error)
		}
		if err := enc(res); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to decode", failed, len(files))
	}
	return nil
}

func decodeFile(cfg *config.Config, file string, stdin io.Reader) result {
	res := result{File: file}
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			res.Error = caperr.Other(caperr.WithCause(err), caperr.WithMessage("cannot open input"))
			return res
		}
		defer f.Close()
		r = f
	}

	a, err := alert.ParseReader(r, cfg.ParseOptions()...)
	if err != nil {
		var e *caperr.Error
		if !errors.As(err, &e) {
			e = caperr.Other(caperr.WithCause(err))
		}
		res.Error = e
		return res
	}
	res.Alert = a

	if pt := cfg.Position(); pt != nil {
		contains := false
		for _, info := range a.Infos {
			for i := range info.Areas {
				if info.Areas[i].ContainsPoint(pt.Lat(), pt.Lng()) {
					contains = true
				}
			}
		}
		res.Contains = &contains
	}
	return res
}

func newEncoder(cfg *config.Config, w io.Writer) func(result) error {
	if cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		if cfg.Indent > 0 {
			enc.SetIndent(cfg.Indent)
		}
		return func(r result) error { return enc.Encode(r) }
	}
	enc := json.NewEncoder(w)
	if cfg.Indent > 0 {
		enc.SetIndent("", fmt.Sprintf("%*s", cfg.Indent, ""))
	}
	return func(r result) error { return enc.Encode(r) }
}
