package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aiscore/internal/aidetect"
	"aiscore/internal/ingest"
	"aiscore/internal/pipeline"
	"aiscore/internal/workspace"
)

type analyzeOptions struct {
	format   string
	windowed bool
	save     bool
}

// fileReport is the output for one input.
type fileReport struct {
	Source     string                 `json:"source"`
	ID         string                 `json:"id,omitempty"`
	ReportPath string                 `json:"reportPath,omitempty"`
	Result     aidetect.Result        `json:"result"`
	Windows    *aidetect.WindowReport `json:"windows,omitempty"`
}

type input struct {
	index  int
	source string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Score files (or stdin) for AI-likelihood",
		Long: "Score .txt, .md, .docx or .pdf files. With no arguments, or with \"-\",\n" +
			"the text is read from standard input. Several files are scored concurrently.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			return a.runAnalyze(cmd, args, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "text", "output format (json, yaml, text)")
	f.BoolVarP(&opts.windowed, "windowed", "w", false, "also score overlapping windows of the document")
	f.BoolVar(&opts.save, "save", false, "store results in history and write a report file")
	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, sources []string, opts *analyzeOptions) error {
	texts := make([]string, len(sources))
	inputs := make([]input, len(sources))
	for i, src := range sources {
		inputs[i] = input{index: i, source: src}
		if src == "-" {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			texts[i] = string(raw)
			inputs[i].source = "stdin"
		}
	}

	engine := a.newEngine()
	reports := make([]fileReport, len(sources))
	errs := pipeline.Process(inputs, a.cfg.Segment.Workers, func(in input) error {
		text := texts[in.index]
		if sources[in.index] != "-" {
			parsed, err := ingest.ParseFile(in.source)
			if err != nil {
				return err
			}
			text = parsed.Text
		}
		start := time.Now()
		rep := fileReport{Source: in.source, Result: engine.Analyze(text)}
		if opts.windowed {
			w := engine.AnalyzeWindows(text, a.cfg.Segment)
			rep.Windows = &w
		}
		a.log.Debug("analyzed", zap.String("source", in.source), zap.Duration("elapsed", time.Since(start)))
		reports[in.index] = rep
		return nil
	})
	if len(errs) > 0 {
		for _, err := range errs {
			a.log.Error("analyze failed", zap.Error(err))
		}
		return fmt.Errorf("%d of %d inputs failed: %w", len(errs), len(sources), errs[0])
	}

	if opts.save {
		if err := a.saveReports(cmd.Context(), reports); err != nil {
			return err
		}
	}
	return writeReports(cmd.OutOrStdout(), reports, opts.format)
}

func (a *app) saveReports(ctx context.Context, reports []fileReport) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dir := workspace.ReportsDir(a.workspace)
	for i := range reports {
		rec, err := store.Save(ctx, reports[i].Source, reports[i].Result)
		if err != nil {
			return err
		}
		reports[i].ID = rec.ID
		path, err := workspace.SaveReport(dir, reports[i].Source, reports[i])
		if err != nil {
			return err
		}
		reports[i].ReportPath = path
		a.log.Info("saved analysis", zap.String("id", rec.ID), zap.String("report", path))
	}
	return nil
}

func writeReports(w io.Writer, reports []fileReport, format string) error {
	var v any = reports
	if len(reports) == 1 {
		v = reports[0]
	}
	switch format {
	case "json":
		return writeJSON(w, v)
	case "yaml":
		return writeYAML(w, v)
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.Source)
		writeResultText(w, r.Result)
		if r.Windows != nil {
			writeWindowsText(w, r.Windows)
		}
		if r.ID != "" {
			fmt.Fprintf(w, "  Saved:           %s (%s)\n", r.ID, r.ReportPath)
		}
	}
	return nil
}
