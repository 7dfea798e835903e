package main

import (
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/i18n"
	"github.com/reoring/ledgerskema/internal/catalog"
)

type issueView struct {
	Path    string         `json:"path"`
	Rule    string         `json:"rule,omitempty"`
	Code    string         `json:"code"`
	Label   string         `json:"label"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

type report struct {
	Kind     string      `json:"kind"`
	Valid    bool        `json:"valid"`
	Stage    string      `json:"stage,omitempty"` // construct or validate
	Issues   []issueView `json:"issues,omitempty"`
	Warnings []issueView `json:"warnings,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "validate --kind <kind> <file>",
		Short: "Decode a document and report every issue",
		Long: `Decode a JSON or YAML document (chosen by file extension, "-" reads
JSON from stdin) into the schema object of the given kind, then validate it.
The exit status is 1 when the document is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := catalog.Lookup(kindName)
			if err != nil {
				return err
			}
			data, err := a.read(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			a.log.Debug().Str("kind", k.Name).Str("file", args[0]).Int("bytes", len(data)).Msg("decoding")

			rep := report{Kind: k.Name, Valid: true}
			var warns ledgerskema.Issues
			opt := a.cfg.DecodeOpt()
			opt.OnWarning = func(it ledgerskema.Issue) {
				a.log.Warn().Str("kind", k.Name).Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
				warns = append(warns, it)
			}
			m, err := k.Decode(data, catalog.FormatOf(args[0]), opt)
			if len(warns) > 0 {
				rep.Warnings = views(warns)
			}
			if err != nil {
				iss, ok := ledgerskema.AsIssues(err)
				if !ok {
					return fmt.Errorf("decode %s: %w", args[0], err)
				}
				rep.Valid, rep.Stage, rep.Issues = false, "construct", views(iss)
			} else if iss := m.Validate(); len(iss) > 0 {
				rep.Valid, rep.Stage, rep.Issues = false, "validate", views(iss)
			}
			a.log.Info().Str("kind", k.Name).Bool("valid", rep.Valid).Int("issues", len(rep.Issues)).Msg("validated")

			if err := a.printReport(rep); err != nil {
				return err
			}
			if !rep.Valid {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "schema object kind (see `ledgerskema kinds`)")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func (a *app) read(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(a.in)
	}
	return os.ReadFile(name)
}

func views(iss ledgerskema.Issues) []issueView {
	out := make([]issueView, len(iss))
	for i, it := range iss.Sorted() {
		data := make(map[string]string, len(it.Params))
		for k, v := range it.Params {
			data[k] = fmt.Sprint(v)
		}
		out[i] = issueView{
			Path:    it.Path,
			Rule:    it.Rule,
			Code:    it.Code,
			Label:   i18n.T(it.Code, data),
			Message: it.Message,
			Params:  it.Params,
		}
	}
	return out
}

func (a *app) printReport(rep report) error {
	if a.cfg.Output == "json" {
		b, err := j.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(b))
		return err
	}
	for _, v := range rep.Warnings {
		fmt.Fprintf(a.out, "%s: warning: %s: %s: %s\n", rep.Kind, v.Path, v.Label, v.Message)
	}
	if rep.Valid {
		_, err := fmt.Fprintf(a.out, "%s: valid\n", rep.Kind)
		return err
	}
	fmt.Fprintf(a.out, "%s: %d issue(s) at %s\n", rep.Kind, len(rep.Issues), rep.Stage)
	for _, v := range rep.Issues {
		key := v.Rule
		if key == "" {
			key = v.Path
		}
		fmt.Fprintf(a.out, "  %s: %s: %s\n", key, v.Label, v.Message)
	}
	return nil
}
