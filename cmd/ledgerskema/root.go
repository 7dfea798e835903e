package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/ledgerskema/i18n"
	"github.com/reoring/ledgerskema/internal/config"
)

// errInvalid signals that a document was read but did not validate. The
// issues have already been printed.
var errInvalid = errors.New("document is invalid")

type app struct {
	cfgFile string
	cfg     config.Config
	log     zerolog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "ledgerskema",
		Short: "Validate ledger request and transaction documents",
		Long: `ledgerskema checks JSON or YAML documents against the request and
transaction schema objects: unknown or missing fields, enum members,
mutually exclusive lookups, paired fields, length bounds and flag bits.

Settings come from flags, LEDGERSKEMA_* environment variables and an
optional ledgerskema.yaml file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./ledgerskema.yaml)")
	pf.String(config.KeyLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	pf.String(config.KeyLogFormat, "console", "log format (console, json)")
	pf.String(config.KeyLang, "en", "language of issue labels (en, ja)")
	pf.String(config.KeyDuplicates, "error", "duplicate JSON keys: error, warn or ignore")
	pf.Int(config.KeyMaxDepth, 32, "maximum nesting depth of input documents")
	pf.StringP(config.KeyOutput, "o", "text", "output format (text, json)")

	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newKindsCmd(a))
	root.AddCommand(newSchemaCmd(a))
	root.AddCommand(newHookOnCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := config.New(a.cfgFile)
	for _, key := range []string{config.KeyLogLevel, config.KeyLogFormat, config.KeyLang, config.KeyDuplicates, config.KeyMaxDepth, config.KeyOutput} {
		if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(a.errOut, cfg)
	i18n.SetLanguage(cfg.Lang)
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}

func newLogger(w io.Writer, cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != io.Writer(os.Stderr)}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
