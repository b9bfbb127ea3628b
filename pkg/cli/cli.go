// Package cli wires the synth command: read configuration, build the
// topology, synthesize the template, write it out.
package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/sensorstack/sensorstack/pkg/config"
	"github.com/sensorstack/sensorstack/pkg/infra/cfn"
	"github.com/sensorstack/sensorstack/pkg/io"
	"github.com/sensorstack/sensorstack/pkg/logging"
	"github.com/sensorstack/sensorstack/pkg/topology"
)

type synthFlags struct {
	verbose   bool
	color     string
	logFormat string

	cfgPath string
	appName string
	account string
	region  string
	outDir  string
	format  string
}

var flags synthFlags

var hadWarnings = atomic.NewBool(false)
var hadErrors = atomic.NewBool(false)

func Main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// cobra already printed usage errors; runtime errors go through zap
		os.Exit(1)
	}
	if hadErrors.Load() {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sensorstack",
		Short:        "Declare and synthesize the sensorstack ingestion pipeline",
		SilenceUsage: true,
	}
	root.AddCommand(newSynthCmd())
	return root
}

func newSynthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize the pipeline topology into a CloudFormation template",
		RunE:  runSynth,
	}

	fs := cmd.Flags()
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose console output")
	fs.StringVar(&flags.color, "color", "auto", "colorize console output (auto, always, never)")
	fs.StringVar(&flags.logFormat, "log-format", "console", "log output format (console, json)")
	fs.StringVarP(&flags.cfgPath, "config", "c", "", "config file (json, yaml or toml)")
	fs.StringVarP(&flags.appName, "app", "a", "", "application name")
	fs.StringVar(&flags.account, "account", "", "AWS account id")
	fs.StringVar(&flags.region, "region", "", "AWS region")
	fs.StringVarP(&flags.outDir, "out-dir", "o", "", "output directory for the synthesized template")
	fs.StringVarP(&flags.format, "format", "F", "json", "template output format (json, yaml)")
	return cmd
}

func runSynth(cmd *cobra.Command, args []string) error {
	logger := logging.LogOpts{
		Verbose:  flags.verbose,
		Color:    flags.color,
		Encoding: flags.logFormat,
	}.NewLogger(hadWarnings, hadErrors)
	defer logger.Sync() // nolint:errcheck
	zap.ReplaceGlobals(logger)

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	rg := topology.Build(cfg)
	logger.Sugar().Infof("declared %d resources", len(rg.ListResources()))

	template, err := cfn.RenderGraph(rg, cfn.TemplateOpts{
		Description: fmt.Sprintf("%s ingestion pipeline", cfg.AppName),
	})
	if err != nil {
		logger.Error("synthesis failed", zap.Error(err))
		return err
	}

	var content []byte
	var ext string
	switch flags.format {
	case "json":
		content, err = template.JSON()
		ext = "json"
	case "yaml", "yml":
		content, err = template.YAML()
		ext = "yaml"
	default:
		err = errors.Errorf("unsupported template format %q", flags.format)
	}
	if err != nil {
		logger.Error("rendering template", zap.Error(err))
		return err
	}

	outFile := &io.RawFile{
		FPath:   fmt.Sprintf("%s.template.%s", cfg.AppName, ext),
		Content: content,
	}
	if err := io.OutputTo([]io.File{outFile}, cfg.OutDir); err != nil {
		logger.Error("writing template", zap.Error(err))
		return err
	}
	logger.Sugar().Infof("wrote %s", outFile.FPath)
	return nil
}

// loadConfig merges the config file (if given) with explicit flags; flags
// win. Account and region have no sensible defaults, so they are required
// from one source or the other.
func loadConfig(fs *pflag.FlagSet) (config.Application, error) {
	var cfg config.Application
	var err error
	if flags.cfgPath != "" {
		cfg, err = config.ReadConfig(flags.cfgPath)
		if err != nil {
			return cfg, errors.Wrapf(err, "reading config at %s", flags.cfgPath)
		}
	}
	if fs.Changed("app") {
		cfg.AppName = flags.appName
	}
	if fs.Changed("account") {
		cfg.Account = flags.account
	}
	if fs.Changed("region") {
		cfg.Region = flags.region
	}
	if fs.Changed("out-dir") {
		cfg.OutDir = flags.outDir
	}
	cfg.EnsureDefaults()

	if cfg.Account == "" {
		return cfg, errors.New("an AWS account id is required (--account or config)")
	}
	if cfg.Region == "" {
		return cfg, errors.New("an AWS region is required (--region or config)")
	}
	return cfg, nil
}
