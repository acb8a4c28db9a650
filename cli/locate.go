package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/config"
	"github.com/lyraproj/locator/render"
	"github.com/lyraproj/locator/resolver"
	"github.com/spf13/cobra"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsHelpCommand}}
{{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`

// CommandOptions contains the options of the locate command
type CommandOptions struct {
	RenderAs        string
	CaseInsensitive bool
	Roots           []string
}

var (
	cmdOpts    CommandOptions
	logLevel   string
	configPath string
)

// NewCommand creates the locate Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <expression> [<expression> ...]",
		Short: `Locate - Resolve location patterns to resources`,
		Long: `Locate - Resolve location expressions that may contain Ant-style patterns to the resources
    found in directories, archives and virtual filesystems.
    Find more information at: https://github.com/lyraproj/locator`,
		Example: `locate 'classpath-all:META-INF/**/*.properties'
  locate --root conf --root lib/app.jar '**/*.yaml'`,
		Version: fmt.Sprintf("%v", getVersion()),
		PreRun:  initialize,
		RunE:    cmdLocate,
		Args:    cobra.MinimumNArgs(1)}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug/trace`)
	flags.StringVar(&configPath, `config`, ``,
		`path to the locator config file. Overrides $`+config.EnvConfig+` and <current directory>/`+config.FileName)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, ``,
		`s/json/yaml: Specify the output format of the results; s means plain text`)
	flags.BoolVar(&cmdOpts.CaseInsensitive, `case-insensitive`, false,
		`match patterns without regard to case`)
	flags.StringArrayVar(&cmdOpts.Roots, `root`, nil,
		`a directory or archive to search. Replaces the providers of the config file`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug` || logLevel == `trace`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `locate`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func cmdLocate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cache := archive.NewCache()
	defer func() { _ = cache.Close() }()

	r, err := cfg.CreateResolver(cache)
	if err != nil {
		return err
	}
	return Locate(r, &cmdOpts, args, cmd)
}

// Locate resolves the given expressions and renders the result on the output of the command
func Locate(r *resolver.Resolver, opts *CommandOptions, expressions []string, cmd *cobra.Command) error {
	rs, err := r.Resources(expressions...)
	if err != nil {
		return err
	}
	return render.Resources(render.Name(opts.RenderAs), rs, cmd.OutOrStdout())
}

func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if len(cmdOpts.Roots) > 0 {
		cfg = config.Default(wd)
		cfg.Providers[0].Roots = cmdOpts.Roots
	} else {
		path := configPath
		if path == `` {
			path = config.DefaultPath(wd)
		}
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if cmdOpts.CaseInsensitive {
		cfg.CaseInsensitive = true
	}
	return cfg, nil
}
