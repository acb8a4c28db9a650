package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/config"
	"github.com/lyraproj/locator/server"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel   string
	configPath string
	addr       string
	port       int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "locateserver",
		Short:  `Server - Start a locator REST server`,
		Long:   "Server - Start a REST server that resolves location patterns to resources.\n  Find more information at: https://github.com/lyraproj/locator",
		PreRun: initialize,
		RunE:   startServer,
		Args:   cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`, `error/warn/info/debug/trace`)
	flags.StringVar(&configPath, `config`, ``, `path to the locator config file. Overrides $`+config.EnvConfig+` and <current directory>/`+config.FileName)
	flags.StringVar(&addr, `addr`, ``, `address to listen to`)
	flags.IntVar(&port, `port`, 80, `port number to listen to`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `locateserver`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	path := configPath
	if path == `` {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = config.DefaultPath(wd)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	cache := archive.NewCache()
	defer func() { _ = cache.Close() }()

	r, err := cfg.CreateResolver(cache)
	if err != nil {
		return err
	}
	e := server.New(r)
	e.Logger.SetOutput(cmd.OutOrStdout())
	return e.Start(addr + `:` + strconv.Itoa(port))
}
