package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"GuardianesDelFuego/internal/app"
	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/console"
	"GuardianesDelFuego/internal/datalab"
	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/logger"
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/paths"
	"GuardianesDelFuego/internal/server"
	"GuardianesDelFuego/internal/tui"
	_ "GuardianesDelFuego/internal/tui/screens" // Register screen creators
	"GuardianesDelFuego/internal/version"
)

var (
	ErrCheckFailed   = errors.New("self-check failed")
	ErrUnknownSensor = errors.New("unknown sensor")
)

// now is the clock used for export date defaults.
var now = time.Now

// startTUI runs the interactive app; replaced in tests.
var startTUI = tui.Start

// CmdState holds the state of flags for a single command group.
type CmdState struct {
	Dark bool
}

// Execute runs the logic for a sequence of command groups.
// It handles flag application, command switching, and state resetting.
func Execute(ctx context.Context, groups []CommandGroup) int {
	conf, err := config.LoadAppConfig()
	if err != nil {
		logger.Warn(ctx, "Using default configuration: %v", err)
	}

	ranCommand := false

	for _, group := range groups {
		state := CmdState{Dark: conf.UI.Dark}

		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			case "--dark":
				state.Dark = true
			case "--light":
				state.Dark = false
			}
		}

		cmdStr := strings.Join(append([]string{version.CommandName}, group.FullSlice()...), " ")
		logger.Info(ctx, "%s command: '%s'", version.ApplicationName, cmdStr)

		var err error
		switch group.Command {
		case "-h", "--help":
			handleHelp(&group)
		case "-V", "--version":
			handleVersion()
		case "-c", "--check":
			err = handleCheck(ctx, &group, conf)
		case "-e", "--export":
			err = handleExport(ctx, &group, conf)
		case "-s", "--serve":
			err = handleServe(ctx, &group, conf, state)
		case "--config-show":
			err = handleConfigShow(ctx, conf)
		case "":
			// Modifiers only: fall through to the app below.
			if err := startTUI(ctx, conf, tui.Options{Dark: state.Dark}); err != nil {
				logger.Error(ctx, "%v", err)
				return 1
			}
		}
		ranCommand = true

		if err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}

		// Reset flags for the next command
		logger.SetLevel(logger.LevelWarn)
	}

	if !ranCommand {
		if err := startTUI(ctx, conf, tui.Options{Dark: conf.UI.Dark}); err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
	}

	return 0
}

func handleHelp(group *CommandGroup) {
	target := ""
	if len(group.Args) > 0 {
		target = group.Args[0]
	}
	PrintHelp(target)
}

func handleVersion() {
	fmt.Fprintf(output, "%s [%s]\n", version.ApplicationName, version.Version)
	fmt.Fprintf(output, "commit %s, built %s\n", version.Commit, version.BuildDate)
}

// handleCheck prints the self-check table for each role on its default tab.
func handleCheck(ctx context.Context, group *CommandGroup, conf config.AppConfig) error {
	ds, err := demo.Load()
	if err != nil {
		return err
	}
	if err := nav.Validate(); err != nil {
		return err
	}

	roles := nav.Roles
	if len(group.Args) > 0 {
		r, err := nav.ParseRole(group.Args[0])
		if err != nil {
			return err
		}
		roles = []nav.Role{r}
	}

	headers := []string{"Role", "Test", "Result", "Details"}
	var data []string
	passed := true
	for _, r := range roles {
		results := app.SelfCheck(app.Snapshot{Role: r, Tab: nav.DefaultTab(r)}, ds)
		passed = passed && app.AllPassed(results)
		for _, res := range results {
			result := "PASS"
			if !res.Pass {
				result = "FAIL"
			}
			data = append(data, r.String(), res.Test, result, res.Details)
		}
	}

	logger.Info(ctx, "Self-check of %d role(s):", len(roles))
	console.PrintTable(output, headers, data, conf.UI.LineCharacters)
	if !passed {
		return ErrCheckFailed
	}
	return nil
}

// handleExport writes the CSV the data lab download button would produce.
func handleExport(ctx context.Context, group *CommandGroup, conf config.AppConfig) error {
	v, err := domain.ParseVariable(group.Args[0])
	if err != nil {
		return err
	}
	ds, err := demo.Load()
	if err != nil {
		return err
	}

	sensor := group.Option("--sensor")
	if sensor == "" && len(conf.DataLab.Sensors) > 0 {
		sensor = conf.DataLab.Sensors[0]
	}
	if !slices.Contains(conf.DataLab.Sensors, sensor) {
		return fmt.Errorf("%w %q (configured: %s)", ErrUnknownSensor, sensor, strings.Join(conf.DataLab.Sensors, ", "))
	}

	q := datalab.NewQuery(sensor, now())
	q.Variable = v
	if from := group.Option("--from"); from != "" {
		q.From = from
	}
	if to := group.Option("--to"); to != "" {
		q.To = to
	}
	if err := q.Validate(); err != nil {
		return err
	}

	data, err := q.CSV(ds.Series)
	if err != nil {
		return fmt.Errorf("building CSV: %w", err)
	}
	path, err := datalab.FileExporter{Dir: conf.ExportDir}.Save(q.FileName(), data)
	if err != nil {
		return err
	}
	logger.Info(ctx, "Query URL: %s", q.URL(conf.DataLab.Endpoint))
	fmt.Fprintln(output, path)
	return nil
}

func handleServe(ctx context.Context, group *CommandGroup, conf config.AppConfig, state CmdState) error {
	ds, err := demo.Load()
	if err != nil {
		return err
	}
	srv, err := server.New(ctx, conf, ds, server.Options{
		Address: group.Option("--address"),
		Dark:    state.Dark,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "Serving %s on ssh://%s\n", version.ApplicationName, srv.Address())
	return srv.Serve(ctx)
}

func handleConfigShow(ctx context.Context, conf config.AppConfig) error {
	headers := []string{"Path", "Location"}
	data := []string{
		"Config File", paths.GetConfigFilePath(),
		"Log File", paths.GetLogFilePath(),
		"Export Folder", conf.ExportDir,
		"SSH Host Key", conf.HostKeyPath,
	}
	console.PrintTable(output, headers, data, conf.UI.LineCharacters)

	text, err := config.Encode(conf)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	logger.Info(ctx, "Configuration options stored in '%s':", paths.GetConfigFilePath())
	fmt.Fprintln(output)
	fmt.Fprint(output, text)
	return nil
}
