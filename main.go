package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"checkwire/pkg/buildgraph"
	"checkwire/pkg/checker"
	"checkwire/pkg/manifest"
)

type CLI struct {
	Version bool       `short:"v" help:"Show version information"`
	Verbose bool       `help:"Enable debug logging"`
	Plan    PlanCmd    `cmd:"" help:"Apply the checker wiring and print each compile task's rewritten invocation"`
	Configs ConfigsCmd `cmd:"" help:"Print the merged configuration table for a project"`
}

type PlanCmd struct {
	Directory string `arg:"" optional:"" help:"Project directory (defaults to current directory)"`
}

type ConfigsCmd struct {
	Directory string `arg:"" optional:"" help:"Project directory (defaults to current directory)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := newLogger(cli.Verbose)

	switch ctx.Command() {
	case "plan <directory>", "plan":
		if err := runPlan(cli.Plan.Directory, logger); err != nil {
			logger.Error("plan failed", "err", err)
			os.Exit(1)
		}
	case "configs <directory>", "configs":
		if err := runConfigs(cli.Configs.Directory, logger); err != nil {
			logger.Error("configs failed", "err", err)
			os.Exit(1)
		}
	default:
		if cli.Version {
			fmt.Println("checkwire version 1.0.0")
			return
		}
	}
}

// newLogger creates the CLI logger, with debug level when verbose is set
func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loadProject loads the manifest from the directory, builds the project,
// applies the checker plugin and evaluates the project graph
func loadProject(directory string, logger *log.Logger) (*buildgraph.Project, error) {
	projectDir := directory
	if projectDir == "" {
		var err error
		projectDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	m, err := manifest.Load(absDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded manifest", "project", m.Name, "kinds", m.Kinds)

	project, err := m.Project(buildgraph.NewLocalRuntime(), buildgraph.NewCacheResolver(""))
	if err != nil {
		return nil, err
	}

	if err := checker.Apply(project); err != nil {
		return nil, err
	}

	// The extension is registered by Apply; fill it from the manifest the
	// way a build script would.
	if ext, ok := project.Extension(checker.ExtensionName).(*checker.Extension); ok {
		ext.Checkers = m.CheckerFramework.Checkers
	}

	// Kinds activate after plugin registration, exercising the late-binding
	// listener path.
	for _, kind := range m.Kinds {
		if err := project.ApplyKind(kind); err != nil {
			return nil, err
		}
	}

	if err := project.Evaluate(); err != nil {
		return nil, err
	}

	return project, nil
}

func runPlan(directory string, logger *log.Logger) error {
	project, err := loadProject(directory, logger)
	if err != nil {
		return err
	}

	printPlan(project)
	return nil
}

func runConfigs(directory string, logger *log.Logger) error {
	project, err := loadProject(directory, logger)
	if err != nil {
		return err
	}

	printConfigurations(project)
	return nil
}

func printPlan(project *buildgraph.Project) {
	// Colors
	green := "\033[32m"
	gray := "\033[90m"
	blue := "\033[34m"
	yellow := "\033[33m"
	reset := "\033[0m"

	tasks := project.CompileTasks()
	if len(tasks) == 0 {
		fmt.Println("No compile tasks declared.")
		return
	}

	fmt.Printf("Project: %s\n", project.Name())
	for _, task := range tasks {
		forked := ""
		if task.Forked() {
			forked = fmt.Sprintf(" %s[forked]%s", yellow, reset)
		}
		fmt.Printf("- %s%s%s%s\n", green, task.Name(), reset, forked)

		for _, arg := range task.Args() {
			fmt.Printf("    %s%s%s\n", blue, arg, reset)
		}
		if bootClasspath := task.BootClasspath(); bootClasspath != "" {
			fmt.Printf("    %sbootClasspath=%s%s\n", gray, bootClasspath, reset)
		}
	}
}

func printConfigurations(project *buildgraph.Project) {
	green := "\033[32m"
	gray := "\033[90m"
	reset := "\033[0m"

	for _, config := range project.Configurations().All() {
		visibility := "visible"
		if !config.Visible() {
			visibility = "hidden"
		}

		description := ""
		if config.Description() != "" {
			description = fmt.Sprintf(" %s%s%s", gray, config.Description(), reset)
		}

		fmt.Printf("- %s%s%s [%s]%s\n", green, config.Name(), reset, visibility, description)
		for _, dep := range config.Dependencies() {
			fmt.Printf("    -> %s\n", dep)
		}
	}

	kinds := project.Kinds()
	sort.Strings(kinds)
	fmt.Printf("\n%d configurations, kinds: %s\n", len(project.Configurations().All()),
		strings.Join(kinds, ", "))
}
