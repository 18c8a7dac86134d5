package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"taskmaster/internal/engine"
	"taskmaster/internal/ui"
	"taskmaster/store"
	"taskmaster/types"
)

// GetStore resolves the storage location from config and opens the
// configured backend. It does not load; callers decide how strictly a
// load failure is treated.
func GetStore() (store.TaskStore, error) {
	cfg := GetConfig()

	path, err := resolveDataPath(cfg.Data)
	if err != nil {
		return nil, err
	}

	switch cfg.Data.Backend {
	case "sqlite":
		return store.NewSQLiteTaskStore(path)
	default:
		return store.NewFileTaskStore(path, cfg.Data.Format)
	}
}

// resolveDataPath turns the configured file name into a full path under
// the user's home directory. When the file name is still the default, its
// extension follows the configured format or backend.
func resolveDataPath(data types.DataConfig) (string, error) {
	file := data.File
	if file == defaultDataFile {
		ext := filepath.Ext(file)
		switch {
		case data.Backend == "sqlite":
			file = strings.TrimSuffix(file, ext) + ".db"
		case data.Format != store.FormatJSON:
			file = strings.TrimSuffix(file, ext) + "." + data.Format
		}
	}

	if filepath.IsAbs(file) {
		return file, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", &types.EnvironmentError{Reason: "could not determine home directory", Err: err}
	}
	return filepath.Join(home, file), nil
}

// mustEngine opens and loads the store. Startup failures (unresolvable
// home, corrupt data file) abort the process; silent data loss is worse
// than a crash.
func mustEngine() (*engine.Engine, func()) {
	s, err := GetStore()
	if err != nil {
		HandleFatalError("could not open the task store", err)
	}
	if err := s.Load(); err != nil {
		_ = s.Close()
		HandleFatalError("could not load tasks", err)
	}
	return engine.New(s), func() { _ = s.Close() }
}

// HandleFatalError reports an unrecoverable error and exits non-zero.
func HandleFatalError(msg string, err error) {
	fmt.Fprintln(os.Stderr, ui.StyleError.Render(fmt.Sprintf("Error: %s: %v", msg, err)))
	os.Exit(1)
}

// reportResult prints a command outcome; persistence warnings go to stderr.
func reportResult(res engine.Result) {
	fmt.Println(res.Message)
	if res.Warning != "" {
		fmt.Fprintln(os.Stderr, ui.StyleWarning.Render(res.Warning))
	}
}

// reportUserError prints a handled validation or index error. The process
// still exits 0; the command was understood and answered.
func reportUserError(err error) {
	fmt.Fprintln(os.Stderr, ui.StyleError.Render("Error: "+err.Error()))
}

// parseIndex parses a 1-based task index argument.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a valid task ID", arg)
	}
	return index, nil
}

// runIndexCommand is the shared body of complete, up, down and delete.
func runIndexCommand(arg string, apply func(*engine.Engine, int) (engine.Result, error)) {
	index, err := parseIndex(arg)
	if err != nil {
		reportUserError(err)
		return
	}

	eng, closeStore := mustEngine()
	defer closeStore()

	res, err := apply(eng, index)
	if err != nil {
		reportUserError(err)
		return
	}
	reportResult(res)
}
