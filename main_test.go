package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/datatug/filtertug/pkg/files"
	"github.com/datatug/filtertug/pkg/state"
	"github.com/rivo/tview"
)

func TestMainRoot(t *testing.T) {
	runCalled := false

	oldRun, oldNewApp := run, newApp
	defer func() {
		run, newApp = oldRun, oldNewApp
	}()
	newApp = func() *tview.Application {
		return tview.NewApplication()
	}
	run = func(app application) {
		runCalled = true
	}

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
}

func Test_newApp(t *testing.T) {
	oldSetupApp := setupApp
	defer func() {
		setupApp = oldSetupApp
	}()
	setupAppCalled := false
	setupApp = func(app *tview.Application, store files.Store, dir string) error {
		setupAppCalled = true
		if store == nil {
			t.Error("expected a store")
		}
		if dir == "" {
			t.Error("expected a start dir")
		}
		return nil
	}

	app := newApp()
	if app == nil {
		t.Errorf("newApp returned nil")
	}
	if !setupAppCalled {
		t.Errorf("expected newApp to call setupApp")
	}
}

func Test_newApp_setupError(t *testing.T) {
	oldSetupApp, oldOsExit := setupApp, osExit
	defer func() {
		setupApp, osExit = oldSetupApp, oldOsExit
	}()
	setupApp = func(*tview.Application, files.Store, string) error {
		return errors.New("no such dir")
	}
	exitCode := -1
	osExit = func(code int) { exitCode = code }

	oldStderr := os.Stderr
	_, w, _ := os.Pipe()
	os.Stderr = w
	defer func() {
		os.Stderr = oldStderr
		_ = w.Close()
	}()

	_ = newApp()
	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
}

func Test_resolveStartDir(t *testing.T) {
	oldLoadState, oldOsGetwd := loadState, osGetwd
	defer func() {
		loadState, osGetwd = oldLoadState, oldOsGetwd
		*startDir = ""
	}()

	t.Run("flag_wins", func(t *testing.T) {
		*startDir = "/tmp"
		if got := resolveStartDir(); got != "/tmp" {
			t.Errorf("expected /tmp, got %s", got)
		}
		*startDir = ""
	})

	t.Run("saved_state", func(t *testing.T) {
		loadState = func() (*state.State, error) {
			return &state.State{CurrentDir: "/home/someone"}, nil
		}
		if got := resolveStartDir(); got != "/home/someone" {
			t.Errorf("expected /home/someone, got %s", got)
		}
	})

	t.Run("working_dir", func(t *testing.T) {
		loadState = func() (*state.State, error) {
			return &state.State{}, nil
		}
		osGetwd = func() (string, error) { return "/work", nil }
		if got := resolveStartDir(); got != "/work" {
			t.Errorf("expected /work, got %s", got)
		}
	})

	t.Run("root_fallback", func(t *testing.T) {
		loadState = func() (*state.State, error) {
			return nil, errors.New("corrupt state")
		}
		osGetwd = func() (string, error) { return "", errors.New("no cwd") }
		if got := resolveStartDir(); got != "/" {
			t.Errorf("expected /, got %s", got)
		}
	})
}

type fakeApp struct {
	err error
}

func (f fakeApp) Run() error {
	return fmt.Errorf("app failed: %w", f.err)
}

func Test_run(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	defer func() {
		os.Stderr = oldStderr
	}()

	var expectedErr = errors.New("test error")
	run(fakeApp{err: expectedErr})

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	if !strings.Contains(output, expectedErr.Error()) {
		t.Errorf("expected stderr to contain %q, got %q", expectedErr.Error(), output)
	}
}

func Test_newFilterTugApp(t *testing.T) {
	oldNewApp := newApp
	defer func() {
		newApp = oldNewApp
	}()
	newApp = func() *tview.Application {
		return tview.NewApplication()
	}

	t.Run("default", func(t *testing.T) {
		app := newFilterTugApp()
		if app == nil {
			t.Error("newFilterTugApp() returned nil")
		}
	})

	t.Run("with_pprof", func(t *testing.T) {
		*pprofAddr = "localhost:0" // Use port 0 for random available port
		defer func() { *pprofAddr = "" }()
		app := newFilterTugApp()
		if app == nil {
			t.Error("newFilterTugApp() returned nil")
		}
	})

	t.Run("with_cpuprofile", func(t *testing.T) {
		*cpuProfile = "cpuprofile"
		defer func() {
			*cpuProfile = ""
			_ = os.Remove("cpuprofile")
		}()

		app := newFilterTugApp()
		if app == nil {
			t.Error("newFilterTugApp() returned nil")
		}
	})

	t.Run("with_memprofile", func(t *testing.T) {
		*memProfile = "memprofile"
		defer func() {
			*memProfile = ""
			_ = os.Remove("memprofile")
		}()

		app := newFilterTugApp()
		if app == nil {
			t.Error("newFilterTugApp() returned nil")
		}
	})
}
