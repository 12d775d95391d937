package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/datatug/filtertug/pkg/explorer"
	"github.com/datatug/filtertug/pkg/files/osfile"
	"github.com/datatug/filtertug/pkg/profiling"
	"github.com/datatug/filtertug/pkg/state"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

var (
	startDir   = flag.String("dir", "", "directory to open on start (defaults to the last visited one)")
	logLevel   = flag.String("log-level", "warning", "logrus level: debug, info, warning, error")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var osGetwd = os.Getwd
var pprofStopCPUProfile = pprof.StopCPUProfile
var loadState = state.Load

func main() {
	app := newFilterTugApp()
	run(app)
}

func newFilterTugApp() (app *tview.Application) {
	flag.Parse()

	if level, err := logrus.ParseLevel(*logLevel); err == nil {
		logrus.SetLevel(level)
	}

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}

	if *memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(*memProfile)
		defer stopMemProfiling()
	}

	app = newApp()
	return
}

var setupApp = explorer.SetupApp

var newApp = func() *tview.Application {
	app := tview.NewApplication()
	store := osfile.NewStore("/")
	if err := setupApp(app, store, resolveStartDir()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
	return app
}

// resolveStartDir picks the directory to open: the -dir flag wins, then
// the directory from the previous session, then the working directory.
func resolveStartDir() string {
	if *startDir != "" {
		return *startDir
	}
	if s, err := loadState(); err == nil && s.CurrentDir != "" {
		return s.CurrentDir
	}
	if wd, err := osGetwd(); err == nil {
		return wd
	}
	return "/"
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
