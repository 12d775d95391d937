package profiling

import (
	"io"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"
)

var memProfilingInterval = 10 * time.Second
var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

// DoMemProfiling periodically snapshots the heap into the named file,
// overwriting the previous snapshot each time. The returned func writes
// a snapshot on demand.
func DoMemProfiling(fileName string) func() {
	writeMemProfile := func() {
		f, err := osCreate(fileName)
		if err != nil {
			logrus.WithError(err).Error("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			logrus.WithError(err).Error("could not write memory profile")
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()
	return writeMemProfile
}
