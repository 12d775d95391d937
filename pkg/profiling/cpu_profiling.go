package profiling

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile

// DoCPUProfiling starts CPU profiling into the named file and returns a
// func that stops profiling and closes the file. On any error it logs
// and returns a no-op so callers can defer it unconditionally.
func DoCPUProfiling(fileName string) func() {
	f, err := osCreate(fileName)
	if err != nil {
		logrus.WithError(err).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logrus.WithError(err).Error("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}
