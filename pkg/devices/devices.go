// Package devices enumerates input device nodes and queries their
// kernel-reported identity over the evdev ioctl interface.
package devices

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"

	evdev "github.com/holoplot/go-evdev"

	"github.com/eddy-geek/lsinput/pkg/errors"
	"github.com/eddy-geek/lsinput/pkg/logging"
)

// UnknownName is reported when the kernel name query fails.
const UnknownName = "unknown"

// Device is one input device node together with its kernel-reported
// identity. ID is nil when the identity query failed.
type Device struct {
	Path string
	Name string
	ID   *evdev.InputID
}

// Candidates returns the full paths of the entries of devDir whose names
// start with prefix, in directory iteration order. Entries not matching the
// prefix are skipped, names shorter than the prefix included.
func Candidates(devDir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDeviceDir, "cannot open device directory %s", devDir)
	}

	var paths []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		paths = append(paths, filepath.Join(devDir, entry.Name()))
	}
	return paths, nil
}

// Describe opens the device node read-only and non-blocking and queries its
// kernel name and input ID. A node that cannot be opened is reported with
// ok == false so the caller can skip it. A failed name query yields
// UnknownName, never a failure.
func Describe(path string) (dev Device, ok bool) {
	logger := logging.GetLogger("devices")

	d, err := evdev.OpenWithFlags(path, os.O_RDONLY|syscall.O_NONBLOCK)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Skipping unopenable device")
		return Device{}, false
	}
	defer d.Close()

	dev = Device{Path: path, Name: UnknownName}
	if name, err := d.Name(); err == nil && name != "" {
		dev.Name = name
	}
	if id, err := d.InputID(); err == nil {
		dev.ID = &id
	}
	return dev, true
}
