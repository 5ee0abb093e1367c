// pkg/display/display_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test report formatting

package display

import (
	"bytes"
	"errors"
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"

	"github.com/eddy-geek/lsinput/pkg/devices"
)

func TestRenderer_Device(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.Device(devices.Device{Path: "/dev/input/event3", Name: "AT Translated Set 2 keyboard"})

	assert.Equal(t, "event3: AT Translated Set 2 keyboard\n", buf.String())
}

func TestRenderer_DeviceWithIDs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.Device(devices.Device{
		Path: "/dev/input/event3",
		Name: "USB Keyboard",
		ID:   &evdev.InputID{BusType: 0x03, Vendor: 0x046d, Product: 0xc31c, Version: 0x0110},
	})

	assert.Equal(t,
		"event3: USB Keyboard\n"+
			"    id: bus 0x0003 vendor 0x046d product 0xc31c version 0x0110\n",
		buf.String())
}

func TestRenderer_DeviceWithIDsMissing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	// Identity query failed: no id line, header still rendered.
	r.Device(devices.Device{Path: "/dev/input/event0", Name: devices.UnknownName})

	assert.Equal(t, "event0: unknown\n", buf.String())
}

func TestRenderer_Links(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.Links("/dev/input/by-id", []string{
		"/dev/input/by-id/usb-Logitech_USB_Keyboard-event-kbd",
		"/dev/input/by-id/usb-Logitech_USB_Keyboard-event-if01",
	})

	assert.Equal(t,
		"    by-id: usb-Logitech_USB_Keyboard-event-kbd\n"+
			"    by-id: usb-Logitech_USB_Keyboard-event-if01\n",
		buf.String())
}

func TestRenderer_LinksEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.Links("/dev/input/by-path", nil)

	assert.Empty(t, buf.String())
}

func TestRenderer_LinksError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.LinksError("/dev/input/by-path", errors.New("permission denied"))

	assert.Equal(t, "    by-path: unable to acquire links: permission denied\n", buf.String())
}
