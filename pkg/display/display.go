// Package display renders the device listing as line-oriented text.
package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/eddy-geek/lsinput/pkg/devices"
)

const indent = "    "

// Renderer writes the per-device report blocks to a single output stream.
type Renderer struct {
	w       io.Writer
	showIDs bool
}

// NewRenderer creates a renderer writing to w. With showIDs set, each device
// block includes the bus/vendor/product identity line.
func NewRenderer(w io.Writer, showIDs bool) *Renderer {
	return &Renderer{w: w, showIDs: showIDs}
}

// Device writes the "<basename>: <name>" header line for one device,
// followed by the identity line when requested and available.
func (r *Renderer) Device(dev devices.Device) {
	fmt.Fprintf(r.w, "%s: %s\n", filepath.Base(dev.Path), dev.Name)

	if r.showIDs && dev.ID != nil {
		fmt.Fprintf(r.w, "%sid: bus 0x%04x vendor 0x%04x product 0x%04x version 0x%04x\n",
			indent, dev.ID.BusType, dev.ID.Vendor, dev.ID.Product, dev.ID.Version)
	}
}

// Links writes one indented "<alias-dir-basename>: <link-basename>" line per
// matched link. No lines are written for an empty match set.
func (r *Renderer) Links(aliasDir string, links []string) {
	base := filepath.Base(aliasDir)
	for _, link := range links {
		fmt.Fprintf(r.w, "%s%s: %s\n", indent, base, filepath.Base(link))
	}
}

// LinksError writes the indented diagnostic line for an alias directory
// whose resolution failed.
func (r *Renderer) LinksError(aliasDir string, err error) {
	fmt.Fprintf(r.w, "%s%s: unable to acquire links: %v\n", indent, filepath.Base(aliasDir), err)
}
