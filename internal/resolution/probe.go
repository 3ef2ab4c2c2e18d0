package resolution

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

// DefaultProbeTimeout bounds a single container probe. Probing is a
// fallback path for files with no inline resolution, so a hung external
// tool must not stall the whole batch.
const DefaultProbeTimeout = 30 * time.Second

// Prober reports the pixel height of the primary video stream in a
// media file. Implementations return an error for any failure mode:
// missing tool, unreadable file, timeout, or output without a usable
// height. Callers treat all of these uniformly and move to the next
// prober in the chain.
type Prober interface {
	Name() string
	PixelHeight(ctx context.Context, path string) (int, error)
}

// pixelHeightRe pulls the height line out of mkvinfo's track summary.
var pixelHeightRe = regexp.MustCompile(`Pixel height:\s*(\d+)`)

// MKVInfoProber shells out to mkvinfo and scrapes the first reported
// pixel height. It only understands Matroska containers, which is fine
// as the first link in the chain.
type MKVInfoProber struct {
	// Binary overrides the executable name, mainly for tests.
	Binary  string
	Timeout time.Duration
}

// NewMKVInfoProber returns a prober with the default binary and timeout.
func NewMKVInfoProber() *MKVInfoProber {
	return &MKVInfoProber{Binary: "mkvinfo", Timeout: DefaultProbeTimeout}
}

func (p *MKVInfoProber) Name() string { return "mkvinfo" }

func (p *MKVInfoProber) PixelHeight(ctx context.Context, path string) (int, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	binary := p.Binary
	if binary == "" {
		binary = "mkvinfo"
	}
	out, err := exec.CommandContext(ctx, binary, path).Output()
	if err != nil {
		return 0, fmt.Errorf("mkvinfo %s: %w", path, err)
	}
	m := pixelHeightRe.FindSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("mkvinfo %s: no pixel height in output", path)
	}
	height, err := strconv.Atoi(string(m[1]))
	if err != nil || height <= 0 {
		return 0, fmt.Errorf("mkvinfo %s: unusable pixel height %q", path, m[1])
	}
	return height, nil
}
