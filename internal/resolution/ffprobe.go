package resolution

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/vansante/go-ffprobe.v2"
)

// probeFunc defines the function signature used to execute ffprobe.
type probeFunc func(ctx context.Context, path string, extraOpts ...string) (*ffprobe.ProbeData, error)

// FFProbeProber reads the video stream height through ffprobe. Unlike
// mkvinfo it handles any container ffmpeg understands, so it sits after
// MKVInfoProber as the broader fallback.
type FFProbeProber struct {
	probe   probeFunc
	Timeout time.Duration
}

// NewFFProbeProber returns a prober backed by the real ffprobe binary.
func NewFFProbeProber() *FFProbeProber {
	return &FFProbeProber{probe: ffprobe.ProbeURL, Timeout: DefaultProbeTimeout}
}

func (p *FFProbeProber) Name() string { return "ffprobe" }

func (p *FFProbeProber) PixelHeight(ctx context.Context, path string) (int, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := p.probe(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	stream := data.FirstVideoStream()
	if stream == nil {
		return 0, fmt.Errorf("ffprobe %s: no video stream", path)
	}
	if stream.Height <= 0 {
		return 0, fmt.Errorf("ffprobe %s: unusable height %d", path, stream.Height)
	}
	return stream.Height, nil
}
