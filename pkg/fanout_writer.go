package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanoutWriter copies every write to all of its targets. A target that fails
// does not stop the others; the write only reports a short count when every
// target failed.
type FanoutWriter struct {
	targets []io.Writer
}

var _ io.Writer = (*FanoutWriter)(nil)

func NewFanoutWriter(targets ...io.Writer) *FanoutWriter {
	fw := &FanoutWriter{}
	for _, t := range targets {
		if t != nil {
			fw.targets = append(fw.targets, t)
		}
	}
	return fw
}

func (fw *FanoutWriter) Targets() int {
	return len(fw.targets)
}

func (fw *FanoutWriter) Write(p []byte) (int, error) {
	var err error
	delivered := false
	for _, t := range fw.targets {
		if _, werr := t.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		delivered = true
	}

	if !delivered && len(fw.targets) > 0 {
		return 0, err
	}
	return len(p), err
}
