package exec

import (
	"bufio"
	"io"
	"time"

	"github.com/simonhull/firebird-suite/wren/logger"
	"github.com/simonhull/firebird-suite/wren/output"
)

// DefaultRefreshInterval bounds how often the display loop wakes while no
// stream has finished.
const DefaultRefreshInterval = 10 * time.Millisecond

// multiplexer renders the latest stdout and stderr chunks to a terminal
// until both stream readers are done.
type multiplexer struct {
	sink     *bufio.Writer
	stdout   *Mailbox
	stderr   *Mailbox
	outDone  <-chan struct{}
	errDone  <-chan struct{}
	interval time.Duration
	log      logger.Logger

	sinkFailed bool
}

func newMultiplexer(w io.Writer, stdout, stderr *streamReader, interval time.Duration, log logger.Logger) *multiplexer {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &multiplexer{
		sink:     bufio.NewWriter(w),
		stdout:   stdout.box,
		stderr:   stderr.box,
		outDone:  stdout.Done(),
		errDone:  stderr.Done(),
		interval: interval,
		log:      log,
	}
}

// run blocks until both readers have signalled completion and everything
// they published has been rendered.
func (m *multiplexer) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	outDone, errDone := m.outDone, m.errDone
	for {
		// Observed before the drain: a reader publishes before it closes
		// its channel, so the drain below sees its final chunk.
		finished := closed(m.outDone) && closed(m.errDone)

		m.refresh()
		if finished {
			return
		}

		select {
		case <-ticker.C:
		case <-outDone:
			outDone = nil
		case <-errDone:
			errDone = nil
		}
	}
}

// refresh writes whatever both mailboxes hold, stdout first.
func (m *multiplexer) refresh() {
	out, errOut := takeBoth(m.stdout, m.stderr)
	if len(out) == 0 && len(errOut) == 0 {
		return
	}

	m.sink.WriteString(output.EraseLine)
	m.sink.Write(out)
	m.sink.Write(errOut)
	if err := m.sink.Flush(); err != nil && !m.sinkFailed {
		// Keep draining so the child never blocks on a full pipe.
		m.sinkFailed = true
		m.log.Warn("display write failed", logger.F("error", err))
	}
}

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
