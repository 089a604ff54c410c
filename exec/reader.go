package exec

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/simonhull/firebird-suite/wren/logger"
)

// streamReader drains one child pipe line by line into a Mailbox.
type streamReader struct {
	name string
	src  io.Reader
	box  *Mailbox
	log  logger.Logger

	// transcript keeps every byte read; only touched by run until done closes.
	transcript bytes.Buffer
	done       chan struct{}
}

func newStreamReader(name string, src io.Reader, box *Mailbox, log logger.Logger) *streamReader {
	return &streamReader{
		name: name,
		src:  src,
		box:  box,
		log:  log,
		done: make(chan struct{}),
	}
}

// Done is closed exactly once, when the stream hits EOF or a read error.
func (r *streamReader) Done() <-chan struct{} {
	return r.done
}

// Bytes returns the full transcript. Only valid after Done is closed.
func (r *streamReader) Bytes() []byte {
	return r.transcript.Bytes()
}

func (r *streamReader) run() {
	defer close(r.done)

	br := bufio.NewReader(r.src)
	for {
		chunk, err := br.ReadBytes('\n')
		if len(chunk) > 0 {
			r.box.Publish(chunk)
			r.transcript.Write(chunk)
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
			r.log.Warn("output stream failed",
				logger.F("stream", r.name),
				logger.F("error", newError(KindStreamRead, r.name, err)),
			)
		}
		return
	}
}
