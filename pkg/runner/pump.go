package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// linePump reads lines on a background goroutine so a caller blocked on
// input can give up when its context is cancelled. The goroutine stays
// parked on the reader until the next line or the end of the stream.
type linePump struct {
	reader *bufio.Reader
	once   sync.Once
	lines  chan pumped
}

type pumped struct {
	text string
	err  error
}

func newLinePump(r io.Reader) *linePump {
	return &linePump{reader: bufio.NewReader(r)}
}

// next returns the next line including its terminator. A final line without
// terminator is still a line. io.EOF is returned once the stream is drained.
func (p *linePump) next(ctx context.Context) (string, error) {
	p.once.Do(func() {
		p.lines = make(chan pumped)
		go p.run()
	})

	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

func (p *linePump) run() {
	defer close(p.lines)
	for {
		text, err := p.reader.ReadString('\n')
		if text != "" {
			p.lines <- pumped{text: text}
		}
		if err != nil {
			if err != io.EOF {
				p.lines <- pumped{err: err}
			}
			return
		}
	}
}
