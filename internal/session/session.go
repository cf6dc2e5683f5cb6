package session

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/yanun0323/errors"

	"allocator/internal/common"
	"allocator/internal/engine"
	"allocator/internal/wire"
)

const (
	initialLineBuf = 4 * 1024
	maxLineSize    = 1024 * 1024
)

// Stats counts what a session processed.
type Stats struct {
	Lines     int
	Declared  int
	Venue     int
	Rejected  int // Venue orders refused at the position limit
	Ignored   int
	Fills     int
	Flushed   int
	Finished  bool
	LastError error
}

// Session drives one engine from a line stream to a report stream. Every
// line is applied to completion, trades written included, before the next
// line is read.
type Session struct {
	engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
	buf    []byte
	stats  Stats
}

// New wires the session as the engine's reporter.
func New(eng *engine.Engine, in io.Reader, out io.Writer) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialLineBuf), maxLineSize)

	s := &Session{
		engine: eng,
		in:     scanner,
		out:    out,
	}
	eng.SetReporter(s)
	return s
}

func (s *Session) Stats() Stats { return s.stats }

// ReportTrade writes the trade's line immediately.
func (s *Session) ReportTrade(trade common.Trade) error {
	s.buf = wire.AppendTrade(s.buf[:0], trade)
	if _, err := s.out.Write(s.buf); err != nil {
		return errors.Wrap(err, "write trade report")
	}
	switch trade.Kind {
	case common.TradeFill:
		s.stats.Fills++
	case common.TradeFlush:
		s.stats.Flushed++
	}
	return nil
}

// Run consumes lines until FINISH, end of input, a fatal error or context
// cancellation. FINISH flushes the book and ends the session; end of input
// without FINISH ends it without flushing. A malformed DF/VE line or a
// failed write is fatal. Cancellation is only observed between lines.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		s.stats.LastError = err
		s.logSummary()
	}()

	log.Info().
		Int64("max_position", s.engine.Position().Max()).
		Stringer("fill_mode", s.engine.FillMode()).
		Stringer("crossing", s.engine.Crossing()).
		Msg("session started")

	for s.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.stats.Lines++

		done, err := s.handleLine(s.in.Text())
		if err != nil {
			return errors.Wrapf(err, "line %d", s.stats.Lines)
		}
		if done {
			return nil
		}
	}
	if err := s.in.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}

	log.Warn().Int("lines", s.stats.Lines).Msg("input ended without FINISH, book not flushed")
	return nil
}

// handleLine applies one line and reports whether the session is over.
func (s *Session) handleLine(line string) (bool, error) {
	message, err := wire.ParseMessage(line)
	if err != nil {
		return false, err
	}

	switch message.GetType() {
	case wire.Declare:
		m, ok := message.(wire.OrderMessage)
		if !ok {
			return false, ErrImproperConversion
		}
		s.engine.Declare(m.Order())
		s.stats.Declared++

	case wire.Venue:
		m, ok := message.(wire.OrderMessage)
		if !ok {
			return false, ErrImproperConversion
		}
		s.stats.Venue++
		exec, err := s.engine.Execute(m.Order())
		if !exec.Admitted {
			s.stats.Rejected++
		}
		if err != nil {
			return false, err
		}

	case wire.Finish:
		s.stats.Finished = true
		if _, err := s.engine.Flush(); err != nil {
			return false, err
		}
		return true, nil

	default:
		s.stats.Ignored++
		log.Debug().Int("line", s.stats.Lines).Msg("line ignored")
	}
	return false, nil
}

func (s *Session) logSummary() {
	event := log.Info()
	if s.stats.LastError != nil {
		event = log.Error().Err(s.stats.LastError)
	}
	event.
		Int("lines", s.stats.Lines).
		Int("declared", s.stats.Declared).
		Int("venue", s.stats.Venue).
		Int("rejected", s.stats.Rejected).
		Int("ignored", s.stats.Ignored).
		Int("fills", s.stats.Fills).
		Int("flushed", s.stats.Flushed).
		Bool("finished", s.stats.Finished).
		Int64("position", s.engine.Position().Current()).
		Msg("session completed")
}
