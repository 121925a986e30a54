// Package scanner finds mul(a,b) calls embedded in noisy text with a
// hand-written finite-state machine, optionally honoring do() and don't()
// toggles that switch emission on and off.
//
// A Scanner is immutable after New and safe for concurrent use. Every scan
// runs a fresh pass, so toggle mode never leaks between calls.
package scanner

import (
	"iter"
	"log/slog"

	"github.com/aledsdavies/advent/core/invariant"
)

// maxStalls bounds consecutive non-consuming steps. The longest chain is a
// delimiter state handing ch back (Literal->OpenParen or Number->delimiter)
// followed by a failure to Seeking, which always consumes.
const maxStalls = 2

// Match is one recognized mul(A,B)
type Match struct {
	A, B   int
	Offset int // byte offset of the 'm'
}

// Product returns A*B
func (m Match) Product() int {
	return m.A * m.B
}

// Sum returns the sum of products of all matches
func Sum(matches []Match) int {
	total := 0
	for _, m := range matches {
		total += m.Product()
	}
	return total
}

// Opt represents a scanner configuration option
type Opt func(*Config)

// Config holds scanner configuration
type Config struct {
	conditionals bool
	trace        bool
	logger       *slog.Logger
}

// WithConditionals recognizes do() and don't() in addition to mul(a,b)
func WithConditionals() Opt {
	return func(c *Config) {
		c.conditionals = true
	}
}

// WithTrace records every transition in Report.Trace (development only)
func WithTrace() Opt {
	return func(c *Config) {
		c.trace = true
	}
}

// WithLogger logs toggles and suppressed matches at debug level
func WithLogger(logger *slog.Logger) Opt {
	return func(c *Config) {
		c.logger = logger
	}
}

// Scanner recognizes a fixed set of patterns
type Scanner struct {
	patterns []Pattern
	root     *node
	trace    bool
	logger   *slog.Logger
}

// New creates a scanner for mul(a,b). Pass WithConditionals for the toggle
// variant.
func New(opts ...Opt) *Scanner {
	config := &Config{}
	for _, opt := range opts {
		opt(config)
	}

	patterns := []Pattern{Mul}
	if config.conditionals {
		patterns = append(patterns, Do, Dont)
	}

	return &Scanner{
		patterns: patterns,
		root:     buildTrie(patterns),
		trace:    config.trace,
		logger:   config.logger,
	}
}

// NewConditional creates a scanner that honors do() and don't()
func NewConditional(opts ...Opt) *Scanner {
	return New(append([]Opt{WithConditionals()}, opts...)...)
}

// Patterns returns the recognized patterns
func (s *Scanner) Patterns() []Pattern {
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Scan returns every emitted match in input order
func (s *Scanner) Scan(text []byte) []Match {
	var matches []Match
	p := s.newPass()
	p.run(text, func(m Match) bool {
		matches = append(matches, m)
		return true
	})
	return matches
}

// ScanString is Scan for string input
func (s *Scanner) ScanString(text string) []Match {
	return s.Scan([]byte(text))
}

// Matches yields emitted matches lazily. Each range over the returned
// sequence starts a new pass.
func (s *Scanner) Matches(text []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		p := s.newPass()
		p.run(text, yield)
	}
}

// Stats counts what happened during one pass.
// Attempts == Emitted + Suppressed + Toggles + Rejected.
type Stats struct {
	Attempts   int // literal pursuits started
	Emitted    int
	Suppressed int // mul completed while disabled
	Toggles    int // do() or don't() completed
	Rejected   int // pursuits abandoned, including one cut off by end of input
}

// Event is one traced transition
type Event struct {
	Offset   int
	Char     byte
	From     string
	To       string
	Consumed bool
}

// Report is the full outcome of one pass
type Report struct {
	Matches []Match
	Stats   Stats
	Enabled bool    // toggle mode at end of input
	Trace   []Event // nil unless WithTrace
}

// Analyze scans text and returns matches with pass statistics
func (s *Scanner) Analyze(text []byte) Report {
	p := s.newPass()
	if s.trace {
		p.trace = make([]Event, 0, len(text))
	}

	var matches []Match
	p.run(text, func(m Match) bool {
		matches = append(matches, m)
		return true
	})

	st := p.stats
	invariant.Postcondition(st.Attempts == st.Emitted+st.Suppressed+st.Toggles+st.Rejected,
		"attempts %d must equal outcomes %+v", st.Attempts, st)

	return Report{
		Matches: matches,
		Stats:   st,
		Enabled: p.enabled,
		Trace:   p.trace,
	}
}

// pass holds the mutable state of one scan
type pass struct {
	sc      *Scanner
	state   State
	enabled bool
	start   int
	stats   Stats
	trace   []Event
}

func (s *Scanner) newPass() *pass {
	return &pass{sc: s, enabled: true}
}

// run consumes text once, calling emit for each enabled match until emit
// returns false.
func (p *pass) run(text []byte, emit func(Match) bool) {
	stalls := 0
	for pos := 0; pos < len(text); {
		ch := text[pos]
		next, consumed := p.sc.Step(p.state, ch)

		if p.trace != nil {
			p.trace = append(p.trace, Event{
				Offset:   pos,
				Char:     ch,
				From:     p.state.String(),
				To:       next.String(),
				Consumed: consumed,
			})
		}

		switch {
		case p.state.Kind == StateSeeking && next.Kind != StateSeeking:
			p.start = pos
			p.stats.Attempts++
		case p.state.Kind != StateSeeking && next.Kind == StateSeeking:
			p.stats.Rejected++
		}

		if consumed {
			pos++
			stalls = 0
		} else {
			stalls++
			invariant.Invariant(stalls <= maxStalls, "scanner stalled at offset %d in state %s", pos, p.state)
		}

		if next.Kind == StateComplete {
			keepGoing := p.complete(next, emit)
			next = State{}
			if !keepGoing {
				p.state = next
				return
			}
		}
		p.state = next
	}

	if p.state.Kind != StateSeeking {
		p.stats.Rejected++
		p.state = State{}
	}
}

// complete applies a recognized pattern. It returns false when emit asked to
// stop.
func (p *pass) complete(st State, emit func(Match) bool) bool {
	switch st.Pattern.Kind {
	case PatternDo, PatternDont:
		p.stats.Toggles++
		p.enabled = st.Pattern.Kind == PatternDo
		if p.sc.logger != nil {
			p.sc.logger.Debug("toggle", "pattern", st.Pattern.String(), "offset", p.start, "enabled", p.enabled)
		}
		return true

	default:
		invariant.InRange(st.Pattern.Arity, 2, 2, "mul arity")
		m := Match{A: st.First, B: st.Second, Offset: p.start}
		if !p.enabled {
			p.stats.Suppressed++
			if p.sc.logger != nil {
				p.sc.logger.Debug("suppressed", "a", m.A, "b", m.B, "offset", m.Offset)
			}
			return true
		}
		p.stats.Emitted++
		return emit(m)
	}
}
