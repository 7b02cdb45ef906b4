package validators

import (
	"fmt"
	"log/slog"
	"regexp"
)

// MatchesPattern accepts values whose textual form matches a regular
// expression at the start of the string. Non-string candidates are
// stringified before matching.
type MatchesPattern struct {
	passthrough
	re  *regexp.Regexp
	log *slog.Logger
}

// PatternOption configures a MatchesPattern validator.
type PatternOption func(*MatchesPattern)

// WithTraceLogger enables a debug trace of every Test call. Tracing is off by
// default; the trace has no bearing on the result.
func WithTraceLogger(log *slog.Logger) PatternOption {
	return func(p *MatchesPattern) { p.log = log }
}

// NewMatchesPattern compiles expr and panics if it is not a valid regular
// expression; an invalid pattern is a programmer error, not a Test-time
// condition. The match is anchored at the start of the input only.
func NewMatchesPattern(expr string, opts ...PatternOption) *MatchesPattern {
	p := &MatchesPattern{re: regexp.MustCompile(`\A(?:` + expr + `)`)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *MatchesPattern) Test(v any) bool {
	text, ok := v.(string)
	if !ok {
		text = fmt.Sprint(v)
	}
	matched := p.re.MatchString(text)
	if p.log != nil {
		p.log.Debug("pattern test",
			slog.String("pattern", p.re.String()),
			slog.String("value", text),
			slog.Bool("matched", matched))
	}
	return matched
}
