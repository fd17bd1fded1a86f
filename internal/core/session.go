// Package core implements the sqlmorph conversion engine: per-conversion
// sessions, two-phase input validation, and the ordered rewrite pipelines
// that transform schema text between dialects.
package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coregx/sqlmorph/internal/dialects"
	"github.com/coregx/sqlmorph/internal/logger"
	"github.com/coregx/sqlmorph/internal/tracer"
	"github.com/coregx/sqlmorph/internal/typemap"
)

// MaxInputSize is the maximum accepted SQL input size in bytes.
const MaxInputSize = 10 << 20 // 10 MB

// Session is a single conversion request: input text, dialect names as given
// by the caller, and the warnings and errors collected while converting.
//
// A session is single-use. Create one per conversion, call Convert or
// ConvertOrFail once, read the output and Warnings/Errors, and discard it.
// Sessions must not be shared between goroutines; the base mapping tables
// they read from are immutable and safely shared.
type Session struct {
	input      string
	sourceText string
	targetText string

	source dialects.Dialect
	target dialects.Dialect

	dict     *typemap.Dictionary
	log      logger.Logger
	tr       tracer.Tracer
	ctx      context.Context
	buffer   string
	passes   int
	warnings []string
	errors   []string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for pass-by-pass debug output.
func WithLogger(l logger.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithTracer sets the tracer; each Convert call becomes one span.
func WithTracer(t tracer.Tracer) SessionOption {
	return func(s *Session) { s.tr = t }
}

// WithDictionary sets the type dictionary, carrying any custom mappings.
func WithDictionary(d *typemap.Dictionary) SessionOption {
	return func(s *Session) { s.dict = d }
}

// WithContext sets the context used for the conversion span.
func WithContext(ctx context.Context) SessionOption {
	return func(s *Session) { s.ctx = ctx }
}

// NewSession creates a conversion session. Dialect names are free-form text
// and are resolved during Convert; invalid names become errors, not panics.
func NewSession(sql, sourceDialect, targetDialect string, opts ...SessionOption) *Session {
	s := &Session{
		input:      sql,
		sourceText: sourceDialect,
		targetText: targetDialect,
		dict:       typemap.NewDictionary(),
		log:        &logger.NoopLogger{},
		tr:         &tracer.NoopTracer{},
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert validates the session inputs and runs the pipeline for the
// resolved dialect pair. It returns the converted text and true on success.
// On failure it returns "" and false, with the reasons in Errors. Warnings
// never indicate failure and may accompany a successful output.
func (s *Session) Convert() (string, bool) {
	start := time.Now()
	_, span := s.tr.StartSpan(s.ctx, "sqlmorph.convert")
	defer span.End()

	// Two-phase validation: nothing touches the buffer until both phases
	// pass, so a failed conversion never leaks partial state.
	s.validateInput()
	s.validateDialects()
	if len(s.errors) == 0 {
		s.run()
	}

	meta := &tracer.ConversionMetadata{
		Source:      string(s.source),
		Target:      string(s.target),
		InputBytes:  len(s.input),
		OutputBytes: len(s.buffer),
		Passes:      s.passes,
		Duration:    time.Since(start),
		Warnings:    len(s.warnings),
	}
	if len(s.errors) > 0 {
		meta.Error = &ConversionError{Messages: s.Errors()}
	}
	tracer.AddConversionAttributes(span, meta)

	if len(s.errors) > 0 {
		s.log.Error("conversion failed", "errors", len(s.errors))
		return "", false
	}
	s.log.Info("conversion complete",
		"source", string(s.source),
		"target", string(s.target),
		"statement", tracer.DetectStatement(s.input),
		"input_bytes", len(s.input),
		"output_bytes", len(s.buffer),
		"warnings", len(s.warnings),
	)
	return s.buffer, true
}

// ConvertOrFail is Convert with error-return semantics: it returns a
// *ConversionError carrying the collected error messages when the
// conversion fails.
func (s *Session) ConvertOrFail() (string, error) {
	out, ok := s.Convert()
	if !ok {
		return "", &ConversionError{Messages: s.Errors()}
	}
	return out, nil
}

// Errors returns the error messages collected so far, in order.
func (s *Session) Errors() []string {
	out := make([]string, len(s.errors))
	copy(out, s.errors)
	return out
}

// Warnings returns the warnings collected so far, in order.
func (s *Session) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Source returns the resolved source dialect (Invalid before Convert or when
// resolution failed).
func (s *Session) Source() dialects.Dialect { return s.source }

// Target returns the resolved target dialect.
func (s *Session) Target() dialects.Dialect { return s.target }

func (s *Session) validateInput() {
	if strings.TrimSpace(s.input) == "" {
		s.errors = append(s.errors, "sql input is empty")
	}
	if len(s.input) > MaxInputSize {
		s.errors = append(s.errors, fmt.Sprintf("sql input exceeds the %d MB limit", MaxInputSize/(1<<20)))
	}
}

func (s *Session) validateDialects() {
	s.source = s.resolveDialect("source", s.sourceText)
	s.target = s.resolveDialect("target", s.targetText)
}

func (s *Session) resolveDialect(role, raw string) dialects.Dialect {
	if strings.TrimSpace(raw) == "" {
		s.errors = append(s.errors, role+" dialect is empty")
		return dialects.Invalid
	}
	d := dialects.Resolve(raw)
	if d == dialects.Invalid {
		s.errors = append(s.errors, fmt.Sprintf("unknown %s dialect %q (supported: %s)",
			role, raw, strings.Join(dialects.Names(), ", ")))
	}
	return d
}

// run executes the pipeline for the resolved pair. A panic raised by a pass
// is recovered and reported as a single error; the partial buffer is
// discarded so callers never see half-converted text.
func (s *Session) run() {
	pair := dialects.Pair{Source: s.source, Target: s.target}
	passName := ""
	defer func() {
		if r := recover(); r != nil {
			s.errors = append(s.errors, fmt.Sprintf("conversion aborted in pass %q: %v", passName, r))
			s.buffer = ""
		}
	}()

	passes, ok := pipelineFor(pair)
	if !ok {
		if s.source == s.target {
			s.warnings = append(s.warnings,
				fmt.Sprintf("source and target dialect are both %s; no conversion performed", s.source))
		} else {
			s.warnings = append(s.warnings,
				fmt.Sprintf("conversion %s is not implemented; no conversion performed", pair))
		}
		s.buffer = s.input
		return
	}

	table := s.dict.Lookup(pair)
	buf := s.input
	for _, p := range passes {
		passName = p.Name
		buf = p.Apply(buf, table)
		s.passes++
		s.log.Debug("pass applied", "pair", pair.String(), "pass", p.Name, "bytes", len(buf))
	}
	s.buffer = buf
}
