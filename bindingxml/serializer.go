package bindingxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"time"

	"binding-generator/binding"
	"binding-generator/environment"
)

// Serializer turns an application graph into a binding file for one
// deployment.
type Serializer struct {
	application *binding.Application
	deployment  environment.Deployment
	log         *slog.Logger
	now         func() time.Time
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithLogger sets the logger used by the serializer and its pipeline.
func WithLogger(log *slog.Logger) Option {
	return func(s *Serializer) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the clock stamping documents of applications without a
// Timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Serializer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSerializer returns a serializer of app for deployment d.
func NewSerializer(app *binding.Application, d environment.Deployment, opts ...Option) *Serializer {
	s := &Serializer{
		application: app,
		deployment:  d,
		log:         slog.Default(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Document runs a full pipeline pass, overrides and validation included, and
// returns the resulting document.
func (s *Serializer) Document() (*Document, error) {
	builder := NewBuilder(s.deployment)
	builder.now = s.now

	pipeline := binding.NewVisitorPipeline(s.application, s.deployment, binding.WithLogger(s.log))
	if err := pipeline.Accept(builder); err != nil {
		return nil, err
	}

	if refs := builder.References(); len(refs) > 0 {
		s.log.Debug("referenced applications settled", slog.Any("applications", refs))
	}

	return builder.Document(), nil
}

// Serialize returns the indented binding file. Nothing is returned unless
// the whole pass succeeds.
func (s *Serializer) Serialize() ([]byte, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	return Marshal(doc)
}

// WriteTo writes the binding file to w. Nothing is written when the pass
// fails.
func (s *Serializer) WriteTo(w io.Writer) (int64, error) {
	data, err := s.Serialize()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)

	return int64(n), err
}

// Marshal renders doc as an indented XML document with declaration.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal binding: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// Parse reads a binding file.
func Parse(data []byte) (*Document, error) {
	var doc Document

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse binding XML: %w", err)
	}

	return &doc, nil
}

// ParseFilter reads the escaped filter of a send port.
func ParseFilter(filter string) (*FilterDocument, error) {
	var fd FilterDocument

	if err := xml.Unmarshal([]byte(filter), &fd); err != nil {
		return nil, fmt.Errorf("failed to parse filter XML: %w", err)
	}

	return &fd, nil
}
