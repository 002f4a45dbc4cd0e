package adapter

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"binding-generator/binding"
	"binding-generator/environment"
)

// Variant type codes of CustomProps entries.
const (
	vtInt32  = 3
	vtString = 8
	vtBool   = 11
	vtUInt32 = 19
)

type prop struct {
	name  string
	vt    int
	value string
}

// customProps accumulates CustomProps entries in insertion order.
type customProps struct {
	entries []prop
}

func (p *customProps) str(name, value string) *customProps {
	p.entries = append(p.entries, prop{name: name, vt: vtString, value: value})
	return p
}

func (p *customProps) boolean(name string, value bool) *customProps {
	v := "0"
	if value {
		v = "-1"
	}

	p.entries = append(p.entries, prop{name: name, vt: vtBool, value: v})

	return p
}

func (p *customProps) uint32(name string, value int) *customProps {
	p.entries = append(p.entries, prop{name: name, vt: vtUInt32, value: strconv.Itoa(value)})
	return p
}

func (p *customProps) int32(name string, value int) *customProps {
	p.entries = append(p.entries, prop{name: name, vt: vtInt32, value: strconv.Itoa(value)})
	return p
}

// String renders the CustomProps document.
func (p *customProps) String() string {
	var b strings.Builder

	b.WriteString("<CustomProps>")

	for _, e := range p.entries {
		fmt.Fprintf(&b, `<%s vt="%d">`, e.name, e.vt)
		_ = xml.EscapeText(&b, []byte(e.value))
		fmt.Fprintf(&b, "</%s>", e.name)
	}

	b.WriteString("</CustomProps>")

	return b.String()
}

// timeSpan formats d the way .NET renders a TimeSpan: [d.]hh:mm:ss.
func timeSpan(d time.Duration) string {
	const day = 24 * time.Hour

	d = d.Round(time.Second)
	days := int(d / day)
	h := int(d%day) / int(time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)

	if days > 0 {
		return fmt.Sprintf("%d.%02d:%02d:%02d", days, h, m, s)
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Overrides holds the environment overrides registered on an adapter.
type Overrides struct {
	overrides []binding.Override
}

// OnEnvironment registers an environment override.
func (o *Overrides) OnEnvironment(fn binding.Override) {
	o.overrides = append(o.overrides, fn)
}

// ApplyEnvironmentOverrides runs the registered overrides in order.
func (o *Overrides) ApplyEnvironmentOverrides(d environment.Deployment) error {
	for _, fn := range o.overrides {
		if err := fn(d); err != nil {
			return err
		}
	}

	return nil
}
