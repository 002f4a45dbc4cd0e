package binding

import (
	"errors"
	"fmt"
	"time"

	"binding-generator/environment"
)

const day = 24 * time.Hour

// RetryPolicy controls how a send port retries failed transmissions.
type RetryPolicy struct {
	Count    int
	Interval time.Duration
}

var (
	// DefaultRetryPolicy is BizTalk's out-of-the-box policy.
	DefaultRetryPolicy = RetryPolicy{Count: 3, Interval: 5 * time.Minute}
	// NoRetry disables retries.
	NoRetry = RetryPolicy{}
)

// IntervalMinutes returns the interval in whole minutes, as BizTalk stores it.
func (r RetryPolicy) IntervalMinutes() int {
	return int(r.Interval / time.Minute)
}

func (r RetryPolicy) validate() error {
	if r.Count < 0 {
		return fmt.Errorf("retry count %d is negative", r.Count)
	}

	if r.Interval < 0 {
		return fmt.Errorf("retry interval %s is negative", r.Interval)
	}

	if r.Interval%time.Minute != 0 {
		return fmt.Errorf("retry interval %s is not a whole number of minutes", r.Interval)
	}

	return nil
}

// ServiceWindow restricts a transport to a daily time range. Start and Stop
// are offsets from midnight.
type ServiceWindow struct {
	Start time.Duration
	Stop  time.Duration
}

func (w ServiceWindow) validate() error {
	if w.Start < 0 || w.Start >= day {
		return fmt.Errorf("service window start %s is not a time of day", w.Start)
	}

	if w.Stop < 0 || w.Stop >= day {
		return fmt.Errorf("service window stop %s is not a time of day", w.Stop)
	}

	if w.Start == w.Stop {
		return errors.New("service window start and stop are equal")
	}

	return nil
}

// Schedule restricts when a receive location is active.
type Schedule struct {
	StartDate     time.Time
	StopDate      time.Time
	ServiceWindow *ServiceWindow
}

func (s Schedule) validate() error {
	if !s.StartDate.IsZero() && !s.StopDate.IsZero() && !s.StopDate.After(s.StartDate) {
		return fmt.Errorf("schedule stop date %s is not after start date %s",
			s.StopDate.Format(time.DateOnly), s.StartDate.Format(time.DateOnly))
	}

	if s.ServiceWindow != nil {
		return s.ServiceWindow.validate()
	}

	return nil
}

// ReceiveLocationTransport is the inbound transport of a receive location.
type ReceiveLocationTransport struct {
	Adapter Adapter
	// Host selects the receive handler host. Nil defers to the platform policy.
	Host     HostResolutionPolicy
	Schedule Schedule

	location *ReceiveLocation
}

// Location returns the receive location owning the transport, once linked.
func (t *ReceiveLocationTransport) Location() *ReceiveLocation {
	return t.location
}

// ResolveHost returns the receive handler host for d.
func (t *ReceiveLocationTransport) ResolveHost(d environment.Deployment) (string, error) {
	policy, err := policyOrPlatform(t.Host, d)
	if err != nil {
		return "", err
	}

	return policy.ResolveReceiveLocationHost(d, t)
}

// SendPortTransport is the outbound transport of a send port.
type SendPortTransport struct {
	Adapter Adapter
	// Host selects the send handler host. Nil defers to the platform policy.
	Host          HostResolutionPolicy
	RetryPolicy   RetryPolicy
	ServiceWindow *ServiceWindow

	port *SendPort
}

// Port returns the send port owning the transport, once linked.
func (t *SendPortTransport) Port() *SendPort {
	return t.port
}

// ResolveHost returns the send handler host for d.
func (t *SendPortTransport) ResolveHost(d environment.Deployment) (string, error) {
	policy, err := policyOrPlatform(t.Host, d)
	if err != nil {
		return "", err
	}

	return policy.ResolveSendPortHost(d, t)
}

func (t *SendPortTransport) validate() error {
	if t.Adapter == nil {
		return errors.New("transport adapter is not defined")
	}

	if err := t.Adapter.Validate(); err != nil {
		return fmt.Errorf("%s adapter: %w", t.Adapter.ProtocolType().Name, err)
	}

	if !t.Adapter.ProtocolType().Capabilities.Has(CapabilitySupportsSend) {
		return fmt.Errorf("%s adapter does not support send", t.Adapter.ProtocolType().Name)
	}

	if err := t.RetryPolicy.validate(); err != nil {
		return err
	}

	if t.ServiceWindow != nil {
		return t.ServiceWindow.validate()
	}

	return nil
}
