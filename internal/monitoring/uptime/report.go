package uptime

import (
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/logger"
	"context"
	"time"
)

// Fallbacks used when a stored setting is out of range in a response
const (
	defaultDisplayFormat = FormatFullDisplay
	defaultPollInterval  = 5
	minPollInterval      = 1
	maxPollInterval      = 120
)

// Messages carries the localized strings a report may need
type Messages struct {
	Unknown string
	Note    string
}

// Payload is the body returned by the uptime endpoint and pushed to navbar clients
type Payload struct {
	Formatted
	Seconds             *float64 `json:"seconds"`
	UptimeAvailable     bool     `json:"uptime_available"`
	UptimeSource        Source   `json:"uptime_source"`
	UptimeNote          string   `json:"uptime_note,omitempty"`
	NavbarEnabled       bool     `json:"navbar_enabled"`
	DisplayFormat       string   `json:"display_format"`
	PollIntervalSeconds int      `json:"poll_interval_seconds"`

	*ProcessPayload
}

// ProcessPayload describes the age of the service process itself
type ProcessPayload struct {
	ProcessUptime          string   `json:"process_uptime"`
	ProcessUptimeDHM       string   `json:"process_uptime_dhm"`
	ProcessUptimeDH        string   `json:"process_uptime_dh"`
	ProcessUptimeD         string   `json:"process_uptime_d"`
	ProcessSeconds         *float64 `json:"process_seconds"`
	ProcessUptimeAvailable bool     `json:"process_uptime_available"`
}

// Reporter assembles payloads from the resolver and the current settings
type Reporter struct {
	resolver *Resolver
	process  *ProcessReader
	throttle *logger.Throttle
}

// NewReporter creates a reporter. process may be nil to never report process uptime.
func NewReporter(resolver *Resolver, process *ProcessReader) *Reporter {
	return &Reporter{
		resolver: resolver,
		process:  process,
		throttle: logger.NewThrottle(),
	}
}

// Resolver returns the underlying system uptime resolver
func (r *Reporter) Resolver() *Resolver {
	return r.resolver
}

// Build resolves and formats the uptime. Every failure degrades to a
// placeholder value; Build itself cannot fail.
func (r *Reporter) Build(ctx context.Context, s config.UptimeSettings, msgs Messages) Payload {
	prev := r.resolver.LastSource()
	reading := r.resolver.Resolve(ctx)
	if reading.Source != prev {
		logger.Info("Uptime source changed",
			logger.String("from", string(prev)),
			logger.String("to", string(reading.Source)))
	}

	p := Payload{
		UptimeSource:        reading.Source,
		NavbarEnabled:       s.NavbarEnabled,
		DisplayFormat:       responseDisplayFormat(s.DisplayFormat),
		PollIntervalSeconds: responsePollInterval(s.PollIntervalSeconds),
	}

	if f, ok := render(reading); ok {
		secs := reading.Seconds
		p.Formatted = f
		p.Seconds = &secs
		p.UptimeAvailable = true
	} else {
		p.Formatted = unknown(msgs.Unknown)
		p.UptimeNote = msgs.Note
	}

	if s.ProcessUptimeEnabled && r.process != nil {
		p.ProcessPayload = r.buildProcess(ctx, msgs)
	}

	r.throttle.Debug(time.Duration(s.DebugThrottleSeconds)*time.Second, "Uptime requested",
		logger.String("uptime", p.Full),
		logger.String("source", string(p.UptimeSource)))

	return p
}

func (r *Reporter) buildProcess(ctx context.Context, msgs Messages) *ProcessPayload {
	reading := r.process.Read(ctx)

	f, ok := render(reading)
	if !ok {
		u := unknown(msgs.Unknown)
		return &ProcessPayload{
			ProcessUptime:    u.Full,
			ProcessUptimeDHM: u.DHM,
			ProcessUptimeDH:  u.DH,
			ProcessUptimeD:   u.D,
		}
	}

	secs := reading.Seconds
	return &ProcessPayload{
		ProcessUptime:          f.Full,
		ProcessUptimeDHM:       f.DHM,
		ProcessUptimeDH:        f.DH,
		ProcessUptimeD:         f.D,
		ProcessSeconds:         &secs,
		ProcessUptimeAvailable: true,
	}
}

func render(reading Reading) (Formatted, bool) {
	if !reading.Available {
		return Formatted{}, false
	}
	f, err := Render(reading.Seconds)
	if err != nil {
		logger.Warn("Discarding unrenderable uptime reading",
			logger.String("source", string(reading.Source)),
			logger.Err(err))
		return Formatted{}, false
	}
	return f, true
}

func unknown(label string) Formatted {
	if label == "" {
		label = "unknown"
	}
	return Formatted{Full: label, DHM: label, DH: label, D: label}
}

func responseDisplayFormat(v string) string {
	if f := DisplayFormat(v); f.Valid() {
		return v
	}
	return string(defaultDisplayFormat)
}

func responsePollInterval(v int) int {
	if v < minPollInterval || v > maxPollInterval {
		return defaultPollInterval
	}
	return v
}
