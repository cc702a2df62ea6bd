//go:build temporal_debug

package temporal

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier. Its value is a comma-delimited list of event
names (e.g.: "enter,exit,duration") or a numeric event mask.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "TEMPORAL_DEBUG"

/*
EnvDebugFormatVar defines the environment variable name which selects
the output format of the [DefaultTracer]: "text" (default), "json"
or "logfmt".
*/
const EnvDebugFormatVar = "TEMPORAL_DEBUG_FORMAT"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
debugConfig is populated from the environment via cleanenv.
*/
type debugConfig struct {
	Events string `env:"TEMPORAL_DEBUG"`
	Format string `env:"TEMPORAL_DEBUG_FORMAT" env-default:"text"`
}

/*
DefaultTracer is the package-level [Tracer] implementation. Records
are written through a structured logger at debug level.
*/
type DefaultTracer struct {
	lg *log.Logger
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written. The optional format may be
"text", "json" or "logfmt".
*/
func NewDefaultTracer(writer io.Writer, format ...string) *DefaultTracer {
	f := log.TextFormatter
	if len(format) > 0 {
		switch lc(format[0]) {
		case "json":
			f = log.JSONFormatter
		case "logfmt":
			f = log.LogfmtFormatter
		}
	}

	return &DefaultTracer{
		lg: log.NewWithOptions(writer, log.Options{
			Level:           log.DebugLevel,
			Prefix:          "temporal",
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.000",
			Formatter:       f,
		}),
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool {
	return r.ll.Positive(int(e))
}

/*
Trace writes [TraceRecord] rec to the logger handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(int(rec.Type)) {
		return
	}

	fn := trimFuncName(rec.Func)
	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.lg.Debug("→ "+fn, "args", fmtArgs(rec.Args))
	case EventExit:
		r.lg.Debug("← "+fn, "ret", fmtArgs(rec.Ret))
	default:
		r.lg.Debug("• "+fn, "event", rec.Type.String(), "args", fmtArgs(rec.Args))
	}
}

func trimFuncName(full string) string {
	if i := lidx(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return replaceAll(full, "go-temporal.", "")
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info or Exit
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter: parameters
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if the [EnvDebugVar] environment
variable was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{} // default
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, ok := t.(levelTracer)
	if ok && !lt.Enabled(level) {
		return
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: callerName(),
	}
	if !ok || lt.Enabled(EventIO) {
		if level == EventExit {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}
	t.Trace(rec)
}

func callerName() string {
	// skip: runtime.Callers, callerName, debugEvent
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		name := fr.Function
		if i := lidx(name, "."); i >= 0 && !hasPfx(name[i+1:], "debug") {
			if cntns(name, ".func") {
				name = name[:lidx(name, ".func")]
			}
			return name
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

func debugInfo(args ...any)       { debugEvent(EventInfo, args...) }
func debugIO(args ...any)         { debugEvent(EventIO, args...) }
func debugField(args ...any)      { debugEvent(EventField, args...) }
func debugDate(args ...any)       { debugEvent(EventDate, args...) }
func debugDuration(args ...any)   { debugEvent(EventDuration, args...) }
func debugArith(args ...any)      { debugEvent(EventArith, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }
func debugEnter(args ...any)      { debugEvent(EventEnter, args...) }
func debugExit(args ...any)       { debugEvent(EventExit, args...) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, labels ...any) (li labeledItem) {
	li = labeledItem{V: value}
	var l []string
	for i := 0; i < len(labels); i++ {
		if s, ok := labels[i].(string); ok {
			l = append(l, s)
		}
	}
	li.L = join(l, ` `)

	return
}

func (r labeledItem) String() string {
	l := "<No label>:"
	if r.L != "" {
		l = r.L + ":"
	}

	if err, is := r.V.(error); is || r.V == nil {
		if r.L == "" {
			l = "Error:"
		}
		if err == nil {
			return l + "<Nil error>"
		}
		return l + err.Error()
	}

	return l + fmtArg(r.V)
}

func fmtArgs(args []any) string {
	if len(args) == 0 {
		return "no values"
	}
	strs := make([]string, 0, len(args))
	for _, a := range args {
		strs = append(strs, fmtArg(a))
	}
	return join(strs, ", ")
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case int:
		s = itoa(v)
	case int32:
		s = fmtInt(int64(v), 10)
	case int64:
		s = fmtInt(v, 10)
	case error:
		s = v.Error()
	case interface{ String() string }:
		s = v.String()
	default:
		s = "<unidentified>"
	}
	return
}

func init() {
	var cfg debugConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil || cfg.Events == "" {
		return
	}

	sp := split(cfg.Events, ",")
	var vars []any
	for i := 0; i < len(sp); i++ {
		if n, err := atoi(trimS(sp[i])); err != nil {
			vars = append(vars, lc(trimS(sp[i])))
		} else if n <= int(EventAll) {
			if n < 0 {
				vars = []any{int(EventAll)}
				break
			}
			vars = append(vars, n)
		}
	}

	ll := newLoglevels()
	ll.SetNamesMap(eventNames)
	ll.Shift(vars...)

	dt := NewDefaultTracer(os.Stderr, cfg.Format)
	dt.ll = ll
	EnableDebug(dt)
	debugInfo(newLItem(join(ll.enabled(), `,`), "loglevels"))
}
