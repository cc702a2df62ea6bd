package temporal

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags temporal_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags temporal_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter      EventType = 1 << iota //     1: Called-function begin
	EventInfo                             //     2: Interim function event
	EventExit                             //     4: Called function exit
	EventIO                               //     8: Called function inputs/outputs
	EventField                            //    16: Field range validation
	EventDate                             //    32: Date construction and arithmetic
	EventDuration                         //    64: Duration normalization and arithmetic
	EventArith                            //   128: Exact (arbitrary-precision) arithmetic
	EventConstraint                       //   256: Constraint ops
)

var eventNames = map[int]string{
	int(EventAll):        "all",
	int(EventNone):       "none",
	int(EventEnter):      "enter",
	int(EventInfo):       "info",
	int(EventExit):       "exit",
	int(EventIO):         "io",
	int(EventField):      "field",
	int(EventDate):       "date",
	int(EventDuration):   "duration",
	int(EventArith):      "arith",
	int(EventConstraint): "constraint",
}

/*
String returns the lowercase name of the receiver instance, or the
empty string if the receiver is a composite of several events.
*/
func (r EventType) String() string { return eventNames[int(r)] }
