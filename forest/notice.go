package forest

// Op names the operation a Notice reports on
type Op string

const (
	OpCreate Op = "CREATE"
	OpMove   Op = "MOVE"
	OpDelete Op = "DELETE"
)

// Notice is an informational success record such as "CREATE foo/bar".
type Notice struct {
	Op   Op
	Text string
	// Interactive is true when the call came from the shell rather than from
	// code. Sinks use it to decide between queueing and printing.
	Interactive bool
}

// Sink receives success notices. Errors never go through a Sink; they are
// returned to the caller.
type Sink interface {
	Notify(n Notice)
}

// SinkFunc adapts a plain function to [Sink]
type SinkFunc func(n Notice)

func (fn SinkFunc) Notify(n Notice) {
	fn(n)
}

type nopSink struct{}

func (nopSink) Notify(Notice) {}
