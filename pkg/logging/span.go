package logging

import "time"

// Span times one registry operation and writes a single line when it ends:
// info on success, warn with the error when the operation was rejected.
type Span struct {
	log    Logger
	op     string
	start  time.Time
	fields []Field
}

// Begin starts a span for op. fields are repeated on the closing line.
func Begin(log Logger, op string, fields ...Field) *Span {
	return &Span{
		log:    log,
		op:     op,
		start:  time.Now(),
		fields: append([]Field{Operation(op)}, fields...),
	}
}

// Elapsed returns the time since Begin.
func (s *Span) Elapsed() time.Duration {
	return time.Since(s.start)
}

// End writes the closing line for err and returns the elapsed time.
func (s *Span) End(err error, fields ...Field) time.Duration {
	elapsed := s.Elapsed()

	all := make([]Field, 0, len(s.fields)+len(fields)+2)
	all = append(all, s.fields...)
	all = append(all, fields...)
	all = append(all, Latency(elapsed))

	if err != nil {
		s.log.Warn(s.op+" rejected", append(all, Error(err))...)
	} else {
		s.log.Info(s.op, all...)
	}
	return elapsed
}
