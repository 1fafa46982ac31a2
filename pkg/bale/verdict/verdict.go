// Package verdict turns an engine evaluation into an auditable record.
package verdict

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/logic"
)

// Verdict is the outcome of one goal evaluation, with the full
// derivation trace attached for explanation display.
type Verdict struct {
	ID          string
	Pack        string
	Goal        string
	Proved      bool
	Value       logic.Value
	Trace       []string
	EvaluatedAt time.Time
}

// Builder constructs verdicts with monotonic ULID identifiers.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new verdict builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build assembles a verdict from an evaluation result. The trace is
// copied so the verdict stays stable if the engine keeps evaluating.
func (b *Builder) Build(pack, goal string, value logic.Value, proved bool, trace []string) Verdict {
	tr := make([]string, len(trace))
	copy(tr, trace)

	return Verdict{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		Pack:        pack,
		Goal:        goal,
		Proved:      proved,
		Value:       value,
		Trace:       tr,
		EvaluatedAt: time.Now().UTC(),
	}
}
