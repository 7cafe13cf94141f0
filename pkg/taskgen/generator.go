package taskgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
)

// Progress receives the number of records written since the last call.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
}

// Option configures a Generator.
type Option func(*Generator)

// WithMix replaces DefaultMix. The mix is validated by New.
func WithMix(mix []Share) Option {
	return func(g *Generator) {
		g.mix = append([]Share(nil), mix...)
	}
}

// WithProgress reports every written record to p.
func WithProgress(p Progress) Option {
	return func(g *Generator) {
		g.progress = p
	}
}

// Generator produces ATM service task files.
//
// All randomness comes from the *rand.Rand handed to New, so two
// generators built from identically seeded sources produce identical
// output. A Generator is not safe for concurrent use.
type Generator struct {
	id       string
	rand     *rand.Rand
	mix      []Share
	progress Progress
}

// New creates a generator drawing from r. A nil r gets a freshly seeded
// PCG source.
func New(r *rand.Rand, opts ...Option) (*Generator, error) {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g := &Generator{id: uuid.New().String(), rand: r, mix: DefaultMix}
	for _, opt := range opts {
		opt(g)
	}

	if err := ValidateMix(g.mix); err != nil {
		return nil, err
	}
	return g, nil
}

// RunID identifies the generator in logs and summaries.
func (g *Generator) RunID() string {
	return g.id
}

// Tasks builds the shuffled category pool for lines records and passes
// each record to fn in emission order. Positions beyond the pool get
// FallbackRequestType.
func (g *Generator) Tasks(lines int, fn func(Task) error) error {
	if lines <= 0 {
		return fmt.Errorf("%w: lines must be positive, got %d", ErrInvalidArgument, lines)
	}

	pool := BuildPool(lines, g.mix)
	g.rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for i := range lines {
		requestType := FallbackRequestType
		if i < len(pool) {
			requestType = pool[i]
		}

		t := Task{
			Region:      i%MaxID + 1,
			RequestType: requestType,
			AtmID:       MinID + g.rand.IntN(MaxID-MinID+1),
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}

// Generate writes lines records to w and flushes before returning.
func (g *Generator) Generate(w io.Writer, lines int) (Summary, error) {
	summary := newSummary(g.id, lines)
	start := time.Now()

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	buf := make([]byte, 0, 64)

	err := g.Tasks(lines, func(t Task) error {
		buf = AppendTask(buf[:0], t)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		summary.record(t)
		if g.progress != nil {
			_ = g.progress.Add(1)
		}
		return nil
	})
	if err == nil {
		if ferr := bw.Flush(); ferr != nil {
			err = fmt.Errorf("%w: %w", ErrWriteFailed, ferr)
		}
	}

	summary.Bytes = cw.n
	summary.Elapsed = time.Since(start)
	summary.Fallback = max(lines-poolSize(lines, g.mix), 0)
	return summary, err
}

// WriteFile creates or truncates filename and writes lines records to it.
// Arguments are checked before the file is touched, so an invalid line
// count leaves any existing file intact.
func (g *Generator) WriteFile(filename string, lines int) (summary Summary, err error) {
	if filename == "" {
		return Summary{}, fmt.Errorf("%w: filename is required", ErrInvalidArgument)
	}
	if lines <= 0 {
		return Summary{}, fmt.Errorf("%w: lines must be positive, got %d", ErrInvalidArgument, lines)
	}

	file, err := os.Create(filename)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: cannot write %s: %w", ErrInvalidArgument, filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: close %s: %w", ErrWriteFailed, filename, cerr))
		}
	}()

	summary, err = g.Generate(file, lines)
	summary.Filename = filename
	return summary, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
