package recorder

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/caseforge/sdk/testcase"
)

// ErrNoSuchRun indicates the requested run does not exist in the store.
var ErrNoSuchRun = errors.New("no such run")

// Status classifies a case outcome.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Outcome is the recorded result of one test case.
type Outcome struct {
	// CaseID identifies the case; it round-trips through the persisted ID
	// shape, including discriminators.
	CaseID testcase.ID `json:"case_id"`

	// Status is the case's terminal status.
	Status Status `json:"status"`

	// Error is the failure message when Status is StatusFailed.
	Error string `json:"error,omitempty"`

	// StartedAt and CompletedAt are Unix timestamps in milliseconds.
	StartedAt   int64 `json:"started_at"`
	CompletedAt int64 `json:"completed_at"`
}

// RunInfo describes one recorded run.
type RunInfo struct {
	// ID is the run's unique identifier.
	ID string `json:"id"`

	// Suite is the name the run was started under.
	Suite string `json:"suite"`

	// StartedAt is a Unix timestamp in milliseconds.
	StartedAt int64 `json:"started_at"`
}

// Store is the run-recording interface the runner reports to.
type Store interface {
	// Begin creates a new run for the named suite and marks it as the
	// suite's most recent run.
	Begin(ctx context.Context, suite string) (RunInfo, error)

	// Report appends one case outcome to a run.
	Report(ctx context.Context, runID string, outcome Outcome) error

	// Outcomes returns all outcomes reported to a run, in report order.
	Outcomes(ctx context.Context, runID string) ([]Outcome, error)

	// FailedIDs returns the case IDs of a run's failed outcomes, in report
	// order, ready to seed a re-run selection.
	FailedIDs(ctx context.Context, runID string) ([]testcase.ID, error)

	// LastRun resolves the most recent run for a suite. Returns
	// ErrNoSuchRun if the suite has never been recorded.
	LastRun(ctx context.Context, suite string) (RunInfo, error)

	// Close releases the store's resources.
	Close() error
}

// Options configures the backing Redis connection. The zero value connects
// to a local unauthenticated instance, which is what test setups and
// single-machine runs want.
type Options struct {
	// URL is a redis:// or rediss:// connection string. Empty means
	// localhost on the default port.
	URL string

	// TLS, when non-nil, overrides the TLS settings implied by the URL
	// scheme.
	TLS *tls.Config

	// ConnectTimeout bounds dialing and the constructor's ping.
	ConnectTimeout time.Duration

	// ReadTimeout and WriteTimeout bound individual commands.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const (
	defaultURL            = "redis://localhost:6379"
	defaultConnectTimeout = 5 * time.Second
	defaultCommandTimeout = 10 * time.Second
)

func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = defaultURL
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = defaultConnectTimeout
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = defaultCommandTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = defaultCommandTimeout
	}
	return o
}

// Recorder implements Store on Redis.
type Recorder struct {
	client *redis.Client
}

// New connects to Redis and pings it before returning, so a bad URL or an
// unreachable instance fails at construction instead of on the first report.
func New(opts Options) (*Recorder, error) {
	opts = opts.withDefaults()

	parsed, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	parsed.DialTimeout = opts.ConnectTimeout
	parsed.ReadTimeout = opts.ReadTimeout
	parsed.WriteTimeout = opts.WriteTimeout
	if opts.TLS != nil {
		parsed.TLSConfig = opts.TLS
	}

	client := redis.NewClient(parsed)
	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Recorder{client: client}, nil
}

func runKey(runID string) string      { return "caseforge:run:" + runID }
func outcomesKey(runID string) string { return "caseforge:run:" + runID + ":outcomes" }
func lastRunKey(suite string) string  { return "caseforge:suite:" + suite + ":last" }

// Begin creates a new run for the named suite.
func (r *Recorder) Begin(ctx context.Context, suite string) (RunInfo, error) {
	info := RunInfo{
		ID:        uuid.NewString(),
		Suite:     suite,
		StartedAt: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(info)
	if err != nil {
		return RunInfo{}, fmt.Errorf("failed to marshal run info: %w", err)
	}
	if err := r.client.Set(ctx, runKey(info.ID), data, 0).Err(); err != nil {
		return RunInfo{}, fmt.Errorf("failed to store run %s: %w", info.ID, err)
	}
	if err := r.client.Set(ctx, lastRunKey(suite), info.ID, 0).Err(); err != nil {
		return RunInfo{}, fmt.Errorf("failed to update last run for suite %s: %w", suite, err)
	}
	return info, nil
}

// Report appends one outcome to a run's outcome list.
func (r *Recorder) Report(ctx context.Context, runID string, outcome Outcome) error {
	exists, err := r.client.Exists(ctx, runKey(runID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check run %s: %w", runID, err)
	}
	if exists == 0 {
		return fmt.Errorf("run %s: %w", runID, ErrNoSuchRun)
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	if err := r.client.RPush(ctx, outcomesKey(runID), data).Err(); err != nil {
		return fmt.Errorf("failed to store outcome for run %s: %w", runID, err)
	}
	return nil
}

// Outcomes returns all outcomes reported to a run, in report order.
func (r *Recorder) Outcomes(ctx context.Context, runID string) ([]Outcome, error) {
	exists, err := r.client.Exists(ctx, runKey(runID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check run %s: %w", runID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %s: %w", runID, ErrNoSuchRun)
	}

	raw, err := r.client.LRange(ctx, outcomesKey(runID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read outcomes for run %s: %w", runID, err)
	}

	outcomes := make([]Outcome, 0, len(raw))
	for _, item := range raw {
		var o Outcome
		if err := json.Unmarshal([]byte(item), &o); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outcome for run %s: %w", runID, err)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

// FailedIDs returns the case IDs of a run's failed outcomes.
func (r *Recorder) FailedIDs(ctx context.Context, runID string) ([]testcase.ID, error) {
	outcomes, err := r.Outcomes(ctx, runID)
	if err != nil {
		return nil, err
	}
	var ids []testcase.ID
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			ids = append(ids, o.CaseID)
		}
	}
	return ids, nil
}

// LastRun resolves the most recent run recorded for a suite.
func (r *Recorder) LastRun(ctx context.Context, suite string) (RunInfo, error) {
	runID, err := r.client.Get(ctx, lastRunKey(suite)).Result()
	if err != nil {
		if err == redis.Nil {
			return RunInfo{}, fmt.Errorf("suite %s: %w", suite, ErrNoSuchRun)
		}
		return RunInfo{}, fmt.Errorf("failed to resolve last run for suite %s: %w", suite, err)
	}

	data, err := r.client.Get(ctx, runKey(runID)).Result()
	if err != nil {
		if err == redis.Nil {
			return RunInfo{}, fmt.Errorf("run %s: %w", runID, ErrNoSuchRun)
		}
		return RunInfo{}, fmt.Errorf("failed to read run %s: %w", runID, err)
	}

	var info RunInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return RunInfo{}, fmt.Errorf("failed to unmarshal run %s: %w", runID, err)
	}
	return info, nil
}

// Close closes the Redis connection.
func (r *Recorder) Close() error {
	return r.client.Close()
}
