package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"wm-genai-governance/internal/metrics"
	"wm-genai-governance/internal/models"
	"wm-genai-governance/internal/utils"
	"wm-genai-governance/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrUnknownDemo = errors.New("unknown demo")
	ErrRunInFlight = errors.New("a demo run is already in flight")
	ErrNoDemos     = errors.New("no demo definitions configured")
)

// BackendUnreachableMessage is shown in place of a model response when the call fails for any reason.
const BackendUnreachableMessage = "Model backend is unreachable. Start the governance server " +
	"(go run .) or point DEMO_BACKEND_URL at a running instance, then run the demo again."

// Run outcomes, used as metric labels and in logs.
const (
	RunOutcomeOK          = "ok"
	RunOutcomeUnreachable = "backend_unreachable"
	RunOutcomeStale       = "stale"
)

// DemoInvoker sends one demo request to a model endpoint and returns the decoded JSON reply.
type DemoInvoker interface {
	Invoke(ctx context.Context, demo models.DemoDefinition, input string) (json.RawMessage, error)
}

// HTTPDemoInvoker posts {<input_key>: input} to BaseURL + demo.Endpoint.
type HTTPDemoInvoker struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPDemoInvoker(baseURL string, timeout time.Duration) *HTTPDemoInvoker {
	return &HTTPDemoInvoker{
		BaseURL: baseURL,
		Client:  utils.NewHTTPClient(timeout),
	}
}

func (h *HTTPDemoInvoker) Invoke(ctx context.Context, demo models.DemoDefinition, input string) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]string{demo.InputKey: input})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+demo.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	if !json.Valid(respBody) {
		return nil, errors.New("backend returned a non-JSON body")
	}
	return json.RawMessage(respBody), nil
}

// DemoSessionState is a point-in-time copy of a session for rendering.
type DemoSessionState struct {
	ID         string                  `json:"id"`
	Demo       models.DemoDefinition   `json:"demo"`
	Demos      []models.DemoDefinition `json:"demos"`
	Input      string                  `json:"input"`
	Output     json.RawMessage         `json:"output,omitempty"`
	InFlight   bool                    `json:"in_flight"`
	Generation uint64                  `json:"generation"`
}

// DemoSession is the state behind one open demo page.
//
// Every SelectDemo bumps the generation. A run records the generation it was
// dispatched under and its reply is dropped if the generation has moved on,
// so a slow answer for one demo never lands on another.
type DemoSession struct {
	ID string

	mu         sync.Mutex
	demos      []models.DemoDefinition
	active     models.DemoDefinition
	input      string
	output     json.RawMessage
	inFlight   bool
	generation uint64
	lastUsed   time.Time

	invoker DemoInvoker
	log     *zap.Logger
	now     func() time.Time
}

// NewDemoSession starts on the first definition with its placeholder as input.
func NewDemoSession(id string, demos []models.DemoDefinition, invoker DemoInvoker) (*DemoSession, error) {
	if len(demos) == 0 {
		return nil, ErrNoDemos
	}
	s := &DemoSession{
		ID:      id,
		demos:   append([]models.DemoDefinition(nil), demos...),
		active:  demos[0],
		input:   demos[0].Placeholder,
		invoker: invoker,
		log:     logger.Named("demo").With(zap.String("session_id", id)),
		now:     time.Now,
	}
	s.lastUsed = s.now()
	return s, nil
}

// SelectDemo switches the active demo, resetting input and output.
func (s *DemoSession) SelectDemo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.demos {
		if d.ID == id {
			s.active = d
			s.input = d.Placeholder
			s.output = nil
			s.generation++
			s.lastUsed = s.now()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDemo, id)
}

// SetInput replaces the input text as-is.
func (s *DemoSession) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
	s.lastUsed = s.now()
}

// Input returns the current input text.
func (s *DemoSession) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

type dispatch struct {
	generation uint64
	demo       models.DemoDefinition
	input      string
}

func (s *DemoSession) begin() (dispatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return dispatch{}, ErrRunInFlight
	}
	s.inFlight = true
	s.lastUsed = s.now()
	return dispatch{generation: s.generation, demo: s.active, input: s.input}, nil
}

func (s *DemoSession) execute(ctx context.Context, d dispatch) string {
	s.log.Info("demo run dispatched", zap.String("demo", d.demo.ID), zap.Uint64("generation", d.generation))

	start := time.Now()
	payload, err := s.invoker.Invoke(ctx, d.demo, d.input)
	metrics.DemoRunDuration.WithLabelValues(d.demo.ID).Observe(time.Since(start).Seconds())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	s.lastUsed = s.now()

	outcome := RunOutcomeOK
	switch {
	case d.generation != s.generation:
		outcome = RunOutcomeStale
		metrics.DemoStaleResponses.WithLabelValues(d.demo.ID).Inc()
		s.log.Info("stale demo response discarded",
			zap.String("demo", d.demo.ID),
			zap.Uint64("dispatched_generation", d.generation),
			zap.Uint64("current_generation", s.generation),
		)
	case err != nil:
		outcome = RunOutcomeUnreachable
		s.output = unreachablePayload()
		s.log.Warn("demo backend unreachable", zap.String("demo", d.demo.ID), zap.Error(err))
	default:
		s.output = payload
	}

	metrics.DemoRunsTotal.WithLabelValues(d.demo.ID, outcome).Inc()
	return outcome
}

// Run performs one request for the active demo and waits for it.
// It returns ErrRunInFlight without side effects if a run is already pending.
func (s *DemoSession) Run(ctx context.Context) (string, error) {
	d, err := s.begin()
	if err != nil {
		return "", err
	}
	return s.execute(ctx, d), nil
}

// RunAsync dispatches a run in the background. done, if non-nil, receives the outcome.
func (s *DemoSession) RunAsync(ctx context.Context, done func(outcome string)) error {
	d, err := s.begin()
	if err != nil {
		return err
	}
	go func() {
		outcome := s.execute(ctx, d)
		if done != nil {
			done(outcome)
		}
	}()
	return nil
}

func (s *DemoSession) Snapshot() DemoSessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out json.RawMessage
	if s.output != nil {
		out = append(json.RawMessage(nil), s.output...)
	}
	return DemoSessionState{
		ID:         s.ID,
		Demo:       s.active,
		Demos:      append([]models.DemoDefinition(nil), s.demos...),
		Input:      s.input,
		Output:     out,
		InFlight:   s.inFlight,
		Generation: s.generation,
	}
}

// idleSince reports the last activity; sessions with a run pending are never idle.
func (s *DemoSession) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed, !s.inFlight
}

func unreachablePayload() json.RawMessage {
	b, _ := json.Marshal(map[string]string{"error": BackendUnreachableMessage})
	return b
}
