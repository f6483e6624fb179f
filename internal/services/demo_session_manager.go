package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"wm-genai-governance/internal/metrics"
	"wm-genai-governance/internal/models"
	"wm-genai-governance/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("demo session not found")

// DemoSessionManager owns the open demo sessions. Sessions share nothing but the invoker.
type DemoSessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*DemoSession
	demos    []models.DemoDefinition
	invoker  DemoInvoker
	idleTTL  time.Duration
	now      func() time.Time
}

// DemoSessions is set up in main once the demo definitions are loaded.
var DemoSessions *DemoSessionManager

func NewDemoSessionManager(demos []models.DemoDefinition, invoker DemoInvoker, idleTTL time.Duration) *DemoSessionManager {
	return &DemoSessionManager{
		sessions: make(map[string]*DemoSession),
		demos:    demos,
		invoker:  invoker,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Create opens a new session on the default demo.
func (m *DemoSessionManager) Create() (*DemoSession, error) {
	s, err := NewDemoSession(uuid.New().String(), m.demos, m.invoker)
	if err != nil {
		return nil, err
	}
	s.now = m.now
	s.lastUsed = m.now()

	m.mu.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.DemoActiveSessions.Set(float64(count))
	return s, nil
}

func (m *DemoSessionManager) Get(id string) (*DemoSession, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete discards a session. A run still in flight finishes against the orphaned session.
func (m *DemoSessionManager) Delete(id string) error {
	m.mu.Lock()
	if _, ok := m.sessions[id]; !ok {
		m.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.DemoActiveSessions.Set(float64(count))
	return nil
}

func (m *DemoSessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many went.
func (m *DemoSessionManager) Sweep() int {
	if m.idleTTL <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.idleTTL)

	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		last, idle := s.idleSince()
		if idle && last.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.DemoActiveSessions.Set(float64(count))
	return removed
}

// Start sweeps idle sessions every interval until ctx is done.
func (m *DemoSessionManager) Start(ctx context.Context, interval time.Duration) {
	log := logger.Named("demo")
	log.Info("demo session sweeper started", zap.Duration("interval", interval), zap.Duration("idle_ttl", m.idleTTL))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				log.Info("idle demo sessions removed", zap.Int("count", n))
			}
		case <-ctx.Done():
			log.Info("demo session sweeper stopped")
			return
		}
	}
}
