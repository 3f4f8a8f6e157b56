package sync

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"sync"
	"time"
)

// ConnectivityState состояние связи с сервером.
// Клиент считается online только когда есть и сеть, и живой сервис.
type ConnectivityState struct {
	Network bool // сетевой адрес сервера доступен
	Service bool // сервис отвечает на health probe
}

// Online возвращает true при наличии сети и живого сервиса
func (s ConnectivityState) Online() bool {
	return s.Network && s.Service
}

// String implements fmt.Stringer
func (s ConnectivityState) String() string {
	switch {
	case s.Online():
		return "online"
	case s.Network:
		return "offline (service unavailable)"
	default:
		return "offline (no network)"
	}
}

//go:generate moq -out prober_mock.go . Prober

// Prober проверяет живость сервиса
type Prober interface {
	Health(ctx context.Context) error
}

// Dialer проверяет сетевую доступность адреса
type Dialer func(ctx context.Context, network, address string) (net.Conn, error)

// Monitor наблюдает за сетью и сервисом и сообщает о восстановлении связи
type Monitor struct {
	prober      Prober
	dial        Dialer
	logger      *slog.Logger
	address     string
	interval    time.Duration
	dialTimeout time.Duration
	hasPending  func(ctx context.Context) bool
	state       ConnectivityState
	mu          sync.RWMutex
}

// MonitorOption настраивает Monitor
type MonitorOption func(*Monitor)

// WithInterval задаёт период проверки
func WithInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		m.interval = d
	}
}

// WithDialer заменяет сетевую проверку (используется в тестах)
func WithDialer(d Dialer) MonitorOption {
	return func(m *Monitor) {
		m.dial = d
	}
}

// WithPendingCheck повторяет onOnline на каждом тике, пока связь есть,
// а hasPending сообщает о непустой очереди
func WithPendingCheck(hasPending func(ctx context.Context) bool) MonitorOption {
	return func(m *Monitor) {
		m.hasPending = hasPending
	}
}

// NewMonitor создает монитор для сервера по адресу serverURL
func NewMonitor(serverURL string, prober Prober, logger *slog.Logger, opts ...MonitorOption) (*Monitor, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: host is empty", serverURL)
	}

	address := u.Host
	if u.Port() == "" {
		port := "80"
		if u.Scheme == "https" {
			port = "443"
		}
		address = net.JoinHostPort(u.Hostname(), port)
	}

	m := &Monitor{
		prober:      prober,
		logger:      logger,
		address:     address,
		interval:    10 * time.Second,
		dialTimeout: 3 * time.Second,
	}
	var d net.Dialer
	m.dial = d.DialContext

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// State возвращает последнее известное состояние
func (m *Monitor) State() ConnectivityState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Check проверяет сеть и сервис и запоминает результат
func (m *Monitor) Check(ctx context.Context) ConnectivityState {
	var state ConnectivityState

	dialCtx, cancel := context.WithTimeout(ctx, m.dialTimeout)
	conn, err := m.dial(dialCtx, "tcp", m.address)
	cancel()
	if err == nil {
		state.Network = true
		_ = conn.Close()
	} else {
		m.logger.DebugContext(ctx, "Network probe failed", slog.String("address", m.address), slog.Any("error", err))
	}

	// без сети probe сервиса бессмысленен
	if state.Network {
		if err := m.prober.Health(ctx); err == nil {
			state.Service = true
		} else {
			m.logger.DebugContext(ctx, "Service probe failed", slog.Any("error", err))
		}
	}

	m.mu.Lock()
	prev := m.state
	m.state = state
	m.mu.Unlock()

	if prev != state {
		m.logger.InfoContext(ctx, "Connectivity changed",
			slog.String("from", prev.String()),
			slog.String("to", state.String()))
	}

	return state
}

// Run периодически проверяет связь до отмены ctx.
// onOnline вызывается при каждом переходе из offline в online,
// а также сразу, если связь есть на старте. С WithPendingCheck вызов
// повторяется на каждом тике, пока в очереди остаются операции.
func (m *Monitor) Run(ctx context.Context, onOnline func(ctx context.Context)) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	wasOnline := false
	for {
		state := m.Check(ctx)
		if state.Online() && onOnline != nil {
			switch {
			case !wasOnline:
				onOnline(ctx)
			case m.hasPending != nil && m.hasPending(ctx):
				m.logger.DebugContext(ctx, "Retrying pending operations")
				onOnline(ctx)
			}
		}
		wasOnline = state.Online()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
