package hub

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
	"github.com/wvwild/adventure-hub/internal/domain/filter"
	apperrors "github.com/wvwild/adventure-hub/pkg/errors"
	"github.com/wvwild/adventure-hub/pkg/metrics"
)

const defaultSessionTTL = 30 * time.Minute

// Service exposes the adventure hub use-cases.
type Service interface {
	Search(ctx context.Context, state filter.State) (filter.View, error)
	Adventure(ctx context.Context, id string) (adventure.Adventure, error)
	Facets(ctx context.Context) (filter.Facets, error)
	OpenSession(ctx context.Context) (SessionView, error)
	Session(ctx context.Context, id string) (SessionView, error)
	Dispatch(ctx context.Context, id string, action filter.Action) (SessionView, error)
	Toggle(ctx context.Context, id string, req ToggleRequest) (SessionView, error)
	CloseSession(ctx context.Context, id string) error
	Count() int
}

type service struct {
	cfg     Config
	catalog *adventure.Catalog
	store   SessionStore
	logger  *slog.Logger
	locks   *keyedMutex
	facets  filter.Facets
	newID   func() string
	now     func() time.Time
}

// NewService wires up the hub domain.
func NewService(cfg Config, catalog *adventure.Catalog, store SessionStore, logger *slog.Logger) Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	return &service{
		cfg:     cfg,
		catalog: catalog,
		store:   store,
		logger:  logger.With("component", "hub.service"),
		locks:   newKeyedMutex(),
		facets:  filter.BuildFacets(catalog.All()),
		newID:   func() string { return uuid.NewString() },
		now:     time.Now,
	}
}

func (s *service) Count() int {
	return s.catalog.Len()
}

func (s *service) Search(_ context.Context, state filter.State) (filter.View, error) {
	if err := state.Elevation.Check(); err != nil {
		return filter.View{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid elevation range", err)
	}
	metrics.SearchRequestsTotal.Inc()
	view := filter.RestoreProvider(s.catalog.All(), state).View()
	s.observe(view)
	return view, nil
}

func (s *service) Adventure(_ context.Context, id string) (adventure.Adventure, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adventure.Adventure{}, apperrors.Wrap(apperrors.CodeInvalidInput, "adventure id cannot be empty", nil)
	}
	item, ok := s.catalog.Get(id)
	if !ok {
		return adventure.Adventure{}, apperrors.Wrap(apperrors.CodeNotFound, "adventure "+id+" not found", nil)
	}
	return item, nil
}

func (s *service) Facets(_ context.Context) (filter.Facets, error) {
	return s.facets, nil
}

func (s *service) OpenSession(ctx context.Context) (SessionView, error) {
	id := s.newID()
	provider := filter.NewProvider(s.catalog.All())
	if err := s.store.Save(ctx, id, provider.State(), s.cfg.SessionTTL); err != nil {
		return SessionView{}, apperrors.Wrap(apperrors.CodeSessionError, "open session failed", err)
	}
	metrics.SessionsOpened.Inc()
	s.logger.Debug("filter session opened", "session_id", id)
	return s.sessionView(id, provider, nil), nil
}

// Session returns the current view and slides the session expiry forward,
// so the reported expiresAt is the one the store enforces.
func (s *service) Session(ctx context.Context, id string) (SessionView, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	provider, err := s.restore(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	if err := s.store.Save(ctx, id, provider.State(), s.cfg.SessionTTL); err != nil {
		return SessionView{}, apperrors.Wrap(apperrors.CodeSessionError, "refresh session failed", err)
	}
	return s.sessionView(id, provider, nil), nil
}

func (s *service) Dispatch(ctx context.Context, id string, action filter.Action) (SessionView, error) {
	if action == nil {
		return SessionView{}, apperrors.Wrap(apperrors.CodeInvalidAction, "action is required", nil)
	}
	if r, ok := action.(filter.SetRange); ok {
		if err := r.Value.Check(); err != nil {
			return SessionView{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid elevation range", err)
		}
	}

	unlock := s.locks.lock(id)
	defer unlock()

	provider, err := s.restore(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	return s.apply(ctx, id, provider, action)
}

func (s *service) Toggle(ctx context.Context, id string, req ToggleRequest) (SessionView, error) {
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return SessionView{}, apperrors.Wrap(apperrors.CodeInvalidInput, "toggle value cannot be empty", nil)
	}
	if !req.Axis.IsMultiSelect() && req.Axis != filter.AxisDifficulty {
		return SessionView{}, apperrors.Wrap(apperrors.CodeInvalidInput, "axis "+string(req.Axis)+" cannot be toggled", nil)
	}

	unlock := s.locks.lock(id)
	defer unlock()

	provider, err := s.restore(ctx, id)
	if err != nil {
		return SessionView{}, err
	}

	var action filter.Action
	if req.Axis == filter.AxisDifficulty {
		action = filter.SelectDifficulty(provider.State(), adventure.Difficulty(value))
	} else {
		action = filter.ToggleMultiSelect(provider.State(), req.Axis, value)
	}
	return s.apply(ctx, id, provider, action)
}

func (s *service) CloseSession(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "session id cannot be empty", nil)
	}
	unlock := s.locks.lock(id)
	defer unlock()
	if err := s.store.Delete(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.CodeSessionError, "close session failed", err)
	}
	metrics.SessionsClosed.Inc()
	s.logger.Debug("filter session closed", "session_id", id)
	return nil
}

func (s *service) apply(ctx context.Context, id string, provider *filter.Provider, action filter.Action) (SessionView, error) {
	provider.Dispatch(action)
	if err := s.store.Save(ctx, id, provider.State(), s.cfg.SessionTTL); err != nil {
		return SessionView{}, apperrors.Wrap(apperrors.CodeSessionError, "save session failed", err)
	}
	metrics.DispatchTotal.WithLabelValues(string(action.Type())).Inc()
	envelope := filter.EnvelopeOf(action)
	view := s.sessionView(id, provider, &envelope)
	s.observe(view.View)
	s.logger.Debug("filter action dispatched", "session_id", id, "action", action.Type(), "active_filters", view.ActiveFilterCount, "matches", len(view.Adventures))
	return view, nil
}

func (s *service) restore(ctx context.Context, id string) (*filter.Provider, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "session id cannot be empty", nil)
	}
	state, found, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeSessionError, "load session failed", err)
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.CodeSessionNotFound, "session "+id+" not found or expired", nil)
	}
	return filter.RestoreProvider(s.catalog.All(), state), nil
}

func (s *service) sessionView(id string, provider *filter.Provider, action *filter.ActionEnvelope) SessionView {
	return SessionView{
		ID:        id,
		ExpiresAt: s.now().Add(s.cfg.SessionTTL).UTC(),
		Action:    action,
		View:      provider.View(),
	}
}

func (s *service) observe(view filter.View) {
	if len(view.Adventures) == 0 {
		metrics.EmptyResultsTotal.Inc()
	}
}
