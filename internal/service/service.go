package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/pushforge/fcm-composer/internal/client"
	"github.com/pushforge/fcm-composer/internal/payload"
	"github.com/pushforge/fcm-composer/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewSendController,
			fx.As(new(SendProvider)),
		),
	),
)

// ErrSendInFlight is returned when a send is triggered while another one is
// still running. Overlapping sends are rejected rather than interleaved.
var ErrSendInFlight = errors.New("a send is already in flight")

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . SendProvider
type SendProvider interface {
	Send(ctx context.Context, form payload.Form, serverKey string) (string, error)
	ServerKey(ctx context.Context) (string, error)
}

var _ SendProvider = (*SendController)(nil)

type SendController struct {
	cacheProvider      repository.CacheProvider
	persistentProvider repository.PersistentProvider
	gateway            client.GatewayProvider
	logger             *zap.Logger

	inFlight atomic.Bool
}

type SendControllerParams struct {
	fx.In

	CacheProvider      repository.CacheProvider
	PersistentProvider repository.PersistentProvider
	Gateway            client.GatewayProvider
	Logger             *zap.Logger
}

func NewSendController(params SendControllerParams) *SendController {
	return &SendController{
		cacheProvider:      params.CacheProvider,
		persistentProvider: params.PersistentProvider,
		gateway:            params.Gateway,
		logger:             params.Logger,
	}
}

// Send runs one push attempt: snapshot the form into a payload, persist the
// server key, issue the gateway request and render the outcome as status
// text. Any completed HTTP exchange, 2xx or not, yields a "<code>: <body>"
// status and a nil error; transport failures come back as errors.
func (s *SendController) Send(ctx context.Context, form payload.Form, serverKey string) (string, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return "", ErrSendInFlight
	}
	defer s.inFlight.Store(false)

	committed := form.Commit()

	// Both legs run on the caller's context: the key is persisted on every
	// attempt, so a gateway failure must not cancel an in-flight store. A
	// storage failure must not fail the send either, so it is only logged.
	var g errgroup.Group

	g.Go(func() error {
		if err := s.storeServerKey(ctx, serverKey); err != nil {
			s.logger.Warn("persist server key failed", zap.Error(err))
		}
		return nil
	})

	var result client.SendResult
	g.Go(func() error {
		var err error
		result, err = s.gateway.Send(ctx, serverKey, committed)
		return err
	})

	if err := g.Wait(); err != nil {
		return "", err
	}

	return result.StatusText(), nil
}

// ServerKey returns the last persisted server key, or an empty string when
// none was ever stored.
func (s *SendController) ServerKey(ctx context.Context) (string, error) {
	if value, err := s.cacheProvider.Get(repository.ServerKeyPreference); err == nil {
		return value, nil
	}

	value, err := s.persistentProvider.Get(ctx, repository.ServerKeyPreference)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if err := s.cacheProvider.Set(repository.ServerKeyPreference, value); err != nil {
		s.logger.Warn("cache server key failed", zap.Error(err))
	}
	return value, nil
}

func (s *SendController) storeServerKey(ctx context.Context, value string) error {
	if err := s.persistentProvider.Put(ctx, repository.ServerKeyPreference, value); err != nil {
		return err
	}
	return s.cacheProvider.Set(repository.ServerKeyPreference, value)
}
