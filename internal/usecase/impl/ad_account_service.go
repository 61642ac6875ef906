package impl

import (
	"context"
	"log/slog"
	"time"

	"adchecker/config"
	deliverycontext "adchecker/internal/delivery/context"
	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/repository"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"
	"adchecker/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// AdAccountServiceParams holds dependencies for the ad account service, injected by Fx.
type AdAccountServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	CacheRepo      repository.AccountCacheRepository
	Cipher         service.TokenCipher
	Fetcher        service.AdAccountFetcher
	Publisher      service.EventPublisher
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// adAccountService implements the read-through account cache.
type adAccountService struct {
	credentialRepo repository.CredentialRepository
	cacheRepo      repository.AccountCacheRepository
	cipher         service.TokenCipher
	fetcher        service.AdAccountFetcher
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder
	retainPerUser  int
	logger         *slog.Logger
	now            func() time.Time
}

// NewAdAccountService is the constructor for adAccountService.
func NewAdAccountService(params AdAccountServiceParams) usecase.AdAccountUsecase {
	return newAdAccountService(params, time.Now)
}

func newAdAccountService(params AdAccountServiceParams, now func() time.Time) *adAccountService {
	retain := 0
	if params.Config != nil {
		retain = params.Config.Cache.Retain()
	}

	return &adAccountService{
		credentialRepo: params.CredentialRepo,
		cacheRepo:      params.CacheRepo,
		cipher:         params.Cipher,
		fetcher:        params.Fetcher,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		retainPerUser:  retain,
		logger:         params.Logger,
		now:            now,
	}
}

func (srv *adAccountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAdAccounts serves the newest cached list while it is fresh and refetches otherwise.
func (srv *adAccountService) GetAdAccounts(ctx context.Context, userID uuid.UUID) ([]entity.AdAccount, error) {
	accounts, ok, err := srv.readIfFresh(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ok {
		return accounts, nil
	}

	accounts, err = srv.fetchAndStore(ctx, userID, service.RefreshTriggerRead)
	if err != nil {
		return nil, err
	}

	if srv.retainPerUser > 0 {
		pruned, err := srv.cacheRepo.PruneByUserID(context.WithoutCancel(ctx), userID, srv.retainPerUser)
		if err != nil {
			srv.log(ctx).Warn("Account cache prune failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		} else if pruned > 0 {
			srv.log(ctx).Debug("Account cache pruned", slog.String("user_id", userID.String()), slog.Int64("rows", pruned))
		}
	}

	return accounts, nil
}

// SyncAdAccounts invalidates before fetching so a failed sync leaves no cache rather than a stale one.
func (srv *adAccountService) SyncAdAccounts(ctx context.Context, userID uuid.UUID) ([]entity.AdAccount, error) {
	if err := srv.cacheRepo.DeleteByUserID(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to invalidate account cache")
	}

	return srv.fetchAndStore(ctx, userID, service.RefreshTriggerSync)
}

// readIfFresh applies the single freshness rule to the newest snapshot.
func (srv *adAccountService) readIfFresh(ctx context.Context, userID uuid.UUID) ([]entity.AdAccount, bool, error) {
	entry, err := srv.cacheRepo.FindLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			srv.metrics.ObserveCacheLookup(service.CacheResultMiss)

			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read account cache")
	}

	if !entry.IsFresh(srv.now()) {
		srv.metrics.ObserveCacheLookup(service.CacheResultStale)

		return nil, false, nil
	}

	accounts, err := entry.Accounts()
	if err != nil {
		srv.log(ctx).Warn("Discarding unreadable account cache entry",
			slog.String("user_id", userID.String()),
			slog.String("entry_id", entry.ID.String()),
			slog.Any("error", err),
		)
		srv.metrics.ObserveCacheLookup(service.CacheResultMiss)

		return nil, false, nil
	}

	srv.metrics.ObserveCacheLookup(service.CacheResultHit)

	return accounts, true, nil
}

// fetchAndStore loads the active token, calls the upstream once and writes a new snapshot.
// The upstream call and the write run detached from the caller's cancellation.
func (srv *adAccountService) fetchAndStore(ctx context.Context, userID uuid.UUID, trigger string) ([]entity.AdAccount, error) {
	accessToken, err := srv.loadActiveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	detached := context.WithoutCancel(ctx)

	accounts, err := srv.fetcher.FetchAdAccounts(detached, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Ad account fetch failed",
			slog.String("user_id", userID.String()),
			slog.String("trigger", trigger),
			slog.Bool("reauth_required", domainerrors.RequiresReauth(err)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to fetch ad accounts")
	}

	payload, err := entity.NewAccountListPayload(accounts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode account list")
	}

	entry := &entity.CachedAccountList{
		UserID:   userID,
		Payload:  payload,
		CachedAt: srv.now().UTC(),
	}
	if err := srv.cacheRepo.Create(detached, entry); err != nil {
		return nil, errors.Wrap(err, "failed to write account cache")
	}

	srv.log(ctx).Info("Ad accounts refreshed",
		slog.String("user_id", userID.String()),
		slog.String("trigger", trigger),
		slog.Int("count", len(accounts)),
	)

	srv.publish(ctx, &service.AccountEvent{
		Type:         service.EventAdAccountsRefreshed,
		UserID:       userID.String(),
		Trigger:      trigger,
		AccountCount: len(accounts),
		OccurredAt:   entry.CachedAt,
	})

	if accounts == nil {
		accounts = []entity.AdAccount{}
	}

	return accounts, nil
}

// loadActiveToken decrypts the newest credential of the user.
func (srv *adAccountService) loadActiveToken(ctx context.Context, userID uuid.UUID) (string, error) {
	credential, err := srv.credentialRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", domainerrors.ErrNoCredential
		}

		return "", errors.Wrap(err, "failed to load credential")
	}

	accessToken, err := srv.cipher.Decrypt(credential.EncryptedToken)
	if err != nil {
		srv.log(ctx).Warn("Stored access token could not be decrypted", slog.String("user_id", userID.String()))

		return "", domainerrors.ErrCredentialUnreadable.WithCause(err)
	}
	if accessToken == "" {
		return "", domainerrors.ErrCredentialUnreadable.WithDetails("empty token")
	}

	return accessToken, nil
}

// publish sends an event on a best-effort basis.
func (srv *adAccountService) publish(ctx context.Context, event *service.AccountEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishAccountEvent(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event", slog.String("type", event.Type), slog.Any("error", err))
	}
}
