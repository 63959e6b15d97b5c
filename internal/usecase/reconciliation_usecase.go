package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ReconciliationSettings are the non-secret inputs of a run.
type ReconciliationSettings struct {
	Zone            string
	DefaultCurrency string
	Location        *time.Location
}

// IReconciliationUseCase runs one inbound event through the pipeline:
// verify, extract, acquire token, resolve customer and references, write ledger.
//
// The returned result always carries the terminal state; err is non-nil for
// Rejected and Failed runs.
type IReconciliationUseCase interface {
	Reconcile(ctx context.Context, payload []byte, signatureHeader string) (entities.ReconciliationResult, error)
}

type ReconciliationUseCase struct {
	secrets  interfaces.ISecretStore
	verifier interfaces.IEventVerifier
	tokens   interfaces.ITokenProvider
	profiles interfaces.IAccountProfile
	resolver IReferenceResolverUseCase
	ledger   ILedgerWriterUseCase
	settings ReconciliationSettings
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	secrets interfaces.ISecretStore,
	verifier interfaces.IEventVerifier,
	tokens interfaces.ITokenProvider,
	profiles interfaces.IAccountProfile,
	resolver IReferenceResolverUseCase,
	ledger ILedgerWriterUseCase,
	settings ReconciliationSettings,
) *ReconciliationUseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &ReconciliationUseCase{
		secrets:  secrets,
		verifier: verifier,
		tokens:   tokens,
		profiles: profiles,
		resolver: resolver,
		ledger:   ledger,
		settings: settings,
	}
}

func (u *ReconciliationUseCase) Reconcile(ctx context.Context, payload []byte, signatureHeader string) (entities.ReconciliationResult, error) {
	res := entities.ReconciliationResult{RunID: uuid.NewString()}
	log.Printf("[reconcile][usecase] start run_id=%s payload_len=%d", res.RunID, len(payload))

	reject := func(err error) (entities.ReconciliationResult, error) {
		res.State = entities.RunStateRejected
		log.Printf("[reconcile][usecase] rejected run_id=%s err=%v", res.RunID, err)
		return res, err
	}
	fail := func(stage string, err error) (entities.ReconciliationResult, error) {
		res.State = entities.RunStateFailed
		log.Printf("[reconcile][usecase] failed run_id=%s stage=%s reference=%s err=%v", res.RunID, stage, res.Transaction.ReferenceID, err)
		return res, err
	}

	webhookSecret, err := u.requireSecret(ctx, interfaces.SecretStripeWebhookKey)
	if err != nil {
		return reject(err)
	}

	ev, err := u.verifier.Verify(payload, signatureHeader, webhookSecret)
	if err != nil {
		return reject(classifyVerifyError(err))
	}
	res.EventID, res.EventType = ev.ID, ev.Type
	log.Printf("[reconcile][usecase] verified run_id=%s event_id=%s type=%s", res.RunID, ev.ID, ev.Type)

	tx, ok, err := ExtractTransaction(ev, u.settings.DefaultCurrency, u.settings.Location)
	if err != nil {
		return reject(err)
	}
	if !ok {
		res.State = entities.RunStateIgnored
		log.Printf("[reconcile][usecase] wrong event type; ignored run_id=%s type=%s", res.RunID, ev.Type)
		return res, nil
	}
	res.Transaction = tx
	log.Printf("[reconcile][usecase] extracted run_id=%s reference=%s amount=%s currency=%s date=%s",
		res.RunID, tx.ReferenceID, tx.Amount.StringFixed(2), tx.Currency, tx.SettledDate)

	creds, orgID, err := u.loadAccountingSecrets(ctx)
	if err != nil {
		return reject(err)
	}

	token, err := u.tokens.Refresh(ctx, creds)
	if err != nil {
		if errors.Is(err, interfaces.ErrTokenRejected) {
			err = fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
		}
		return fail("token", err)
	}
	session := entities.AccountingSession{AccessToken: token.Value, OrganizationID: orgID}

	accountName := u.accountName(ctx, ev.Account)

	res.CustomerID, err = u.resolver.ResolveCustomer(ctx, session, accountName)
	if err != nil {
		return fail(RefCustomer, u.checkAccessToken(ctx, creds, err))
	}

	res.References, err = u.resolver.ResolveReferences(ctx, session, tx)
	if err != nil {
		return fail("references", u.checkAccessToken(ctx, creds, err))
	}

	res.Ledger, err = u.ledger.Write(ctx, session, tx, res.CustomerID, res.References)
	if err != nil {
		stage := "ledger"
		var lwe *LedgerWriteError
		if errors.As(err, &lwe) {
			stage = "ledger_" + lwe.Stage
		}
		return fail(stage, u.checkAccessToken(ctx, creds, err))
	}

	res.State = entities.RunStateSucceeded
	log.Printf("[reconcile][usecase] succeeded run_id=%s reference=%s customer_id=%s invoice_id=%s payment_id=%s",
		res.RunID, tx.ReferenceID, res.CustomerID, res.Ledger.InvoiceID, res.Ledger.PaymentID)
	return res, nil
}

// checkAccessToken turns a refused access token into ErrUpstreamAuth and
// evicts it, so the next run exchanges the refresh token again.
func (u *ReconciliationUseCase) checkAccessToken(ctx context.Context, creds entities.OAuthCredentials, err error) error {
	if !errors.Is(err, interfaces.ErrAccessTokenInvalid) {
		return err
	}
	if ierr := u.tokens.Invalidate(ctx, creds); ierr != nil {
		log.Printf("[reconcile][usecase] token invalidation failed err=%v", ierr)
	}
	return fmt.Errorf("%w: %w", ErrUpstreamAuth, err)
}

func (u *ReconciliationUseCase) loadAccountingSecrets(ctx context.Context) (entities.OAuthCredentials, string, error) {
	creds := entities.OAuthCredentials{Zone: u.settings.Zone}
	var orgID string
	for _, s := range []struct {
		key string
		dst *string
	}{
		{interfaces.SecretZohoClientID, &creds.ClientID},
		{interfaces.SecretZohoClientSecret, &creds.ClientSecret},
		{interfaces.SecretZohoRefreshToken, &creds.RefreshToken},
		{interfaces.SecretZohoOrgID, &orgID},
	} {
		v, err := u.requireSecret(ctx, s.key)
		if err != nil {
			return entities.OAuthCredentials{}, "", err
		}
		*s.dst = v
	}
	return creds, orgID, nil
}

func (u *ReconciliationUseCase) requireSecret(ctx context.Context, key string) (string, error) {
	v, err := u.secrets.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read secret %s: %w", key, err)
	}
	if strings.TrimSpace(v) == "" {
		log.Printf("[reconcile][usecase] secret not found key=%s", key)
		return "", fmt.Errorf("%w: %s", ErrConfigurationMissing, key)
	}
	return v, nil
}

// accountName resolves the display name of the originating account. The
// event's connected account wins over the configured one. Lookup failures
// fall back to a fixed name and never fail the run.
func (u *ReconciliationUseCase) accountName(ctx context.Context, eventAccount string) string {
	account := strings.TrimSpace(eventAccount)
	if account == "" {
		account, _ = u.secrets.Get(ctx, interfaces.SecretStripeAccountID)
		account = strings.TrimSpace(account)
	}
	if account == "" || u.profiles == nil {
		return unknownAccountName
	}

	apiKey, err := u.secrets.Get(ctx, interfaces.SecretStripeSecretKey)
	if err != nil || strings.TrimSpace(apiKey) == "" {
		log.Printf("[reconcile][usecase] stripe api key unavailable; using default account name account=%s", account)
		return unknownAccountName
	}

	name, err := u.profiles.DisplayName(ctx, apiKey, account)
	if err != nil {
		log.Printf("[reconcile][usecase] account profile lookup failed account=%s err=%v", account, err)
		return unknownAccountName
	}
	if strings.TrimSpace(name) == "" {
		return account
	}
	return name
}

func classifyVerifyError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrSignatureMismatch):
		return fmt.Errorf("%w: %v", ErrAuthenticationFailure, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
}
