package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	customerNamePrefix      = "Stripe: "
	unknownAccountName      = "Unknown Stripe Account"
	clearingItemDescription = "Stripe clearing item"
)

// Reference kinds.
const (
	RefCustomer    = "customer"
	RefCurrency    = "currency"
	RefTax         = "tax"
	RefItem        = "item"
	RefBankAccount = "bank_account"
)

var errEmptyRemoteID = errors.New("remote system returned an empty id")

// ReferenceSettings holds the natural keys of the organization-level references.
type ReferenceSettings struct {
	TaxName          string
	ClearingItemName string
	DepositTo        string
}

// IReferenceResolverUseCase resolves (or creates) the remote records an invoice needs.
//
// Every kind is looked up by natural key first; there is no lock around
// lookup-then-create, so two concurrent first-time runs may both create.
type IReferenceResolverUseCase interface {
	ResolveCustomer(ctx context.Context, s entities.AccountingSession, accountName string) (string, error)
	ResolveReferences(ctx context.Context, s entities.AccountingSession, tx entities.Transaction) (entities.ReferenceSet, error)
}

type ReferenceResolverUseCase struct {
	gateway  interfaces.IAccountingGateway
	settings ReferenceSettings
}

var _ IReferenceResolverUseCase = (*ReferenceResolverUseCase)(nil)

func NewReferenceResolverUseCase(gateway interfaces.IAccountingGateway, settings ReferenceSettings) *ReferenceResolverUseCase {
	return &ReferenceResolverUseCase{gateway: gateway, settings: settings}
}

// CustomerDisplayName is the umbrella contact name for an originating account.
func CustomerDisplayName(accountName string) string {
	accountName = strings.TrimSpace(accountName)
	if accountName == "" {
		accountName = unknownAccountName
	}
	return customerNamePrefix + accountName
}

func (u *ReferenceResolverUseCase) ResolveCustomer(ctx context.Context, s entities.AccountingSession, accountName string) (string, error) {
	name := CustomerDisplayName(accountName)
	return u.lookupOrCreate(ctx, RefCustomer, name,
		func() (string, error) { return u.gateway.FindContactByName(ctx, s, name) },
		func() (string, error) { return u.gateway.CreateContact(ctx, s, name) },
	)
}

func (u *ReferenceResolverUseCase) ResolveReferences(ctx context.Context, s entities.AccountingSession, tx entities.Transaction) (entities.ReferenceSet, error) {
	var refs entities.ReferenceSet

	currencyID, err := u.gateway.FindCurrencyID(ctx, s, tx.Currency)
	if err != nil {
		log.Printf("[reconcile][resolver] currency lookup failed code=%s err=%v", tx.Currency, err)
		return entities.ReferenceSet{}, &ReferenceResolutionError{Kind: RefCurrency, Err: err}
	}
	if currencyID == "" {
		log.Printf("[reconcile][resolver] currency not found; invoice will use the organization default code=%s", tx.Currency)
	}
	refs.CurrencyID = currencyID

	if taxName := strings.TrimSpace(u.settings.TaxName); taxName != "" {
		taxID, err := u.gateway.FindTaxID(ctx, s, taxName)
		if err != nil {
			log.Printf("[reconcile][resolver] tax lookup failed name=%q err=%v", taxName, err)
			return entities.ReferenceSet{}, &ReferenceResolutionError{Kind: RefTax, Err: err}
		}
		if taxID == "" {
			log.Printf("[reconcile][resolver] tax not found; invoice will carry no tax name=%q", taxName)
		}
		refs.TaxID = taxID
	}

	itemName := u.settings.ClearingItemName
	refs.ItemID, err = u.lookupOrCreate(ctx, RefItem, itemName,
		func() (string, error) { return u.gateway.FindItemID(ctx, s, itemName) },
		func() (string, error) {
			return u.gateway.CreateItem(ctx, s, entities.ItemDraft{Name: itemName, Rate: decimal.Zero, Description: clearingItemDescription})
		},
	)
	if err != nil {
		return entities.ReferenceSet{}, err
	}

	account := u.settings.DepositTo
	refs.BankAccountID, err = u.lookupOrCreate(ctx, RefBankAccount, account,
		func() (string, error) { return u.gateway.FindBankAccountID(ctx, s, account) },
		func() (string, error) { return u.gateway.CreateBankAccount(ctx, s, account) },
	)
	if err != nil {
		return entities.ReferenceSet{}, err
	}

	log.Printf("[reconcile][resolver] references resolved currency_id=%s tax_id=%s item_id=%s bank_account_id=%s",
		refs.CurrencyID, refs.TaxID, refs.ItemID, refs.BankAccountID)
	return refs, nil
}

func (u *ReferenceResolverUseCase) lookupOrCreate(ctx context.Context, kind, key string, find, create func() (string, error)) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", &ReferenceResolutionError{Kind: kind, Err: errors.New("natural key not configured")}
	}
	if err := ctx.Err(); err != nil {
		return "", &ReferenceResolutionError{Kind: kind, Err: err}
	}

	id, err := find()
	if err != nil {
		log.Printf("[reconcile][resolver] lookup failed kind=%s key=%q err=%v", kind, key, err)
		return "", &ReferenceResolutionError{Kind: kind, Err: err}
	}
	if id != "" {
		log.Printf("[reconcile][resolver] found kind=%s key=%q id=%s", kind, key, id)
		return id, nil
	}

	log.Printf("[reconcile][resolver] not found; creating kind=%s key=%q", kind, key)
	id, err = create()
	if err != nil {
		log.Printf("[reconcile][resolver] create failed kind=%s key=%q err=%v", kind, key, err)
		return "", &ReferenceResolutionError{Kind: kind, Err: err}
	}
	if id == "" {
		return "", &ReferenceResolutionError{Kind: kind, Err: errEmptyRemoteID}
	}
	log.Printf("[reconcile][resolver] created kind=%s key=%q id=%s", kind, key, id)
	return id, nil
}
