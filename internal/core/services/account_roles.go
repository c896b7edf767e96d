package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// AccountRoleResolver maps logical ledger roles to accounts of the chart.
// Successful lookups are cached for the life of the process.
type AccountRoleResolver struct {
	BaseService
	accountRepo portsrepo.AccountReader
	numbers     domain.RoleAccountNumbers

	mu    sync.RWMutex
	cache map[domain.AccountRole]domain.Account
}

// NewAccountRoleResolver creates a resolver for the configured role numbers.
func NewAccountRoleResolver(accountRepo portsrepo.AccountReader, numbers domain.RoleAccountNumbers) *AccountRoleResolver {
	if numbers == nil {
		numbers = domain.RoleAccountNumbers{}
	}
	return &AccountRoleResolver{
		accountRepo: accountRepo,
		numbers:     numbers,
		cache:       make(map[domain.AccountRole]domain.Account),
	}
}

// Resolve returns the account bound to role.
func (r *AccountRoleResolver) Resolve(ctx context.Context, role domain.AccountRole) (domain.Account, error) {
	r.mu.RLock()
	acc, ok := r.cache[role]
	r.mu.RUnlock()
	if ok {
		return acc, nil
	}

	number := r.numbers.Number(role)
	found, err := r.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			r.LogError(ctx, err, "Role account missing from chart",
				slog.String("role", string(role)),
				slog.String("account_number", number))
			return domain.Account{}, fmt.Errorf("%w: account not found: %s (role %s)", apperrors.ErrNotFound, number, role)
		}
		return domain.Account{}, err
	}

	r.mu.Lock()
	r.cache[role] = *found
	r.mu.Unlock()
	return *found, nil
}

// ResolveID is Resolve for callers that only need the account id.
func (r *AccountRoleResolver) ResolveID(ctx context.Context, role domain.AccountRole) (string, error) {
	acc, err := r.Resolve(ctx, role)
	if err != nil {
		return "", err
	}
	return acc.AccountID, nil
}
