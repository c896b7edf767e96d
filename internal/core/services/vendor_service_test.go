package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

func TestVendorService_CreateVendor(t *testing.T) {
	store := newMemStore()
	svc := services.NewVendorService(store, store)
	ctx := context.Background()

	v, err := svc.CreateVendor(ctx, dto.CreateVendorRequest{VendorNumber: "V-1", VendorName: "Coastal Produce"}, "buyer")
	require.NoError(t, err)
	assert.True(t, v.IsActive)
	assert.Equal(t, domain.DefaultPaymentTermsDays, v.PaymentTermsDays)
	assert.Equal(t, "buyer", v.CreatedBy)

	_, err = svc.CreateVendor(ctx, dto.CreateVendorRequest{VendorNumber: "V-1", VendorName: "Copy"}, "buyer")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = svc.CreateVendor(ctx, dto.CreateVendorRequest{VendorNumber: "V-2", VendorName: "  "}, "buyer")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateVendor(ctx, dto.CreateVendorRequest{VendorNumber: "V-3", VendorName: "Bad Tax", TaxID: "123456789"}, "buyer")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestVendorService_UpdateVendor(t *testing.T) {
	store := newMemStore()
	svc := services.NewVendorService(store, store)
	ctx := context.Background()

	v, err := svc.CreateVendor(ctx, dto.CreateVendorRequest{VendorNumber: "V-1", VendorName: "Coastal Produce"}, "buyer")
	require.NoError(t, err)

	terms, taxID, active := 45, "98-7654321", false
	updated, err := svc.UpdateVendor(ctx, v.VendorID, dto.UpdateVendorRequest{PaymentTermsDays: &terms, TaxID: &taxID, IsActive: &active}, "manager")
	require.NoError(t, err)
	assert.Equal(t, 45, updated.TermsDays())
	assert.Equal(t, "98-7654321", updated.TaxID)
	assert.Equal(t, "manager", updated.LastUpdatedBy)

	activeOnly, err := svc.ListVendors(ctx, true)
	require.NoError(t, err)
	assert.NotNil(t, activeOnly)
	assert.Empty(t, activeOnly)

	bad := "12-34"
	_, err = svc.UpdateVendor(ctx, v.VendorID, dto.UpdateVendorRequest{TaxID: &bad}, "manager")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UpdateVendor(ctx, "missing", dto.UpdateVendorRequest{}, "manager")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVendorService_TaxRates(t *testing.T) {
	store := newMemStore()
	svc := services.NewVendorService(store, store)
	ctx := context.Background()

	rate, err := svc.CreateTaxRate(ctx, dto.CreateTaxRateRequest{Name: "State", Rate: dec("0.0625")}, "buyer")
	require.NoError(t, err)
	assert.True(t, rate.IsActive)

	got, err := svc.GetTaxRateByID(ctx, rate.TaxRateID)
	require.NoError(t, err)
	assert.Equal(t, "0.0625", got.Rate.String())

	_, err = svc.CreateTaxRate(ctx, dto.CreateTaxRateRequest{Name: "Typo", Rate: dec("8.25")}, "buyer")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.CreateTaxRate(ctx, dto.CreateTaxRateRequest{Name: "Negative", Rate: dec("-0.01")}, "buyer")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	rates, err := svc.ListTaxRates(ctx, true)
	require.NoError(t, err)
	assert.Len(t, rates, 1)
}
