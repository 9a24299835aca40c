package transaction

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/dto"
)

type fakeTransactionRepo struct {
	created   *dto.TransactionCreate
	createOut *dto.TransactionRead
	getOut    *dto.TransactionRead
	deleteOut int64
	err       error
}

func (f *fakeTransactionRepo) Create(_ context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error) {
	f.created = create
	return f.createOut, f.err
}

func (f *fakeTransactionRepo) Get(context.Context, int64) (*dto.TransactionRead, error) {
	return f.getOut, f.err
}

func (f *fakeTransactionRepo) Update(_ context.Context, _ int64, _ *dto.TransactionUpdate) (*dto.TransactionRead, error) {
	return f.getOut, f.err
}

func (f *fakeTransactionRepo) Delete(context.Context, int64) (int64, error) {
	return f.deleteOut, f.err
}

func (f *fakeTransactionRepo) ListPaginated(context.Context, dto.TransactionListQuery) ([]*dto.TransactionRead, int64, error) {
	return nil, 0, f.err
}

func (f *fakeTransactionRepo) ListForReport(context.Context, dto.TransactionListQuery, int) ([]*dto.TransactionRead, error) {
	return nil, f.err
}

type fakeExistsRepo struct {
	exists map[int64]bool
	err    error
}

func (f *fakeExistsRepo) Exists(_ context.Context, id int64) (bool, error) {
	return f.exists[id], f.err
}

type fakeClientRepo struct{ fakeExistsRepo }

func (f *fakeClientRepo) Create(context.Context, *dto.ClientCreate) (*dto.ClientRead, error) {
	return nil, nil
}
func (f *fakeClientRepo) Get(context.Context, int64) (*dto.ClientRead, error) { return nil, nil }
func (f *fakeClientRepo) Update(context.Context, int64, *dto.ClientUpdate) (*dto.ClientRead, error) {
	return nil, nil
}
func (f *fakeClientRepo) Delete(context.Context, int64) (int64, error) { return 0, nil }
func (f *fakeClientRepo) ListPaginated(context.Context, dto.EntityListQuery) ([]*dto.ClientRead, int64, error) {
	return nil, 0, nil
}
func (f *fakeClientRepo) Autocomplete(context.Context, string, int) ([]*dto.NameRead, error) {
	return nil, nil
}

type fakeBankRepo struct{ fakeExistsRepo }

func (f *fakeBankRepo) Create(context.Context, *dto.BankCreate) (*dto.BankRead, error) {
	return nil, nil
}
func (f *fakeBankRepo) Get(context.Context, int64) (*dto.BankRead, error) { return nil, nil }
func (f *fakeBankRepo) Update(context.Context, int64, *dto.BankUpdate) (*dto.BankRead, error) {
	return nil, nil
}
func (f *fakeBankRepo) Delete(context.Context, int64) (int64, error) { return 0, nil }
func (f *fakeBankRepo) ListPaginated(context.Context, dto.EntityListQuery) ([]*dto.BankRead, int64, error) {
	return nil, 0, nil
}
func (f *fakeBankRepo) Autocomplete(context.Context, string, int) ([]*dto.NameRead, error) {
	return nil, nil
}

type fakeCardRepo struct{ fakeExistsRepo }

func (f *fakeCardRepo) Create(context.Context, *dto.CardCreate) (*dto.CardRead, error) {
	return nil, nil
}
func (f *fakeCardRepo) Get(context.Context, int64) (*dto.CardRead, error) { return nil, nil }
func (f *fakeCardRepo) Update(context.Context, int64, *dto.CardUpdate) (*dto.CardRead, error) {
	return nil, nil
}
func (f *fakeCardRepo) Delete(context.Context, int64) (int64, error) { return 0, nil }
func (f *fakeCardRepo) ListPaginated(context.Context, dto.EntityListQuery) ([]*dto.CardRead, int64, error) {
	return nil, 0, nil
}
func (f *fakeCardRepo) Autocomplete(context.Context, string, int) ([]*dto.NameRead, error) {
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func validCreate() *dto.TransactionCreate {
	return &dto.TransactionCreate{
		TransactionType:   intPtr(1),
		ClientID:          1,
		TransactionAmount: decimal.NewFromInt(1000),
		WithdrawCharges:   decimal.NewFromInt(50),
	}
}

func TestCreateRejectsMissingClient(t *testing.T) {
	repo := &fakeTransactionRepo{}
	clients := &fakeClientRepo{fakeExistsRepo{exists: map[int64]bool{}}}
	svc := New(repo, clients, &fakeBankRepo{}, &fakeCardRepo{}, discardLogger())

	create := validCreate()
	create.ClientID = 99
	_, err := svc.Create(context.Background(), create)

	require.Error(t, err)
	appErr := apperr.From(err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, map[string]string{"field": "client_id"}, appErr.Details)
	assert.Nil(t, repo.created, "repository must not be touched on a failed pre-check")
}

func TestCreateRejectsMissingBankReference(t *testing.T) {
	repo := &fakeTransactionRepo{}
	clients := &fakeClientRepo{fakeExistsRepo{exists: map[int64]bool{1: true}}}
	banks := &fakeBankRepo{fakeExistsRepo{exists: map[int64]bool{}}}
	svc := New(repo, clients, banks, &fakeCardRepo{}, discardLogger())

	create := validCreate()
	create.BankID = int64Ptr(7)
	_, err := svc.Create(context.Background(), create)

	require.Error(t, err)
	appErr := apperr.From(err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, map[string]string{"field": "bank_id"}, appErr.Details)
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	repo := &fakeTransactionRepo{}
	clients := &fakeClientRepo{fakeExistsRepo{exists: map[int64]bool{1: true}}}
	svc := New(repo, clients, &fakeBankRepo{}, &fakeCardRepo{}, discardLogger())

	create := validCreate()
	create.TransactionAmount = decimal.Zero
	_, err := svc.Create(context.Background(), create)

	require.Error(t, err)
	assert.Equal(t, map[string]string{"field": "transaction_amount"}, apperr.From(err).Details)
}

func TestCreatePassesThroughOnValidInput(t *testing.T) {
	want := &dto.TransactionRead{ID: 12, ClientID: 1, TransactionType: 1}
	repo := &fakeTransactionRepo{createOut: want}
	clients := &fakeClientRepo{fakeExistsRepo{exists: map[int64]bool{1: true}}}
	banks := &fakeBankRepo{fakeExistsRepo{exists: map[int64]bool{7: true}}}
	svc := New(repo, clients, banks, &fakeCardRepo{}, discardLogger())

	create := validCreate()
	create.BankID = int64Ptr(7)
	got, err := svc.Create(context.Background(), create)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Same(t, create, repo.created)
}

func TestGetMissingTransactionIsNotFound(t *testing.T) {
	svc := New(&fakeTransactionRepo{}, &fakeClientRepo{}, &fakeBankRepo{}, &fakeCardRepo{}, discardLogger())

	_, err := svc.Get(context.Background(), 404)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.From(err).Code)
}

func TestDeleteZeroRowsIsNotFound(t *testing.T) {
	svc := New(&fakeTransactionRepo{deleteOut: 0}, &fakeClientRepo{}, &fakeBankRepo{}, &fakeCardRepo{}, discardLogger())

	err := svc.Delete(context.Background(), 404)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.From(err).Code)
}

func TestRepositoryFailureBecomesDatabaseError(t *testing.T) {
	repo := &fakeTransactionRepo{err: errors.New("connection refused")}
	svc := New(repo, &fakeClientRepo{}, &fakeBankRepo{}, &fakeCardRepo{}, discardLogger())

	_, _, err := svc.ListPaginated(context.Background(), dto.TransactionListQuery{})

	require.Error(t, err)
	assert.Equal(t, "DATABASE_ERROR", apperr.From(err).Code)
}
