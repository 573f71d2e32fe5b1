package submissionController

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"server/config"
	. "server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientIDPattern = regexp.MustCompile(`^CLI-\d+-[0-9A-Z]{6}$`)

type appendCall struct {
	sheet string
	rows  [][]interface{}
}

type fakeRowStore struct {
	calls   []appendCall
	failOn  string
	failErr error
}

func (f *fakeRowStore) Append(ctx context.Context, sheet string, rows [][]interface{}) error {
	if sheet == f.failOn {
		return f.failErr
	}
	f.calls = append(f.calls, appendCall{sheet: sheet, rows: rows})
	return nil
}

func (f *fakeRowStore) ReadAll(ctx context.Context, sheet string) ([][]interface{}, error) {
	return nil, nil
}

func (f *fakeRowStore) DeleteRow(ctx context.Context, sheetID int64, rowIndex int64) error {
	return nil
}

func testConfig() config.Config {
	return config.Config{
		SheetPolicies: "Pólizas",
		SheetPlans:    "Cigna Complementario",
		SheetPayments: "Pagos",
	}
}

func scenarioSubmission() Submission {
	return Submission{
		Nombre:      "Ana",
		Apellidos:   "Ruiz",
		Telefono:    "555-1234",
		Dependents:  []Dependent{{Nombre: "Leo", Parentesco: "Hijo"}},
		CignaPlans:  []SupplementalPlan{{Tipo: "Vida"}},
		MetodoPago:  "tarjeta",
		PagoTarjeta: &CardPayment{NumTarjeta: "4111"},
	}
}

func TestSubmit_FullSubmissionWritesThreeSheets(t *testing.T) {
	store := &fakeRowStore{}
	controller := New(store, testConfig())

	clientID, folderName, err := controller.Submit(context.Background(), scenarioSubmission())
	require.NoError(t, err)

	assert.Regexp(t, clientIDPattern, clientID)
	assert.Equal(t, "Ana Ruiz 555-1234", folderName)

	require.Len(t, store.calls, 3)
	assert.Equal(t, "Pólizas", store.calls[0].sheet)
	assert.Equal(t, "Cigna Complementario", store.calls[1].sheet)
	assert.Equal(t, "Pagos", store.calls[2].sheet)

	// Two policy rows (titular + dependent), one plan row, one payment
	// row, all tagged with the same client id.
	policyRows := store.calls[0].rows
	require.Len(t, policyRows, 2)
	assert.Equal(t, "Titular", policyRows[0][4])
	assert.Equal(t, clientID, policyRows[0][len(policyRows[0])-1])
	assert.Equal(t, clientID, policyRows[1][len(policyRows[1])-1])

	require.Len(t, store.calls[1].rows, 1)
	assert.Equal(t, clientID, store.calls[1].rows[0][0])

	require.Len(t, store.calls[2].rows, 1)
	paymentRow := store.calls[2].rows[0]
	assert.Equal(t, clientID, paymentRow[0])
	assert.Equal(t, "tarjeta", paymentRow[3])
	assert.Equal(t, "4111", paymentRow[4])
}

func TestSubmit_MinimalSubmissionWritesOnlyPolicies(t *testing.T) {
	store := &fakeRowStore{}
	controller := New(store, testConfig())

	_, folderName, err := controller.Submit(context.Background(), Submission{Nombre: "Ana"})
	require.NoError(t, err)

	// Trailing blanks from missing surname and phone are trimmed.
	assert.Equal(t, "Ana", folderName)

	require.Len(t, store.calls, 1)
	assert.Equal(t, "Pólizas", store.calls[0].sheet)
}

func TestSubmit_EachCallGetsAFreshClientID(t *testing.T) {
	store := &fakeRowStore{}
	controller := New(store, testConfig())

	first, _, err := controller.Submit(context.Background(), Submission{Nombre: "Ana"})
	require.NoError(t, err)
	second, _, err := controller.Submit(context.Background(), Submission{Nombre: "Ana"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSubmit_PolicyAppendFailureAbortsBeforeOtherSheets(t *testing.T) {
	store := &fakeRowStore{failOn: "Pólizas", failErr: errors.New("quota exceeded")}
	controller := New(store, testConfig())

	_, _, err := controller.Submit(context.Background(), scenarioSubmission())
	require.Error(t, err)
	assert.Empty(t, store.calls)
}

func TestSubmit_PlanAppendFailureLeavesPoliciesPersisted(t *testing.T) {
	store := &fakeRowStore{failOn: "Cigna Complementario", failErr: errors.New("quota exceeded")}
	controller := New(store, testConfig())

	_, _, err := controller.Submit(context.Background(), scenarioSubmission())
	require.Error(t, err)

	// No rollback: the policy rows stay written even though the request
	// fails.
	require.Len(t, store.calls, 1)
	assert.Equal(t, "Pólizas", store.calls[0].sheet)
}
