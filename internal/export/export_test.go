package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
)

func sample() []model.Transaction {
	return []model.Transaction{
		{
			Date:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Type:    model.TypeReceiveFromWallet,
			Name:    "JOHN TAN",
			Amount:  decimal.RequireFromString("150.00"),
			Balance: decimal.RequireFromString("2500.00"),
		},
		{
			Date:    time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			Type:    model.TypePayDirectPayment,
			Name:    "",
			Amount:  decimal.RequireFromString("-75.50"),
			Balance: decimal.RequireFromString("2424.50"),
		},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	err := CSV(&buf, sample())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "date,type,name,amount,balance")
	assert.Contains(t, out, "2025-03-12,Receive from Wallet,JOHN TAN,150.00,2500.00")
	assert.Contains(t, out, "2025-03-13,PayDirect Payment,,-75.50,2424.50")
}

func TestCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := CSV(&buf, nil)
	require.NoError(t, err)

	// Header only.
	assert.Equal(t, "date,type,name,amount,balance\n", buf.String())
}

func TestExcel(t *testing.T) {
	var buf bytes.Buffer
	err := Excel(&buf, sample())
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetTransactions)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Type", "Name", "Amount", "Balance"}, rows[0])
	assert.Equal(t, "2025-03-12", rows[1][0])
	assert.Equal(t, "Receive from Wallet", rows[1][1])
	assert.Equal(t, "JOHN TAN", rows[1][2])
	assert.Equal(t, "150", rows[1][3])
	assert.Equal(t, "PayDirect Payment", rows[2][1])
	assert.Equal(t, "-75.5", rows[2][3])

	summary, err := f.GetRows(sheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, 4)
	assert.Equal(t, []string{"Transactions", "2"}, summary[0])
	assert.Equal(t, []string{"Total received (RM)", "150.00"}, summary[1])
	assert.Equal(t, []string{"Total paid (RM)", "75.50"}, summary[2])
	assert.Equal(t, []string{"Last balance (RM)", "2424.50"}, summary[3])
}
