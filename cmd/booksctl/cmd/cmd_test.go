package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `{"transactions":[
  {"id":"1712000000000","date":"2024-04-01","narration":"Sold goods for 5000",
   "entries":[{"account":"Cash/Bank A/c","debit":5000,"credit":0},{"account":"Sales A/c","debit":"","credit":"5000"}],
   "createdAt":"2024-04-01T10:00:00.000Z"},
  {"id":"1712000000001","date":"2024-05-02","narration":"Paid rent",
   "entries":[{"account":"Rent A/c","debit":"1200.50","credit":0},{"account":"Cash/Bank A/c","debit":0,"credit":1200.5}],
   "createdAt":"2024-05-02T09:30:00.000Z"}
]}`

// run executes booksctl with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("JWT_SECRET", "cli-test-secret")
	t.Setenv("JWT_ISSUER", "firm-books-test")

	// flags keep their values between Execute calls
	output, reportFile, reportFrom, reportTo = "json", "", "", ""
	invoiceItems, tokenUser, tokenTTL = nil, "", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))
	return path
}

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "Paid", "electricity", "bill", "1200")
	require.NoError(t, err)

	var resp dto.ClassifyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Matched)
	assert.Equal(t, "payment", resp.Rule)
	require.Len(t, resp.Postings, 2)
	assert.Equal(t, "1200", resp.Amount.String())
}

func TestClassify_NoMatch(t *testing.T) {
	out, err := run(t, "classify", "adjusted opening stock")
	require.NoError(t, err)
	assert.Contains(t, out, `"matched": false`)
}

func TestReport(t *testing.T) {
	path := writeExport(t)

	out, err := run(t, "report", "trial-balance", "--file", path)
	require.NoError(t, err)
	var tb dto.TrialBalanceResponse
	require.NoError(t, json.Unmarshal([]byte(out), &tb))
	assert.True(t, tb.Totals.Balanced)
	assert.Equal(t, "6200.50", tb.Totals.Debit)

	out, err = run(t, "report", "summary", "--file", path, "--from", "2024-05-01", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "entryCount: 1")
	assert.Contains(t, out, "totalSales: \"0.00\"")
}

func TestReport_Errors(t *testing.T) {
	path := writeExport(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown kind", []string{"report", "cash-flow", "--file", path}},
		{"missing file flag", []string{"report", "summary"}},
		{"file does not exist", []string{"report", "summary", "--file", filepath.Join(t.TempDir(), "nope.json")}},
		{"bad date", []string{"report", "summary", "--file", path, "--from", "01/04/2024"}},
		{"bad output", []string{"report", "summary", "--file", path, "-o", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestInvoice(t *testing.T) {
	out, err := run(t, "invoice", "--item", "Rice,2,100,5", "--item", "Oil,,200")
	require.NoError(t, err)

	var resp dto.InvoiceComputationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "210.00", resp.Items[0].Amount)
	assert.Equal(t, "236.00", resp.Items[1].Amount)
	assert.Equal(t, "446.00", resp.Totals.Total)
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		raw     string
		want    dto.InvoiceLineRequest
		wantErr bool
	}{
		{raw: "Rice,2,100,5", want: dto.InvoiceLineRequest{Name: "Rice", Quantity: "2", Rate: "100", GSTPercent: "5"}},
		{raw: " Oil , , 200 ", want: dto.InvoiceLineRequest{Name: "Oil", Rate: "200"}},
		{raw: "Rice,2", wantErr: true},
		{raw: ",1,100", wantErr: true},
		{raw: "a,b,c,d,e", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseItem(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToken(t *testing.T) {
	out, err := run(t, "token", "--user", "alice", "--ttl", "5m")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(out), "cli-test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "firm-books-test", claims.Issuer)

	_, err = run(t, "token")
	assert.Error(t, err)
}
