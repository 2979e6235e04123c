package docs_test

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/SscSPs/firm_books/cmd/docs"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/handlers"
	"github.com/SscSPs/firm_books/internal/platform/config"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]struct {
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	return doc
}

// jsonFields returns the JSON names of v's fields and those bound as required.
func jsonFields(v any) (names []string, required []string) {
	typ := reflect.TypeOf(v)
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
		for _, rule := range strings.Split(f.Tag.Get("binding"), ",") {
			if rule == "required" {
				required = append(required, name)
			}
		}
	}
	sort.Strings(names)
	sort.Strings(required)
	return names, required
}

func TestDefinitionsMatchDTOs(t *testing.T) {
	doc := readDoc(t)

	types := map[string]any{
		"dto.AccountAmountResponse":      dto.AccountAmountResponse{},
		"dto.BalanceSheetResponse":       dto.BalanceSheetResponse{},
		"dto.CashBookResponse":           dto.CashBookResponse{},
		"dto.CashBookRowResponse":        dto.CashBookRowResponse{},
		"dto.ClassifyRequest":            dto.ClassifyRequest{},
		"dto.ClassifyResponse":           dto.ClassifyResponse{},
		"dto.CreateInvoiceRequest":       dto.CreateInvoiceRequest{},
		"dto.CreateJournalRequest":       dto.CreateJournalRequest{},
		"dto.FirmProfileResponse":        dto.FirmProfileResponse{},
		"dto.GeneralLedgerResponse":      dto.GeneralLedgerResponse{},
		"dto.GeneralLedgerRowResponse":   dto.GeneralLedgerRowResponse{},
		"dto.ImportJournalsResponse":     dto.ImportJournalsResponse{},
		"dto.InventoryItemRequest":       dto.InventoryItemRequest{},
		"dto.InventoryItemResponse":      dto.InventoryItemResponse{},
		"dto.InventorySummaryResponse":   dto.InventorySummaryResponse{},
		"dto.InvoiceComputationResponse": dto.InvoiceComputationResponse{},
		"dto.InvoiceLineRequest":         dto.InvoiceLineRequest{},
		"dto.InvoiceLineResponse":        dto.InvoiceLineResponse{},
		"dto.InvoiceLinesRequest":        dto.InvoiceLinesRequest{},
		"dto.InvoiceResponse":            dto.InvoiceResponse{},
		"dto.InvoiceTotalsResponse":      dto.InvoiceTotalsResponse{},
		"dto.JournalBookResponse":        dto.JournalBookResponse{},
		"dto.JournalResponse":            dto.JournalResponse{},
		"dto.ListInventoryResponse":      dto.ListInventoryResponse{},
		"dto.ListJournalsResponse":       dto.ListJournalsResponse{},
		"dto.PostingRequest":             dto.PostingRequest{},
		"dto.PostingResponse":            dto.PostingResponse{},
		"dto.ProfitAndLossResponse":      dto.ProfitAndLossResponse{},
		"dto.ReportHeader":               dto.ReportHeader{},
		"dto.SummaryResponse":            dto.SummaryResponse{},
		"dto.TrialBalanceResponse":       dto.TrialBalanceResponse{},
		"dto.TrialBalanceRowResponse":    dto.TrialBalanceRowResponse{},
		"dto.UpdateFirmProfileRequest":   dto.UpdateFirmProfileRequest{},
	}

	for name := range doc.Definitions {
		if !strings.HasPrefix(name, "dto.") {
			continue
		}
		_, known := types[name]
		assert.True(t, known, "%s is documented but not listed here", name)
	}

	for name, v := range types {
		t.Run(name, func(t *testing.T) {
			def, ok := doc.Definitions[name]
			require.True(t, ok, "missing definition")

			documented := make([]string, 0, len(def.Properties))
			for prop := range def.Properties {
				documented = append(documented, prop)
			}
			sort.Strings(documented)
			required := append([]string(nil), def.Required...)
			sort.Strings(required)

			wantNames, wantRequired := jsonFields(v)
			assert.Equal(t, wantNames, documented)
			assert.Equal(t, wantRequired, nilIfEmpty(required))
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestPathsMatchRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{IsProduction: true}
	require.NoError(t, handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{}, &utils.PosthogClientWrapper{}))

	var routes []string
	for _, route := range r.Routes() {
		if !strings.HasPrefix(route.Path, docs.SwaggerInfo.BasePath+"/") {
			continue
		}
		routes = append(routes, route.Method+" "+strings.TrimPrefix(route.Path, docs.SwaggerInfo.BasePath))
	}
	sort.Strings(routes)

	var documented []string
	for path, ops := range readDoc(t).Paths {
		ginPath := path
		for strings.Contains(ginPath, "{") {
			start := strings.Index(ginPath, "{")
			end := strings.Index(ginPath, "}")
			ginPath = ginPath[:start] + ":" + ginPath[start+1:end] + ginPath[end+1:]
		}
		for method := range ops {
			documented = append(documented, strings.ToUpper(method)+" "+ginPath)
		}
	}
	sort.Strings(documented)

	assert.Equal(t, routes, documented)
}
