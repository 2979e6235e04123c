package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/gin-gonic/gin"
)

const reportsRoutePrefix = "/api/v1/reports/"

// bookEvents names the bookkeeping actions worth counting. Keys are "METHOD route".
var bookEvents = map[string]string{
	http.MethodPost + " /api/v1/journals":            "journal_created",
	http.MethodPost + " /api/v1/journals/classify":   "narration_classified",
	http.MethodPost + " /api/v1/invoices":            "invoice_created",
	http.MethodPost + " /api/v1/invoices/preview":    "invoice_previewed",
	http.MethodPut + " /api/v1/firm":                 "firm_profile_updated",
	http.MethodPost + " /api/v1/inventory":           "inventory_item_created",
	http.MethodPut + " /api/v1/inventory/:itemID":    "inventory_item_updated",
	http.MethodDelete + " /api/v1/inventory/:itemID": "inventory_item_deleted",
	http.MethodGet + " /api/v1/inventory/summary":    "inventory_summary_viewed",
	http.MethodGet + " /api/v1/journals/:journalID":  "journal_viewed",
	http.MethodGet + " /api/v1/invoices/:invoiceID":  "invoice_viewed",
}

// BookEvent returns the analytics event for a matched route, and whether the route is tracked.
// Every report route maps to "report_viewed" with the report name as a property.
func BookEvent(method, route string) (string, map[string]any, bool) {
	if method == http.MethodGet && strings.HasPrefix(route, reportsRoutePrefix) {
		return "report_viewed", map[string]any{"report": strings.TrimPrefix(route, reportsRoutePrefix)}, true
	}
	name, ok := bookEvents[method+" "+route]
	return name, map[string]any{}, ok
}

// PosthogMiddleware records successful bookkeeping actions. Untracked routes,
// failed requests and a disabled client are ignored.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !posthogClient.IsInitialized() || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		event, props, ok := BookEvent(c.Request.Method, c.FullPath())
		if !ok {
			return
		}
		props["status_code"] = c.Writer.Status()
		if period := c.Query("fromDate") + ".." + c.Query("toDate"); period != ".." {
			props["period"] = period
		}
		posthogClient.Enqueue(UserIDOrSystem(c), event, props)
	}
}

// PosthogEvent sends a custom event from a handler, e.g. the size of an import.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	props := make(map[string]any, len(properties)+1)
	for k, v := range properties {
		props[k] = v
	}
	props["path"] = c.Request.URL.Path
	posthogClient.Enqueue(UserIDOrSystem(c), eventName, props)
}
