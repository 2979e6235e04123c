// Package docs holds the OpenAPI document served at /swagger. It is kept in the
// layout swag init produces; definitions are checked against the dto package by docs_test.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/firm": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the firm profile; every field is empty until one has been saved",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "firm"
                ],
                "summary": "Get the firm profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.FirmProfileResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to load firm profile",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "firm"
                ],
                "summary": "Replace the firm profile",
                "parameters": [
                    {
                        "description": "Firm profile",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateFirmProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.FirmProfileResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to save firm profile",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Add a stock item",
                "parameters": [
                    {
                        "description": "Stock item",
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.InventoryItemRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.InventoryItemResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists every stock item with the totals of the stock on hand",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "List stock items",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListInventoryResponse"
                        }
                    }
                }
            }
        },
        "/inventory/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Stock totals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InventorySummaryResponse"
                        }
                    }
                }
            }
        },
        "/inventory/{itemID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Get a stock item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Item ID",
                        "name": "itemID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InventoryItemResponse"
                        }
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Replace a stock item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Item ID",
                        "name": "itemID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Stock item",
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.InventoryItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InventoryItemResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Delete a stock item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Item ID",
                        "name": "itemID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/invoices": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Numbers, computes and stores an invoice",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Issue an invoice",
                "parameters": [
                    {
                        "description": "Invoice",
                        "name": "invoice",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create invoice",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists invoices newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "List invoices",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size (1-100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Number of invoices to skip",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.InvoiceResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/invoices/preview": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Computes each line's amount including GST and the invoice totals without saving",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Compute invoice lines and totals",
                "parameters": [
                    {
                        "description": "Invoice lines",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceLinesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceComputationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{invoiceID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Get an invoice",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invoice ID",
                        "name": "invoiceID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceResponse"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/journals": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Validates that debits equal credits and stores the entry with its postings",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journals"
                ],
                "summary": "Record a journal entry",
                "parameters": [
                    {
                        "description": "Journal entry",
                        "name": "journal",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateJournalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request or unbalanced entry",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create journal",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists journal entries newest first using token-based pagination",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journals"
                ],
                "summary": "List journal entries",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size (1-100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListJournalsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list journals",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/journals/classify": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Runs the narration classifier. Nothing is stored; matched is false when no rule applies.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journals"
                ],
                "summary": "Suggest postings for a narration",
                "parameters": [
                    {
                        "description": "Narration",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ClassifyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ClassifyResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/journals/import": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Loads the transactions of an exported JSON file. Either every entry is stored or none is.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journals"
                ],
                "summary": "Import a legacy export",
                "parameters": [
                    {
                        "description": "Exported transactions",
                        "name": "export",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ImportJournalsResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed or unbalanced export",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "An entry already exists",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to import journals",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/journals/{journalID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Retrieves a journal entry and its postings by ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journals"
                ],
                "summary": "Get a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Journal ID",
                        "name": "journalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalResponse"
                        }
                    },
                    "404": {
                        "description": "Journal not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve journal",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/balance-sheet": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists assets and liabilities and derives capital as the difference",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate balance sheet report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "toDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BalanceSheetResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/cash-book": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists receipts and payments of entries touching cash or bank accounts",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate cash book",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "toDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CashBookResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/general-ledger": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Shows each account's totals and its Dr/Cr balance",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate general ledger",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "toDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.GeneralLedgerResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/journal-book": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists every entry in date order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate journal book",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "toDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalBookResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/profit-and-loss": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Compares revenue and expense accounts; the net line balances both sides",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate profit and loss report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "toDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProfitAndLossResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sales, purchases, expenses, net profit, cash and bank, GST collected and stock value",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Dashboard summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "toDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/trial-balance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists every account with its debit and credit totals for the period",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate trial balance report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "toDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrialBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.FirmHeader": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "firmName": {
                    "type": "string"
                },
                "gstNumber": {
                    "type": "string"
                }
            }
        },
        "dto.AccountAmountResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.BalanceSheetResponse": {
            "type": "object",
            "properties": {
                "assets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "header": {
                    "$ref": "#/definitions/dto.ReportHeader"
                },
                "liabilities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "capital": {
                            "type": "string"
                        },
                        "liabilitySide": {
                            "type": "string"
                        },
                        "totalAssets": {
                            "type": "string"
                        },
                        "totalLiabilities": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "dto.CashBookResponse": {
            "type": "object",
            "properties": {
                "header": {
                    "$ref": "#/definitions/dto.ReportHeader"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CashBookRowResponse"
                    }
                }
            }
        },
        "dto.CashBookRowResponse": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "journalID": {
                    "type": "string"
                },
                "narration": {
                    "type": "string"
                },
                "payment": {
                    "type": "string"
                },
                "paymentAccount": {
                    "type": "string"
                },
                "receipt": {
                    "type": "string"
                },
                "receiptAccount": {
                    "type": "string"
                }
            }
        },
        "dto.ClassifyRequest": {
            "type": "object",
            "required": [
                "narration"
            ],
            "properties": {
                "narration": {
                    "type": "string"
                }
            }
        },
        "dto.ClassifyResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "matched": {
                    "type": "boolean"
                },
                "postings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PostingResponse"
                    }
                },
                "rule": {
                    "type": "string"
                }
            }
        },
        "dto.CreateInvoiceRequest": {
            "type": "object",
            "required": [
                "customerName",
                "items"
            ],
            "properties": {
                "customerAddress": {
                    "type": "string"
                },
                "customerGST": {
                    "type": "string"
                },
                "customerName": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "example": "2024-04-01"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InvoiceLineRequest"
                    }
                }
            }
        },
        "dto.CreateJournalRequest": {
            "type": "object",
            "required": [
                "date",
                "postings"
            ],
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2024-04-01"
                },
                "narration": {
                    "type": "string"
                },
                "postings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PostingRequest"
                    }
                }
            }
        },
        "dto.FirmProfileResponse": {
            "type": "object",
            "properties": {
                "accountNumber": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "bankName": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "firmName": {
                    "type": "string"
                },
                "firmType": {
                    "type": "string"
                },
                "gstNumber": {
                    "type": "string"
                },
                "header": {
                    "$ref": "#/definitions/domain.FirmHeader"
                },
                "ifscCode": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "panNumber": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "pincode": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "tanNumber": {
                    "type": "string"
                }
            }
        },
        "dto.GeneralLedgerResponse": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.GeneralLedgerRowResponse"
                    }
                },
                "header": {
                    "$ref": "#/definitions/dto.ReportHeader"
                }
            }
        },
        "dto.GeneralLedgerRowResponse": {
            "type": "object",
            "properties": {
                "accountName": {
                    "type": "string"
                },
                "balance": {
                    "type": "string"
                },
                "totalCredit": {
                    "type": "string"
                },
                "totalDebit": {
                    "type": "string"
                }
            }
        },
        "dto.ImportJournalsResponse": {
            "type": "object",
            "properties": {
                "imported": {
                    "type": "integer"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.InventoryItemRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "gstPercent": {
                    "type": "string",
                    "example": "18"
                },
                "hsnCode": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "purchaseCost": {
                    "type": "string",
                    "example": "120.50"
                },
                "quantity": {
                    "type": "integer"
                },
                "salesPrice": {
                    "type": "string",
                    "example": "150"
                },
                "supplier": {
                    "type": "string"
                }
            }
        },
        "dto.InventoryItemResponse": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "gstPercent": {
                    "type": "string"
                },
                "hsnCode": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                },
                "itemID": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "purchaseCost": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "salesPrice": {
                    "type": "string"
                },
                "stockValue": {
                    "type": "string"
                },
                "supplier": {
                    "type": "string"
                }
            }
        },
        "dto.InventorySummaryResponse": {
            "type": "object",
            "properties": {
                "itemCount": {
                    "type": "integer"
                },
                "totalQuantity": {
                    "type": "integer"
                },
                "totalValue": {
                    "type": "string"
                }
            }
        },
        "dto.InvoiceComputationResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InvoiceLineResponse"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/dto.InvoiceTotalsResponse"
                }
            }
        },
        "dto.InvoiceLineRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "gstPercent": {
                    "type": "string",
                    "example": "18"
                },
                "name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string",
                    "example": "2"
                },
                "rate": {
                    "type": "string",
                    "example": "100"
                }
            }
        },
        "dto.InvoiceLineResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "gstPercent": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "number"
                },
                "rate": {
                    "type": "number"
                }
            }
        },
        "dto.InvoiceLinesRequest": {
            "type": "object",
            "required": [
                "items"
            ],
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InvoiceLineRequest"
                    }
                }
            }
        },
        "dto.InvoiceResponse": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "customerAddress": {
                    "type": "string"
                },
                "customerGST": {
                    "type": "string"
                },
                "customerName": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "invoiceID": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InvoiceLineResponse"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/dto.InvoiceTotalsResponse"
                }
            }
        },
        "dto.InvoiceTotalsResponse": {
            "type": "object",
            "properties": {
                "subtotal": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                },
                "totalGST": {
                    "type": "string"
                }
            }
        },
        "dto.JournalBookResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.JournalResponse"
                    }
                },
                "header": {
                    "$ref": "#/definitions/dto.ReportHeader"
                }
            }
        },
        "dto.JournalResponse": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "journalID": {
                    "type": "string"
                },
                "narration": {
                    "type": "string"
                },
                "postings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PostingResponse"
                    }
                },
                "ref": {
                    "type": "string"
                },
                "totalCredit": {
                    "type": "number"
                },
                "totalDebit": {
                    "type": "number"
                }
            }
        },
        "dto.ListInventoryResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InventoryItemResponse"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/dto.InventorySummaryResponse"
                }
            }
        },
        "dto.ListJournalsResponse": {
            "type": "object",
            "properties": {
                "journals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.JournalResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.PostingRequest": {
            "type": "object",
            "required": [
                "account"
            ],
            "properties": {
                "account": {
                    "type": "string"
                },
                "credit": {
                    "type": "string",
                    "example": "0"
                },
                "debit": {
                    "type": "string",
                    "example": "5000"
                }
            }
        },
        "dto.PostingResponse": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "credit": {
                    "type": "number"
                },
                "debit": {
                    "type": "number"
                }
            }
        },
        "dto.ProfitAndLossResponse": {
            "type": "object",
            "properties": {
                "expenses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "header": {
                    "$ref": "#/definitions/dto.ReportHeader"
                },
                "revenue": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "expenseSideTotal": {
                            "type": "string"
                        },
                        "netLossLine": {
                            "type": "string"
                        },
                        "netProfit": {
                            "type": "string"
                        },
                        "netProfitLine": {
                            "type": "string"
                        },
                        "revenueSideTotal": {
                            "type": "string"
                        },
                        "totalExpenses": {
                            "type": "string"
                        },
                        "totalRevenue": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "dto.ReportHeader": {
            "type": "object",
            "properties": {
                "firm": {
                    "$ref": "#/definitions/domain.FirmHeader"
                },
                "fromDate": {
                    "type": "string"
                },
                "generatedAt": {
                    "type": "string"
                },
                "toDate": {
                    "type": "string"
                }
            }
        },
        "dto.SummaryResponse": {
            "type": "object",
            "properties": {
                "cashAndBank": {
                    "type": "string"
                },
                "entryCount": {
                    "type": "integer"
                },
                "gstCollected": {
                    "type": "string"
                },
                "header": {
                    "$ref": "#/definitions/dto.ReportHeader"
                },
                "inventoryValue": {
                    "type": "string"
                },
                "invoiceCount": {
                    "type": "integer"
                },
                "netProfit": {
                    "type": "string"
                },
                "totalExpenses": {
                    "type": "string"
                },
                "totalPurchases": {
                    "type": "string"
                },
                "totalSales": {
                    "type": "string"
                }
            }
        },
        "dto.TrialBalanceResponse": {
            "type": "object",
            "properties": {
                "header": {
                    "$ref": "#/definitions/dto.ReportHeader"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TrialBalanceRowResponse"
                    }
                },
                "totals": {
                    "type": "object",
                    "properties": {
                        "balanced": {
                            "type": "boolean"
                        },
                        "credit": {
                            "type": "string"
                        },
                        "debit": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "dto.TrialBalanceRowResponse": {
            "type": "object",
            "properties": {
                "accountName": {
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateFirmProfileRequest": {
            "type": "object",
            "required": [
                "firmName"
            ],
            "properties": {
                "accountNumber": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "bankName": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "firmName": {
                    "type": "string"
                },
                "firmType": {
                    "type": "string"
                },
                "gstNumber": {
                    "type": "string"
                },
                "ifscCode": {
                    "type": "string"
                },
                "panNumber": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "pincode": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "tanNumber": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Firm Books API",
	Description:      "Double-entry books, statements and GST invoices for a single firm.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
