// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/finance_backend/main.go -o cmd/docs
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
        "/transactions": {
            "get": {"tags": ["transactions"], "summary": "List transactions", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid query"}}},
            "post": {"tags": ["transactions"], "summary": "Record a transaction", "consumes": ["application/json"], "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "500": {"description": "Applied but not saved"}}}
        },
        "/transactions/recent": {
            "get": {"tags": ["transactions"], "summary": "Recent transactions", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/transactions/export": {
            "get": {"tags": ["transactions"], "summary": "Export transactions", "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "parameters": [{"type": "string", "enum": ["csv", "xlsx"], "default": "csv", "name": "format", "in": "query"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid query"}}}
        },
        "/transactions/{id}": {
            "delete": {"tags": ["transactions"], "summary": "Delete a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/budgets": {
            "get": {"tags": ["budgets"], "summary": "List budgets", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["budgets"], "summary": "Create a budget", "consumes": ["application/json"], "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}}}
        },
        "/budgets/{id}": {
            "patch": {"tags": ["budgets"], "summary": "Update a budget", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Budget not found"}, "409": {"description": "Category already budgeted"}}},
            "delete": {"tags": ["budgets"], "summary": "Delete a budget", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Add a category", "consumes": ["application/json"], "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "Already exists"}, "201": {"description": "Created"}}}
        },
        "/settings/currency": {
            "get": {"tags": ["settings"], "summary": "Get the display currency", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["settings"], "summary": "Set the display currency", "consumes": ["application/json"], "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid currency code"}}}
        },
        "/snapshot": {
            "get": {"tags": ["settings"], "summary": "Get the full snapshot", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/data": {
            "delete": {"tags": ["settings"], "summary": "Clear all data", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/summary": {
            "get": {"tags": ["summary"], "summary": "Dashboard summary", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/summary/categories": {
            "get": {"tags": ["summary"], "summary": "Expenses by category", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/summary/monthly": {
            "get": {"tags": ["summary"], "summary": "Monthly totals", "produces": ["application/json"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/validate/transaction": {
            "post": {"tags": ["validate"], "summary": "Validate a transaction", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/validate/budget": {
            "post": {"tags": ["validate"], "summary": "Validate a budget", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the API token.",
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
	Title:            "Finance Tracker API",
	Description:      "Personal income, expense and budget tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
