// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/agency_backend/main.go -o cmd/docs
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
        "/projects": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Create a new project", "responses": {"201": {"description": "Created"}}}
        },
        "/projects/{projectID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Get a project by ID", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/projects/{projectID}/flags": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Toggle project surcharge flags", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/projects/{projectID}/financials": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Get project financials", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/projects/{projectID}/financials/preview": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Preview financials for unsaved positions", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/projects/{projectID}/positions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["positions"], "summary": "List project positions", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["positions"], "summary": "Replace all positions of a project", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["positions"], "summary": "Add a position", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/projects/{projectID}/positions/{positionID}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["positions"], "summary": "Edit a position", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}, {"type": "string", "name": "positionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["positions"], "summary": "Delete a position", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}, {"type": "string", "name": "positionID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict"}}}
        },
        "/projects/{projectID}/payments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "List project payments", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}, {"type": "integer", "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "Record a payment", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/projects/{projectID}/invoices": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["invoices"], "summary": "List project invoices", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["invoices"], "summary": "Create an invoice from the project financials", "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/invoices/{invoiceID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["invoices"], "summary": "Get an invoice by ID", "parameters": [{"type": "string", "name": "invoiceID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices/{invoiceID}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["invoices"], "summary": "Change the status of an invoice", "parameters": [{"type": "string", "name": "invoiceID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/invoices/{invoiceID}/cancel": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["invoices"], "summary": "Cancel an invoice", "parameters": [{"type": "string", "name": "invoiceID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/reports/margins": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Project margin report", "responses": {"200": {"description": "OK"}}}
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Agency Backoffice API",
	Description:      "Project financials, invoices and payments for a translation agency.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
