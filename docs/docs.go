// Package docs registers the swagger document served at /swagger.
// Regenerate with `swag init` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "tags": [
        {"name": "messages", "description": "Message center, conversations and composer"},
        {"name": "devices", "description": "Device management"},
        {"name": "pairing", "description": "QR pairing widget"},
        {"name": "webhooks", "description": "Webhook configuration"},
        {"name": "credentials", "description": "API credentials"},
        {"name": "settings", "description": "Settings panel"},
        {"name": "analytics", "description": "Analytics dashboard and overview"},
        {"name": "views", "description": "Per-view screen state"},
        {"name": "navigation", "description": "Layout shell"},
        {"name": "health", "description": "Health check"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/messages": {
            "get": {
                "tags": ["messages"],
                "summary": "List messages",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "x-view-id", "in": "header"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"},
                    {"type": "string", "name": "dir", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "tags": ["messages"],
                "summary": "Compose and send a message",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/api/v1/devices": {
            "get": {
                "tags": ["devices"],
                "summary": "List devices",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/pairing": {
            "post": {
                "tags": ["pairing"],
                "summary": "Open a pairing session",
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/webhooks": {
            "get": {
                "tags": ["webhooks"],
                "summary": "List webhooks",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["webhooks"],
                "summary": "Add a webhook",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/api/v1/credentials": {
            "get": {
                "tags": ["credentials"],
                "summary": "List API credentials",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/settings/system": {
            "get": {
                "tags": ["settings"],
                "summary": "Get system parameters",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/analytics": {
            "get": {
                "tags": ["analytics"],
                "summary": "Get the analytics report",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/overview": {
            "get": {
                "tags": ["analytics"],
                "summary": "Get the dashboard overview",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Gateway Dashboard API",
	Description:      "Admin dashboard for a WhatsApp messaging gateway",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
