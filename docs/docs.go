// Package docs registers the OpenAPI description served at /swagger.
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
        "/api/v1/lists": {
            "get": {
                "description": "Returns every task list of the authorized account.",
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "List task lists",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listsResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/outline": {
            "get": {
                "description": "Reads the remote task list and renders it as an outline.",
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Fetch a task list as outline text",
                "parameters": [
                    {"type": "string", "description": "Task list title (default list when empty)", "name": "listname", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.outlineResp"}},
                    "404": {"description": "List not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Remote list cannot be assembled", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "put": {
                "description": "Erases the remote task list and recreates it from the outline.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Replace a task list",
                "parameters": [
                    {"type": "string", "description": "Task list title (default list when empty)", "name": "listname", "in": "query"},
                    {"description": "Outline text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.outlineReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.pushResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "List not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Malformed outline", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/sync": {
            "post": {
                "description": "Merges the posted outline with the remote list against the last synced state.\nOn conflict nothing is written and the merged outline with markers is returned.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Three-way sync an outline with a task list",
                "parameters": [
                    {"type": "string", "description": "Task list title (default list when empty)", "name": "listname", "in": "query"},
                    {"description": "Locally edited outline text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.outlineReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.syncResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "List not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Merge conflict", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Malformed outline", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.probeResp"}}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.probeResp"}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.probeResp"}}}
            }
        }
    },
    "definitions": {
        "http.listResp": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}}
        },
        "http.listsResp": {
            "type": "object",
            "properties": {"lists": {"type": "array", "items": {"$ref": "#/definitions/http.listResp"}}}
        },
        "http.outlineReq": {
            "type": "object",
            "properties": {"outline": {"type": "string"}}
        },
        "http.outlineResp": {
            "type": "object",
            "properties": {
                "list": {"type": "string"},
                "list_id": {"type": "string"},
                "outline": {"type": "string"},
                "tasks": {"type": "integer"}
            }
        },
        "http.pushResp": {
            "type": "object",
            "properties": {
                "list": {"type": "string"},
                "list_id": {"type": "string"},
                "tasks": {"type": "integer"}
            }
        },
        "http.syncResp": {
            "type": "object",
            "properties": {
                "conflict": {"type": "boolean"},
                "first_sync": {"type": "boolean"},
                "list": {"type": "string"},
                "list_id": {"type": "string"},
                "outline": {"type": "string"},
                "synced_at": {"type": "string"}
            }
        },
        "httpserver.probeResp": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "status": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "orgsync API",
	Description:      "Sync outline documents with Google Tasks lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
