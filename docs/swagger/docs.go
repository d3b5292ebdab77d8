// Package swagger registers the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/start.go -o docs/swagger
package swagger

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
        "/api": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API Index",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/archive/export": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "Export Snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/archive.ExportResult"}},
                    "503": {"description": "Database not ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/archive/import": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "Import Batch Object",
                "parameters": [
                    {"description": "Object to import", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/archive.ImportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/reconcile.BatchResult"}},
                    "400": {"description": "Invalid request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Object not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/archive/objects": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "List Archive Objects",
                "parameters": [
                    {"type": "string", "description": "Key prefix", "name": "prefix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/archive.ObjectSummary"}}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Check whether an email address belongs to an administrator.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin Login",
                "parameters": [
                    {"description": "Login request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/auth.LoginResponse"}},
                    "400": {"description": "Email required", "schema": {"$ref": "#/definitions/auth.LoginResponse"}},
                    "403": {"description": "Not authorized", "schema": {"$ref": "#/definitions/auth.LoginResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Store connection state and document count. 503 until the store is connected.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Report"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/health.Report"}}
                }
            }
        },
        "/api/results/all": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "List every stored result record.",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "List Results",
                "responses": {
                    "200": {"description": "Result records", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": true}}},
                    "503": {"description": "Database not ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/results/bulk": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Merge or replace a batch of result records. Per-item failures are reported in errors.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Bulk Upload",
                "parameters": [
                    {"description": "{\"results\": [...]}", "name": "batch", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Batch outcome", "schema": {"$ref": "#/definitions/reconcile.BatchResult"}},
                    "400": {"description": "Invalid data", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Database not ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/results/statistics": {
            "get": {
                "description": "Pass/fail counts, average CGPA and the most referred subjects.",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Result Statistics",
                "responses": {
                    "200": {"description": "Statistics", "schema": {"$ref": "#/definitions/stats.Snapshot"}},
                    "503": {"description": "Database not ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/results/{rollNumber}": {
            "get": {
                "description": "Get the result record for a six digit roll number.",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Get Result",
                "parameters": [
                    {"type": "string", "description": "Roll number (6 digits)", "name": "rollNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Result record", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Invalid roll number", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Result not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Database not ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Status"}}
                }
            }
        }
    },
    "definitions": {
        "archive.ExportResult": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string"},
                "object": {"type": "string"},
                "records": {"type": "integer"},
                "size": {"type": "integer"}
            }
        },
        "archive.ImportRequest": {
            "type": "object",
            "properties": {
                "mode": {"description": "Mode optionally forces merge or replace for every item.", "type": "string"},
                "object": {"type": "string"}
            }
        },
        "archive.ObjectSummary": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "lastModified": {"type": "string"},
                "size": {"type": "integer"}
            }
        },
        "auth.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            }
        },
        "auth.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "health.Report": {
            "type": "object",
            "properties": {
                "currentDateTime": {"type": "string"},
                "database": {"type": "string"},
                "documentsCount": {"type": "integer"},
                "driver": {"type": "string"},
                "error": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime": {"type": "number"}
            }
        },
        "health.Status": {
            "type": "object",
            "properties": {
                "currentDate": {"type": "string"},
                "currentDateTime": {"type": "string"},
                "currentTime": {"type": "string"},
                "database": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "reconcile.BatchResult": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "failed": {"type": "integer"},
                "inserted": {"type": "integer"},
                "success": {"type": "boolean"},
                "total": {"type": "integer"},
                "updated": {"type": "integer"}
            }
        },
        "stats.Snapshot": {
            "type": "object",
            "properties": {
                "avgCGPA": {"type": "string"},
                "failed": {"type": "integer"},
                "passed": {"type": "integer"},
                "topSubjects": {"type": "array", "items": {"$ref": "#/definitions/stats.SubjectCount"}},
                "total": {"type": "integer"}
            }
        },
        "stats.SubjectCount": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "count": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:10000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Result Checker API",
	Description:      "Student result lookup, statistics and bulk reconciliation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
