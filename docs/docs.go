// Package docs holds the Swagger 2.0 document served under /swagger. It is
// maintained by hand next to the handlers; keep paths in sync with
// internal/adapter/http/routes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "pong"}
                }
            }
        },
        "/services": {
            "get": {
                "tags": ["services"],
                "summary": "List services of a period",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/organization_id"},
                    {"$ref": "#/parameters/from"},
                    {"$ref": "#/parameters/to"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Service"}}},
                    "400": {"$ref": "#/responses/Error"}
                }
            },
            "post": {
                "tags": ["services"],
                "summary": "Create a service",
                "description": "Status starts as pendente, payment_status as pendente and tax_amount is computed from the current tax rate.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ServiceCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Service"}},
                    "400": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/services/{id}": {
            "parameters": [
                {"$ref": "#/parameters/service_id"}
            ],
            "get": {
                "tags": ["services"],
                "summary": "Get a service",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Service"}},
                    "404": {"$ref": "#/responses/Error"}
                }
            },
            "patch": {
                "tags": ["services"],
                "summary": "Partially update a service",
                "description": "Absent keys are left untouched and null clears an attribute. tax_amount is always recomputed; a start or completion date moves the status.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ServiceUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Service"}},
                    "400": {"$ref": "#/responses/Error"},
                    "404": {"$ref": "#/responses/Error"}
                }
            },
            "delete": {
                "tags": ["services"],
                "summary": "Delete a service",
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/services/{id}/payments": {
            "parameters": [
                {"$ref": "#/parameters/service_id"}
            ],
            "get": {
                "tags": ["payments"],
                "summary": "List payments of a service, newest first",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ServicePayment"}}},
                    "400": {"$ref": "#/responses/Error"}
                }
            },
            "post": {
                "tags": ["payments"],
                "summary": "Collect the gross value through Mercado Pago",
                "description": "The body is a Mercado Pago payment request, bare or wrapped in mp_payload. transaction_amount always comes from the stored gross value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/ServicePaymentCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ServicePayment"}},
                    "400": {"$ref": "#/responses/Error"},
                    "404": {"$ref": "#/responses/Error"},
                    "409": {"$ref": "#/responses/Error"},
                    "422": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/services/{id}/payments/{payment_id}": {
            "parameters": [
                {"$ref": "#/parameters/service_id"},
                {"name": "payment_id", "in": "path", "required": true, "type": "string"}
            ],
            "get": {
                "tags": ["payments"],
                "summary": "Get a payment of the service",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ServicePayment"}},
                    "404": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/settings/tax-rate": {
            "get": {
                "tags": ["settings"],
                "summary": "Current tax rate",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TaxRate"}}
                }
            },
            "put": {
                "tags": ["settings"],
                "summary": "Replace the tax rate",
                "description": "The rate is a fraction between 0 and 1; existing services keep their stored tax_amount.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TaxRateUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TaxRate"}},
                    "400": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/reports/dashboard": {
            "get": {
                "tags": ["reports"],
                "summary": "KPIs, wallet and time series of a period",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/organization_id"},
                    {"$ref": "#/parameters/from"},
                    {"$ref": "#/parameters/to"},
                    {"name": "granularity", "in": "query", "type": "string", "enum": ["day", "month"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Dashboard"}},
                    "400": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/reports/calendar": {
            "get": {
                "tags": ["reports"],
                "summary": "42 day calendar grid of a month",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/organization_id"},
                    {"name": "month", "in": "query", "type": "string", "description": "YYYY-MM, defaults to the current month"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Calendar"}},
                    "400": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/reports/export": {
            "get": {
                "tags": ["reports"],
                "summary": "Services of a period as an XLSX workbook",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"$ref": "#/parameters/organization_id"},
                    {"$ref": "#/parameters/from"},
                    {"$ref": "#/parameters/to"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"$ref": "#/responses/Error"}
                }
            }
        }
    },
    "parameters": {
        "service_id": {"name": "id", "in": "path", "required": true, "type": "string"},
        "organization_id": {"name": "organization_id", "in": "query", "type": "string"},
        "from": {"name": "from", "in": "query", "type": "string", "format": "date"},
        "to": {"name": "to", "in": "query", "type": "string", "format": "date"}
    },
    "responses": {
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/Error"}}
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "ServiceCreate": {
            "type": "object",
            "required": ["date", "client_id", "technician_id"],
            "properties": {
                "organization_id": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "client_id": {"type": "string"},
                "client_name": {"type": "string"},
                "technician_id": {"type": "string"},
                "technician_name": {"type": "string"},
                "gross_value": {"type": "number"},
                "operational_cost": {"type": "number"},
                "has_invoice": {"type": "boolean"},
                "invoice_number": {"type": "string"},
                "description": {"type": "string"},
                "notes": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "ServiceUpdate": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "format": "date"},
                "start_date": {"type": "string", "format": "date-time"},
                "completed_date": {"type": "string", "format": "date-time"},
                "client_id": {"type": "string"},
                "client_name": {"type": "string"},
                "technician_id": {"type": "string"},
                "technician_name": {"type": "string"},
                "gross_value": {"type": "number"},
                "operational_cost": {"type": "number"},
                "has_invoice": {"type": "boolean"},
                "invoice_number": {"type": "string"},
                "status": {"type": "string", "enum": ["pendente", "em_andamento", "concluido"]},
                "payment_status": {"type": "string", "enum": ["pendente", "pago"]},
                "description": {"type": "string"},
                "notes": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "Service": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "organization_id": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "start_date": {"type": "string", "format": "date-time"},
                "completed_date": {"type": "string", "format": "date-time"},
                "client_id": {"type": "string"},
                "client_name": {"type": "string"},
                "technician_id": {"type": "string"},
                "technician_name": {"type": "string"},
                "gross_value": {"type": "number"},
                "operational_cost": {"type": "number"},
                "has_invoice": {"type": "boolean"},
                "tax_amount": {"type": "number"},
                "invoice_number": {"type": "string"},
                "net_revenue": {"type": "number"},
                "net_profit": {"type": "number"},
                "status": {"type": "string", "enum": ["pendente", "em_andamento", "concluido"]},
                "payment_status": {"type": "string", "enum": ["pendente", "pago"]},
                "description": {"type": "string"},
                "notes": {"type": "string"},
                "location": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "ServicePaymentCreate": {
            "type": "object",
            "properties": {
                "mp_payload": {"type": "object", "description": "Mercado Pago payment request"}
            }
        },
        "ServicePayment": {
            "type": "object",
            "properties": {
                "payment_id": {"type": "string"},
                "service_id": {"type": "string"},
                "amount": {"type": "number"},
                "payment_date": {"type": "string", "format": "date-time"},
                "provider_status": {"type": "string"},
                "provider_payload_raw": {"type": "string"},
                "provider_payload": {"type": "object"}
            }
        },
        "TaxRateUpdate": {
            "type": "object",
            "required": ["tax_rate"],
            "properties": {
                "tax_rate": {"type": "number", "minimum": 0, "maximum": 1}
            }
        },
        "TaxRate": {
            "type": "object",
            "properties": {
                "tax_rate": {"type": "number"},
                "percent": {"type": "number"}
            }
        },
        "Summary": {
            "type": "object",
            "properties": {
                "gross_revenue": {"type": "number"},
                "net_revenue_before_tax": {"type": "number"},
                "costs": {"type": "number"},
                "taxes": {"type": "number"},
                "net_profit": {"type": "number"},
                "invoiced_base": {"type": "number"}
            }
        },
        "Bucket": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "count": {"type": "integer"},
                "gross_revenue": {"type": "number"},
                "costs": {"type": "number"},
                "taxes": {"type": "number"},
                "net_profit": {"type": "number"}
            }
        },
        "Dashboard": {
            "type": "object",
            "properties": {
                "service_count": {"type": "integer"},
                "summary": {"$ref": "#/definitions/Summary"},
                "wallet": {
                    "type": "object",
                    "properties": {
                        "realized": {"type": "number"},
                        "pending": {"type": "number"}
                    }
                },
                "granularity": {"type": "string"},
                "series": {"type": "array", "items": {"$ref": "#/definitions/Bucket"}}
            }
        },
        "Calendar": {
            "type": "object",
            "properties": {
                "month": {"type": "string"},
                "days": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "date": {"type": "string", "format": "date"},
                            "in_month": {"type": "boolean"},
                            "count": {"type": "integer"},
                            "gross_value": {"type": "number"},
                            "has_invoice": {"type": "boolean"},
                            "has_paid": {"type": "boolean"},
                            "has_pending": {"type": "boolean"},
                            "service_ids": {"type": "array", "items": {"type": "string"}}
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Gestao de Servicos API",
	Description:      "Service financial and scheduling engine (services, payments, reports) backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
