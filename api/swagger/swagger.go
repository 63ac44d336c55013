package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "VOLL Candidate API",
        "description": "Studio management API: students, agenda and financial entries",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student roster"},
        {"name": "Schedules", "description": "Class agenda"},
        {"name": "Financial", "description": "Receivables and payables"},
        {"name": "Summary", "description": "Derived dashboard aggregates"}
    ],
    "paths": {
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students/{id}": {
            "delete": {
                "tags": ["Students"],
                "summary": "Remove student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List schedules ordered by date and time",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ScheduleDetail"}}}
                }
            },
            "post": {
                "tags": ["Schedules"],
                "summary": "Book a class slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ScheduleDetail"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/schedules/{id}": {
            "patch": {
                "tags": ["Schedules"],
                "summary": "Update schedule status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleDetail"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Schedules"],
                "summary": "Remove schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/financial": {
            "get": {
                "tags": ["Financial"],
                "summary": "List entries ordered by due date",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/FinancialEntry"}}}
                }
            },
            "post": {
                "tags": ["Financial"],
                "summary": "Record entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFinancialEntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/FinancialEntry"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/financial/{id}": {
            "patch": {
                "tags": ["Financial"],
                "summary": "Update entry status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FinancialEntry"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Financial"],
                "summary": "Remove entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/financial/export": {
            "get": {
                "tags": ["Financial"],
                "summary": "Download financial statement",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Statement file"},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/summary": {
            "get": {
                "tags": ["Summary"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Summary"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string", "x-nullable": true},
                "phone": {"type": "string", "x-nullable": true},
                "status": {"type": "string"},
                "plan": {"type": "string", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "minLength": 2},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "status": {"type": "string"},
                "plan": {"type": "string"}
            }
        },
        "ScheduleDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "student_id": {"type": "string", "x-nullable": true},
                "scheduled_date": {"type": "string"},
                "scheduled_time": {"type": "string"},
                "description": {"type": "string", "x-nullable": true},
                "status": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "student": {"$ref": "#/definitions/ScheduleStudent"}
            }
        },
        "ScheduleStudent": {
            "type": "object",
            "x-nullable": true,
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string", "x-nullable": true},
                "phone": {"type": "string", "x-nullable": true}
            }
        },
        "CreateScheduleRequest": {
            "type": "object",
            "required": ["student_id", "scheduled_date", "scheduled_time"],
            "properties": {
                "student_id": {"type": "string"},
                "scheduled_date": {"type": "string"},
                "scheduled_time": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"}
            }
        },
        "FinancialEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["receita", "despesa"]},
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "due_date": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreateFinancialEntryRequest": {
            "type": "object",
            "required": ["type", "description", "amount", "due_date"],
            "properties": {
                "type": {"type": "string", "enum": ["receita", "despesa"]},
                "description": {"type": "string", "minLength": 2},
                "amount": {"type": "number"},
                "due_date": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "Summary": {
            "type": "object",
            "properties": {
                "students": {"type": "object"},
                "schedules": {"type": "object"},
                "financial": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
