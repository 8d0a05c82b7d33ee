package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ClassBoard API",
        "description": "REST API for the ClassBoard teacher dashboard",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Registration, login and sessions"},
        {"name": "Dashboard", "description": "Composed dashboard overview"},
        {"name": "Classes", "description": "Class management"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Profile", "description": "Teacher profile"},
        {"name": "Question Papers", "description": "Question paper authoring"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/teacher/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a teacher account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/RegisterResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teacher/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teacher/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Restore a session from the remember cookie",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionResponse"}},
                    "401": {"description": "No valid remember token", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log out and revoke the remember token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/teacher/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Composed dashboard overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teacher/class": {
            "post": {
                "tags": ["Classes"],
                "summary": "Create a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Class"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teacher/class/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Get a class with its roster",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Class"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete a class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teacher/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List all students across the teacher's classes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            }
        },
        "/teacher/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the student roster as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/teacher/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Get the teacher profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}}
                }
            },
            "put": {
                "tags": ["Profile"],
                "summary": "Update profile fields",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}}
                }
            }
        },
        "/teacher/profile/upload": {
            "put": {
                "tags": ["Profile"],
                "summary": "Upload a profile picture",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teacher/question-paper": {
            "post": {
                "tags": ["Question Papers"],
                "summary": "Submit a question paper",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitQuestionPaperRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SubmitQuestionPaperResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teacher/question-paper/{id}/export": {
            "get": {
                "tags": ["Question Papers"],
                "summary": "Export a question paper as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "PDF file"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "profilePicture": {"type": "string"},
                "bio": {"type": "string"},
                "phone": {"type": "string"},
                "room": {"type": "string"},
                "achievements": {"type": "string"},
                "awards": {"type": "string"},
                "certifications": {"type": "string"},
                "school": {"type": "string"},
                "college": {"type": "string"},
                "university": {"type": "string"},
                "degree": {"type": "string"},
                "publications": {"type": "string"}
            }
        },
        "Class": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "students": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Student"}
                },
                "avgScore": {"type": "number"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "age": {"type": "integer"},
                "averageScore": {"type": "number"},
                "classId": {"type": "integer"}
            }
        },
        "DashboardResponse": {
            "type": "object",
            "properties": {
                "teacher": {"$ref": "#/definitions/Teacher"},
                "classes": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Class"}
                },
                "totalStudents": {"type": "integer"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "country": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["name", "email", "age", "password"]
        },
        "RegisterResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "teacher": {"$ref": "#/definitions/Teacher"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "remember": {"type": "boolean"}
            },
            "required": ["email", "password"]
        },
        "SessionResponse": {
            "type": "object",
            "properties": {
                "teacher": {"$ref": "#/definitions/Teacher"}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["title"]
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "bio": {"type": "string"},
                "phone": {"type": "string"},
                "room": {"type": "string"},
                "achievements": {"type": "string"},
                "awards": {"type": "string"},
                "certifications": {"type": "string"},
                "school": {"type": "string"},
                "college": {"type": "string"},
                "university": {"type": "string"},
                "degree": {"type": "string"},
                "publications": {"type": "string"}
            }
        },
        "QuestionInput": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "options": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "correctAnswer": {"type": "string"},
                "section": {"type": "string"}
            },
            "required": ["options", "correctAnswer", "section"]
        },
        "SubmitQuestionPaperRequest": {
            "type": "object",
            "properties": {
                "questions": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/QuestionInput"}
                }
            },
            "required": ["questions"]
        },
        "SubmitQuestionPaperResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "id": {"type": "integer"}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
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
