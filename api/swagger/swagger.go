package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ClassCore Results API",
        "description": "Ranking, statistics and integrity auditing over academic term results",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Results", "description": "Ranking and statistics over term reports"},
        {"name": "Exports", "description": "Downloadable ranking tables"}
    ],
    "paths": {
        "/results/cohort": {
            "get": {
                "tags": ["Results"],
                "summary": "Cohort ranking",
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "campus_id", "in": "query", "type": "string"},
                    {"name": "class_id", "in": "query", "type": "string"},
                    {"name": "arm", "in": "query", "type": "string"},
                    {"name": "session", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/level": {
            "get": {
                "tags": ["Results"],
                "summary": "Level ranking with per-arm standing",
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "level", "in": "query", "required": true, "type": "string"},
                    {"name": "campus_id", "in": "query", "type": "string"},
                    {"name": "session", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/subjects": {
            "get": {
                "tags": ["Results"],
                "summary": "Per-subject ranking for a level",
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "level", "in": "query", "required": true, "type": "string"},
                    {"name": "campus_id", "in": "query", "type": "string"},
                    {"name": "session", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/percentile": {
            "get": {
                "tags": ["Results"],
                "summary": "Campus percentile for one student",
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "student_id", "in": "query", "required": true, "type": "string"},
                    {"name": "campus_id", "in": "query", "type": "string"},
                    {"name": "session", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/statistics": {
            "get": {
                "tags": ["Results"],
                "summary": "Aggregate result statistics",
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "passing_score", "in": "query", "type": "number"},
                    {"name": "campus_id", "in": "query", "type": "string"},
                    {"name": "class_id", "in": "query", "type": "string"},
                    {"name": "session", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/integrity": {
            "get": {
                "tags": ["Results"],
                "summary": "Integrity audit of result rows",
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "class_id", "in": "query", "type": "string"},
                    {"name": "session", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/system": {
            "get": {
                "tags": ["Results"],
                "summary": "Instrumentation snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/cache": {
            "delete": {
                "tags": ["Results"],
                "summary": "Invalidate cached rankings for a term",
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/export/cohort": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download cohort ranking",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/export/level": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download level ranking",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "term_id", "in": "query", "required": true, "type": "string"},
                    {"name": "level", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CohortRanking": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "rank": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "LevelRanking": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "rank_in_arm": {"type": "integer"},
                "total_in_arm": {"type": "integer"},
                "rank_in_level": {"type": "integer"},
                "total_in_level": {"type": "integer"}
            }
        },
        "SubjectRanking": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "subject_name": {"type": "string"},
                "score": {"type": "number"},
                "rank_in_arm": {"type": "integer"},
                "total_in_arm": {"type": "integer"},
                "rank_in_level": {"type": "integer"},
                "total_in_level": {"type": "integer"}
            }
        },
        "ResultStatistics": {
            "type": "object",
            "properties": {
                "enrolled": {"type": "integer"},
                "with_results": {"type": "integer"},
                "average_score": {"type": "number"},
                "pass_count": {"type": "integer"},
                "pass_rate": {"type": "number"}
            }
        },
        "IntegrityIssue": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
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
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
