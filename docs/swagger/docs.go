// Package swagger holds the OpenAPI description served under /docs.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/hanjaplatform/hanja-api"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "tags": [
                    "version"
                ],
                "summary": "Service version",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/version.Info"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HealthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/tokenize": {
            "post": {
                "tags": [
                    "proxy"
                ],
                "summary": "Tokenize text",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TokenizeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.TokenizeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/tokenize-mt": {
            "post": {
                "tags": [
                    "proxy"
                ],
                "summary": "Count translation tokens",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inference.MTTokenizeResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/ner": {
            "post": {
                "tags": [
                    "proxy"
                ],
                "summary": "Predict entity tags",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.NERProxyResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/punctuate": {
            "post": {
                "tags": [
                    "proxy"
                ],
                "summary": "Restore punctuation",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.PunctuateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.PunctuateProxyResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/translate": {
            "post": {
                "tags": [
                    "proxy"
                ],
                "summary": "Stream a translation",
                "produces": [
                    "text/event-stream"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inference.TranslationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/hanzi": {
            "post": {
                "tags": [
                    "proxy"
                ],
                "summary": "Look up characters",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HanziResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Get current session",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.Session"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/ner/process": {
            "post": {
                "tags": [
                    "ner"
                ],
                "summary": "Recognize entities",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.NERProcessResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/ner/stats": {
            "post": {
                "tags": [
                    "ner"
                ],
                "summary": "Entity model token statistics",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.StatsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/ner/entity-types": {
            "get": {
                "tags": [
                    "ner"
                ],
                "summary": "List entity types",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.EntityTypesResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/ner/decode": {
            "post": {
                "tags": [
                    "ner"
                ],
                "summary": "Decode IOB tags",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.DecodeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SpansResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/ner/markup": {
            "post": {
                "tags": [
                    "ner"
                ],
                "summary": "Convert between spans and markup",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.MarkupRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.MarkupResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/ner/load/{id}": {
            "get": {
                "tags": [
                    "ner"
                ],
                "summary": "Load a saved entity record",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/workspace.LoadedNER"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/annotations/segments": {
            "post": {
                "tags": [
                    "annotations"
                ],
                "summary": "Partition content into segments",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SegmentsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SegmentsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/annotations/render": {
            "post": {
                "tags": [
                    "annotations"
                ],
                "summary": "Render segments as HTML",
                "produces": [
                    "text/html"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SegmentsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/annotations/select": {
            "post": {
                "tags": [
                    "annotations"
                ],
                "summary": "Add a span from a selection",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SelectRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.EditResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/annotations/remove": {
            "post": {
                "tags": [
                    "annotations"
                ],
                "summary": "Remove a span by clicking it",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.RemoveRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.EditResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/punctuation/process": {
            "post": {
                "tags": [
                    "punctuation"
                ],
                "summary": "Restore punctuation",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/workspace.PunctuationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.PunctuationProcessResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/punctuation/stats": {
            "post": {
                "tags": [
                    "punctuation"
                ],
                "summary": "Punctuation model token statistics",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.StatsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/translation/process": {
            "post": {
                "tags": [
                    "translation"
                ],
                "summary": "Translate text",
                "produces": [
                    "text/event-stream"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inference.TranslationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/translation/stats": {
            "post": {
                "tags": [
                    "translation"
                ],
                "summary": "Translation token statistics",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.StatsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/translation/ws": {
            "get": {
                "tags": [
                    "translation"
                ],
                "summary": "Translate over a websocket",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session token",
                        "name": "token",
                        "in": "query"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/history": {
            "get": {
                "tags": [
                    "history"
                ],
                "summary": "List history",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Every owner's records (admins only)",
                        "name": "all",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Filter on input-only records",
                        "name": "inputOnly",
                        "in": "query"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HistoryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "history"
                ],
                "summary": "Save a history record",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SaveHistoryRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HistoryRecordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/history/{id}": {
            "get": {
                "tags": [
                    "history"
                ],
                "summary": "Get a history record",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HistoryRecordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "history"
                ],
                "summary": "Update a history record",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SaveHistoryRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HistoryRecordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "history"
                ],
                "summary": "Delete a history record",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/history/export/json": {
            "get": {
                "tags": [
                    "history"
                ],
                "summary": "Export history as JSON",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Every owner's records (admins only)",
                        "name": "all",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Filter on input-only records",
                        "name": "inputOnly",
                        "in": "query"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/history/export/xlsx": {
            "get": {
                "tags": [
                    "history"
                ],
                "summary": "Export history as a spreadsheet",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Every owner's records (admins only)",
                        "name": "all",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Filter on input-only records",
                        "name": "inputOnly",
                        "in": "query"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "annotation.EntityType": {
            "type": "object",
            "properties": {
                "tag": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "annotation.Span": {
            "type": "object",
            "properties": {
                "start": {
                    "type": "integer"
                },
                "end": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "textColor": {
                    "type": "string"
                }
            }
        },
        "annotation.Segment": {
            "type": "object",
            "properties": {
                "start": {
                    "type": "integer"
                },
                "end": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "textColor": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "mark": {
                    "type": "boolean"
                }
            }
        },
        "auth.Session": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "admin": {
                    "type": "boolean"
                }
            }
        },
        "inference.TranslationRequest": {
            "type": "object",
            "properties": {
                "sourceLang": {
                    "type": "string"
                },
                "targetLang": {
                    "type": "string"
                },
                "sourceText": {
                    "type": "string"
                }
            },
            "required": [
                "sourceLang",
                "targetLang",
                "sourceText"
            ]
        },
        "inference.MTTokenizeResult": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "tokens": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "token_count": {
                    "type": "integer"
                }
            }
        },
        "version.Info": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "workspace.Stats": {
            "type": "object",
            "properties": {
                "chars": {
                    "type": "integer"
                },
                "tokenCount": {
                    "type": "integer"
                },
                "maxTokens": {
                    "type": "integer"
                },
                "overLimit": {
                    "type": "boolean"
                },
                "tokens": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "token_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "workspace.LoadedNER": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "pred": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "user": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                }
            }
        },
        "workspace.PunctuationRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "style": {
                    "type": "string"
                },
                "normalize": {
                    "type": "boolean"
                },
                "clean": {
                    "type": "boolean"
                }
            },
            "required": [
                "text"
            ]
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "details": {}
            }
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "database": {
                    "type": "object"
                },
                "breakers": {
                    "type": "object"
                }
            }
        },
        "types.TextRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            },
            "required": [
                "text"
            ]
        },
        "types.TokenizeRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "taskType": {
                    "type": "string"
                }
            }
        },
        "types.PunctuateRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "style": {
                    "type": "string"
                }
            }
        },
        "types.DecodeRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "iob": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "text"
            ]
        },
        "types.MarkupRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "spans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "markup": {
                    "type": "string"
                }
            }
        },
        "types.SegmentsRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "spans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "tagMode": {
                    "type": "string"
                }
            },
            "required": [
                "content"
            ]
        },
        "types.SelectRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "spans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "tagMode": {
                    "type": "string"
                },
                "anchor": {
                    "type": "object"
                },
                "focus": {
                    "type": "object"
                },
                "selectionText": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                },
                "readOnly": {
                    "type": "boolean"
                }
            },
            "required": [
                "content"
            ]
        },
        "types.RemoveRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "spans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "tagMode": {
                    "type": "string"
                },
                "start": {
                    "type": "integer"
                },
                "end": {
                    "type": "integer"
                },
                "selectionText": {
                    "type": "string"
                },
                "readOnly": {
                    "type": "boolean"
                }
            },
            "required": [
                "content"
            ]
        },
        "types.SaveHistoryRequest": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string",
                    "example": "NER"
                },
                "details": {
                    "type": "object"
                }
            },
            "required": [
                "action",
                "details"
            ]
        },
        "types.TokenizeResponse": {
            "type": "object",
            "properties": {
                "taskType": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "tokens": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "token_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "types.NERProxyResponse": {
            "type": "object",
            "properties": {
                "result": {
                    "type": "object"
                },
                "allResults": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                }
            }
        },
        "types.PunctuateProxyResponse": {
            "type": "object",
            "properties": {
                "punctuatedText": {
                    "type": "string"
                }
            }
        },
        "types.HanziResponse": {
            "type": "object",
            "properties": {
                "definitions": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "types.SpansResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "spans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                }
            }
        },
        "types.EntityTypesResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "types": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.EntityType"
                    }
                }
            }
        },
        "types.MarkupResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "markup": {
                    "type": "string"
                }
            }
        },
        "types.SegmentsResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "segments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Segment"
                    }
                },
                "html": {
                    "type": "string"
                }
            }
        },
        "types.EditResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "changed": {
                    "type": "boolean"
                },
                "spans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "segments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Segment"
                    }
                }
            }
        },
        "types.NERProcessResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "iob": {
                    "type": "string"
                },
                "pred": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "user": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/annotation.Span"
                    }
                },
                "stats": {
                    "$ref": "#/definitions/workspace.Stats"
                }
            }
        },
        "types.PunctuationProcessResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "input": {
                    "type": "string"
                },
                "punctuatedText": {
                    "type": "string"
                },
                "style": {
                    "type": "string"
                },
                "stats": {
                    "$ref": "#/definitions/workspace.Stats"
                }
            }
        },
        "types.StatsResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "stats": {
                    "$ref": "#/definitions/workspace.Stats"
                }
            }
        },
        "types.HistoryRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "action": {
                    "type": "string"
                },
                "details": {
                    "type": "object"
                },
                "owner": {
                    "type": "string"
                },
                "inputOnly": {
                    "type": "boolean"
                },
                "created": {
                    "type": "string"
                },
                "updated": {
                    "type": "string"
                }
            }
        },
        "types.HistoryListResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.HistoryRecord"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "types.HistoryRecordResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "record": {
                    "$ref": "#/definitions/types.HistoryRecord"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token, sent as \"Bearer <token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Hanja Platform API",
	Description:      "Punctuation, named entity annotation and translation of classical Chinese (Hanja) texts, with per-user history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
