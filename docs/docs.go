// Package docs registers the OpenAPI document served at /swagger/.
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
        "/api/bookings": {
            "post": {
                "description": "Reserve a spot for an email address. A confirmation email is sent on success.",
                "consumes": ["application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book an event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "eventId", "in": "formData", "required": true},
                    {"type": "string", "description": "Attendee email", "name": "email", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.BookingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "event does not exist", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "409": {"description": "email already booked", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "description": "Events newest first.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"type": "integer", "description": "Page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create an event from form fields. agenda and tags may be repeated; other repeated fields keep their last value. The slug, date and time are normalized on save.",
                "consumes": ["application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData", "required": true},
                    {"type": "string", "description": "Overview", "name": "overview", "in": "formData", "required": true},
                    {"type": "string", "description": "Image URL", "name": "image", "in": "formData", "required": true},
                    {"type": "string", "description": "Venue", "name": "venue", "in": "formData", "required": true},
                    {"type": "string", "description": "Location", "name": "location", "in": "formData", "required": true},
                    {"type": "string", "description": "Date, any common format", "name": "date", "in": "formData", "required": true},
                    {"type": "string", "description": "Time, HH:MM", "name": "time", "in": "formData", "required": true},
                    {"type": "string", "description": "online, offline or hybrid", "name": "mode", "in": "formData", "required": true},
                    {"type": "string", "description": "Audience", "name": "audience", "in": "formData", "required": true},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Agenda items", "name": "agenda", "in": "formData", "required": true},
                    {"type": "string", "description": "Organizer", "name": "organizer", "in": "formData", "required": true},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Tags", "name": "tags", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.EventResponse"}},
                    "400": {"description": "body is not form encoded", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "validation or storage failure", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/events/featured": {
            "get": {
                "description": "The static list of sample events shown on the home page.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Featured events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.FeaturedEventsResponse"}}
                }
            }
        },
        "/api/events/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by slug",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Partial update from form fields. Only submitted fields change; the slug is re-derived when the title changes.",
                "consumes": ["application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update an event",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "409": {"description": "slug already taken", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/events/{slug}/bookings/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Count bookings for an event",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BookingCountResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/events/{slug}/similar": {
            "get": {
                "description": "Up to three other events sharing at least one tag.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Similar events",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.BookingCountResponse": {
            "type": "object",
            "properties": {"count": {"type": "integer"}}
        },
        "controllers.BookingResponse": {
            "type": "object",
            "properties": {
                "booking": {"$ref": "#/definitions/domain.Booking"},
                "message": {"type": "string"}
            }
        },
        "controllers.EventListResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
            }
        },
        "controllers.EventResponse": {
            "type": "object",
            "properties": {
                "event": {"$ref": "#/definitions/domain.Event"},
                "message": {"type": "string"}
            }
        },
        "controllers.EventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}
            }
        },
        "controllers.FeaturedEventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.FeaturedEvent"}}
            }
        },
        "domain.Booking": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "eventId": {"type": "string"},
                "id": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "agenda": {"type": "array", "items": {"type": "string"}},
                "audience": {"type": "string"},
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "mode": {"type": "string", "enum": ["online", "offline", "hybrid"]},
                "organizer": {"type": "string"},
                "overview": {"type": "string"},
                "slug": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "domain.FeaturedEvent": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "slug": {"type": "string"},
                "time": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}},
                "message": {"type": "string"}
            }
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
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
	Title:            "devevents API",
	Description:      "Developer event listings and bookings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
