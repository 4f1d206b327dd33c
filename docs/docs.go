// Package docs holds the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and receive a JWT",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List all users",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/favorites": {
            "get": {
                "tags": ["Favorites"],
                "summary": "Current user's favorites grouped by kind",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User not found"}}
            }
        },
        "/favorite/planet/{id}": {
            "post": {
                "tags": ["Favorites"],
                "summary": "Add a planet to the current user's favorites",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User or Planet not found"}}
            },
            "delete": {
                "tags": ["Favorites"],
                "summary": "Remove a favorite planet",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Favorite Planet not found"}}
            }
        },
        "/favorite/people/{id}": {
            "post": {
                "tags": ["Favorites"],
                "summary": "Add a character to the current user's favorites",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User or Character not found"}}
            }
        },
        "/favorite/character/{id}": {
            "delete": {
                "tags": ["Favorites"],
                "summary": "Remove a favorite character",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Favorite Character not found"}}
            }
        },
        "/favorite/vehicle/{id}": {
            "post": {
                "tags": ["Favorites"],
                "summary": "Add a vehicle to the current user's favorites",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User or Vehicle not found"}}
            },
            "delete": {
                "tags": ["Favorites"],
                "summary": "Remove a favorite vehicle",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Favorite Vehicle not found"}}
            }
        },
        "/people": {
            "get": {"tags": ["Catalog"], "summary": "List characters", "responses": {"200": {"description": "OK"}}}
        },
        "/planets": {
            "get": {"tags": ["Catalog"], "summary": "List planets", "responses": {"200": {"description": "OK"}}}
        },
        "/vehicles": {
            "get": {"tags": ["Catalog"], "summary": "List vehicles", "responses": {"200": {"description": "OK"}}}
        },
        "/people/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get one character",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Character not found"}}
            }
        },
        "/planets/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get one planet",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Planet not found"}}
            }
        },
        "/vehicles/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get one vehicle",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Vehicle not found"}}
            }
        },
        "/add_people": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create a character (admin only)",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/add_planet": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create a planet (admin only)",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/add_vehicle": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create a vehicle (admin only)",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/delete_people/{id}": {
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete a character (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Character not found"}}
            }
        },
        "/delete_planet/{id}": {
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete a planet (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Planet not found"}}
            }
        },
        "/delete_vehicle/{id}": {
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete a vehicle (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Vehicle not found"}}
            }
        },
        "/health": {
            "get": {"tags": ["Health"], "summary": "Service health", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Title:            "Star Wars Catalog & Favorites API",
	Description:      "CRUD REST API for a media catalog with per-user favorites",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
