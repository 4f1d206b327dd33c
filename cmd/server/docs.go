package main

// @title Star Wars Catalog & Favorites API
// @version 1.0
// @description CRUD REST API for a media catalog (characters, planets, vehicles) with per-user favorites

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description User listing

// @tag.name Catalog
// @tag.description Public catalog reads

// @tag.name Favorites
// @tag.description Per-user favorites ledger

// @tag.name Admin
// @tag.description Admin-only catalog mutations
