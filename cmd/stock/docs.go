package main

// @title A4 Format Stock Tracker API
// @version 1.0
// @description Stock tracker for A4 format items: colors, descriptions, daily purchase and usage entries, monthly ledgers and opening stock rollover.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/stock-tracker
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/stock-tracker/blob/main/LICENSE

// @host localhost:8000
// @BasePath /

// @tag.name Colors
// @tag.description Color palette endpoints

// @tag.name Descriptions
// @tag.description Item description endpoints

// @tag.name Stock
// @tag.description Stock entries, monthly reports and rollover

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
