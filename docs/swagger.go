// Package docs Marigold Catering API documentation
package docs

// Swagger documentation info
// @title Marigold Catering API
// @version 1.0
// @description Content management and inquiry intake API for the Marigold Catering website

// @contact.name API Support
// @contact.email support@marigoldcatering.com

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// Public Endpoints
// @tag.name contact
// @tag.description Contact form intake and admin follow-up
// @tag.name careers
// @tag.description Job applications and review workflow
// @tag.name venues
// @tag.description Venue directory
// @tag.name services
// @tag.description Service pages
// @tag.name menu-items
// @tag.description Catering menu items
// @tag.name corporate-services
// @tag.description Corporate service cards
// @tag.name exclusive-locations
// @tag.description Exclusive partner locations
// @tag.name team
// @tag.description Team member profiles
// @tag.name testimonials
// @tag.description Client testimonials

// Admin Endpoints
// @tag.name auth
// @tag.description Admin authentication
// @tag.name uploads
// @tag.description File uploads proxied to the storage provider
