// Package api provides the admin REST API of ReputationIndexor
// @title ReputationIndexor Admin API
// @version 1.0
// @description Admin API for inspecting ingestion progress, raw events and queues, and for replaying event processing
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/ReputationIndexor
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /api/v1
// @schemes http https
package api
