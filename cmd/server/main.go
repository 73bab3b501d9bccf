package main

import (
	"condo-maintenance-backend/cmd/server/cmd"

	_ "condo-maintenance-backend/docs" // This is needed for swag
)

//	@title			Condo Maintenance Backend API
//	@version		1.0
//	@description	Facility-maintenance API for condominiums: assets, preventive plans, NBR conformity, tickets, work orders and attachments.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	cmd.Execute()
}
