package main

// @title Money Planner API
// @version 1.0
// @description Projects recurring obligations into monthly budget records and reconstructs account yield.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
