package main

import (
	"os"

	"github.com/SscSPs/pos_ledger/internal/cli"
)

//go:generate swag init -g main.go -d ./,../../internal/handlers,../../internal/dto,../../internal/core/domain -o ../docs

// @title POS Ledger API
// @version 1.0
// @description Double-entry accounting for point-of-sale businesses: chart of accounts, journal, payables, statements and POS event journalization.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description POS integration key.
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
