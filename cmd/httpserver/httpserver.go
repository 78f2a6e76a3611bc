// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/nexa-bank/internal/accountdelivery"
	"github.com/go-petr/nexa-bank/internal/accountrepo"
	"github.com/go-petr/nexa-bank/internal/accountservice"
	"github.com/go-petr/nexa-bank/internal/admindelivery"
	"github.com/go-petr/nexa-bank/internal/beneficiaryrepo"
	"github.com/go-petr/nexa-bank/internal/cryptodelivery"
	"github.com/go-petr/nexa-bank/internal/cryptorepo"
	"github.com/go-petr/nexa-bank/internal/cryptoservice"
	"github.com/go-petr/nexa-bank/internal/entryrepo"
	"github.com/go-petr/nexa-bank/internal/fundingdelivery"
	"github.com/go-petr/nexa-bank/internal/fundingrepo"
	"github.com/go-petr/nexa-bank/internal/fundingservice"
	"github.com/go-petr/nexa-bank/internal/middleware"
	"github.com/go-petr/nexa-bank/internal/rates"
	"github.com/go-petr/nexa-bank/internal/stockdelivery"
	"github.com/go-petr/nexa-bank/internal/stockrepo"
	"github.com/go-petr/nexa-bank/internal/stockservice"
	"github.com/go-petr/nexa-bank/internal/transferdelivery"
	"github.com/go-petr/nexa-bank/internal/transferrepo"
	"github.com/go-petr/nexa-bank/internal/transferservice"
	"github.com/go-petr/nexa-bank/internal/userrepo"
	"github.com/go-petr/nexa-bank/internal/walletrepo"
	"github.com/go-petr/nexa-bank/pkg/configpkg"
	"github.com/go-petr/nexa-bank/pkg/currencypkg"
	"github.com/go-petr/nexa-bank/pkg/tokenpkg"
	"github.com/go-petr/nexa-bank/pkg/web"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	entryRepo := entryrepo.NewRepoPGS(conn)
	beneficiaryRepo := beneficiaryrepo.NewRepoPGS(conn)
	walletRepo := walletrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)
	cryptoRepo := cryptorepo.NewRepoPGS(conn)
	fundingRepo := fundingrepo.NewRepoPGS(conn)
	stockRepo := stockrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	oracle := rates.NewClient(config.CryptoOracleURL, config.StockOracleURL,
		config.StockOracleAPIKey, config.OracleTimeout)

	accountService := accountservice.New(accountRepo, entryRepo, transferRepo)
	transferService := transferservice.New(transferRepo, beneficiaryRepo, accountRepo)
	cryptoService := cryptoservice.New(walletRepo, accountRepo, cryptoRepo, oracle)
	fundingService := fundingservice.New(fundingRepo, oracle)
	stockService := stockservice.New(stockRepo, oracle)

	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)
	cryptoHandler := cryptodelivery.NewHandler(cryptoService)
	fundingHandler := fundingdelivery.NewHandler(fundingService)
	stockHandler := stockdelivery.NewHandler(stockService)
	adminHandler := admindelivery.NewHandler(userRepo, accountService, fundingService, stockService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("/accounts", accountHandler.Create)
	authRoutes.GET("/accounts", accountHandler.List)
	authRoutes.GET("/accounts/:number", accountHandler.Get)
	authRoutes.POST("/accounts/deposit", accountHandler.Deposit)
	authRoutes.POST("/accounts/withdraw", accountHandler.Withdraw)
	authRoutes.GET("/transactions", accountHandler.Transactions)
	authRoutes.GET("/transactions/:id", accountHandler.Transaction)

	authRoutes.POST("/transfers/internal", transferHandler.Internal)
	authRoutes.POST("/transfers/external", transferHandler.External)
	authRoutes.POST("/beneficiaries", transferHandler.AddBeneficiary)
	authRoutes.GET("/beneficiaries", transferHandler.Beneficiaries)

	authRoutes.GET("/crypto/wallets", cryptoHandler.Wallets)
	authRoutes.GET("/crypto/rates", cryptoHandler.Rates)
	authRoutes.POST("/crypto/deposit", cryptoHandler.Deposit)
	authRoutes.POST("/crypto/withdraw", cryptoHandler.Withdraw)
	authRoutes.POST("/crypto/sell", cryptoHandler.Sell)
	authRoutes.POST("/crypto/purchase", cryptoHandler.Purchase)
	authRoutes.POST("/crypto/simulate-deposit", cryptoHandler.SimulateDeposit)
	authRoutes.POST("/crypto/funding-quote", cryptoHandler.FundingQuote)
	authRoutes.GET("/crypto/history", cryptoHandler.History)

	authRoutes.POST("/funding-requests", fundingHandler.Create)
	authRoutes.GET("/funding-requests/pending", fundingHandler.Pending)

	authRoutes.GET("/stocks", stockHandler.Catalog)
	authRoutes.GET("/stocks/portfolio", stockHandler.Portfolio)
	authRoutes.GET("/stocks/history", stockHandler.History)
	authRoutes.GET("/stocks/:symbol", stockHandler.Quote)
	authRoutes.POST("/stocks/buy", stockHandler.Buy)
	authRoutes.POST("/stocks/sell", stockHandler.Sell)

	adminRoutes := engine.Group("/admin").
		Use(middleware.AuthMiddleware(tokenMaker)).
		Use(middleware.AdminMiddleware())

	adminRoutes.GET("/users", adminHandler.Users)
	adminRoutes.GET("/users/:id/accounts", adminHandler.UserAccounts)
	adminRoutes.POST("/users/:id/adjust", adminHandler.Adjust)
	adminRoutes.GET("/funding-requests", adminHandler.ReviewQueue)
	adminRoutes.POST("/funding-requests/:id/approve", adminHandler.Approve)
	adminRoutes.POST("/funding-requests/:id/reject", adminHandler.Reject)
	adminRoutes.GET("/stocks", adminHandler.Stocks)
	adminRoutes.POST("/stocks", adminHandler.AddStock)
	adminRoutes.GET("/stocks/transactions", adminHandler.Transactions)
	adminRoutes.POST("/stocks/:symbol/price", adminHandler.SetPrice)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("cryptocurrency", currencypkg.ValidCurrency); err != nil {
			return nil, errors.New("cannot register currency validator")
		}

		if err := v.RegisterValidation("accounttype", web.ValidAccountType); err != nil {
			return nil, errors.New("cannot register account type validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
