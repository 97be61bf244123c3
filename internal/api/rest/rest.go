package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-dao/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. A nil limiter middleware disables rate limiting.
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator, rateLimit gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	chain := []gin.HandlerFunc{middleware.Auth(auth)}
	if rateLimit != nil {
		chain = append(chain, rateLimit)
	}
	admin := middleware.RequireAdmin()

	v1 := router.Group("/api/v1", chain...)
	{
		// Proposals
		v1.POST("/proposals", handler.CreateProposal)
		v1.GET("/proposals", handler.ListProposals)
		v1.GET("/proposals/:id", handler.GetProposal)
		v1.POST("/proposals/:id/discussion", handler.StartDiscussion)
		v1.POST("/proposals/:id/voting", handler.StartVoting)
		v1.POST("/proposals/:id/tally", handler.EndVoting)
		v1.POST("/proposals/:id/execute", handler.ExecuteProposal)
		v1.POST("/proposals/:id/cancel", handler.CancelProposal)
		v1.POST("/proposals/:id/votes", handler.CastVote)
		v1.GET("/proposals/:id/votes", handler.ListVotes)
		v1.POST("/proposals/:id/comments", handler.AddComment)
		v1.GET("/proposals/:id/comments", handler.ListComments)

		// Governance tokens
		v1.POST("/tokens/transfer", handler.TransferTokens)
		v1.POST("/tokens/delegate", handler.Delegate)
		v1.POST("/tokens/undelegate", handler.Undelegate)
		v1.GET("/tokens/:holder", handler.GetToken)
		v1.POST("/tokens/:holder/mint", admin, handler.MintTokens)

		// Members
		v1.POST("/members", handler.RegisterMember)
		v1.POST("/members/verification", handler.RequestVerification)
		v1.GET("/members/:wallet", handler.GetMember)
		v1.POST("/verifications/:id/approve", admin, handler.ApproveVerification)
		v1.POST("/verifications/:id/reject", admin, handler.RejectVerification)
		v1.POST("/verifications/:id/request-info", admin, handler.RequestAdditionalInfo)

		// Guardians and assets
		v1.POST("/guardians", admin, handler.AddGuardian)
		v1.GET("/guardians", handler.ListGuardians)
		v1.POST("/guardians/:user_id/deactivate", admin, handler.DeactivateGuardian)
		v1.POST("/assets", admin, handler.CreateAsset)
		v1.GET("/assets", handler.ListAssets)

		// Treasury
		v1.GET("/treasury/balances", handler.GetBalances)
		v1.POST("/treasury/transactions", handler.ProposeTransaction)
		v1.GET("/treasury/transactions", handler.ListTransactions)
		v1.GET("/treasury/transactions/pending", handler.PendingTransactions)
		v1.GET("/treasury/transactions/:id", handler.GetTransaction)
		v1.GET("/treasury/transactions/:id/approvals", handler.ListApprovals)
		v1.POST("/treasury/transactions/:id/approvals", handler.SubmitApproval)
		v1.POST("/treasury/transactions/:id/execute", admin, handler.ExecuteTransaction)
		v1.POST("/treasury/transactions/:id/cancel", handler.CancelTransaction)
		v1.GET("/treasury/metrics/latest", handler.LatestMetric)
		v1.GET("/treasury/metrics", handler.MetricHistory)

		// Circuit breaker and allocation strategies
		v1.GET("/circuit-breaker", handler.GetCircuitBreaker)
		v1.GET("/circuit-breaker/history", handler.CircuitBreakerHistory)
		v1.POST("/circuit-breaker/activate", admin, handler.ActivateCircuitBreaker)
		v1.POST("/circuit-breaker/deactivate", admin, handler.DeactivateCircuitBreaker)
		v1.POST("/allocation-strategies", admin, handler.CreateStrategy)
		v1.GET("/allocation-strategies", handler.ListStrategies)
		v1.POST("/allocation-strategies/:id/activate", admin, handler.ActivateStrategy)

		// Audit trail
		v1.GET("/journal", handler.GetJournal)
	}
}
