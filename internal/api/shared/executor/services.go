package executor

import (
	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/membership"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/treasury"
)

// ServicesConfig holds what every binary shares when building the domain services
type ServicesConfig struct {
	Store      store.Store
	Publisher  messaging.Publisher
	Clock      adapter.Clock
	JSON       adapter.JSON
	JCS        adapter.JCS
	Governance governance.Params
	Treasury   treasury.Params
}

// NewServices builds the governance and treasury services over one store and one publisher
func NewServices(cfg ServicesConfig) Services {
	if cfg.Publisher == nil {
		cfg.Publisher = messaging.NewNopPublisher()
	}
	recorder := journal.NewRecorder(cfg.JSON, cfg.JCS)

	ledger := treasury.NewLedger(cfg.Store, cfg.Treasury, cfg.Clock, cfg.Publisher, recorder)
	guardians := treasury.NewGuardianRegistry(cfg.Store, cfg.Treasury, cfg.Clock, recorder)

	return Services{
		Store:      cfg.Store,
		Proposals:  governance.NewStateMachine(cfg.Store, cfg.Governance, cfg.Clock, cfg.JSON, cfg.Publisher, recorder),
		Votes:      governance.NewVotingEngine(cfg.Store, cfg.Governance, cfg.Clock, cfg.Publisher, recorder),
		Tokens:     governance.NewTokenLedger(cfg.Store, cfg.Clock, cfg.Publisher, recorder),
		Members:    membership.NewService(cfg.Store, cfg.Clock, cfg.Publisher, recorder),
		Guardians:  guardians,
		Approvals:  treasury.NewGuardianApprovalEngine(cfg.Store, cfg.Treasury, cfg.Clock, guardians, ledger, cfg.Publisher, recorder),
		Ledger:     ledger,
		Breaker:    treasury.NewCircuitBreaker(cfg.Store, cfg.Clock, cfg.Publisher, recorder),
		Assets:     treasury.NewAssetRegistry(cfg.Store, cfg.Clock),
		Strategies: treasury.NewAllocationStrategies(cfg.Store, cfg.Clock, recorder),
	}
}
