package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/treasury"
)

var (
	guardianTerm  time.Duration
	breakerReason string
	historyLimit  int

	assetInput    treasury.CreateAssetInput
	assetType     string
	assetContract string
	assetChain    string
)

var guardiansCmd = &cobra.Command{
	Use:     "guardians",
	Aliases: []string{"guardian"},
	Short:   "Manage the guardian registry",
}

var guardiansListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List guardians",
	RunE: func(cmd *cobra.Command, args []string) error {
		guardians, err := services.Guardians.List(cmd.Context())
		if err != nil {
			return err
		}
		renderGuardians(cmd.OutOrStdout(), guardians, time.Now())
		return nil
	},
}

var guardiansAddCmd = &cobra.Command{
	Use:   "add <user>",
	Short: "Appoint a guardian starting now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now().UTC()
		g, err := services.Guardians.Add(cmd.Context(), args[0], start, start.Add(guardianTerm), actor)
		if err != nil {
			return err
		}
		renderGuardians(cmd.OutOrStdout(), []*schema.Guardian{g}, start)
		return nil
	},
}

var guardiansRemoveCmd = &cobra.Command{
	Use:     "remove <user>",
	Aliases: []string{"deactivate"},
	Short:   "Deactivate a guardian",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := services.Guardians.Deactivate(cmd.Context(), args[0], actor)
		if err != nil {
			return err
		}
		renderGuardians(cmd.OutOrStdout(), []*schema.Guardian{g}, time.Now())
		return nil
	},
}

var breakerCmd = &cobra.Command{
	Use:     "breaker",
	Aliases: []string{"circuit-breaker"},
	Short:   "Inspect and operate the treasury circuit breaker",
}

var breakerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether treasury execution is halted",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := services.Breaker.Current(cmd.Context())
		if err != nil {
			return err
		}
		if current == nil {
			printHeader(cmd.OutOrStdout(), "Treasury execution is running")
			return nil
		}
		printHeader(cmd.OutOrStdout(), "Treasury execution is halted")
		renderCircuitBreakers(cmd.OutOrStdout(), []*schema.CircuitBreaker{current})
		return nil
	},
}

var breakerActivateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Halt treasury execution",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := services.Breaker.Activate(cmd.Context(), actor, breakerReason)
		if err != nil {
			return err
		}
		renderCircuitBreakers(cmd.OutOrStdout(), []*schema.CircuitBreaker{b})
		return nil
	},
}

var breakerDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Resume treasury execution",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := services.Breaker.Deactivate(cmd.Context(), actor)
		if err != nil {
			return err
		}
		renderCircuitBreakers(cmd.OutOrStdout(), []*schema.CircuitBreaker{b})
		return nil
	},
}

var breakerHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List circuit breaker activations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		breakers, _, err := services.Breaker.History(cmd.Context(), historyLimit, 0)
		if err != nil {
			return err
		}
		renderCircuitBreakers(cmd.OutOrStdout(), breakers)
		return nil
	},
}

var assetsCmd = &cobra.Command{
	Use:     "assets",
	Aliases: []string{"asset"},
	Short:   "Manage the treasury asset registry",
}

var assetsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, err := services.Assets.List(cmd.Context())
		if err != nil {
			return err
		}
		renderAssets(cmd.OutOrStdout(), assets)
		return nil
	},
}

var assetsAddCmd = &cobra.Command{
	Use:   "add <symbol> <name>",
	Short: "Register an asset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := assetInput
		input.Symbol = args[0]
		input.Name = args[1]
		input.AssetType = domain.AssetType(assetType)
		if assetContract != "" {
			input.ContractAddress = &assetContract
		}
		if assetChain != "" {
			input.Chain = &assetChain
		}

		asset, err := services.Assets.Create(cmd.Context(), input)
		if err != nil {
			return err
		}
		renderAssets(cmd.OutOrStdout(), []*schema.Asset{asset})
		return nil
	},
}

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Show treasury balances and the reserve ratio",
	RunE: func(cmd *cobra.Command, args []string) error {
		balances, err := services.Ledger.Balances(cmd.Context())
		if err != nil {
			return err
		}
		summary, err := services.Ledger.Summary(cmd.Context())
		if err != nil {
			return err
		}
		renderBalances(cmd.OutOrStdout(), balances, summary)

		if summary != nil && summary.TotalValueUSD.IsPositive() && summary.ReserveRatio.LessThan(services.Ledger.ReserveRatioTarget()) {
			_, _ = warningStyle.Fprintf(cmd.OutOrStdout(), "reserve ratio %s is below the %s target\n",
				summary.ReserveRatio.StringFixed(4), services.Ledger.ReserveRatioTarget().StringFixed(4))
		}
		return nil
	},
}

func init() {
	guardiansAddCmd.Flags().DurationVar(&guardianTerm, "term", 365*24*time.Hour, "Length of the guardian term")
	guardiansCmd.AddCommand(guardiansListCmd, guardiansAddCmd, guardiansRemoveCmd)

	breakerActivateCmd.Flags().StringVarP(&breakerReason, "reason", "r", "", "Why execution is halted")
	_ = breakerActivateCmd.MarkFlagRequired("reason")
	breakerHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of activations")
	breakerCmd.AddCommand(breakerStatusCmd, breakerActivateCmd, breakerDeactivateCmd, breakerHistoryCmd)

	assetsAddCmd.Flags().StringVar(&assetType, "type", string(domain.AssetTypeCrypto), fmt.Sprintf("Asset class (%s, %s, ...)", domain.AssetTypeCrypto, domain.AssetTypeStable))
	assetsAddCmd.Flags().StringVar(&assetContract, "contract", "", "Token contract address")
	assetsAddCmd.Flags().StringVar(&assetChain, "chain", "", "Chain the asset lives on")
	assetsAddCmd.Flags().IntVar(&assetInput.Decimals, "decimals", 18, "Decimal places of the asset")
	assetsAddCmd.Flags().IntVar(&assetInput.RiskScore, "risk", 0, "Risk score from 0 to 100")
	assetsAddCmd.Flags().BoolVar(&assetInput.IsStable, "stable", false, "Count the asset towards the reserve")
	assetsCmd.AddCommand(assetsListCmd, assetsAddCmd)
}
