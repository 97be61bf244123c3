package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/types"
)

var (
	proposalStatuses string
	proposalLimit    int
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Inspect and top up governance tokens",
}

var tokensShowCmd = &cobra.Command{
	Use:   "show <holder>",
	Short: "Show the governance token of a holder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := services.Tokens.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		renderToken(cmd.OutOrStdout(), token)
		return nil
	},
}

var tokensMintCmd = &cobra.Command{
	Use:   "mint <holder> <amount>",
	Short: "Mint governance tokens to a holder",
	Long: `Mint governance tokens to a holder.

Minting is the out-of-band top-up of the token ledger. The holder's
voting power grows by the minted amount.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
		token, err := services.Tokens.Mint(cmd.Context(), args[0], amount, actor)
		if err != nil {
			return err
		}
		printHeader(cmd.OutOrStdout(), "Minted %d tokens", amount)
		renderToken(cmd.OutOrStdout(), token)
		return nil
	},
}

var proposalsCmd = &cobra.Command{
	Use:     "proposals",
	Aliases: []string{"proposal"},
	Short:   "Inspect proposals and repair their tallies",
}

var proposalsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List proposals",
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses, err := types.ParseProposalStatuses(proposalStatuses)
		if err != nil {
			return err
		}
		filter := store.ProposalQueryFilter{Statuses: statuses, Limit: proposalLimit}

		proposals, total, err := services.Proposals.List(cmd.Context(), filter)
		if err != nil {
			return err
		}
		renderProposals(cmd.OutOrStdout(), proposals, total)
		return nil
	},
}

var proposalsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a proposal and its next deadline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := services.Proposals.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		renderProposal(cmd.OutOrStdout(), p, governance.NextDeadline(p, services.Proposals.Params()))
		return nil
	},
}

var proposalsTallyCmd = &cobra.Command{
	Use:   "tally <id>",
	Short: "Recompute the vote totals of a proposal from its votes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := services.Proposals.RecomputeTally(cmd.Context(), id)
		if err != nil {
			return err
		}
		printHeader(cmd.OutOrStdout(), "Recomputed tally of proposal %d", id)
		renderProposal(cmd.OutOrStdout(), p, governance.NextDeadline(p, services.Proposals.Params()))
		return nil
	},
}

var proposalsAdvanceCmd = &cobra.Command{
	Use:   "advance <id>",
	Short: "Perform the due time-gated transition of a proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := services.Proposals.Advance(cmd.Context(), id, actor)
		if err != nil {
			return err
		}
		renderProposal(cmd.OutOrStdout(), p, governance.NextDeadline(p, services.Proposals.Params()))
		return nil
	},
}

func init() {
	tokensCmd.AddCommand(tokensShowCmd, tokensMintCmd)

	proposalsListCmd.Flags().StringVarP(&proposalStatuses, "status", "s", "", "Filter by comma separated statuses")
	proposalsListCmd.Flags().IntVarP(&proposalLimit, "limit", "n", 20, "Maximum number of proposals")
	proposalsCmd.AddCommand(proposalsListCmd, proposalsShowCmd, proposalsTallyCmd, proposalsAdvanceCmd)
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
