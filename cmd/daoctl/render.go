package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

var (
	activeStyle   = color.New(color.FgGreen)
	inactiveStyle = color.New(color.Faint)
	warningStyle  = color.New(color.FgRed, color.Bold)
	headerStyle   = color.New(color.Bold, color.FgHiWhite)
)

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Format.Header = text.FormatUpper
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(header)
	return t
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func statusCell(status domain.ProposalStatus) string {
	switch {
	case status == domain.ProposalStatusExecuted:
		return activeStyle.Sprint(status)
	case status.IsTerminal():
		return inactiveStyle.Sprint(status)
	default:
		return string(status)
	}
}

func activeCell(active bool) string {
	if active {
		return activeStyle.Sprint("active")
	}
	return inactiveStyle.Sprint("inactive")
}

func renderProposals(w io.Writer, proposals []*schema.Proposal, total uint64) {
	t := newTable(w, table.Row{"ID", "Status", "Proposer", "Title", "For", "Against", "Power"})
	for _, p := range proposals {
		t.AppendRow(table.Row{p.ID, statusCell(p.Status), p.Proposer, p.Title, p.TotalVotesFor, p.TotalVotesAgainst, p.TotalVotingPower})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d of %d", len(proposals), total)})
	t.Render()
}

func renderProposal(w io.Writer, p *schema.Proposal, deadline *time.Time) {
	t := newTable(w, table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"id", p.ID},
		{"title", p.Title},
		{"proposer", p.Proposer},
		{"status", statusCell(p.Status)},
		{"discussion started", formatTime(p.DiscussionStartTime)},
		{"voting started", formatTime(p.VotingStartTime)},
		{"voting ended", formatTime(p.VotingEndTime)},
		{"executed", formatTime(p.ExecutionTime)},
		{"next deadline", formatTime(deadline)},
		{"votes for", p.TotalVotesFor},
		{"votes against", p.TotalVotesAgainst},
		{"total voting power", p.TotalVotingPower},
	})
	t.Render()
}

func renderToken(w io.Writer, token *schema.GovernanceToken) {
	t := newTable(w, table.Row{"Holder", "Balance", "Locked Until", "Delegated To"})
	lockedUntil := "-"
	if token.IsLocked {
		lockedUntil = formatTime(token.LockedUntil)
	}
	t.AppendRow(table.Row{token.Holder, token.Balance, lockedUntil, lo.FromPtrOr(token.DelegatedTo, "-")})
	t.Render()
}

func renderGuardians(w io.Writer, guardians []*schema.Guardian, now time.Time) {
	t := newTable(w, table.Row{"User", "Status", "Term Start", "Term End"})
	for _, g := range guardians {
		status := activeCell(g.IsActive)
		if g.IsActive && now.After(g.TermEnd) {
			status = warningStyle.Sprint("term expired")
		}
		t.AppendRow(table.Row{g.UserID, status, formatTime(&g.TermStart), formatTime(&g.TermEnd)})
	}
	t.Render()
}

func renderAssets(w io.Writer, assets []*schema.Asset) {
	t := newTable(w, table.Row{"ID", "Symbol", "Name", "Type", "Chain", "Decimals", "Risk", "Stable"})
	for _, a := range assets {
		t.AppendRow(table.Row{a.ID, a.Symbol, a.Name, a.AssetType, lo.FromPtrOr(a.Chain, "-"), a.Decimals, a.RiskScore, strconv.FormatBool(a.IsStable)})
	}
	t.Render()
}

func renderBalances(w io.Writer, balances []*schema.AssetBalance, metric *schema.TreasuryMetric) {
	t := newTable(w, table.Row{"Symbol", "Type", "Balance", "USD Value", "Updated"})
	for _, b := range balances {
		t.AppendRow(table.Row{b.Asset.Symbol, b.Asset.AssetType, b.Balance.String(), b.USDValue.StringFixed(2), formatTime(&b.LastUpdated)})
	}
	if metric != nil {
		t.AppendFooter(table.Row{"total", "", "", metric.TotalValueUSD.StringFixed(2), "reserve " + metric.ReserveRatio.StringFixed(4)})
	}
	t.Render()
}

func renderCircuitBreakers(w io.Writer, breakers []*schema.CircuitBreaker) {
	t := newTable(w, table.Row{"ID", "Status", "Reason", "Activated By", "Activated", "Deactivated By", "Deactivated"})
	for _, b := range breakers {
		status := inactiveStyle.Sprint("reset")
		if b.IsActive {
			status = warningStyle.Sprint("halted")
		}
		t.AppendRow(table.Row{b.ID, status, b.Reason, b.ActivatedBy, formatTime(&b.ActivationTime), lo.FromPtrOr(b.DeactivatedBy, "-"), formatTime(b.DeactivationTime)})
	}
	t.Render()
}

func printHeader(w io.Writer, format string, args ...any) {
	_, _ = headerStyle.Fprintf(w, format+"\n", args...)
}
