package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"

	temporal "github.com/feral-file/ff-dao/internal/providers/temporal"
	"github.com/feral-file/ff-dao/internal/workflows"
)

var (
	lifecycleOpenOnly bool
	lifecycleLimit    int
	lifecycleTimeout  time.Duration
)

var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle [proposal-id]",
	Short: "List proposal lifecycle workflow runs",
	Long: `List the runs of the proposal lifecycle workflow recorded by Temporal,
optionally restricted to one proposal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := lifecycleQuery(lifecycleOpenOnly)
		if len(args) == 1 {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			query = fmt.Sprintf("%s AND WorkflowId = '%s'", query, workflows.LifecycleWorkflowID(id))
		}

		c, err := temporal.Dial(cliConfig.Temporal.HostPort, cliConfig.Temporal.Namespace)
		if err != nil {
			return fmt.Errorf("failed to connect to Temporal: %w", err)
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), lifecycleTimeout)
		defer cancel()

		resp, err := c.ListWorkflow(ctx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace: cliConfig.Temporal.Namespace,
			Query:     query,
			PageSize:  int32(lifecycleLimit), //nolint:gosec,G115
		})
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return fmt.Errorf("timeout while listing workflows (timeout: %v)", lifecycleTimeout)
			}
			return fmt.Errorf("failed to list workflows: %w", err)
		}

		renderLifecycleRuns(cmd.OutOrStdout(), resp.Executions, time.Now())
		return nil
	},
}

func init() {
	lifecycleCmd.Flags().BoolVar(&lifecycleOpenOnly, "open", false, "Only show running workflows")
	lifecycleCmd.Flags().IntVarP(&lifecycleLimit, "limit", "n", 50, "Maximum number of runs")
	lifecycleCmd.Flags().DurationVar(&lifecycleTimeout, "timeout", 30*time.Second, "Timeout of the Temporal query")
	proposalsCmd.AddCommand(lifecycleCmd)
}

func lifecycleQuery(openOnly bool) string {
	query := fmt.Sprintf("WorkflowType = '%s'", workflows.ProposalLifecycleWorkflow)
	if openOnly {
		query += " AND ExecutionStatus = 'Running'"
	}
	return query
}

func renderLifecycleRuns(w io.Writer, executions []*workflowpb.WorkflowExecutionInfo, now time.Time) {
	t := newTable(w, table.Row{"Workflow", "Run", "Status", "Started", "Closed", "Duration"})
	for _, exec := range executions {
		start := exec.GetStartTime().AsTime()
		closed := "-"
		elapsed := now.Sub(start)
		if exec.GetCloseTime() != nil {
			ct := exec.GetCloseTime().AsTime()
			closed = formatTime(&ct)
			elapsed = ct.Sub(start)
		}

		status := exec.GetStatus().String()
		switch exec.GetStatus() {
		case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
			status = activeStyle.Sprint(status)
		case enums.WORKFLOW_EXECUTION_STATUS_FAILED, enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT, enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
			status = warningStyle.Sprint(status)
		}

		t.AppendRow(table.Row{
			exec.GetExecution().GetWorkflowId(),
			exec.GetExecution().GetRunId(),
			status,
			formatTime(&start),
			closed,
			elapsed.Truncate(time.Second).String(),
		})
	}
	t.Render()
}
