package rest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-dao/internal/api/shared/constants"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/types"
)

// PaginationQueryParams holds offset pagination parameters
type PaginationQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

func (p *PaginationQueryParams) normalize() {
	if p.Limit <= 0 {
		p.Limit = constants.DEFAULT_PAGE_SIZE
	}
	if p.Limit > constants.MAX_PAGE_SIZE {
		p.Limit = constants.MAX_PAGE_SIZE
	}
}

// ListProposalsQueryParams holds query parameters for GET /proposals.
// Status accepts repeated parameters and comma separated lists.
type ListProposalsQueryParams struct {
	PaginationQueryParams
	Status   []string `form:"status"`
	Proposer *string  `form:"proposer"`

	Statuses []domain.ProposalStatus `form:"-"`
}

// ParseListProposalsQuery parses query parameters for GET /proposals
func ParseListProposalsQuery(c *gin.Context) (*ListProposalsQueryParams, error) {
	var params ListProposalsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()

	statuses, err := types.ParseProposalStatuses(strings.Join(params.Status, ","))
	if err != nil {
		return nil, err
	}
	params.Statuses = statuses
	return &params, nil
}

// ListTransactionsQueryParams holds query parameters for GET /treasury/transactions
type ListTransactionsQueryParams struct {
	PaginationQueryParams
	Status []string `form:"status"`

	Statuses []domain.TransactionStatus `form:"-"`
}

// ParseListTransactionsQuery parses query parameters for GET /treasury/transactions
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()

	statuses, err := types.ParseTransactionStatuses(strings.Join(params.Status, ","))
	if err != nil {
		return nil, err
	}
	params.Statuses = statuses
	return &params, nil
}

// ParsePaginationQuery parses the pagination parameters of list endpoints without filters
func ParsePaginationQuery(c *gin.Context) (*PaginationQueryParams, error) {
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()
	return &params, nil
}

// MetricHistoryQueryParams holds query parameters for GET /treasury/metrics
type MetricHistoryQueryParams struct {
	Since *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit int        `form:"limit,default=1000"`
}

// ParseMetricHistoryQuery parses query parameters for GET /treasury/metrics.
// Without since, the last DEFAULT_METRICS_DAYS days are returned.
func ParseMetricHistoryQuery(c *gin.Context, now time.Time) (time.Time, int, error) {
	var params MetricHistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return time.Time{}, 0, err
	}

	since := now.AddDate(0, 0, -constants.DEFAULT_METRICS_DAYS)
	if params.Since != nil {
		since = *params.Since
	}
	if params.Limit <= 0 || params.Limit > constants.MAX_METRICS_POINTS {
		params.Limit = constants.MAX_METRICS_POINTS
	}
	return since, params.Limit, nil
}

// GetJournalQueryParams holds query parameters for GET /journal
type GetJournalQueryParams struct {
	SubjectTypes []schema.SubjectType `form:"subject_type"`
	SubjectIDs   []string             `form:"subject_id"`
	// Anchor returns entries after this cursor
	Anchor *int64 `form:"anchor"`
	Limit  int    `form:"limit,default=20"`
}

// ParseGetJournalQuery parses query parameters for GET /journal
func ParseGetJournalQuery(c *gin.Context) (*GetJournalQueryParams, error) {
	var params GetJournalQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_PAGE_SIZE
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	return &params, nil
}

// parseID parses a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, c.Param(name))
	}
	return id, nil
}
