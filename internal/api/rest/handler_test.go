package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/api/middleware"
	"github.com/feral-file/ff-dao/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-dao/internal/api/shared/errors"
	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/mocks"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

const (
	testAPIKey = "test-api-key"
	testActor  = "0x00000000000000000000000000000000000000aa"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	exec := mocks.NewMockAPIExecutor(ctrl)
	auth, err := middleware.NewAuthenticator(config.AuthConfig{APIKeys: []string{testAPIKey}})
	require.NoError(t, err)

	router := gin.New()
	SetupRoutes(router, NewHandler(&adapter.FixedClock{At: testNow}, exec), auth, nil)
	return router, exec
}

func request(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	req.Header.Set(middleware.ACTOR_HEADER, testActor)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutesRequireAuthentication(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/proposals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProposal(t *testing.T) {
	t.Run("created by the caller", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().CreateProposal(gomock.Any(), testActor, dto.CreateProposalRequest{
			Title:       "Fund the archive",
			Description: "Allocate 10k to the archive",
		}).Return(&dto.ProposalResponse{ID: 1, Status: domain.ProposalStatusDraft, Proposer: testActor}, nil)

		w := request(router, http.MethodPost, "/api/v1/proposals",
			`{"title":"Fund the archive","description":"Allocate 10k to the archive"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.ProposalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1), resp.ID)
		assert.Equal(t, domain.ProposalStatusDraft, resp.Status)
	})

	t.Run("validation failure", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := request(router, http.MethodPost, "/api/v1/proposals", `{"title":"","description":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := request(router, http.MethodPost, "/api/v1/proposals", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeBadRequest, decodeError(t, w).Code)
	})
}

func TestGetProposal(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := request(router, http.MethodGet, "/api/v1/proposals/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().GetProposal(gomock.Any(), uint64(9)).
			Return(nil, domain.NewGuardError(domain.ErrNotFound, "proposal 9 not found"))

		w := request(router, http.MethodGet, "/api/v1/proposals/9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		apiErr := decodeError(t, w)
		assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
		assert.Equal(t, "proposal 9 not found", apiErr.Details)
	})
}

func TestListProposals(t *testing.T) {
	t.Run("filters and caps the page size", func(t *testing.T) {
		router, exec := setupRouter(t)
		proposer := "alice"
		exec.EXPECT().ListProposals(gomock.Any(),
			[]domain.ProposalStatus{domain.ProposalStatusVoting, domain.ProposalStatusApproved}, &proposer, 100, uint64(40)).
			Return(&dto.ProposalListResponse{Total: 0}, nil)

		w := request(router, http.MethodGet, "/api/v1/proposals?status=voting&status=approved&proposer=alice&limit=500&offset=40", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("comma separated statuses", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().ListProposals(gomock.Any(),
			[]domain.ProposalStatus{domain.ProposalStatusQueued, domain.ProposalStatusExecuted}, nil, 20, uint64(0)).
			Return(&dto.ProposalListResponse{Total: 0}, nil)

		w := request(router, http.MethodGet, "/api/v1/proposals?status=queued,EXECUTED", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := request(router, http.MethodGet, "/api/v1/proposals?status=pending", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
	})
}

func TestProposalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(exec *mocks.MockAPIExecutorMockRecorder) *gomock.Call
	}{
		{
			name: "discussion",
			path: "/api/v1/proposals/5/discussion",
			expect: func(exec *mocks.MockAPIExecutorMockRecorder) *gomock.Call {
				return exec.StartDiscussion(gomock.Any(), uint64(5), testActor)
			},
		},
		{
			name: "voting",
			path: "/api/v1/proposals/5/voting",
			expect: func(exec *mocks.MockAPIExecutorMockRecorder) *gomock.Call {
				return exec.StartVoting(gomock.Any(), uint64(5), testActor)
			},
		},
		{
			name: "tally",
			path: "/api/v1/proposals/5/tally",
			expect: func(exec *mocks.MockAPIExecutorMockRecorder) *gomock.Call {
				return exec.EndVoting(gomock.Any(), uint64(5), testActor)
			},
		},
		{
			name: "execute",
			path: "/api/v1/proposals/5/execute",
			expect: func(exec *mocks.MockAPIExecutorMockRecorder) *gomock.Call {
				return exec.ExecuteProposal(gomock.Any(), uint64(5), testActor)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupRouter(t)
			tt.expect(exec.EXPECT()).Return(&dto.ProposalResponse{ID: 5}, nil)

			w := request(router, http.MethodPost, tt.path, "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("time not elapsed is a conflict", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().StartVoting(gomock.Any(), uint64(5), testActor).
			Return(nil, domain.NewGuardError(domain.ErrTimeNotElapsed, "discussion period ends at 2026-06-15T12:00:00Z"))

		w := request(router, http.MethodPost, "/api/v1/proposals/5/voting", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "discussion period ends")
	})
}

func TestCancelProposal(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().CancelProposal(gomock.Any(), uint64(5), testActor, false).
			Return(&dto.ProposalResponse{ID: 5, Status: domain.ProposalStatusCancelled}, nil)

		w := request(router, http.MethodPost, "/api/v1/proposals/5/cancel", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("emergency without authorizer", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().CancelProposal(gomock.Any(), uint64(5), testActor, true).
			Return(nil, domain.NewGuardError(domain.ErrNotImplemented, "emergency cancellation of approved proposals is not available"))

		w := request(router, http.MethodPost, "/api/v1/proposals/5/cancel", `{"emergency":true}`)
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}

func TestCastVote(t *testing.T) {
	t.Run("cast", func(t *testing.T) {
		router, exec := setupRouter(t)
		isFor := true
		exec.EXPECT().CastVote(gomock.Any(), uint64(5), testActor, dto.CastVoteRequest{VoteCount: 3, IsFor: &isFor}).
			Return(&dto.VoteResponse{ID: 1, ProposalID: 5, VoteCount: 3, VoteCost: 9, IsFor: true}, nil)

		w := request(router, http.MethodPost, "/api/v1/proposals/5/votes", `{"vote_count":3,"is_for":true}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"vote_cost":9`)
	})

	t.Run("missing direction", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := request(router, http.MethodPost, "/api/v1/proposals/5/votes", `{"vote_count":3}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().CastVote(gomock.Any(), uint64(5), testActor, gomock.Any()).
			Return(nil, domain.NewGuardError(domain.ErrInsufficientBalance, "vote cost exceeds balance: required 121, available 100"))

		w := request(router, http.MethodPost, "/api/v1/proposals/5/votes", `{"vote_count":11,"is_for":false}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "vote cost exceeds balance: required 121, available 100", decodeError(t, w).Details)
	})

	t.Run("already voted", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().CastVote(gomock.Any(), uint64(5), testActor, gomock.Any()).
			Return(nil, domain.NewGuardError(domain.ErrAlreadyVoted, "voter already voted on proposal 5"))

		w := request(router, http.MethodPost, "/api/v1/proposals/5/votes", `{"vote_count":1,"is_for":true}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTokenRoutes(t *testing.T) {
	t.Run("transfer from the caller", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().TransferTokens(gomock.Any(), testActor, "bob", int64(25)).
			Return(&dto.TokenResponse{Holder: testActor, Balance: 75}, nil)

		w := request(router, http.MethodPost, "/api/v1/tokens/transfer", `{"to":"bob","amount":25}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("transfer while locked", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().TransferTokens(gomock.Any(), testActor, "bob", int64(25)).
			Return(nil, domain.NewGuardError(domain.ErrTokenLocked, "tokens are locked until 2026-07-01T12:00:00Z"))

		w := request(router, http.MethodPost, "/api/v1/tokens/transfer", `{"to":"bob","amount":25}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("mint as admin", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().MintTokens(gomock.Any(), "bob", int64(100), testActor).
			Return(&dto.TokenResponse{Holder: "bob", Balance: 100}, nil)

		w := request(router, http.MethodPost, "/api/v1/tokens/bob/mint", `{"amount":100}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("undelegate", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().Undelegate(gomock.Any(), testActor).
			Return(nil, domain.NewGuardError(domain.ErrNotDelegated, "tokens are not delegated"))

		w := request(router, http.MethodPost, "/api/v1/tokens/undelegate", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSubmitApproval(t *testing.T) {
	t.Run("not a guardian", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().SubmitApproval(gomock.Any(), uint64(8), testActor, gomock.Any()).
			Return(nil, domain.NewGuardError(domain.ErrNotGuardian, "caller is not an active guardian"))

		w := request(router, http.MethodPost, "/api/v1/treasury/transactions/8/approvals", `{"approved":true}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("approved and executed", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().SubmitApproval(gomock.Any(), uint64(8), testActor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, _ string, req dto.SubmitApprovalRequest) (*dto.SubmitApprovalResponse, error) {
				require.NotNil(t, req.Approved)
				assert.True(t, *req.Approved)
				assert.Equal(t, "looks fine", req.Comment)
				return &dto.SubmitApprovalResponse{
					Approval:    dto.ApprovalResponse{TransactionID: 8, Approved: true},
					Transaction: dto.TransactionResponse{ID: 8, Status: domain.TransactionStatusExecuted, ApprovalCount: 5},
				}, nil
			})

		w := request(router, http.MethodPost, "/api/v1/treasury/transactions/8/approvals", `{"approved":true,"comment":"looks fine"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"executed"`)
	})

	t.Run("circuit breaker active", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().ExecuteTransaction(gomock.Any(), uint64(8), testActor).
			Return(nil, domain.NewGuardError(domain.ErrCircuitBreakerActive, "treasury execution is halted"))

		w := request(router, http.MethodPost, "/api/v1/treasury/transactions/8/execute", "")
		assert.Equal(t, http.StatusLocked, w.Code)
	})
}

func TestPendingTransactionsRouteIsNotAnID(t *testing.T) {
	router, exec := setupRouter(t)
	exec.EXPECT().PendingTransactions(gomock.Any(), testActor, 20).Return([]dto.TransactionResponse{}, nil)

	w := request(router, http.MethodGet, "/api/v1/treasury/transactions/pending", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricHistoryDefaultsToRecentWindow(t *testing.T) {
	router, exec := setupRouter(t)
	exec.EXPECT().MetricHistory(gomock.Any(), testNow.AddDate(0, 0, -30), 1000).Return([]dto.MetricResponse{}, nil)

	w := request(router, http.MethodGet, "/api/v1/treasury/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetJournal(t *testing.T) {
	router, exec := setupRouter(t)
	anchor := int64(42)
	exec.EXPECT().GetJournal(gomock.Any(), []schema.SubjectType{schema.SubjectTypeTransaction}, []string{"8"}, &anchor, 50).
		Return(&dto.JournalListResponse{Total: 0}, nil)

	w := request(router, http.MethodGet, fmt.Sprintf("/api/v1/journal?subject_type=transaction&subject_id=8&anchor=%d&limit=50", anchor), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInternalErrorsAreNotExposed(t *testing.T) {
	router, exec := setupRouter(t)
	exec.EXPECT().GetBalances(gomock.Any()).Return(nil, fmt.Errorf("failed to list balances: %w", context.DeadlineExceeded))

	w := request(router, http.MethodGet, "/api/v1/treasury/balances", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
	assert.NotContains(t, w.Body.String(), "deadline")
}
