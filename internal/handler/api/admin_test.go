//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/handler/api"
	"roadside-marketplace/internal/usecase/commands"
	"roadside-marketplace/internal/usecase/queries"
	"roadside-marketplace/internal/usecase/shared"
	"roadside-marketplace/tests/common/httptest"
	commandsmock "roadside-marketplace/tests/mock/commands"
	queriesmock "roadside-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAdmin   *commandsmock.MockAdminCommands
	mockLeads   *queriesmock.MockLeadQueries
	mockAreas   *queriesmock.MockAreaQueries
	mockLedger  *queriesmock.MockLedgerQueries
	handler     *api.AdminHandler
	admin       shared.Actor
	now         time.Time
	partnerID   uuid.UUID
	partnerPath string
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockLeads = queriesmock.NewMockLeadQueries(s.mockCtrl)
	s.mockAreas = queriesmock.NewMockAreaQueries(s.mockCtrl)
	s.mockLedger = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockAdmin, s.mockLeads, s.mockAreas, s.mockLedger)
	s.admin = shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.partnerID = uuid.New()
	s.partnerPath = "/admin/partners/" + s.partnerID.String()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.admin.ID)
		c.Set("user_role", s.admin.Role)
		c.Next()
	}

	g := s.router.Group("/admin", authMiddleware)
	g.GET("/leads", s.handler.ListPendingLeads)
	g.POST("/leads/:id/resolve", s.handler.ResolveLead)
	g.GET("/areas", s.handler.ListPendingAreas)
	g.POST("/areas/:id/resolve", s.handler.ResolveArea)
	g.POST("/partners/:id/adjustments", s.handler.AdjustCredits)
	g.GET("/partners/:id/transactions", s.handler.PartnerTransactions)
	g.GET("/partners/:id/ledger/verify", s.handler.VerifyLedger)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// Lead approvals
// ================================================================================

func (s *AdminHandlerTestSuite) TestListPendingLeads() {
	p := lead.NewPurchase(s.partnerID, uuid.New(), s.now)

	s.mockLeads.EXPECT().ListPendingLeads(gomock.Any(), s.admin, nil, queries.DefaultListLimit).
		Return([]*queries.LeadView{queries.NewLeadView(p)}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/leads", nil, "")

	var body struct {
		Items []map[string]any `json:"items"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Items, 1)
	s.Equal("pending", body.Items[0]["status"])
	s.NotContains(body.Items[0], "customer_info")
}

func (s *AdminHandlerTestSuite) TestResolveLead() {
	leadID := uuid.New()
	url := "/admin/leads/" + leadID.String() + "/resolve"

	s.Run("success: approval reveals customer info", func() {
		p := lead.NewPurchase(s.partnerID, uuid.New(), s.now)
		info := lead.CustomerInfo{Name: "Jane Driver", Phone: "+15550001111", Location: "Highway 1, exit 12"}
		s.Require().NoError(p.Approve(info, s.admin.ID, "verified", s.now))

		s.mockAdmin.EXPECT().ResolveLeadPurchase(gomock.Any(), s.admin, leadID, "approve", "verified").
			Return(p, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "approve", "notes": "verified"}, "")

		var body struct {
			Status       string `json:"status"`
			ResolvedBy   string `json:"resolved_by"`
			CustomerInfo struct {
				Name  string `json:"name"`
				Phone string `json:"phone"`
			} `json:"customer_info"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body.Status)
		s.Equal(s.admin.ID.String(), body.ResolvedBy)
		s.Equal("Jane Driver", body.CustomerInfo.Name)
		s.Equal("+15550001111", body.CustomerInfo.Phone)
	})

	s.Run("error: binding rejects bad decisions", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing decision", body: map[string]any{"notes": "x"}},
			{name: "unknown decision", body: map[string]any{"decision": "maybe"}},
			{name: "notes too long", body: map[string]any{"decision": "reject", "notes": strings.Repeat("n", lead.MaxNotesLength+1)}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "already resolved", err: lead.ErrLeadNotPending, status: http.StatusConflict, code: "LEAD_NOT_PENDING"},
			{name: "partner out of credits", err: ledger.ErrInsufficientBalance, status: http.StatusUnprocessableEntity, code: "INSUFFICIENT_BALANCE"},
			{name: "unknown lead", err: lead.ErrLeadNotFound, status: http.StatusNotFound, code: "LEAD_NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAdmin.EXPECT().ResolveLeadPurchase(gomock.Any(), gomock.Any(), leadID, "approve", "").
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

// ================================================================================
// Area expansion
// ================================================================================

func (s *AdminHandlerTestSuite) TestAreas() {
	r, err := area.NewExpansionRequest(s.partnerID, []string{"North", "east "}, s.now)
	s.Require().NoError(err)

	s.Run("list pending", func() {
		s.mockAreas.EXPECT().ListPendingAreaRequests(gomock.Any(), s.admin, &queries.Cursor{After: "c1"}, 5).
			Return([]*queries.AreaRequestView{queries.NewAreaRequestView(r)}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/areas?after=c1&limit=5", nil, "")

		var body struct {
			Items      []map[string]any `json:"items"`
			NextCursor string           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Empty(body.NextCursor)
	})

	s.Run("resolve", func() {
		s.Require().NoError(r.Reject(s.admin.ID, "outside coverage", s.now))
		s.mockAdmin.EXPECT().ResolveAreaExpansion(gomock.Any(), s.admin, r.ID(), "reject", "outside coverage").
			Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/areas/"+r.ID().String()+"/resolve",
			map[string]any{"decision": "reject", "notes": "outside coverage"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("rejected", body["status"])
		s.Equal("outside coverage", body["notes"])
	})

	s.Run("resolve twice", func() {
		s.mockAdmin.EXPECT().ResolveAreaExpansion(gomock.Any(), gomock.Any(), r.ID(), "approve", "").
			Return(nil, area.ErrAreaRequestResolved).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/areas/"+r.ID().String()+"/resolve",
			map[string]any{"decision": "approve"}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "AREA_REQUEST_NOT_PENDING")
	})
}

// ================================================================================
// Credits
// ================================================================================

func (s *AdminHandlerTestSuite) TestAdjustCredits() {
	url := s.partnerPath + "/adjustments"
	approver := s.admin.ID

	s.Run("success: 201 with the appended transaction", func() {
		head := ledger.Head{PartnerID: s.partnerID, Seq: 3, Balance: 40}
		tx, _, err := head.Append(ledger.Entry{
			PartnerID:   s.partnerID,
			Type:        ledger.TypeAdjustment,
			Amount:      -15,
			Description: "chargeback",
			ApprovedBy:  &approver,
		}, s.now)
		s.Require().NoError(err)

		in := commands.AdjustCreditsInput{PartnerID: s.partnerID, Type: "adjustment", Amount: -15, Description: "chargeback"}
		s.mockAdmin.EXPECT().AdjustCredits(gomock.Any(), s.admin, in).Return(tx, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"type": "adjustment", "amount": -15, "description": "chargeback"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.EqualValues(4, body["seq"])
		s.EqualValues(40, body["balance_before"])
		s.EqualValues(25, body["balance_after"])
		s.Equal(approver.String(), body["approved_by"])
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "overdraw", err: ledger.ErrInsufficientBalance, status: http.StatusUnprocessableEntity, code: "INSUFFICIENT_BALANCE"},
			{name: "earning is not manual", err: commands.ErrInvalidAdjustmentType, status: http.StatusBadRequest, code: "INVALID_ADJUSTMENT_TYPE"},
			{name: "customer account", err: commands.ErrNotAPartner, status: http.StatusBadRequest, code: "NOT_A_PARTNER"},
			{name: "unknown partner", err: commands.ErrPartnerNotFound, status: http.StatusNotFound, code: "PARTNER_NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAdmin.EXPECT().AdjustCredits(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"type": "adjustment", "amount": -500, "description": "fix"}, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})

	s.Run("error: description required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "refund", "amount": 5}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func (s *AdminHandlerTestSuite) TestPartnerTransactions() {
	txType := "withdrawal"
	s.mockLedger.EXPECT().
		ListTransactions(gomock.Any(), s.partnerID, queries.TransactionFilter{Type: &txType}, nil, 10).
		Return([]*queries.TransactionView{{PartnerID: s.partnerID, Seq: 2, Type: txType, Amount: -5}}, &queries.Cursor{After: "seq-2"}, nil).
		Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.partnerPath+"/transactions?type=withdrawal&limit=10", nil, "")

	var body struct {
		Items      []map[string]any `json:"items"`
		NextCursor string           `json:"next_cursor"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body.Items, 1)
	s.Equal("seq-2", body.NextCursor)
}

func (s *AdminHandlerTestSuite) TestVerifyLedger() {
	s.Run("consistent", func() {
		audit := &queries.LedgerAudit{PartnerID: s.partnerID, Transactions: 3, Balance: 70, HeadSeq: 3, HeadBalance: 70, Consistent: true}
		s.mockLedger.EXPECT().VerifyLedger(gomock.Any(), s.partnerID).Return(audit, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.partnerPath+"/ledger/verify", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["consistent"])
		s.EqualValues(70, body["balance"])
		s.NotContains(body, "problem")
	})

	s.Run("malformed partner id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/partners/nope/ledger/verify", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}
