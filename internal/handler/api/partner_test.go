//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	sr "roadside-marketplace/internal/domain/servicerequest"
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

type PartnerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockLedger  *commandsmock.MockLedgerCommands
	mockLeads   *commandsmock.MockLeadCommands
	mockAreas   *commandsmock.MockAreaCommands
	mockLedgerQ *queriesmock.MockLedgerQueries
	mockLeadQ   *queriesmock.MockLeadQueries
	handler     *api.PartnerHandler
	partner     shared.Actor
	now         time.Time
}

func (s *PartnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = commandsmock.NewMockLedgerCommands(s.mockCtrl)
	s.mockLeads = commandsmock.NewMockLeadCommands(s.mockCtrl)
	s.mockAreas = commandsmock.NewMockAreaCommands(s.mockCtrl)
	s.mockLedgerQ = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.mockLeadQ = queriesmock.NewMockLeadQueries(s.mockCtrl)
	s.handler = api.NewPartnerHandler(s.mockLedger, s.mockLeads, s.mockAreas, s.mockLedgerQ, s.mockLeadQ)
	s.partner = shared.Actor{ID: uuid.New(), Role: user.RolePartner}
	s.now = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.partner.ID)
		c.Set("user_role", s.partner.Role)
		c.Next()
	}

	s.router.GET("/partners/me/balance", authMiddleware, s.handler.Balance)
	s.router.GET("/partners/me/transactions", authMiddleware, s.handler.Transactions)
	s.router.POST("/partners/me/withdrawals", authMiddleware, s.handler.Withdraw)
	s.router.GET("/partners/me/leads", authMiddleware, s.handler.ListLeads)
	s.router.POST("/leads", authMiddleware, s.handler.RequestLead)
	s.router.GET("/leads/:id", authMiddleware, s.handler.GetLead)
	s.router.POST("/areas", authMiddleware, s.handler.RequestAreas)
}

func (s *PartnerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPartnerHandlerSuite(t *testing.T) {
	suite.Run(t, new(PartnerHandlerTestSuite))
}

func (s *PartnerHandlerTestSuite) TestBalance() {
	s.mockLedgerQ.EXPECT().GetBalance(gomock.Any(), s.partner.ID).Return(int64(125), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/me/balance", nil, "")

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.EqualValues(125, body["balance"])
	s.Equal(s.partner.ID.String(), body["partner_id"])
}

func (s *PartnerHandlerTestSuite) TestTransactions() {
	s.mockLedgerQ.EXPECT().
		ListTransactions(gomock.Any(), s.partner.ID, queries.TransactionFilter{}, nil, queries.DefaultListLimit).
		Return([]*queries.TransactionView{}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/me/transactions", nil, "")

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Empty(body["items"])
	s.NotContains(body, "next_cursor")
}

func (s *PartnerHandlerTestSuite) TestWithdraw() {
	url := "/partners/me/withdrawals"

	s.Run("success: debits and returns the row", func() {
		head := ledger.Head{PartnerID: s.partner.ID, Seq: 1, Balance: 100}
		tx, _, err := head.Append(ledger.Entry{
			PartnerID:   s.partner.ID,
			Type:        ledger.TypeWithdrawal,
			Amount:      -60,
			Description: "payout",
		}, s.now)
		s.Require().NoError(err)

		s.mockLedger.EXPECT().RequestWithdrawal(gomock.Any(), s.partner, int64(60), "payout").Return(tx, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 60, "description": "payout"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("withdrawal", body["type"])
		s.EqualValues(-60, body["amount"])
		s.EqualValues(40, body["balance_after"])
	})

	s.Run("error: cannot overdraw", func() {
		s.mockLedger.EXPECT().RequestWithdrawal(gomock.Any(), s.partner, int64(1000), "").
			Return(nil, ledger.ErrInsufficientBalance).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 1000}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE")
	})

	s.Run("error: non-positive amount", func() {
		s.mockLedger.EXPECT().RequestWithdrawal(gomock.Any(), s.partner, int64(0), "").
			Return(nil, commands.ErrInvalidWithdrawal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 0}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_WITHDRAWAL")
	})
}

func (s *PartnerHandlerTestSuite) TestRequestLead() {
	requestID := uuid.New()

	s.Run("success: pending purchase without customer info", func() {
		p := lead.NewPurchase(s.partner.ID, requestID, s.now)
		s.mockLeads.EXPECT().RequestLeadPurchase(gomock.Any(), s.partner, requestID).Return(p, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/leads", map[string]any{"request_id": requestID}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body["status"])
		s.EqualValues(lead.CreditCost, body["credit_cost"])
		s.NotContains(body, "customer_info")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "already requested", err: lead.ErrLeadAlreadyRequested, status: http.StatusConflict, code: "LEAD_ALREADY_REQUESTED"},
			{name: "unknown request", err: sr.ErrRequestNotFound, status: http.StatusNotFound, code: "REQUEST_NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockLeads.EXPECT().RequestLeadPurchase(gomock.Any(), gomock.Any(), requestID).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/leads", map[string]any{"request_id": requestID}, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})

	s.Run("error: request_id required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/leads", map[string]any{}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func (s *PartnerHandlerTestSuite) TestGetLead() {
	id := uuid.New()

	s.Run("foreign lead looks missing", func() {
		s.mockLeadQ.EXPECT().GetLead(gomock.Any(), s.partner, id).Return(nil, lead.ErrLeadNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads/"+id.String(), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "LEAD_NOT_FOUND")
	})

	s.Run("own approved lead", func() {
		view := &queries.LeadView{
			ID:           id,
			PartnerID:    s.partner.ID,
			Status:       "approved",
			CustomerInfo: &queries.CustomerInfoView{Name: "Jane Driver", Phone: "+15550001111", Location: "Highway 1"},
		}
		s.mockLeadQ.EXPECT().GetLead(gomock.Any(), s.partner, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads/"+id.String(), nil, "")

		var body struct {
			CustomerInfo *struct {
				Name string `json:"name"`
			} `json:"customer_info"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.CustomerInfo)
		s.Equal("Jane Driver", body.CustomerInfo.Name)
	})
}

func (s *PartnerHandlerTestSuite) TestRequestAreas() {
	s.Run("success", func() {
		r, err := area.NewExpansionRequest(s.partner.ID, []string{"north"}, s.now)
		s.Require().NoError(err)
		s.mockAreas.EXPECT().RequestAreaExpansion(gomock.Any(), s.partner, []string{"north"}).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/areas", map[string]any{"areas": []string{"north"}}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body["status"])
		s.Equal([]any{"north"}, body["areas"])
	})

	s.Run("error: empty list", func() {
		s.mockAreas.EXPECT().RequestAreaExpansion(gomock.Any(), s.partner, []string{}).Return(nil, area.ErrNoAreas).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/areas", map[string]any{"areas": []string{}}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "NO_AREAS")
	})
}
