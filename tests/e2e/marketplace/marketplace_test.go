//go:build e2e

package marketplace_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/tests/common/authtest"
	"roadside-marketplace/tests/common/httptest"
	"roadside-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type marketplaceSuite struct {
	e2e.SharedSuite

	customerToken string
	partnerID     uuid.UUID
	partnerToken  string
	adminToken    string
}

func TestMarketplaceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	_, s.customerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "driver@example.com", string(user.RoleCustomer))
	s.partnerID, s.partnerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "tow@example.com", string(user.RolePartner))
	_, s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "ops@example.com", string(user.RoleAdmin))
}

// do performs the call and decodes a 2xx body into out.
func (s *marketplaceSuite) do(method, path, token string, body any, wantStatus int, out any) {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, method, path, body, token)
	require.Equal(s.T(), wantStatus, w.Code, w.Body.String())
	if out != nil {
		httptest.AssertSuccessResponse(s.T(), w, wantStatus, out)
	}
}

func (s *marketplaceSuite) openRequest() string {
	var created struct {
		ID string `json:"id"`
	}
	s.do(http.MethodPost, "/api/requests", s.customerToken, map[string]any{
		"service_type":  "towing",
		"from_location": "Highway 1, exit 12",
		"to_location":   "Main St Garage",
	}, http.StatusCreated, &created)
	return created.ID
}

func (s *marketplaceSuite) submitOffer(requestID, token string, price int64) string {
	var offer struct {
		ID string `json:"id"`
	}
	s.do(http.MethodPost, "/api/requests/"+requestID+"/offers", token, map[string]any{"price": price}, http.StatusCreated, &offer)
	return offer.ID
}

func (s *marketplaceSuite) adjust(amount int64) {
	s.do(http.MethodPost, "/api/admin/partners/"+s.partnerID.String()+"/adjustments", s.adminToken,
		map[string]any{"type": "adjustment", "amount": amount, "description": "top up"}, http.StatusCreated, nil)
}

func (s *marketplaceSuite) balance() int64 {
	var b struct {
		Balance int64 `json:"balance"`
	}
	s.do(http.MethodGet, "/api/partners/me/balance", s.partnerToken, nil, http.StatusOK, &b)
	return b.Balance
}

func (s *marketplaceSuite) TestJobLifecycle() {
	s.Run("accept rejects siblings and completion pays the partner", func() {
		requestID := s.openRequest()

		_, otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "rival@example.com", string(user.RolePartner))
		won := s.submitOffer(requestID, s.partnerToken, 850)
		lost := s.submitOffer(requestID, otherToken, 600)

		var matched struct {
			Status            string `json:"status"`
			AssignedPartnerID string `json:"assigned_partner_id"`
			Amount            int64  `json:"amount"`
		}
		s.do(http.MethodPost, "/api/offers/"+won+"/accept", s.customerToken, nil, http.StatusOK, &matched)
		s.Equal("matched", matched.Status)
		s.Equal(s.partnerID.String(), matched.AssignedPartnerID)
		s.EqualValues(850, matched.Amount)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/offers/"+lost+"/accept", nil, s.customerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "OFFER_NOT_PENDING")

		var offers struct {
			Offers []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"offers"`
		}
		s.do(http.MethodGet, "/api/requests/"+requestID+"/offers", s.customerToken, nil, http.StatusOK, &offers)
		statuses := map[string]string{}
		for _, o := range offers.Offers {
			statuses[o.ID] = o.Status
		}
		s.Equal(map[string]string{won: "accepted", lost: "rejected"}, statuses)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests/"+requestID+"/complete",
			map[string]any{"final_amount": 2500}, s.partnerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "REQUEST_NOT_IN_PROGRESS")

		s.do(http.MethodPost, "/api/requests/"+requestID+"/start", s.partnerToken, nil, http.StatusOK, nil)
		s.do(http.MethodPost, "/api/requests/"+requestID+"/complete", s.partnerToken,
			map[string]any{"final_amount": 2500}, http.StatusOK, nil)

		s.EqualValues(2125, s.balance())

		var page struct {
			Items []struct {
				Type   string `json:"type"`
				Amount int64  `json:"amount"`
			} `json:"items"`
		}
		s.do(http.MethodGet, "/api/partners/me/transactions?type=earning", s.partnerToken, nil, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.EqualValues(2125, page.Items[0].Amount)
	})

	s.Run("cancelling a matched request warns about the partner", func() {
		requestID := s.openRequest()
		offerID := s.submitOffer(requestID, s.partnerToken, 500)
		s.do(http.MethodPost, "/api/offers/"+offerID+"/accept", s.customerToken, nil, http.StatusOK, nil)

		var res struct {
			Request struct {
				Status string `json:"status"`
			} `json:"request"`
			Warning *struct {
				Code string `json:"code"`
			} `json:"warning"`
		}
		s.do(http.MethodPost, "/api/requests/"+requestID+"/cancel", s.customerToken, nil, http.StatusOK, &res)
		s.Equal("cancelled", res.Request.Status)
		s.Require().NotNil(res.Warning)
		s.Equal("OFFER_ALREADY_ACCEPTED", res.Warning.Code)
	})

	s.Run("customers cannot submit offers", func() {
		requestID := s.openRequest()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests/"+requestID+"/offers",
			map[string]any{"price": 100}, s.customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *marketplaceSuite) requestLead(requestID string) string {
	var p struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		CustomerInfo any    `json:"customer_info"`
	}
	s.do(http.MethodPost, "/api/leads", s.partnerToken, map[string]any{"request_id": requestID}, http.StatusCreated, &p)
	s.Equal("pending", p.Status)
	s.Nil(p.CustomerInfo)
	return p.ID
}

func (s *marketplaceSuite) TestLeadPurchase() {
	s.Run("approval without credits fails and leaves the lead pending", func() {
		leadID := s.requestLead(s.openRequest())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/leads/"+leadID+"/resolve",
			map[string]any{"decision": "approve"}, s.adminToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE")

		var p struct {
			Status string `json:"status"`
		}
		s.do(http.MethodGet, "/api/leads/"+leadID, s.partnerToken, nil, http.StatusOK, &p)
		s.Equal("pending", p.Status)
		s.EqualValues(0, s.balance())
	})

	s.Run("approval debits one credit and reveals the customer", func() {
		s.adjust(5)
		leadID := s.requestLead(s.openRequest())

		var p struct {
			Status       string `json:"status"`
			CustomerInfo *struct {
				Name     string `json:"name"`
				Location string `json:"location"`
			} `json:"customer_info"`
		}
		s.do(http.MethodPost, "/api/admin/leads/"+leadID+"/resolve", s.adminToken,
			map[string]any{"decision": "approve", "notes": "ok"}, http.StatusOK, &p)
		s.Equal("approved", p.Status)
		s.Require().NotNil(p.CustomerInfo)
		s.Equal("Highway 1, exit 12", p.CustomerInfo.Location)
		s.NotEmpty(p.CustomerInfo.Name)

		s.EqualValues(4, s.balance())

		var audit struct {
			Consistent   bool  `json:"consistent"`
			Transactions int   `json:"transactions"`
			Balance      int64 `json:"balance"`
		}
		s.do(http.MethodGet, "/api/admin/partners/"+s.partnerID.String()+"/ledger/verify", s.adminToken, nil, http.StatusOK, &audit)
		s.True(audit.Consistent)
		s.Equal(2, audit.Transactions)
		s.EqualValues(4, audit.Balance)
	})

	s.Run("concurrent approvals spend a single credit once", func() {
		s.adjust(1)
		first := s.requestLead(s.openRequest())
		second := s.requestLead(s.openRequest())

		var wg sync.WaitGroup
		codes := make([]int, 2)
		for i, id := range []string{first, second} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/leads/"+id+"/resolve",
					map[string]any{"decision": "approve"}, s.adminToken)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		s.ElementsMatch([]int{http.StatusOK, http.StatusUnprocessableEntity}, codes, fmt.Sprint(codes))
		s.EqualValues(0, s.balance())
	})

	s.Run("other partners cannot see the lead", func() {
		leadID := s.requestLead(s.openRequest())
		_, rival := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "rival@example.com", string(user.RolePartner))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/leads/"+leadID, nil, rival)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "LEAD_NOT_FOUND")
	})
}

func (s *marketplaceSuite) TestWithdrawals() {
	s.Run("withdrawals never overdraw", func() {
		s.adjust(100)

		s.do(http.MethodPost, "/api/partners/me/withdrawals", s.partnerToken,
			map[string]any{"amount": 60, "description": "payout"}, http.StatusCreated, nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/partners/me/withdrawals",
			map[string]any{"amount": 41}, s.partnerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE")

		s.EqualValues(40, s.balance())
	})
}
