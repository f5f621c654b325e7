package api

import (
	"net/http"

	reqdto "roadside-marketplace/internal/handler/dto/request"
	resdto "roadside-marketplace/internal/handler/dto/response"
	"roadside-marketplace/internal/handler/httperr"
	"roadside-marketplace/internal/usecase/commands"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartnerHandler serves the partner's own credit account, lead
// purchases and service area requests.
type PartnerHandler struct {
	ledger  commands.LedgerCommands
	leads   commands.LeadCommands
	areas   commands.AreaCommands
	ledgerQ queries.LedgerQueries
	leadQ   queries.LeadQueries
}

func NewPartnerHandler(
	ledger commands.LedgerCommands,
	leads commands.LeadCommands,
	areas commands.AreaCommands,
	ledgerQ queries.LedgerQueries,
	leadQ queries.LeadQueries,
) *PartnerHandler {
	return &PartnerHandler{ledger: ledger, leads: leads, areas: areas, ledgerQ: ledgerQ, leadQ: leadQ}
}

// @Summary Credit balance
// @Description Balance derived from the partner's transaction log
// @Tags partners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Router /partners/me/balance [get]
func (h *PartnerHandler) Balance(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	balance, err := h.ledgerQ.GetBalance(c.Request.Context(), a.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BalanceResponse{PartnerID: a.ID, Balance: balance})
}

// @Summary Transaction history
// @Tags partners
// @Produce json
// @Security BearerAuth
// @Param type query string false "Transaction type"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.TransactionResponse]
// @Failure 400 {object} httperr.Response
// @Router /partners/me/transactions [get]
func (h *PartnerHandler) Transactions(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	listTransactions(c, h.ledgerQ, a.ID)
}

// @Summary Request withdrawal
// @Tags partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WithdrawalRequest true "Withdrawal"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /partners/me/withdrawals [post]
func (h *PartnerHandler) Withdraw(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.ledger.RequestWithdrawal(c.Request.Context(), a, req.Amount, req.Description)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransaction(t))
}

// @Summary Request lead purchase
// @Description Creates a pending purchase of a request's customer contact details
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LeadPurchaseRequest true "Lead purchase"
// @Success 201 {object} resdto.LeadResponse
// @Failure 409 {object} httperr.Response
// @Router /leads [post]
func (h *PartnerHandler) RequestLead(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.LeadPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.leads.RequestLeadPurchase(c.Request.Context(), a, req.RequestID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLead(p))
}

// @Summary Get lead purchase
// @Description Customer details are included only after approval
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead purchase ID"
// @Success 200 {object} resdto.LeadResponse
// @Failure 404 {object} httperr.Response
// @Router /leads/{id} [get]
func (h *PartnerHandler) GetLead(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.leadQ.GetLead(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeadView(view))
}

// @Summary List own lead purchases
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.LeadResponse]
// @Router /partners/me/leads [get]
func (h *PartnerHandler) ListLeads(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	items, next, err := h.leadQ.ListPartnerLeads(c.Request.Context(), a, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, &resdto.Page[resdto.LeadResponse]{Items: resdto.FromLeadViews(items), NextCursor: nextAfter(next)})
}

// @Summary Request service area expansion
// @Tags partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AreaExpansionRequest true "Areas"
// @Success 201 {object} resdto.AreaRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /areas [post]
func (h *PartnerHandler) RequestAreas(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.AreaExpansionRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.areas.RequestAreaExpansion(c.Request.Context(), a, req.Areas)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAreaRequest(r))
}

func listTransactions(c *gin.Context, q queries.LedgerQueries, partnerID uuid.UUID) {
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	filter := queries.TransactionFilter{Type: optionalQuery(c, "type")}
	items, next, err := q.ListTransactions(c.Request.Context(), partnerID, filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage[resdto.TransactionResponse](items, nextAfter(next)))
}
