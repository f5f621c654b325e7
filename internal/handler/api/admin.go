package api

import (
	"net/http"

	reqdto "roadside-marketplace/internal/handler/dto/request"
	resdto "roadside-marketplace/internal/handler/dto/response"
	"roadside-marketplace/internal/handler/httperr"
	"roadside-marketplace/internal/usecase/commands"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds    commands.AdminCommands
	leadQ   queries.LeadQueries
	areaQ   queries.AreaQueries
	ledgerQ queries.LedgerQueries
}

func NewAdminHandler(cmds commands.AdminCommands, leadQ queries.LeadQueries, areaQ queries.AreaQueries, ledgerQ queries.LedgerQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, leadQ: leadQ, areaQ: areaQ, ledgerQ: ledgerQ}
}

// @Summary Pending lead purchases
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.LeadResponse]
// @Failure 403 {object} httperr.Response
// @Router /admin/leads [get]
func (h *AdminHandler) ListPendingLeads(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	items, next, err := h.leadQ.ListPendingLeads(c.Request.Context(), a, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, &resdto.Page[resdto.LeadResponse]{Items: resdto.FromLeadViews(items), NextCursor: nextAfter(next)})
}

// @Summary Resolve lead purchase
// @Description Approve debits one credit and reveals the customer's details; reject leaves the balance untouched
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead purchase ID"
// @Param request body reqdto.ResolveRequest true "Decision"
// @Success 200 {object} resdto.LeadResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/leads/{id}/resolve [post]
func (h *AdminHandler) ResolveLead(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ResolveRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.ResolveLeadPurchase(c.Request.Context(), a, id, req.Decision, req.Notes)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLead(p))
}

// @Summary Pending area expansion requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.AreaRequestResponse]
// @Router /admin/areas [get]
func (h *AdminHandler) ListPendingAreas(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	items, next, err := h.areaQ.ListPendingAreaRequests(c.Request.Context(), a, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage[resdto.AreaRequestResponse](items, nextAfter(next)))
}

// @Summary Resolve area expansion request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Area request ID"
// @Param request body reqdto.ResolveRequest true "Decision"
// @Success 200 {object} resdto.AreaRequestResponse
// @Failure 409 {object} httperr.Response
// @Router /admin/areas/{id}/resolve [post]
func (h *AdminHandler) ResolveArea(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ResolveRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.ResolveAreaExpansion(c.Request.Context(), a, id, req.Decision, req.Notes)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAreaRequest(r))
}

// @Summary Adjust partner credits
// @Description Records an adjustment or refund on the partner's ledger
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param request body reqdto.AdjustCreditsRequest true "Adjustment"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/partners/{id}/adjustments [post]
func (h *AdminHandler) AdjustCredits(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	partnerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdjustCreditsRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.cmds.AdjustCredits(c.Request.Context(), a, req.ToInput(partnerID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransaction(t))
}

// @Summary Partner transaction history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param type query string false "Transaction type"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.TransactionResponse]
// @Router /admin/partners/{id}/transactions [get]
func (h *AdminHandler) PartnerTransactions(c *gin.Context) {
	partnerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	listTransactions(c, h.ledgerQ, partnerID)
}

// @Summary Verify partner ledger
// @Description Replays the partner's log and compares it with the cached head
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Success 200 {object} resdto.LedgerAuditResponse
// @Router /admin/partners/{id}/ledger/verify [get]
func (h *AdminHandler) VerifyLedger(c *gin.Context) {
	partnerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	audit, err := h.ledgerQ.VerifyLedger(c.Request.Context(), partnerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerAudit(audit))
}
