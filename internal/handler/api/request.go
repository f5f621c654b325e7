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

type RequestHandler struct {
	cmds commands.MatchingCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.MatchingCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create service request
// @Description Customer opens a new roadside assistance request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Create request"
// @Success 201 {object} resdto.ServiceRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.cmds.CreateRequest(c.Request.Context(), a, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequest(created))
}

// @Summary List open requests
// @Description Open requests in creation order with keyset pagination
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param service_type query string false "Filter by service type"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ServiceRequestResponse]
// @Failure 400 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOpen(c *gin.Context) {
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	filters := queries.RequestFilters{ServiceType: optionalQuery(c, "service_type")}
	items, next, err := h.q.ListOpenRequests(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage[resdto.ServiceRequestResponse](items, nextAfter(next)))
}

// @Summary Get request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ServiceRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetRequest(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List offers of a request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id}/offers [get]
func (h *RequestHandler) ListOffers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListOffers(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": resdto.FromOfferViews(views)})
}

// @Summary Submit offer
// @Description Partner quotes a price on an open request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.SubmitOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/offers [post]
func (h *RequestHandler) SubmitOffer(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SubmitOfferRequest
	if !bindJSON(c, &req) {
		return
	}
	offer, err := h.cmds.SubmitOffer(c.Request.Context(), a, id, req.Price)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOffer(offer))
}

// @Summary Accept offer
// @Description Customer accepts one offer; every other pending offer is rejected
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.ServiceRequestResponse
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/accept [post]
func (h *RequestHandler) AcceptOffer(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	matched, err := h.cmds.AcceptOffer(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequest(matched))
}

// @Summary Start work
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ServiceRequestResponse
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/start [post]
func (h *RequestHandler) Start(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	started, err := h.cmds.StartWork(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequest(started))
}

// @Summary Complete request
// @Description Records the final amount and credits the partner's earning
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CompleteRequest true "Final amount"
// @Success 200 {object} resdto.ServiceRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/complete [post]
func (h *RequestHandler) Complete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CompleteRequest
	if !bindJSON(c, &req) {
		return
	}
	completed, err := h.cmds.CompleteRequest(c.Request.Context(), a, id, req.FinalAmount)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequest(completed))
}

// @Summary Cancel request
// @Description Cancels an open or matched request. A matched request carries an OFFER_ALREADY_ACCEPTED warning.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.CancelRequest(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(res))
}
