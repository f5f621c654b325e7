package servicerequest

import (
	"time"

	"github.com/google/uuid"
)

// Match is every entity change produced by accepting one offer. It must
// be persisted as a single unit.
type Match struct {
	Request  *Request
	Accepted *Offer
	Rejected []*Offer
}

// AcceptOffer is the single transition that matches a request: the chosen
// offer becomes accepted, every other pending offer on the same request is
// rejected and the request is assigned to the offering partner.
func AcceptOffer(req *Request, offer *Offer, siblings []*Offer, now time.Time) (*Match, error) {
	if offer.requestID != req.id {
		return nil, ErrOfferMismatch
	}
	if offer.status != OfferSent {
		return nil, ErrOfferNotPending
	}
	if req.status != StatusOpen {
		return nil, ErrRequestNotOpen
	}

	partnerID := offer.partnerID
	amount := offer.price.Value()
	req.status = StatusMatched
	req.assignedPartnerID = &partnerID
	req.amount = &amount
	req.updatedAt = now

	offer.status = OfferAccepted
	offer.updatedAt = now

	rejected := make([]*Offer, 0, len(siblings))
	for _, s := range siblings {
		if s.id == offer.id || s.requestID != req.id || s.status != OfferSent {
			continue
		}
		s.status = OfferRejected
		s.updatedAt = now
		rejected = append(rejected, s)
	}

	return &Match{Request: req, Accepted: offer, Rejected: rejected}, nil
}

// RejectPending marks every pending offer as rejected, e.g. when the
// request is cancelled before a match.
func RejectPending(offers []*Offer, now time.Time) []uuid.UUID {
	var ids []uuid.UUID
	for _, o := range offers {
		if o.status != OfferSent {
			continue
		}
		o.status = OfferRejected
		o.updatedAt = now
		ids = append(ids, o.id)
	}
	return ids
}
