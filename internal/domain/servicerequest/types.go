package servicerequest

type ServiceType string

const (
	ServiceTowing    ServiceType = "towing"
	ServiceBattery   ServiceType = "battery"
	ServiceTire      ServiceType = "tire"
	ServiceFuel      ServiceType = "fuel"
	ServiceLocksmith ServiceType = "locksmith"
)

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTowing, ServiceBattery, ServiceTire, ServiceFuel, ServiceLocksmith:
		return true
	default:
		return false
	}
}

func NewServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if !st.IsValid() {
		return "", ErrInvalidServiceType
	}
	return st, nil
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusMatched    Status = "matched"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusMatched, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type OfferStatus string

const (
	OfferSent     OfferStatus = "sent"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

func (s OfferStatus) String() string {
	return string(s)
}

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferSent, OfferAccepted, OfferRejected:
		return true
	default:
		return false
	}
}
