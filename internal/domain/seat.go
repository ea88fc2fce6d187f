package domain

type SeatType string

const (
	SeatTypeEconomy        SeatType = "ECONOMY"
	SeatTypePremiumEconomy SeatType = "PREMIUM_ECONOMY"
	SeatTypeBusiness       SeatType = "BUSINESS"
	SeatTypeFirst          SeatType = "FIRST"
)

type Seat struct {
	Record
	Name        string   `json:"name" validate:"required,max=16"`
	PlaneID     int64    `json:"planeId" validate:"required,gt=0"`
	Type        SeatType `json:"type" validate:"required,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	HaveWindow  bool     `json:"haveWindow"`
	PictureLink string   `json:"pictureLink" validate:"omitempty,url"`
	Summary     string   `json:"summary"`
}

// SeatFilter narrows a seat search. PlaneID 0 and a nil HaveWindow match any.
type SeatFilter struct {
	Name       string
	PlaneID    int64
	HaveWindow *bool
}
