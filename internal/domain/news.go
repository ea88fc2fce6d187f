package domain

type NewsCategory string

const (
	NewsCategoryNews       NewsCategory = "NEWS"
	NewsCategoryPromotion  NewsCategory = "PROMOTION"
	NewsCategoryPlace      NewsCategory = "PLACE"
	NewsCategoryHelp       NewsCategory = "HELP"
	NewsCategoryFlightDeal NewsCategory = "FLIGHT_DEAL"
)

func (c NewsCategory) Valid() bool {
	switch c {
	case NewsCategoryNews, NewsCategoryPromotion, NewsCategoryPlace, NewsCategoryHelp, NewsCategoryFlightDeal:
		return true
	}
	return false
}

type News struct {
	Record
	Title       string       `json:"title" validate:"required,max=255"`
	Author      string       `json:"author" validate:"required,max=100"`
	Category    NewsCategory `json:"category" validate:"required,oneof=NEWS PROMOTION PLACE HELP FLIGHT_DEAL"`
	Summary     string       `json:"summary" validate:"required"`
	Content     string       `json:"content" validate:"required"`
	PictureLink string       `json:"pictureLink" validate:"required"`
}

// NewsFilter narrows a news search. An empty Category matches any.
type NewsFilter struct {
	Title    string
	Category NewsCategory
}
