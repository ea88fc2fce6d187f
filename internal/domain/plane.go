package domain

type Plane struct {
	Record
	Name        string `json:"name" validate:"required,max=100"`
	Producer    string `json:"producer" validate:"max=100"`
	DiagramLink string `json:"diagramLink" validate:"omitempty,url"`
	Summary     string `json:"summary"`
}

type PlaneFilter struct {
	Name string
}
