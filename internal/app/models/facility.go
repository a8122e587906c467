package models

import "time"

// Campus is the root of the facility subgraph.
type Campus struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Map    string `json:"map" db:"map"`
	IsOpen bool   `json:"isOpen" db:"is_open"`

	// Relations (populated when needed)
	Buildings []*Building `json:"buildings,omitempty"`
}

// Building belongs to a campus and houses classrooms and restos.
type Building struct {
	ID       int64  `json:"id" db:"id"`
	CampusID int64  `json:"campusId" db:"campus_id"`
	Name     string `json:"name" db:"name"`

	// Relations (populated when needed)
	Campus     *Campus      `json:"campus,omitempty"`
	Classrooms []*Classroom `json:"classrooms,omitempty"`
	Restos     []*Resto     `json:"restos,omitempty"`
}

// Classroom is a room within a building.
type Classroom struct {
	ID          int64  `json:"id" db:"id"`
	BuildingID  int64  `json:"buildingId" db:"building_id"`
	Coordinates string `json:"coordinates" db:"coordinates"`
}

// Resto is a campus cafeteria with a weekly menu.
type Resto struct {
	ID          int64  `json:"id" db:"id"`
	BuildingID  int64  `json:"buildingId" db:"building_id"`
	Name        string `json:"name" db:"name"`
	Coordinates string `json:"coordinates" db:"coordinates"`

	// Relations (populated when needed)
	Building *Building `json:"building,omitempty"`
	Menu     *Menu     `json:"menu,omitempty"`
}

// NewResto creates a resto, validating the required name.
func NewResto(name, coordinates string) (*Resto, error) {
	n, err := guardNonBlank("resto name", name)
	if err != nil {
		return nil, err
	}
	return &Resto{Name: n, Coordinates: coordinates}, nil
}

// Menu holds a resto's weekly offering. Items are keyed by serving day;
// consumers iterate Weekdays for a deterministic Monday-to-Friday order.
type Menu struct {
	ID        int64     `json:"id" db:"id"`
	RestoID   int64     `json:"restoId" db:"resto_id"`
	StartDate time.Time `json:"startDate" db:"start_date"`

	// Relations (populated when needed)
	Items map[Weekday][]*MenuItem `json:"items,omitempty"`
}

// MenuItem is a single dish on a menu day.
type MenuItem struct {
	ID              int64        `json:"id" db:"id"`
	MenuID          int64        `json:"menuId" db:"menu_id"`
	Weekday         Weekday      `json:"weekday" db:"weekday"`
	Name            string       `json:"name" db:"name"`
	Description     string       `json:"description" db:"description"`
	Category        FoodCategory `json:"category" db:"category"`
	IsVeganAndHalal bool         `json:"isVeganAndHalal" db:"is_vegan_and_halal"`
}
