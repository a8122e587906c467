package dto

// MenuItemResponse is one dish on a menu day.
type MenuItemResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category"`
	IsVeganAndHalal bool   `json:"isVeganAndHalal"`
}

// WeekMenuResponse groups menu items per serving day. A struct rather than a
// map so the JSON keys always come out Monday through Friday.
type WeekMenuResponse struct {
	Monday    []MenuItemResponse `json:"Monday"`
	Tuesday   []MenuItemResponse `json:"Tuesday"`
	Wednesday []MenuItemResponse `json:"Wednesday"`
	Thursday  []MenuItemResponse `json:"Thursday"`
	Friday    []MenuItemResponse `json:"Friday"`
}

// MenuResponse represents a resto's current menu.
type MenuResponse struct {
	ID    int64            `json:"id"`
	Items WeekMenuResponse `json:"items"`
}

// RestoResponse represents one resto with its nested menu.
type RestoResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Coordinates string        `json:"coordinates"`
	Menu        *MenuResponse `json:"menu,omitempty"`
}

// RestoListResponse represents one page of restos.
type RestoListResponse struct {
	Restos     []RestoResponse `json:"restos"`
	TotalCount int             `json:"totalCount"`
}
