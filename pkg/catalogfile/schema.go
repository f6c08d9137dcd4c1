package catalogfile

// Snapshot is the on-disk JSON form of a restaurant catalog.
type Snapshot struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Restaurants []Entry `json:"restaurants"`
}

type Entry struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Cuisine       string  `json:"cuisine"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	DeliveryTime  int     `json:"delivery_time"`
	Description   string  `json:"description"`
	SignatureDish string  `json:"signature_dish"`
	Reviews       string  `json:"reviews"`
}
