package quake

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Registration struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Earthquake is a classified record owned by the remote service.
type Earthquake struct {
	ID        int64   `json:"id"`
	Timestamp string  `json:"timestamp"`
	Magnitude float64 `json:"magnitude"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Nivel     string  `json:"nivel"`
}

// Key identifies a record in a local list.
func (e Earthquake) Key() int64 { return e.ID }

type ManualEarthquake struct {
	Timestamp string  `json:"timestamp"`
	Magnitude float64 `json:"magnitude"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type EarthquakeUpdate struct {
	Timestamp string  `json:"timestamp"`
	Magnitude float64 `json:"magnitude"`
	Nivel     string  `json:"nivel"`
}

// UpdateFrom keeps timestamp and nivel from e and swaps in magnitude.
func UpdateFrom(e Earthquake, magnitude float64) EarthquakeUpdate {
	return EarthquakeUpdate{Timestamp: e.Timestamp, Magnitude: magnitude, Nivel: e.Nivel}
}

type ClassifiedPage struct {
	Content []Earthquake `json:"content"`
}
