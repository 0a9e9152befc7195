package domain

// Course is a catalog entry. The catalog is read-only at runtime; courses are
// seeded at startup.
type Course struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Category    string     `json:"category"`
	Lessons     int        `json:"lessons"`
	Materials   []Material `json:"materials"`
}

// Material is an attachment to a course: a presentation, video or document.
type Material struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}
