package domain

// Continent groups destinations. Rows are created only by seeding.
type Continent struct {
	ID          int    `json:"id" yaml:"-"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}
