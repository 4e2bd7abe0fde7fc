package entity

// CleaningService is a catalog entry. The catalog is static
// configuration, not upstream data.
type CleaningService struct {
	ID          string `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
}
