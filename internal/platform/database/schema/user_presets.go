package schema

// UserPresetsTable represents the 'user_presets' table
type UserPresetsTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Category    string
	Tags        string
	Filters     string
	CreatedAt   string
	UpdatedAt   string
}

// UserPresets is the schema definition for user_presets
var UserPresets = UserPresetsTable{
	Table:       "user_presets",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Category:    "category",
	Tags:        "tags",
	Filters:     "filters",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t UserPresetsTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Category, t.Tags, t.Filters, t.CreatedAt, t.UpdatedAt}
}
