package models

// Category is one answer column in a round
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DefaultCategories returns the starting category set every new room gets.
// The host can replace it between rounds.
func DefaultCategories() []Category {
	return []Category{
		{ID: "nome", Label: "Nome", Icon: "👤"},
		{ID: "animal", Label: "Animal", Icon: "🐾"},
		{ID: "cor", Label: "Cor", Icon: "🎨"},
		{ID: "objeto", Label: "Objeto", Icon: "📦"},
		{ID: "filme", Label: "Filme", Icon: "🎬"},
		{ID: "cep", Label: "CEP", Icon: "📍"},
		{ID: "comida", Label: "Comida", Icon: "🍕"},
		{ID: "profissao", Label: "Profissão", Icon: "💼"},
	}
}
