package domain

// Embedding — векторное представление текстового описания товара.
type Embedding struct {
	ID      string
	Vector  []float32
	Payload map[string]any
}

func NewEmbedding(id string, vector []float32, payload map[string]any) *Embedding {
	return &Embedding{
		ID:      id,
		Vector:  vector,
		Payload: payload,
	}
}

// NewEmbeddingPayload собирает payload вектора для Qdrant.
func NewEmbeddingPayload(productID int64, name, brand, category string) map[string]any {
	return map[string]any{
		"product_id": productID,
		"name":       name,
		"brand":      brand,
		"category":   category,
	}
}
