package models

// All returns every model persisted by the service, in migration order.
func All() []any {
	return []any{
		&History{},
	}
}
