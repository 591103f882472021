package listview

// Item wraps one record held by a List.
type Item[T any] struct {
	ID       string
	Selected bool
	Disabled bool
	Value    T
	// Seq is the insertion sequence number assigned by the owning List.
	Seq int
}

// IDFunc extracts the identifier from a raw record.
type IDFunc[R any] func(R) string

// WrapFunc converts a raw record into the payload rendered by the host.
type WrapFunc[R, T any] func(R) T

// Identity is a WrapFunc for lists whose raw records are their payloads.
func Identity[T any](v T) T {
	return v
}

func cloneItems[T any](items []*Item[T]) []*Item[T] {
	dup := make([]*Item[T], len(items))
	copy(dup, items)
	return dup
}
