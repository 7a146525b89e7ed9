package book

// Field is an optional patch value: either absent, or present with a value.
// A present empty value (e.g. "") is still present and overwrites.
type Field[T any] struct {
	value T
	set   bool
}

// Set returns a present Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// IsSet reports whether the field is present.
func (f Field[T]) IsSet() bool {
	return f.set
}

// apply overwrites *dst when the field is present.
func (f Field[T]) apply(dst *T) {
	if f.set {
		*dst = f.value
	}
}

// Patch describes a partial update. Absent fields keep the stored value;
// there is deliberately no ID field.
type Patch struct {
	Title         Field[string]
	Author        Field[string]
	Price         Field[float64]
	PublishedDate Field[Date]
	Genre         Field[string]
}

// Apply returns b with every present patch field overwritten.
func (p Patch) Apply(b Book) Book {
	p.Title.apply(&b.Title)
	p.Author.apply(&b.Author)
	p.Price.apply(&b.Price)
	p.PublishedDate.apply(&b.PublishedDate)
	p.Genre.apply(&b.Genre)
	return b
}

// IsEmpty reports whether no field is present.
func (p Patch) IsEmpty() bool {
	return !p.Title.IsSet() &&
		!p.Author.IsSet() &&
		!p.Price.IsSet() &&
		!p.PublishedDate.IsSet() &&
		!p.Genre.IsSet()
}
