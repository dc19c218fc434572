package xmlobject

// As is a type-asserting cast with a comma-ok result, the Go rendering of
// the C++ original's is<T>()/get<T>() pair collapsed into one call.
func As[T Instance](i Instance) (T, bool) {
	t, ok := i.(T)
	return t, ok
}

// MustAs casts i to T, panicking on mismatch -- the direct port of get<T>,
// which threw std::runtime_error rather than returning a zero value.
func MustAs[T Instance](i Instance) T {
	t, ok := As[T](i)
	if !ok {
		panic("xmlobject: illegal cast")
	}
	return t
}

// GetRequiredChild returns the first direct child of o assignable to T,
// panicking if none exists -- the generic free-function rendering of
// getRequiredChild<T>(); Go methods cannot themselves be generic, so this
// and the two functions below take the receiver as an explicit argument.
func GetRequiredChild[T Instance](o *Object) T {
	t, ok := GetOptionalChild[T](o)
	if !ok {
		panic("xmlobject: element " + o.ElementName + " has no required child of the expected type")
	}
	return t
}

// GetOptionalChild returns the first direct child of o assignable to T, if
// any.
func GetOptionalChild[T Instance](o *Object) (T, bool) {
	for _, c := range o.Children {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// GetChildren returns every direct child of o assignable to T, in
// document order.
func GetChildren[T Instance](o *Object) []T {
	var out []T
	for _, c := range o.Children {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Find recursively collects every descendant of root assignable to T, the
// generic rendering of XMLObject::find<T>()'s dynamic_cast-based recursive
// descent.
func Find[T Instance](root Instance) []T {
	var out []T
	var walk func(Instance)
	walk = func(i Instance) {
		if t, ok := i.(T); ok {
			out = append(out, t)
		}
		for _, c := range i.XMLObject().Children {
			walk(c)
		}
	}
	for _, c := range root.XMLObject().Children {
		walk(c)
	}
	return out
}
