package curator

// Library enumerates the articles under the library root.
type Library interface {
	// Articles returns the article directory names. The order is the
	// enumeration order used everywhere an ordering matters (the library
	// index, random feature selection).
	Articles() ([]string, error)
}
