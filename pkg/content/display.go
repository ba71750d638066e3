package content

// Frac returns a \frac command for use inside math content.
//
//	content.NewMath(content.Frac("a", "b")) // $\frac{a}{b}$
func Frac(top, bottom string) string {
	return `\frac{` + top + `}{` + bottom + `}`
}
