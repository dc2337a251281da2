package utilities

func Conditional(condition bool, t string, f string) string {
	if condition {
		return t
	}
	return f
}
