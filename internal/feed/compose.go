package feed

// Compose inserts one sponsored item after every cadence organic items. Sponsored
// items left over once organic runs out are appended in order.
func Compose[T any](organic, sponsored []T, cadence int) []T {
	if len(sponsored) == 0 {
		return organic
	}
	if cadence <= 0 {
		cadence = DefaultCadence
	}

	out := make([]T, 0, len(organic)+len(sponsored))
	next := 0
	for i, item := range organic {
		out = append(out, item)
		if (i+1)%cadence == 0 && next < len(sponsored) {
			out = append(out, sponsored[next])
			next++
		}
	}

	return append(out, sponsored[next:]...)
}
