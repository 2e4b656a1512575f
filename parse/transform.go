package parse

// Map runs p and replaces its values with f applied to the whole value
// slice. The backlog is kept and failure propagates.
//
// Because f sees every value at once it may change the number of values as
// well as their type, e.g. joining many fragments into one.
func Map[I Input[I], V1, V2 any](
	f func([]V1) []V2,
	p Parser[I, V1],
) Parser[I, V2] {
	return func(input I) (Result[I, V2], bool) {
		r, ok := p(input)
		if !ok {
			return Result[I, V2]{}, false
		}

		return Result[I, V2]{Backlog: r.Backlog, Values: f(r.Values)}, true
	}
}

// Bind runs p and hands its complete result to f, returning whatever f
// returns. f may reject a structurally valid parse by returning false.
func Bind[I Input[I], V1, V2 any](
	f func(Result[I, V1]) (Result[I, V2], bool),
	p Parser[I, V1],
) Parser[I, V2] {
	return func(input I) (Result[I, V2], bool) {
		r, ok := p(input)
		if !ok {
			return Result[I, V2]{}, false
		}

		return f(r)
	}
}
