package bench

// alphabet is the repeating unit of every corpus.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Corpus returns n bytes of alphabet repeated.
func Corpus(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i += len(alphabet) {
		copy(out[i:], alphabet)
	}
	return out
}

// expected returns the first n bytes of corpus repeated cyclically. Reads
// never outrun writes in a successful run, so this is normally a prefix of
// corpus.
func expected(corpus []byte, n int) []byte {
	out := make([]byte, n)
	if len(corpus) == 0 {
		return out
	}
	for i := 0; i < n; i += len(corpus) {
		copy(out[i:], corpus)
	}
	return out
}

// verify compares got against want and reports the first difference.
func verify(got, want []byte) error {
	for i := range min(len(got), len(want)) {
		if got[i] != want[i] {
			return &InconsistencyError{Offset: i, Want: want[i], Got: got[i]}
		}
	}
	if len(got) != len(want) {
		return &InconsistencyError{Offset: min(len(got), len(want))}
	}
	return nil
}
