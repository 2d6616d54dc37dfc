//go:build !(linux || darwin)

package inject

func fill(string) error {
	return ErrUnsupported
}
