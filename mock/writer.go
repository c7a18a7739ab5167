package mock

import "github.com/fwojciec/htmlmerge"

var _ htmlmerge.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of htmlmerge.OutputWriter.
type OutputWriter struct {
	WriteFn func(path string, data []byte) error
}

func (w *OutputWriter) Write(path string, data []byte) error {
	return w.WriteFn(path, data)
}
