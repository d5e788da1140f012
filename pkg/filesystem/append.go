package filesystem

import "io"

// writeAndClose writes data to a file opened for appending and closes it.
// The write error wins over the close error.
func writeAndClose(f io.WriteCloser, data []byte) error {
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
