package xlstyle

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vstasn/ole2"
)

// ErrWorkbookNotFound is returned when neither "Workbook" nor "Book" stream
// could be found in the OLE2 directory structure.
var ErrWorkbookNotFound = errors.New("xlstyle: no Workbook or Book stream found")

// ErrNotBiff is returned when a stream does not start with a BIFF5 or BIFF8
// BOF record.
var ErrNotBiff = errors.New("xlstyle: not a BIFF5/BIFF8 workbook stream")

// Open reads the formats and styles of an xls file.
func Open(file string, cfg Config, opts ...Option) (*WorkBook, error) {
	fi, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "xlstyle: open")
	}
	defer fi.Close()
	return OpenReader(fi, cfg, opts...)
}

// OpenWithCloser is similar to Open, but leaves the file open and returns it
// so the caller decides when to close it.
func OpenWithCloser(file string, cfg Config, opts ...Option) (*WorkBook, io.Closer, error) {
	fi, err := os.Open(file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "xlstyle: open")
	}
	wb, err := OpenReader(fi, cfg, opts...)
	return wb, fi, err
}

// OpenStream loads an xls workbook from any io.Reader. The OLE2 container
// needs random access, so the whole input is buffered in memory.
func OpenStream(r io.Reader, cfg Config, opts ...Option) (*WorkBook, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, errors.Wrap(err, "xlstyle: read stream")
	}
	return OpenReader(bytes.NewReader(buf.Bytes()), cfg, opts...)
}

// OpenReader parses an xls workbook from a seekable input.
func OpenReader(reader io.ReadSeeker, cfg Config, opts ...Option) (*WorkBook, error) {
	ole, err := ole2.Open(reader)
	if err != nil {
		return nil, errors.Wrap(err, "xlstyle: open ole2 container")
	}

	dir, err := ole.ListDir()
	if err != nil {
		return nil, errors.Wrap(err, "xlstyle: list ole2 directory")
	}

	var book, root *ole2.File
	for _, file := range dir {
		switch file.Name() {
		case "Workbook":
			// BIFF8 name, wins over a BIFF5 "Book" stream
			book = file
		case "Book":
			if book == nil {
				book = file
			}
		case "Root Entry":
			root = file
		}
	}
	if book == nil {
		return nil, ErrWorkbookNotFound
	}

	return ParseStream(ole.OpenFile(book, root), cfg, opts...)
}
