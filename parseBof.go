package xlstyle

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Handler function type for BIFF records.
type recordHandler func(wb *WorkBook, data []byte) error

var recordHandlers = map[uint16]recordHandler{
	recordBOF:      handleBOF,
	recordCodepage: handleCodepage,
	recordXF:       handleXF,
	recordFont:     handleFont,
	recordFormat:   handleFormat,
	recordStyle:    handleStyle,
	recordPalette:  handlePalette,
}

func (w *WorkBook) parseRecord(id uint16, data []byte) error {
	handler := recordHandlers[id]
	if handler == nil {
		return nil
	}
	return handler(w, data)
}

func handleBOF(workBook *WorkBook, data []byte) error {
	// BIFF5 BOF records are 8 bytes, BIFF8 16; only version and type matter
	if len(data) < 4 {
		return ErrNotBiff
	}
	bif := biffHeader{
		Ver:  binary.LittleEndian.Uint16(data),
		Type: binary.LittleEndian.Uint16(data[2:]),
	}
	switch bif.Ver {
	case biff8Version:
	case biff5Version:
		workBook.Is5ver = true
	default:
		if !workBook.seenBOF {
			return ErrNotBiff
		}
	}
	if !workBook.seenBOF {
		workBook.Type = bif.Type
		workBook.seenBOF = true
	}
	return nil
}

func handleCodepage(wb *WorkBook, data []byte) error {
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, &wb.Codepage)
}

func handleXF(workBook *WorkBook, data []byte) error {
	buf := bytes.NewReader(data)

	var xf xfRecord
	if workBook.Is5ver {
		xf = new(Xf5)
	} else {
		xf = new(Xf8)
	}
	if err := binary.Read(buf, binary.LittleEndian, xf); err != nil {
		// keep XF numbering intact even for a broken record
		workBook.addXf(new(Xf8))
		return errors.Wrapf(err, "xf %d", len(workBook.xfs)-1)
	}
	workBook.addXf(xf)
	return nil
}

func handleFont(workBook *WorkBook, data []byte) error {
	buf := bytes.NewReader(data)
	f := new(FontInfo)
	if err := binary.Read(buf, binary.LittleEndian, f); err != nil {
		return errors.Wrap(err, "font")
	}
	return workBook.addFont(f, buf)
}

func handleFormat(workBook *WorkBook, data []byte) error {
	buf := bytes.NewReader(data)
	var index uint16
	if err := binary.Read(buf, binary.LittleEndian, &index); err != nil {
		return errors.Wrap(err, "format")
	}
	var size uint16
	if workBook.Is5ver {
		var n byte
		if err := binary.Read(buf, binary.LittleEndian, &n); err != nil {
			return errors.Wrap(err, "format")
		}
		size = uint16(n)
	} else if err := binary.Read(buf, binary.LittleEndian, &size); err != nil {
		return errors.Wrap(err, "format")
	}
	str, err := workBook.getString(buf, size)
	if err != nil {
		return errors.Wrapf(err, "format %d", index)
	}
	workBook.addFormat(index, str)
	return nil
}

const styleBuiltin = 0x8000

func handleStyle(workBook *WorkBook, data []byte) error {
	buf := bytes.NewReader(data)
	var ixfe uint16
	if err := binary.Read(buf, binary.LittleEndian, &ixfe); err != nil {
		return errors.Wrap(err, "style")
	}
	s := styleRecord{xf: ixfe & 0x0FFF, builtin: ixfe&styleBuiltin != 0}
	if s.builtin {
		var ids [2]byte
		if err := binary.Read(buf, binary.LittleEndian, &ids); err != nil {
			return errors.Wrap(err, "style")
		}
		s.id, s.level = ids[0], ids[1]
	} else {
		var size uint16
		if workBook.Is5ver {
			var n byte
			if err := binary.Read(buf, binary.LittleEndian, &n); err != nil {
				return errors.Wrap(err, "style")
			}
			size = uint16(n)
		} else if err := binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return errors.Wrap(err, "style")
		}
		name, err := workBook.getString(buf, size)
		if err != nil {
			return errors.Wrap(err, "style name")
		}
		s.name = name
	}
	workBook.styles = append(workBook.styles, s)
	return nil
}

func handlePalette(workBook *WorkBook, data []byte) error {
	buf := bytes.NewReader(data)
	var count uint16
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return errors.Wrap(err, "palette")
	}
	for i := 0; i < int(count); i++ {
		var rgb [4]byte
		if err := binary.Read(buf, binary.LittleEndian, &rgb); err != nil {
			return errors.Wrapf(err, "palette entry %d", i)
		}
		workBook.palette.Set(paletteBase+i, uint32(rgb[0])<<16|uint32(rgb[1])<<8|uint32(rgb[2]))
	}
	return nil
}
