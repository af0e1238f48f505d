package xlstyle

import (
	"encoding/binary"
	"io"
	"unicode/utf16"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// WorkBook is the formatting part of an xls workbook: its fonts, number
// formats, XF records and named styles, turned into a Catalog.
type WorkBook struct {
	Is5ver   bool
	Type     uint16
	Codepage uint16

	catalog *Catalog
	// catalog index of every XF record, -1 for style XFs
	xfFormats []int

	cfg     Config
	log     *zap.Logger
	seenBOF bool

	fonts   []Font
	xfs     []xfRecord
	formats map[uint16]string
	styles  []styleRecord
	palette *Palette
}

type styleRecord struct {
	xf      uint16
	builtin bool
	id      byte
	level   byte
	name    string
}

func newWorkBook(cfg Config, opts []Option) *WorkBook {
	wb := &WorkBook{
		cfg:     cfg,
		log:     zap.NewNop(),
		formats: make(map[uint16]string),
		palette: DefaultPalette(),
	}
	// the logger is needed while parsing, before the catalog exists
	probe := &Catalog{}
	for _, opt := range opts {
		opt(probe)
	}
	if probe.log != nil {
		wb.log = probe.log
	}
	return wb
}

// ParseStream reads the formatting records of a raw BIFF5/BIFF8 workbook
// stream, the "Workbook" or "Book" stream of an xls file.
func ParseStream(stream io.Reader, cfg Config, opts ...Option) (*WorkBook, error) {
	wb := newWorkBook(cfg, opts)
	if err := wb.Parse(stream); err != nil {
		return nil, err
	}
	wb.build(opts)
	return wb, nil
}

// Parse reads records up to the end of the workbook globals. Sheet streams
// carry no formatting records and are not read.
func (w *WorkBook) Parse(buf io.Reader) error {
	header := new(bof)
	for {
		if err := binary.Read(buf, binary.LittleEndian, header); err != nil {
			if err == io.EOF && w.seenBOF {
				return nil
			}
			if !w.seenBOF {
				return ErrNotBiff
			}
			return errors.Wrap(err, "xlstyle: read record header")
		}
		if !w.seenBOF && header.ID != recordBOF {
			return ErrNotBiff
		}
		data := make([]byte, header.Size)
		if _, err := io.ReadFull(buf, data); err != nil {
			return errors.Wrapf(err, "xlstyle: record 0x%04x truncated", header.ID)
		}
		if header.ID == recordEOF {
			return nil
		}
		if err := w.parseRecord(header.ID, data); err != nil {
			if err == ErrNotBiff {
				return err
			}
			w.log.Warn("skipping malformed record", zap.Uint16("id", header.ID), zap.Error(err))
		}
	}
}

func (w *WorkBook) addXf(xf xfRecord) {
	w.xfs = append(w.xfs, xf)
}

func (w *WorkBook) addFont(font *FontInfo, buf io.Reader) error {
	name, err := w.getString(buf, uint16(font.NameB))
	if err != nil {
		return err
	}
	w.fonts = append(w.fonts, font.font(name))
	return nil
}

func (w *WorkBook) addFormat(index uint16, str string) {
	w.formats[index] = str
}

// getString reads a string of size characters. BIFF5 strings are bytes in
// the workbook codepage; BIFF8 strings start with an option byte telling
// whether characters are 8 or 16 bit.
func (w *WorkBook) getString(buf io.Reader, size uint16) (string, error) {
	if w.Is5ver {
		bts := make([]byte, size)
		if _, err := io.ReadFull(buf, bts); err != nil {
			return "", err
		}
		return w.decodeBytes(bts), nil
	}

	var flag byte
	if err := binary.Read(buf, binary.LittleEndian, &flag); err != nil {
		return "", err
	}
	if flag&0x8 != 0 {
		var richtextNum uint16
		if err := binary.Read(buf, binary.LittleEndian, &richtextNum); err != nil {
			return "", err
		}
	}
	if flag&0x4 != 0 {
		var phoneticSize uint32
		if err := binary.Read(buf, binary.LittleEndian, &phoneticSize); err != nil {
			return "", err
		}
	}

	if flag&0x1 != 0 {
		bts := make([]uint16, size)
		if err := binary.Read(buf, binary.LittleEndian, bts); err != nil {
			return "", err
		}
		return string(utf16.Decode(bts)), nil
	}

	// compressed: the high byte of every character is zero
	bts := make([]byte, size)
	if _, err := io.ReadFull(buf, bts); err != nil {
		return "", err
	}
	runes := make([]rune, len(bts))
	for i, b := range bts {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

var codepageCharmaps = map[uint16]*charmap.Charmap{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	866:   charmap.CodePage866,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,
}

func (w *WorkBook) decodeBytes(enc []byte) string {
	cm, ok := codepageCharmaps[w.Codepage]
	if !ok {
		cm = charmap.Windows1252
	}
	out, err := cm.NewDecoder().Bytes(enc)
	if err != nil {
		return string(enc)
	}
	return string(out)
}

// font returns the font an XF points at. Font index 4 is never written, so
// indexes above it are shifted by one.
func (w *WorkBook) font(index uint16) Font {
	i := int(index)
	if i > 4 {
		i--
	}
	if i < len(w.fonts) {
		return w.fonts[i]
	}
	w.log.Warn("xf references a missing font", zap.Uint16("font", index))
	return NewFont()
}

func (w *WorkBook) numberFormat(index uint16) string {
	if s, ok := w.formats[index]; ok {
		return s
	}
	if s, ok := BuiltinNumberFormat(index); ok {
		return s
	}
	if index < firstCustomNumberFormat {
		// locale dependent built-in, shown as General
		return ""
	}
	w.log.Warn("xf references a missing number format", zap.Uint16("format", index))
	return ""
}

func (w *WorkBook) xfFormat(xf xfRecord) *Format {
	f := &Format{
		Font:         w.font(xf.fontNo()),
		NumberFormat: w.numberFormat(xf.formatNo()),
	}
	t := xf.typeFlags()
	f.Locked = t&xfLocked != 0
	f.Hidden = t&xfHidden != 0
	f.IsStyle = t&xfStyle != 0
	f.Lotus123Prefix = t&xfLotus != 0
	xf.decode(f)
	if f.IsStyle {
		f.LinkedStyle = NewLinkedStyle()
	} else {
		f.LinkedStyle = linkedStyleFromAttr(xf.usedAttr())
	}
	return f
}

func (w *WorkBook) build(opts []Option) {
	c := NewCatalog(w.cfg, append(opts, WithPalette(w.palette), WithLogger(w.log))...)
	c.fileVersion = Excel2003
	c.clearFormats()
	// a file without a Normal STYLE record still gets the Excel 97-2003 default
	c.putStyle(NormalStyleName, CreateStandard2003(), true)

	styleNames := make(map[int]string, len(w.styles))
	for _, s := range w.styles {
		name := s.name
		if s.builtin {
			var ok bool
			if name, ok = BuiltinStyleName(int(s.id), int(s.level)); !ok {
				w.log.Warn("unknown built-in style", zap.Uint8("id", s.id))
				continue
			}
		}
		if int(s.xf) >= len(w.xfs) {
			w.log.Warn("style references a missing xf", zap.String("style", name), zap.Uint16("xf", s.xf))
			continue
		}
		f := w.xfFormat(w.xfs[s.xf])
		c.putStyle(name, f, s.builtin)
		styleNames[int(s.xf)] = name
	}

	w.xfFormats = make([]int, len(w.xfs))
	for i, xf := range w.xfs {
		if xf.typeFlags()&xfStyle != 0 {
			w.xfFormats[i] = -1
			continue
		}
		f := w.xfFormat(xf)
		parent := int(xf.typeFlags()&xfParentMask) >> 4
		if name, ok := styleNames[parent]; ok && name != NormalStyleName {
			f.SetParentStyle(name)
		} else if !ok && parent != 0 {
			w.log.Warn("xf parent has no style record", zap.Int("xf", i), zap.Int("parent", parent))
		}
		w.xfFormats[i] = c.AddFormat(f)
	}
	w.catalog = c
	w.log.Debug("workbook formats read",
		zap.Int("fonts", len(w.fonts)), zap.Int("xfs", len(w.xfs)), zap.Int("styles", len(w.styles)))
}

// Catalog returns the formats and styles of the workbook.
func (w *WorkBook) Catalog() *Catalog {
	return w.catalog
}

// NumXFs returns the number of XF records in the file.
func (w *WorkBook) NumXFs() int {
	return len(w.xfFormats)
}

// FormatIndex maps the XF index stored in a cell record to the catalog index
// of its format. Style XFs and unknown indexes return -1.
func (w *WorkBook) FormatIndex(xf int) int {
	if xf < 0 || xf >= len(w.xfFormats) {
		return -1
	}
	return w.xfFormats[xf]
}

// GetFormat returns the cell format of an XF record, or nil.
func (w *WorkBook) GetFormat(xf int) *Format {
	i := w.FormatIndex(xf)
	if i < 0 {
		return nil
	}
	return w.catalog.GetFormat(i)
}
