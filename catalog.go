package xlstyle

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// Catalog owns the fonts, cell formats and named styles of one workbook.
// Formats are stored by index; equal formats share an index. Every value
// handed in or out is a copy, so callers can modify what they get without
// touching the catalog.
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	cfg Config
	log *zap.Logger

	fonts     []Font
	fontIndex map[uint64][]int

	formats     []*Format
	formatIndex map[uint64][]int

	styles map[string]*namedStyle

	palette     *Palette
	fileVersion ExcelVersion

	resolved *lru.Cache[int, *Format]
	fold     cases.Caser
}

type namedStyle struct {
	name    string
	builtin bool
	format  *Format
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// WithPalette replaces the default color palette.
func WithPalette(p *Palette) Option {
	return func(c *Catalog) {
		if p != nil {
			c.palette = p
		}
	}
}

// NewCatalog returns a catalog holding the Normal style and, at index 0, the
// default cell format, both built for cfg.ExcelVersion.
func NewCatalog(cfg Config, opts ...Option) *Catalog {
	if !cfg.ExcelVersion.valid() {
		cfg.ExcelVersion = DefaultConfig().ExcelVersion
	}
	c := &Catalog{
		cfg:         cfg,
		log:         zap.NewNop(),
		fontIndex:   make(map[uint64][]int),
		formatIndex: make(map[uint64][]int),
		styles:      make(map[string]*namedStyle),
		palette:     DefaultPalette(),
		fileVersion: cfg.ExcelVersion,
		fold:        cases.Fold(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.ResolveCacheSize > 0 {
		// only fails for a non-positive size
		c.resolved, _ = lru.New[int, *Format](cfg.ResolveCacheSize)
	}

	normal := cfg.StandardFormat()
	normal.IsStyle = true
	c.putStyle(NormalStyleName, normal, true)
	c.AddFormat(cfg.StandardFormat())
	return c
}

// clearFormats drops every font and cell format, for readers that fill the
// catalog from a file in file order.
func (c *Catalog) clearFormats() {
	c.fonts = nil
	c.fontIndex = make(map[uint64][]int)
	c.formats = nil
	c.formatIndex = make(map[uint64][]int)
	c.invalidate()
}

func (c *Catalog) Config() Config {
	return c.cfg
}

func (c *Catalog) Palette() *Palette {
	return c.palette
}

// FileVersion is the version of the file the catalog was read from, or the
// configured version for a new catalog.
func (c *Catalog) FileVersion() ExcelVersion {
	return c.fileVersion
}

// MaxRows returns the row limit that applies to the workbook.
func (c *Catalog) MaxRows() int {
	rows, _ := c.cfg.Limits(c.fileVersion)
	return rows
}

// MaxColumns returns the column limit that applies to the workbook.
func (c *Catalog) MaxColumns() int {
	_, cols := c.cfg.Limits(c.fileVersion)
	return cols
}

func (c *Catalog) FontCount() int {
	return len(c.fonts)
}

// GetFont returns a copy of the font at index, or nil when out of range.
func (c *Catalog) GetFont(index int) *Font {
	if index < 0 || index >= len(c.fonts) {
		return nil
	}
	return c.fonts[index].Clone()
}

// AddFont returns the index of a font equal to f, adding f when there is none.
func (c *Catalog) AddFont(f Font) int {
	h := f.Hash()
	for _, i := range c.fontIndex[h] {
		if c.fonts[i].Equal(&f) {
			return i
		}
	}
	c.fonts = append(c.fonts, f)
	i := len(c.fonts) - 1
	c.fontIndex[h] = append(c.fontIndex[h], i)
	return i
}

func (c *Catalog) FormatCount() int {
	return len(c.formats)
}

// GetFormat returns a copy of the cell format at index, or nil when out of
// range.
func (c *Catalog) GetFormat(index int) *Format {
	if index < 0 || index >= len(c.formats) {
		return nil
	}
	return c.formats[index].Clone()
}

// AddFormat stores a copy of f and returns its index. A format equal to an
// existing one reuses that index. When f.LinkedStyle.AutomaticChoose is set,
// the linked groups are computed against the parent style first.
func (c *Catalog) AddFormat(f *Format) int {
	stored := c.prepare(f)
	h := stored.Hash()
	for _, i := range c.formatIndex[h] {
		if c.formats[i].Equal(stored) {
			return i
		}
	}
	c.AddFont(stored.Font)
	c.formats = append(c.formats, stored)
	i := len(c.formats) - 1
	c.formatIndex[h] = append(c.formatIndex[h], i)
	c.log.Debug("format added", zap.Int("index", i), zap.String("parent", stored.NotNullParentStyle()))
	return i
}

// SetFormat replaces the format at index. It returns false when index is out
// of range.
func (c *Catalog) SetFormat(index int, f *Format) bool {
	if index < 0 || index >= len(c.formats) {
		return false
	}
	old := c.formats[index]
	c.unindexFormat(index, old.Hash())
	stored := c.prepare(f)
	c.AddFont(stored.Font)
	c.formats[index] = stored
	h := stored.Hash()
	c.formatIndex[h] = append(c.formatIndex[h], index)
	c.invalidate()
	return true
}

func (c *Catalog) unindexFormat(index int, h uint64) {
	bucket := c.formatIndex[h]
	for k, i := range bucket {
		if i == index {
			bucket = append(bucket[:k], bucket[k+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.formatIndex, h)
		return
	}
	c.formatIndex[h] = bucket
}

func (c *Catalog) prepare(f *Format) *Format {
	stored := f.Clone()
	if stored.LinkedStyle.AutomaticChoose && (!stored.IsStyle || stored.ParentStyle != nil) {
		parent := c.resolveStyle(stored.NotNullParentStyle(), make(map[string]bool))
		stored.LinkedStyle = InferLinkedStyle(stored, parent)
	}
	return stored
}

func (c *Catalog) StyleCount() int {
	return len(c.styles)
}

// StyleNames returns the names of all named styles, sorted.
func (c *Catalog) StyleNames() []string {
	names := make([]string, 0, len(c.styles))
	for _, s := range c.styles {
		names = append(names, s.name)
	}
	sort.Strings(names)
	return names
}

// HasStyle reports whether a style with that name exists. Style names are
// compared case-insensitively.
func (c *Catalog) HasStyle(name string) bool {
	_, ok := c.styles[c.fold.String(name)]
	return ok
}

// IsBuiltinStyle reports whether the named style is one of Excel's built-in
// styles.
func (c *Catalog) IsBuiltinStyle(name string) bool {
	s, ok := c.styles[c.fold.String(name)]
	return ok && s.builtin
}

// GetStyle returns a copy of the named style, or nil when it doesn't exist.
func (c *Catalog) GetStyle(name string) *Format {
	s, ok := c.styles[c.fold.String(name)]
	if !ok {
		return nil
	}
	return s.format.Clone()
}

// SetStyle adds or replaces a named style. The stored copy always has
// IsStyle set.
func (c *Catalog) SetStyle(name string, f *Format) {
	c.putStyle(name, f, builtinStyleID(name) >= 0)
}

func (c *Catalog) putStyle(name string, f *Format, builtin bool) {
	stored := f.Clone()
	stored.IsStyle = true
	if stored.ParentStyle != nil && c.fold.String(*stored.ParentStyle) == c.fold.String(name) {
		stored.ParentStyle = nil
	}
	if stored.ParentStyle != nil {
		stored = c.prepare(stored)
	}
	key := c.fold.String(name)
	if old, ok := c.styles[key]; ok {
		name = old.name
	}
	c.styles[key] = &namedStyle{name: name, builtin: builtin, format: stored}
	c.invalidate()
}

// DeleteStyle removes a named style. Cell formats that used it fall back to
// Normal. Normal itself can't be deleted.
func (c *Catalog) DeleteStyle(name string) bool {
	key := c.fold.String(name)
	if key == c.fold.String(NormalStyleName) {
		return false
	}
	if _, ok := c.styles[key]; !ok {
		return false
	}
	delete(c.styles, key)
	c.reparent(key, nil)
	c.invalidate()
	return true
}

// RenameStyle renames a named style and every reference to it.
func (c *Catalog) RenameStyle(oldName, newName string) bool {
	oldKey, newKey := c.fold.String(oldName), c.fold.String(newName)
	s, ok := c.styles[oldKey]
	if !ok || oldKey == c.fold.String(NormalStyleName) {
		return false
	}
	if _, taken := c.styles[newKey]; taken && newKey != oldKey {
		return false
	}
	delete(c.styles, oldKey)
	s.name = newName
	s.builtin = builtinStyleID(newName) >= 0
	c.styles[newKey] = s
	c.reparent(oldKey, &newName)
	c.invalidate()
	return true
}

// reparent points every format and style whose parent is oldKey at newName.
func (c *Catalog) reparent(oldKey string, newName *string) {
	for i, f := range c.formats {
		if f.ParentStyle == nil || c.fold.String(*f.ParentStyle) != oldKey {
			continue
		}
		updated := f.Clone()
		updated.ParentStyle = nil
		if newName != nil {
			updated.SetParentStyle(*newName)
		}
		c.unindexFormat(i, f.Hash())
		c.formats[i] = updated
		h := updated.Hash()
		c.formatIndex[h] = append(c.formatIndex[h], i)
	}
	for _, s := range c.styles {
		if s.format.ParentStyle != nil && c.fold.String(*s.format.ParentStyle) == oldKey {
			s.format.ParentStyle = nil
			if newName != nil {
				s.format.SetParentStyle(*newName)
			}
		}
	}
}

func (c *Catalog) invalidate() {
	if c.resolved != nil {
		c.resolved.Purge()
	}
}

// ApplyFormat merges the attributes selected by mask from src into each of
// the formats at indices, and returns the indices of the merged formats in
// the same order. changed reports whether any returned index differs from
// the one passed in. Merged formats are interned like AddFormat does, so a
// change that Format.Equal ignores, such as the background color of a solid
// fill, maps back to the original index and is not stored.
// An empty mask returns the indices untouched; a borders-only mask merges
// just the borders.
func (c *Catalog) ApplyFormat(indices []int, mask ApplyFormat, src *Format) (result []int, changed bool) {
	result = make([]int, len(indices))
	copy(result, indices)
	if mask.IsEmpty() {
		return result, false
	}
	bordersOnly := mask.HasOnlyBorders()

	merged := make(map[int]int, len(indices))
	for k, idx := range indices {
		if r, ok := merged[idx]; ok {
			result[k] = r
			continue
		}
		base := c.GetFormat(idx)
		if base == nil {
			base = c.GetFormat(0)
		}
		if base == nil {
			base = c.cfg.StandardFormat()
		}
		var did bool
		if bordersOnly {
			did = mask.Borders.Apply(&base.Borders, &src.Borders)
		} else {
			did = mask.Apply(base, src)
		}
		r := idx
		if did || idx < 0 || idx >= len(c.formats) {
			r = c.AddFormat(base)
		}
		if r != idx {
			changed = true
		}
		merged[idx] = r
		result[k] = r
	}
	c.log.Debug("apply format", zap.Int("cells", len(indices)), zap.Bool("changed", changed), zap.Bool("bordersOnly", bordersOnly))
	return result, changed
}
